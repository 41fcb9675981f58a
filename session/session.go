// Package session owns one arena: its world, roster and match lifecycle.
// Systems reach back into it only through system.Coordinator.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
	"github.com/milk9111/bossarena/ecs/entity"
	"github.com/milk9111/bossarena/ecs/system"
	"github.com/milk9111/bossarena/prefabs"
)

var (
	ErrAlreadyRunning       = errors.New("session: already running")
	ErrNotEnoughSpawnPoints = errors.New("session: not enough spawn points")
	ErrNoPlayers            = errors.New("session: no players configured")
	ErrEmptyRoster          = errors.New("session: roster is empty")
	ErrPlayerNotInRoster    = errors.New("session: player not in roster")
)

type State int

const (
	StateIdle State = iota
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

type Session struct {
	cfg     prefabs.Config
	pending *prefabs.Config

	logger         *slog.Logger
	rng            common.RNG
	query          system.SpatialQuery
	physicsFactory PhysicsFactory
	physics        Physics
	sources        map[int]system.ControlSource
	observers      []Observer
	special        system.SpecialFunc

	world     *ecs.World
	ledger    *system.Ledger
	contacts  *system.Contacts
	scheduler *ecs.Scheduler

	input    *system.InputSystem
	interact *system.PlayerInteractSystem
	boss     *system.BossSystem
	spawn    *system.SpawnSystem

	state    State
	roster   []int
	players  map[int]ecs.Entity
	bossE    ecs.Entity
	spawners []ecs.Entity
	matchID  string
	ready    map[int]bool
}

// New returns an Idle session with an empty roster for cfg.
func New(cfg prefabs.Config, opts ...Option) *Session {
	s := &Session{
		cfg:     cfg,
		logger:  slog.Default(),
		sources: make(map[int]system.ControlSource),
		world:   ecs.NewWorld(),
		players: make(map[int]ecs.Entity),
		ready:   make(map[int]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = common.NewRNG(uint64(uuid.New().ID()))
	}
	if s.special == nil {
		s.special = system.LogSpecial(s.logger)
	}

	coord := coordinator{s: s}
	s.ledger = system.NewLedger(cfg.Items.Cap)
	s.contacts = system.NewContacts(s.world, coord, s.ledger, s.logger)
	s.input = system.NewInputSystem(s.sources)
	s.interact = system.NewPlayerInteractSystem(s.query, s.logger)
	s.boss = system.NewBossSystem(coord, s.rng, s.logger)
	s.boss.SetQuery(s.query)
	s.boss.OnFault(s.invariant)
	s.spawn = system.NewSpawnSystem(coord, s.ledger, cfg.Items, spawnPoints(cfg.Arena.ItemSpawns), s.rng, s.logger)

	s.apply(cfg)
	return s
}

// apply installs cfg. Only called while Idle.
func (s *Session) apply(cfg prefabs.Config) {
	s.cfg = cfg
	s.ledger.SetCap(cfg.Items.Cap)
	s.trimItems()
	s.spawn.Configure(cfg.Items, spawnPoints(cfg.Arena.ItemSpawns))
	s.boss.SetSelector(s.selector(cfg))

	for _, e := range s.spawners {
		ecs.DestroyEntity(s.world, e)
	}
	s.spawners = s.spawners[:0]
	for _, kind := range cfg.Items.Kinds {
		e, err := entity.NewSpawner(s.world, kind, cfg.Items.SpawnDelay)
		if err != nil {
			s.logger.Error("session: create spawner", "kind", kind, "err", err)
			continue
		}
		s.spawners = append(s.spawners, e)
	}

	if s.physicsFactory != nil {
		s.physics = s.physicsFactory(cfg.Arena, s.logger)
		s.physics.Bind(s.world, s.contacts)
		s.interact.SetQuery(s.physics)
		s.boss.SetQuery(s.physics)
	}

	s.scheduler = ecs.NewScheduler(
		s.input,
		system.NewPlayerControllerSystem(),
		s.interact,
		system.NewSpecialSystem(s.special),
		system.NewInvulnerabilitySystem(),
		system.NewManeuverSystem(s.logger),
		s.boss,
		s.spawn,
	)
	if s.physics != nil {
		s.scheduler.Add(s.physics)
	}
	s.scheduler.Add(system.NewHeldItemSystem())
}

// trimItems destroys items until the ledger fits a lowered cap, Free items
// first. Only called while Idle, so nothing is held.
func (s *Session) trimItems() {
	excess := s.ledger.Live() - s.ledger.Cap()
	if excess <= 0 {
		return
	}

	var free, placed []ecs.Entity
	ecs.ForEach(s.world, component.ItemComponent.Kind(), func(e ecs.Entity, it *component.Item) {
		if it.State == component.ItemFree {
			free = append(free, e)
		} else {
			placed = append(placed, e)
		}
	})
	removed := 0
	for _, e := range append(free, placed...) {
		if removed == excess {
			break
		}
		if ecs.DestroyEntity(s.world, e) {
			removed++
		}
	}
	s.ledger.Release(removed)
	s.logger.Info("items trimmed to new cap", "removed", removed, "cap", s.ledger.Cap())
}

func (s *Session) selector(cfg prefabs.Config) system.AttackSelector {
	if len(cfg.AttackScript) == 0 {
		return system.ThresholdSelector{}
	}
	sel, err := system.NewScriptSelector(cfg.Boss.Phase1.AttackScript, cfg.AttackScript, s.logger)
	if err != nil {
		s.logger.Warn("session: attack script rejected, using threshold", "script", cfg.Boss.Phase1.AttackScript, "err", err)
		return system.ThresholdSelector{}
	}
	return sel
}

func spawnPoints(points []prefabs.PointSpec) []common.Vec2 {
	out := make([]common.Vec2, 0, len(points))
	for _, p := range points {
		out = append(out, common.V(p.X, p.Y))
	}
	return out
}

// RequestStart starts a match: one player per slot at distinct spawn points
// and a fresh boss.
func (s *Session) RequestStart() error {
	if s.state == StateRunning {
		return ErrAlreadyRunning
	}
	n := s.cfg.Session.Players
	if n < 1 {
		return ErrNoPlayers
	}
	if len(s.cfg.Arena.PlayerSpawns) < n {
		return fmt.Errorf("%w: need %d, have %d", ErrNotEnoughSpawnPoints, n, len(s.cfg.Arena.PlayerSpawns))
	}

	spawned := make([]ecs.Entity, 0, n)
	rollback := func() {
		for _, e := range spawned {
			ecs.DestroyEntity(s.world, e)
		}
	}
	for id := 1; id <= n; id++ {
		p := s.cfg.Arena.PlayerSpawns[id-1]
		e, err := entity.NewPlayerAt(s.world, id, s.cfg.Player, common.V(p.X, p.Y))
		if err != nil {
			rollback()
			return fmt.Errorf("session: spawn player %d: %w", id, err)
		}
		spawned = append(spawned, e)
	}
	boss, err := entity.NewBoss(s.world, s.cfg.Boss, s.cfg.Arena)
	if err != nil {
		rollback()
		return fmt.Errorf("session: spawn boss: %w", err)
	}

	s.roster = s.roster[:0]
	clear(s.players)
	for i, e := range spawned {
		s.roster = append(s.roster, i+1)
		s.players[i+1] = e
	}
	s.bossE = boss
	s.matchID = uuid.NewString()
	s.state = StateRunning

	s.logger.Info("session started", "match", s.matchID, "players", n)
	for _, o := range s.observers {
		o.SessionStarted(s.matchID)
	}
	return nil
}

// OnPlayerDied removes id from the roster and ends the match when nobody is
// left.
func (s *Session) OnPlayerDied(id int) {
	if s.state != StateRunning {
		return
	}
	idx := slices.Index(s.roster, id)
	if idx < 0 {
		s.logger.Warn("session: death ignored", "player", id, "err", ErrPlayerNotInRoster)
		return
	}
	s.roster = slices.Delete(s.roster, idx, idx+1)
	if e, ok := s.players[id]; ok {
		s.ledger.Release(entity.DestroyPlayer(s.world, e))
		delete(s.players, id)
	}

	s.logger.Info("player died", "match", s.matchID, "player", id, "remaining", len(s.roster))
	for _, o := range s.observers {
		o.PlayerDied(id)
	}
	if len(s.roster) == 0 {
		s.EndSession()
	}
}

func (s *Session) OnBossDefeated() {
	if s.state != StateRunning {
		return
	}
	s.logger.Info("boss defeated", "match", s.matchID)
	for _, o := range s.observers {
		o.BossDefeated()
	}
	s.EndSession()
}

// EndSession tears the match down. Calling it while Idle does nothing.
func (s *Session) EndSession() {
	if s.state != StateRunning {
		return
	}

	entity.DestroyBoss(s.world, s.bossE)
	s.bossE = 0
	for _, id := range s.roster {
		if e, ok := s.players[id]; ok {
			s.ledger.Release(entity.DestroyPlayer(s.world, e))
		}
	}
	s.roster = s.roster[:0]
	clear(s.players)
	clear(s.ready)
	s.state = StateIdle

	s.logger.Info("session ended", "match", s.matchID)
	for _, o := range s.observers {
		o.SessionEnded(s.matchID)
	}
}

// PickRandomPlayer returns a roster id chosen uniformly.
func (s *Session) PickRandomPlayer() (int, error) {
	if len(s.roster) == 0 {
		return 0, ErrEmptyRoster
	}
	return s.roster[s.rng.IntN(len(s.roster))], nil
}

// Update advances the arena by dt seconds.
func (s *Session) Update(dt float64) {
	s.scheduler.Update(s.world, dt)
	if s.state != StateIdle {
		return
	}

	// a match that ended this tick takes the reload before anyone can
	// start the next one
	if s.pending != nil {
		s.apply(*s.pending)
		s.pending = nil
		s.logger.Info("session reconfigured", "arena", s.cfg.Arena.Name)
	}
	s.pollStart()
}

// pollStart reads interact edges from the expected slots and starts the
// match once the start policy is met.
func (s *Session) pollStart() {
	n := s.cfg.Session.Players
	for id := 1; id <= n; id++ {
		src, ok := s.sources[id]
		if !ok {
			continue
		}
		if src.EdgeDown(system.ControlName(system.ControlInteract, id)) {
			s.ready[id] = true
		}
	}

	start := false
	switch s.cfg.Session.StartPolicy {
	case prefabs.StartAll:
		start = n > 0 && len(s.ready) >= n
	default:
		start = len(s.ready) > 0
	}
	if !start {
		return
	}

	if err := s.RequestStart(); err != nil {
		s.logger.Error("session: start", "err", err)
		clear(s.ready)
	}
}

// Reconfigure queues cfg. It takes effect at the end of the next tick that
// leaves the session Idle, before start requests are polled. A lowered item
// cap destroys the excess items.
func (s *Session) Reconfigure(cfg prefabs.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.pending = &cfg
	return nil
}

// invariant reports a broken invariant. Debug sessions stop on it.
func (s *Session) invariant(err error) {
	if s.cfg.Session.Debug {
		panic(err)
	}
	s.logger.Error("session: invariant violated", "match", s.matchID, "err", err)
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Running() bool {
	return s.state == StateRunning
}

// Roster returns the live player ids in join order.
func (s *Session) Roster() []int {
	return slices.Clone(s.roster)
}

func (s *Session) MatchID() string {
	return s.matchID
}

func (s *Session) World() *ecs.World {
	return s.world
}

func (s *Session) Config() prefabs.Config {
	return s.cfg
}

func (s *Session) Ledger() *system.Ledger {
	return s.ledger
}

// Contacts is where a physics adapter reports contacts.
func (s *Session) Contacts() *system.Contacts {
	return s.contacts
}

func (s *Session) Boss() (ecs.Entity, bool) {
	if s.state != StateRunning || !ecs.Has(s.world, s.bossE, component.BossComponent.Kind()) {
		return 0, false
	}
	return s.bossE, true
}

func (s *Session) Player(id int) (ecs.Entity, bool) {
	e, ok := s.players[id]
	if !ok || !ecs.IsAlive(s.world, e) {
		return 0, false
	}
	return e, true
}

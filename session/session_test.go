package session

import (
	"errors"
	"io"
	"log/slog"
	"slices"
	"testing"

	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
	"github.com/milk9111/bossarena/ecs/entity"
	"github.com/milk9111/bossarena/ecs/system"
	"github.com/milk9111/bossarena/prefabs"
)

type recorder struct {
	started  []string
	died     []int
	defeated int
	ended    []string
}

func (r *recorder) observer() Observer {
	return ObserverFuncs{
		Started:  func(id string) { r.started = append(r.started, id) },
		Died:     func(id int) { r.died = append(r.died, id) },
		Defeated: func() { r.defeated++ },
		Ended:    func(id string) { r.ended = append(r.ended, id) },
	}
}

// pressSource reports each queued press on exactly one read.
type pressSource struct {
	down map[string]bool
}

func newPressSource() *pressSource {
	return &pressSource{down: map[string]bool{}}
}

func (p *pressSource) Press(name string) { p.down[name] = true }

func (p *pressSource) AxisValue(string) float64 { return 0 }

func (p *pressSource) EdgeDown(name string) bool {
	v := p.down[name]
	delete(p.down, name)
	return v
}

func (p *pressSource) EdgeUp(string) bool { return false }

func testConfig(t *testing.T) prefabs.Config {
	t.Helper()
	cfg, err := prefabs.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	cfg.Session.Players = 2
	cfg.Session.StartPolicy = prefabs.StartAny
	cfg.Session.Debug = false
	return cfg
}

func newTestSession(t *testing.T, cfg prefabs.Config, opts ...Option) (*Session, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts = append([]Option{
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithRNG(common.NewRNG(7)),
		WithObserver(rec.observer()),
	}, opts...)
	return New(cfg, opts...), rec
}

func mustStart(t *testing.T, s *Session) {
	t.Helper()
	if err := s.RequestStart(); err != nil {
		t.Fatalf("RequestStart: %v", err)
	}
}

func TestRequestStart(t *testing.T) {
	s, rec := newTestSession(t, testConfig(t))
	if s.State() != StateIdle || len(s.Roster()) != 0 {
		t.Fatalf("expected idle session with empty roster")
	}

	mustStart(t, s)

	if !s.Running() {
		t.Fatalf("expected running, got %v", s.State())
	}
	if got := s.Roster(); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("expected roster [1 2], got %v", got)
	}
	if _, ok := s.Boss(); !ok {
		t.Fatalf("expected a boss")
	}
	boss, _ := s.Boss()
	b, _ := ecs.Get(s.World(), boss, component.BossComponent.Kind())
	if b.Cooldown != s.Config().Boss.Phase1.MaxWait {
		t.Fatalf("expected first cooldown %v, got %v", s.Config().Boss.Phase1.MaxWait, b.Cooldown)
	}

	p1, _ := s.Player(1)
	p2, _ := s.Player(2)
	t1, _ := ecs.Get(s.World(), p1, component.TransformComponent.Kind())
	t2, _ := ecs.Get(s.World(), p2, component.TransformComponent.Kind())
	if t1.Pos() == t2.Pos() {
		t.Fatalf("expected distinct spawn points, both at %v", t1.Pos())
	}
	if len(rec.started) != 1 || rec.started[0] != s.MatchID() || s.MatchID() == "" {
		t.Fatalf("expected one start notification for %q, got %v", s.MatchID(), rec.started)
	}
}

func TestRequestStartWhileRunningIsRejected(t *testing.T) {
	s, rec := newTestSession(t, testConfig(t))
	mustStart(t, s)
	match := s.MatchID()
	boss, _ := s.Boss()

	err := s.RequestStart()
	if !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("expected ErrAlreadyRunning, got %v", err)
	}
	if s.MatchID() != match {
		t.Fatalf("expected match id unchanged")
	}
	if again, _ := s.Boss(); again != boss {
		t.Fatalf("expected boss unchanged")
	}
	if got := ecs.Count(s.World(), component.PlayerComponent.Kind()); got != 2 {
		t.Fatalf("expected 2 players, got %d", got)
	}
	if len(rec.started) != 1 {
		t.Fatalf("expected one start notification, got %d", len(rec.started))
	}
}

func TestRequestStartValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*prefabs.Config)
		want   error
	}{
		{
			name:   "more players than spawn points",
			mutate: func(c *prefabs.Config) { c.Arena.PlayerSpawns = c.Arena.PlayerSpawns[:1] },
			want:   ErrNotEnoughSpawnPoints,
		},
		{
			name:   "no players",
			mutate: func(c *prefabs.Config) { c.Session.Players = 0 },
			want:   ErrNoPlayers,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(t)
			tc.mutate(&cfg)
			s, _ := newTestSession(t, cfg)

			err := s.RequestStart()
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if s.Running() {
				t.Fatalf("expected session to stay idle")
			}
			if got := ecs.Count(s.World(), component.PlayerComponent.Kind()); got != 0 {
				t.Fatalf("expected no players, got %d", got)
			}
		})
	}
}

func TestRosterShrinksUntilSessionEnds(t *testing.T) {
	s, rec := newTestSession(t, testConfig(t))
	mustStart(t, s)

	// player 2 dies through a contact
	p2, _ := s.Player(2)
	h, _ := ecs.Get(s.World(), p2, component.HealthComponent.Kind())
	h.Current = 1
	s.Contacts().HitPlayer(p2)

	if got := s.Roster(); !slices.Equal(got, []int{1}) {
		t.Fatalf("expected roster [1], got %v", got)
	}
	if !s.Running() {
		t.Fatalf("expected session still running")
	}
	if ecs.IsAlive(s.World(), p2) {
		t.Fatalf("expected player 2 destroyed")
	}

	s.OnPlayerDied(1)

	if len(s.Roster()) != 0 || s.State() != StateIdle {
		t.Fatalf("expected idle with empty roster, got %v %v", s.State(), s.Roster())
	}
	if !slices.Equal(rec.died, []int{2, 1}) {
		t.Fatalf("expected deaths [2 1], got %v", rec.died)
	}
	if len(rec.ended) != 1 {
		t.Fatalf("expected one end notification, got %d", len(rec.ended))
	}
	if _, ok := s.Boss(); ok {
		t.Fatalf("expected boss gone")
	}
	if got := ecs.Count(s.World(), component.LimbComponent.Kind()); got != 0 {
		t.Fatalf("expected limbs gone, got %d", got)
	}
}

func TestUnknownDeathIsIgnored(t *testing.T) {
	s, rec := newTestSession(t, testConfig(t))
	mustStart(t, s)

	s.OnPlayerDied(9)

	if got := s.Roster(); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("expected roster unchanged, got %v", got)
	}
	if len(rec.died) != 0 {
		t.Fatalf("expected no death notification, got %v", rec.died)
	}
}

func TestEndSessionIsIdempotent(t *testing.T) {
	s, rec := newTestSession(t, testConfig(t))
	mustStart(t, s)

	// player 1 carries an item out of the match
	p1, _ := s.Player(1)
	if !s.Ledger().TryReserve() {
		t.Fatalf("expected a free ledger slot")
	}
	item, err := entity.NewItemAt(s.World(), "pin", s.Config().Items, common.V(0, 0))
	if err != nil {
		t.Fatalf("NewItemAt: %v", err)
	}
	it, _ := ecs.Get(s.World(), item, component.ItemComponent.Kind())
	it.State = component.ItemHeld
	it.Holder = uint64(p1)
	inter, _ := ecs.Get(s.World(), p1, component.InteractionComponent.Kind())
	inter.Mode = component.InteractionHolding
	inter.Item = uint64(item)

	s.EndSession()
	after := len(ecs.Entities(s.World()))
	s.EndSession()

	if len(rec.ended) != 1 {
		t.Fatalf("expected one end notification, got %d", len(rec.ended))
	}
	if got := len(ecs.Entities(s.World())); got != after {
		t.Fatalf("expected second end to change nothing, entities %d -> %d", after, got)
	}
	if ecs.IsAlive(s.World(), item) {
		t.Fatalf("expected held item destroyed with its holder")
	}
	if s.Ledger().Live() != 0 {
		t.Fatalf("expected ledger slot released, live=%d", s.Ledger().Live())
	}
}

func TestBossDefeatEndsSession(t *testing.T) {
	cfg := testConfig(t)
	cfg.Boss.Phase1.MaxHealth = 3
	s, rec := newTestSession(t, cfg)
	mustStart(t, s)
	boss, _ := s.Boss()
	h, _ := ecs.Get(s.World(), boss, component.HealthComponent.Kind())

	var seen []int
	for i := 0; i < 4; i++ {
		item, err := entity.NewItemAt(s.World(), "pin", cfg.Items, common.V(0, 0))
		if err != nil {
			t.Fatalf("NewItemAt: %v", err)
		}
		it, _ := ecs.Get(s.World(), item, component.ItemComponent.Kind())
		it.State = component.ItemPlaced

		s.Contacts().HazardContact(item, boss)
		if ecs.IsAlive(s.World(), boss) {
			seen = append(seen, h.Current)
		}
	}

	if !slices.Equal(seen, []int{2, 1}) {
		t.Fatalf("expected health 2,1 before defeat, got %v", seen)
	}
	if rec.defeated != 1 || len(rec.ended) != 1 {
		t.Fatalf("expected one defeat and one end, got %d and %d", rec.defeated, len(rec.ended))
	}
	if s.Running() {
		t.Fatalf("expected session idle after defeat")
	}
}

func TestStartPolicy(t *testing.T) {
	cases := []struct {
		name    string
		policy  prefabs.StartPolicy
		presses [][]int
		want    []bool
	}{
		{name: "any slot starts", policy: prefabs.StartAny, presses: [][]int{{2}}, want: []bool{true}},
		{name: "nobody ready", policy: prefabs.StartAny, presses: [][]int{{}}, want: []bool{false}},
		{name: "all waits for everyone", policy: prefabs.StartAll, presses: [][]int{{1}, {1}, {2}}, want: []bool{false, false, true}},
		{name: "all in one tick", policy: prefabs.StartAll, presses: [][]int{{1, 2}}, want: []bool{true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Session.StartPolicy = tc.policy
			src := newPressSource()
			s, _ := newTestSession(t, cfg, WithControlSource(1, src), WithControlSource(2, src))

			for i, ids := range tc.presses {
				for _, id := range ids {
					src.Press(system.ControlName(system.ControlInteract, id))
				}
				s.Update(1.0 / 60)
				if s.Running() != tc.want[i] {
					t.Fatalf("tick %d: expected running=%v, got %v", i, tc.want[i], s.Running())
				}
			}
		})
	}
}

func TestReadyMarksResetOnEnd(t *testing.T) {
	cfg := testConfig(t)
	cfg.Session.StartPolicy = prefabs.StartAll
	src := newPressSource()
	s, _ := newTestSession(t, cfg, WithControlSource(1, src), WithControlSource(2, src))

	src.Press(system.ControlName(system.ControlInteract, 1))
	src.Press(system.ControlName(system.ControlInteract, 2))
	s.Update(1.0 / 60)
	if !s.Running() {
		t.Fatalf("expected start")
	}
	s.EndSession()

	src.Press(system.ControlName(system.ControlInteract, 1))
	s.Update(1.0 / 60)
	if s.Running() {
		t.Fatalf("expected old ready marks cleared")
	}
}

func TestReconfigureWaitsForIdle(t *testing.T) {
	cfg := testConfig(t)
	s, _ := newTestSession(t, cfg)
	mustStart(t, s)

	next := cfg
	next.Items.Cap = cfg.Items.Cap + 3
	if err := s.Reconfigure(next); err != nil {
		t.Fatalf("Reconfigure: %v", err)
	}

	s.Update(1.0 / 60)
	if s.Ledger().Cap() != cfg.Items.Cap {
		t.Fatalf("expected cap unchanged mid-match, got %d", s.Ledger().Cap())
	}

	s.EndSession()
	s.Update(1.0 / 60)
	if s.Ledger().Cap() != next.Items.Cap {
		t.Fatalf("expected cap %d after idle tick, got %d", next.Items.Cap, s.Ledger().Cap())
	}
	if got := ecs.Count(s.World(), component.SpawnerComponent.Kind()); got != len(next.Items.Kinds) {
		t.Fatalf("expected %d spawners, got %d", len(next.Items.Kinds), got)
	}
}

func TestReconfigureTrimsItemsAboveLoweredCap(t *testing.T) {
	cfg := testConfig(t)
	cfg.Items.Cap = 3
	s, _ := newTestSession(t, cfg)
	mustStart(t, s)

	var items []ecs.Entity
	for i := 0; i < cfg.Items.Cap; i++ {
		if !s.Ledger().TryReserve() {
			t.Fatalf("reserve %d failed", i)
		}
		e, err := entity.NewItemAt(s.World(), cfg.Items.Kinds[0], cfg.Items, common.V(float64(i), 0))
		if err != nil {
			t.Fatalf("NewItemAt: %v", err)
		}
		items = append(items, e)
	}
	placed, _ := ecs.Get(s.World(), items[0], component.ItemComponent.Kind())
	placed.State = component.ItemPlaced
	s.EndSession()

	next := cfg
	next.Items.Cap = 1
	if err := s.Reconfigure(next); err != nil {
		t.Fatalf("Reconfigure: %v", err)
	}
	s.Update(1.0 / 60)

	if s.Ledger().Cap() != 1 || s.Ledger().Live() != 1 {
		t.Fatalf("expected live 1 of cap 1, got %d of %d", s.Ledger().Live(), s.Ledger().Cap())
	}
	if got := ecs.Count(s.World(), component.ItemComponent.Kind()); got != 1 {
		t.Fatalf("expected 1 item left in the world, got %d", got)
	}
	if !ecs.IsAlive(s.World(), items[0]) {
		t.Fatalf("expected free items to go before the placed one")
	}
}

// heldSource reports its edges on every read, the way a key stays down for
// a whole frame.
type heldSource struct {
	down map[string]bool
}

func (h heldSource) AxisValue(string) float64 { return 0 }

func (h heldSource) EdgeDown(name string) bool { return h.down[name] }

func (h heldSource) EdgeUp(string) bool { return false }

// endingPhysics ends the match from inside its step when armed, like a
// lethal contact would.
type endingPhysics struct {
	session *Session
	armed   bool
}

func (p *endingPhysics) Update(*ecs.World, float64) {
	if p.armed {
		p.armed = false
		p.session.EndSession()
	}
}

func (p *endingPhysics) Bind(*ecs.World, system.ContactHandler) {}

func (p *endingPhysics) LineQuery(common.Vec2, common.Vec2, float64, component.Layer) (common.Vec2, bool) {
	return common.Vec2{}, false
}

func (p *endingPhysics) RadiusQuery(common.Vec2, float64, component.Layer) (ecs.Entity, bool) {
	return 0, false
}

func TestReloadLandsBeforeSameTickRestart(t *testing.T) {
	cfg := testConfig(t)
	phys := &endingPhysics{}
	src := heldSource{down: map[string]bool{system.ControlName(system.ControlInteract, 1): true}}
	s, rec := newTestSession(t, cfg,
		WithPhysics(func(prefabs.ArenaSpec, *slog.Logger) Physics { return phys }),
		WithControlSource(1, src),
	)
	phys.session = s

	s.Update(1.0 / 60)
	if !s.Running() {
		t.Fatalf("expected the held interact to start a match")
	}

	next := cfg
	next.Items.Cap = cfg.Items.Cap + 2
	if err := s.Reconfigure(next); err != nil {
		t.Fatalf("Reconfigure: %v", err)
	}
	phys.armed = true
	s.Update(1.0 / 60)

	if len(rec.ended) != 1 || len(rec.started) != 2 {
		t.Fatalf("expected end then restart in one tick, got ended=%v started=%v", rec.ended, rec.started)
	}
	if s.Ledger().Cap() != next.Items.Cap {
		t.Fatalf("expected reload applied before the restart, cap = %d", s.Ledger().Cap())
	}
}

func TestReconfigureRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	s, _ := newTestSession(t, cfg)

	bad := cfg
	bad.Boss.Phase1.MinWait = cfg.Boss.Phase1.MaxWait + 1
	if err := s.Reconfigure(bad); !errors.Is(err, prefabs.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestPickRandomPlayer(t *testing.T) {
	s, _ := newTestSession(t, testConfig(t))

	if _, err := s.PickRandomPlayer(); !errors.Is(err, ErrEmptyRoster) {
		t.Fatalf("expected ErrEmptyRoster, got %v", err)
	}

	mustStart(t, s)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		id, err := s.PickRandomPlayer()
		if err != nil {
			t.Fatalf("PickRandomPlayer: %v", err)
		}
		seen[id] = true
	}
	if !seen[1] || !seen[2] || len(seen) != 2 {
		t.Fatalf("expected both players picked, got %v", seen)
	}
}

func TestEmptyRosterTargetIsAnInvariantViolation(t *testing.T) {
	cases := []struct {
		name      string
		debug     bool
		wantPanic bool
	}{
		{name: "release logs", debug: false},
		{name: "debug panics", debug: true, wantPanic: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Session.Debug = tc.debug
			s, _ := newTestSession(t, cfg)
			mustStart(t, s)
			// a roster emptied without going through OnPlayerDied
			s.roster = s.roster[:0]

			defer func() {
				r := recover()
				if (r != nil) != tc.wantPanic {
					t.Fatalf("expected panic=%v, got %v", tc.wantPanic, r)
				}
				if r != nil {
					err, ok := r.(error)
					if !ok || !errors.Is(err, ErrEmptyRoster) {
						t.Fatalf("expected ErrEmptyRoster panic, got %v", r)
					}
				}
			}()
			s.Update(cfg.Boss.Phase1.MaxWait + 0.1)
			s.Update(1.0 / 60)
		})
	}
}

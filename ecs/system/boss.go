package system

import (
	"log/slog"

	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
)

// BossSystem runs the attack loop: count the cooldown down, pick a target,
// choose an attack and hand it to a limb as a maneuver.
type BossSystem struct {
	coord    Coordinator
	query    SpatialQuery
	selector AttackSelector
	rng      common.RNG
	logger   *slog.Logger
	fault    func(error)
}

func NewBossSystem(coord Coordinator, rng common.RNG, logger *slog.Logger) *BossSystem {
	if logger == nil {
		logger = slog.Default()
	}
	s := &BossSystem{
		coord:    coord,
		selector: ThresholdSelector{},
		rng:      rng,
		logger:   logger,
	}
	s.fault = func(err error) {
		s.logger.Error("boss: invariant violated", "err", err)
	}
	return s
}

func (s *BossSystem) SetQuery(query SpatialQuery) {
	s.query = query
}

func (s *BossSystem) SetSelector(selector AttackSelector) {
	if selector == nil {
		selector = ThresholdSelector{}
	}
	s.selector = selector
}

// OnFault replaces how invariant violations (no one left to target) are
// reported.
func (s *BossSystem) OnFault(fn func(error)) {
	if fn != nil {
		s.fault = fn
	}
}

func (s *BossSystem) Update(w *ecs.World, dt float64) {
	if w == nil || s.coord == nil || !s.coord.Running() {
		return
	}

	ecs.ForEach(w, component.BossComponent.Kind(), func(e ecs.Entity, b *component.Boss) {
		if b.Cooldown > 0 {
			b.Cooldown = common.Countdown(b.Cooldown, dt)
			return
		}
		// one maneuver at a time; the next attack waits for the limb
		if ecs.Has(w, e, component.ManeuverComponent.Kind()) {
			return
		}

		target, err := s.coord.PickRandomPlayer()
		if err != nil {
			s.fault(err)
			return
		}
		tt, ok := ecs.Get(w, target, component.TransformComponent.Kind())
		if !ok {
			return
		}

		limbEntity, limb, ok := s.pickLimb(w, b)
		if !ok {
			return
		}

		ctx := AttackContext{Target: tt.Pos(), PlatformLine: b.PlatformLine, Phase: b.Phase}
		var m component.Maneuver
		switch s.selector.SelectAttack(ctx) {
		case component.ManeuverSwipe:
			m = NewSwipe(limbEntity, *limb, ctx.Target, b.EdgeX, b.Timing)
		default:
			m = NewDrop(limbEntity, *limb, ctx.Target, s.floorBelow(ctx.Target, b), b.Timing)
		}
		if err := ecs.Add(w, e, component.ManeuverComponent.Kind(), &m); err != nil {
			s.logger.Error("boss: start maneuver", "err", err)
			return
		}

		b.Cooldown = common.RandRange(s.rng, b.MinWait, b.MaxWait)
		s.logger.Debug("boss attack",
			"kind", m.Kind.String(),
			"limb", limb.Side.String(),
			"target", target.String(),
			"cooldown", b.Cooldown,
		)
	})
}

func (s *BossSystem) pickLimb(w *ecs.World, b *component.Boss) (ecs.Entity, *component.Limb, bool) {
	first, second := ecs.Entity(b.Right), ecs.Entity(b.Left)
	if s.rng != nil && s.rng.IntN(2) == 0 {
		first, second = second, first
	}
	for _, e := range []ecs.Entity{first, second} {
		if l, ok := ecs.Get(w, e, component.LimbComponent.Kind()); ok {
			return e, l, true
		}
	}
	return 0, nil, false
}

// floorBelow finds where a drop lands. Without a hit the configured fallback
// height is used.
func (s *BossSystem) floorBelow(target common.Vec2, b *component.Boss) float64 {
	if s.query != nil {
		if hit, ok := s.query.LineQuery(target, common.V(0, -1), b.DropProbe, component.LayerFloor); ok {
			return hit.Y
		}
	}
	s.logger.Debug("boss: drop probe missed the floor", "x", target.X, "y", target.Y)
	return b.FloorFallbackY
}

package system

import (
	"log/slog"

	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
)

// NewSwipe plans a horizontal sweep at the target's height. The limb enters
// from its own side of the arena and strikes across to the other side.
func NewSwipe(limb ecs.Entity, l component.Limb, target common.Vec2, edgeX float64, timing component.ManeuverTiming) component.Maneuver {
	side := l.Side.Sign()
	return component.Maneuver{
		Kind:   component.ManeuverSwipe,
		Stage:  component.StageApproach,
		Timing: timing,
		Limb:   uint64(limb),
		Rest:   l.Rest,
		Target: target,
		Waypoints: [3]common.Vec2{
			common.V(side*edgeX, target.Y),
			common.V(-side*edgeX, target.Y),
			l.Rest,
		},
	}
}

// NewDrop plans a slam: hover over the target at resting height, fall to
// floorY, then go back.
func NewDrop(limb ecs.Entity, l component.Limb, target common.Vec2, floorY float64, timing component.ManeuverTiming) component.Maneuver {
	return component.Maneuver{
		Kind:   component.ManeuverDrop,
		Stage:  component.StageApproach,
		Timing: timing,
		Limb:   uint64(limb),
		Rest:   l.Rest,
		Target: target,
		Waypoints: [3]common.Vec2{
			common.V(target.X, l.Rest.Y),
			common.V(target.X, floorY),
			l.Rest,
		},
	}
}

func stageDuration(t component.ManeuverTiming, stage component.ManeuverStage) float64 {
	switch stage {
	case component.StageStrike:
		return t.Strike
	case component.StageReturn:
		return t.Return
	default:
		return t.Approach
	}
}

func stageStart(m *component.Maneuver) common.Vec2 {
	if m.Stage == component.StageApproach {
		return m.Rest
	}
	return m.Waypoints[m.Stage-1]
}

// AdvanceManeuver steps m by dt and returns where its limb belongs.
//
// At most one stage completes per call. A completing stage lands exactly on
// its end point and carries the leftover time into the next stage, capped at
// that stage's length. done reports the return stage finished with the limb
// at rest.
func AdvanceManeuver(m *component.Maneuver, dt float64) (pos common.Vec2, done bool) {
	if dt < 0 {
		dt = 0
	}
	m.Elapsed += dt

	d := stageDuration(m.Timing, m.Stage)
	to := m.Waypoints[m.Stage]
	if m.Elapsed < d {
		return common.LerpVec(stageStart(m), to, m.Elapsed/d), false
	}

	if m.Stage == component.StageReturn {
		m.Elapsed = d
		return to, true
	}

	carry := m.Elapsed - d
	m.Stage++
	if next := stageDuration(m.Timing, m.Stage); carry > next {
		carry = next
	}
	m.Elapsed = carry
	return to, false
}

// ManeuverSystem moves limbs along the boss's in-flight maneuver. It runs
// before BossSystem so a maneuver started this tick begins at zero elapsed.
type ManeuverSystem struct {
	logger *slog.Logger
}

func NewManeuverSystem(logger *slog.Logger) *ManeuverSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &ManeuverSystem{logger: logger}
}

func (s *ManeuverSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.BossComponent.Kind(), component.ManeuverComponent.Kind(), func(e ecs.Entity, _ *component.Boss, m *component.Maneuver) {
		limb, ok := ecs.Get(w, ecs.Entity(m.Limb), component.TransformComponent.Kind())
		if !ok {
			ecs.Remove(w, e, component.ManeuverComponent.Kind())
			return
		}

		prev := m.Stage
		pos, done := AdvanceManeuver(m, dt)
		limb.SetPos(pos)

		if done {
			s.logger.Debug("maneuver finished", "boss", e.String(), "kind", m.Kind.String())
			ecs.Remove(w, e, component.ManeuverComponent.Kind())
			return
		}
		if m.Stage != prev {
			s.logger.Debug("maneuver stage", "boss", e.String(), "kind", m.Kind.String(), "stage", m.Stage.String())
		}
	})
}

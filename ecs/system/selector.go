package system

import (
	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/ecs/component"
)

// AttackContext is what an attack choice may depend on.
type AttackContext struct {
	Target       common.Vec2
	PlatformLine float64
	Phase        component.BossPhase
}

type AttackSelector interface {
	SelectAttack(ctx AttackContext) component.ManeuverKind
}

// ThresholdSelector swipes at targets above the platform line and drops on
// targets at or below it.
type ThresholdSelector struct{}

func (ThresholdSelector) SelectAttack(ctx AttackContext) component.ManeuverKind {
	if ctx.Target.Y > ctx.PlatformLine {
		return component.ManeuverSwipe
	}
	return component.ManeuverDrop
}

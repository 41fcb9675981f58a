package system

import (
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
)

// PlayerControllerSystem turns sampled input into movement intent: run speed,
// the variable-height jump and dropping through platforms.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.MovementComponent.Kind(),
		func(e ecs.Entity, p *component.Player, in *component.Input, mv *component.Movement) {
			mv.VelocityX = in.Axis * p.MoveSpeed

			gravity, _ := ecs.Get(w, e, component.GravityScaleComponent.Kind())
			switch {
			case in.JumpDown && !mv.Jumping:
				startJump(p, mv, gravity)
			case in.JumpUp:
				stopJump(p, mv, gravity)
			case mv.JumpForce > 0:
				// holding jump for JumpTime seconds drains the full strength
				if p.JumpTime > 0 {
					mv.JumpForce -= p.JumpStrength / p.JumpTime * dt
				} else {
					mv.JumpForce = 0
				}
				if mv.JumpForce <= 0 {
					mv.JumpForce = 0
					stopJump(p, mv, gravity)
				}
			default:
				stopJump(p, mv, gravity)
			}

			if layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
				if in.CrouchDown {
					layer.Layer = component.LayerPlayerThroughPlatform
				} else if in.CrouchUp {
					layer.Layer = component.LayerPlayer
				}
			}
		})
}

func startJump(p *component.Player, mv *component.Movement, gravity *component.GravityScale) {
	mv.JumpNow = true
	mv.Jumping = true
	mv.JumpForce = p.JumpStrength
	if gravity != nil {
		gravity.Scale = p.JumpingGravity
	}
}

func stopJump(p *component.Player, mv *component.Movement, gravity *component.GravityScale) {
	mv.JumpNow = false
	if gravity != nil {
		gravity.Scale = p.FallingGravity
	}
}

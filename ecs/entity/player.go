package entity

import (
	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
	"github.com/milk9111/bossarena/prefabs"
)

// NewPlayerAt spawns the player for slot id at pos with full health.
func NewPlayerAt(w *ecs.World, id int, spec prefabs.PlayerSpec, pos common.Vec2) (ecs.Entity, error) {
	return buildEntity(w, "player",
		with(component.PlayerComponent.Kind(), component.Player{
			ID:                id,
			MoveSpeed:         spec.MoveSpeed,
			JumpStrength:      spec.JumpStrength,
			JumpTime:          spec.JumpTime,
			JumpingGravity:    spec.JumpingGravity,
			FallingGravity:    spec.FallingGravity,
			SpecialCooldown:   spec.SpecialCooldown,
			InvincibilityTime: spec.InvincibilityTime,
			InteractRadius:    spec.InteractRadius,
		}),
		with(component.TransformComponent.Kind(), component.Transform{X: pos.X, Y: pos.Y}),
		with(component.InputComponent.Kind(), component.Input{}),
		with(component.MovementComponent.Kind(), component.Movement{}),
		with(component.HealthComponent.Kind(), component.Health{Current: spec.MaxHealth, Max: spec.MaxHealth}),
		with(component.InvulnerableComponent.Kind(), component.Invulnerable{}),
		with(component.CooldownComponent.Kind(), component.Cooldown{}),
		with(component.InteractionComponent.Kind(), component.Interaction{}),
		with(component.GravityScaleComponent.Kind(), component.GravityScale{Scale: spec.FallingGravity}),
		with(component.CollisionLayerComponent.Kind(), component.CollisionLayer{Layer: component.LayerPlayer}),
		with(component.PhysicsBodyComponent.Kind(), component.PhysicsBody{
			Kind:   component.BodyDynamic,
			Width:  spec.Width,
			Height: spec.Height,
			Mass:   spec.Mass,
		}),
	)
}

// DestroyPlayer removes a player and the item it carries. It returns how many
// items were destroyed so the caller can give their slots back.
func DestroyPlayer(w *ecs.World, player ecs.Entity) int {
	if !ecs.IsAlive(w, player) {
		return 0
	}
	destroyed := 0
	if in, ok := ecs.Get(w, player, component.InteractionComponent.Kind()); ok && in.Mode == component.InteractionHolding {
		if ecs.DestroyEntity(w, ecs.Entity(in.Item)) {
			destroyed++
		}
	}
	ecs.DestroyEntity(w, player)
	return destroyed
}

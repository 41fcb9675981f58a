package entity

import (
	"fmt"

	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
	"github.com/milk9111/bossarena/prefabs"
)

// NewBoss spawns the boss and its two limbs with phase 1 defaults. The first
// attack waits the full maximum cooldown.
func NewBoss(w *ecs.World, spec prefabs.BossSpec, arena prefabs.ArenaSpec) (ecs.Entity, error) {
	boss, err := buildEntity(w, "boss",
		with(component.TransformComponent.Kind(), component.Transform{X: spec.Position.X, Y: spec.Position.Y}),
		with(component.HealthComponent.Kind(), component.Health{Current: spec.Phase1.MaxHealth, Max: spec.Phase1.MaxHealth}),
		with(component.CollisionLayerComponent.Kind(), component.CollisionLayer{Layer: component.LayerBoss}),
		with(component.PhysicsBodyComponent.Kind(), component.PhysicsBody{
			Kind:   component.BodyKinematic,
			Width:  spec.Width,
			Height: spec.Height,
		}),
	)
	if err != nil {
		return 0, err
	}

	left, err := newLimb(w, boss, component.LimbLeft, spec.Left)
	if err != nil {
		ecs.DestroyEntity(w, boss)
		return 0, err
	}
	right, err := newLimb(w, boss, component.LimbRight, spec.Right)
	if err != nil {
		ecs.DestroyEntity(w, left)
		ecs.DestroyEntity(w, boss)
		return 0, err
	}

	state := &component.Boss{
		Phase:          component.BossPhase1,
		Cooldown:       spec.Phase1.MaxWait,
		MinWait:        spec.Phase1.MinWait,
		MaxWait:        spec.Phase1.MaxWait,
		PlatformLine:   arena.PlatformLine,
		EdgeX:          arena.EdgeX,
		FloorFallbackY: spec.FloorFallbackY,
		DropProbe:      spec.DropProbe,
		Timing: component.ManeuverTiming{
			Approach: spec.Timing.Approach,
			Strike:   spec.Timing.Strike,
			Return:   spec.Timing.Return,
		},
		Left:  uint64(left),
		Right: uint64(right),
	}
	if err := ecs.Add(w, boss, component.BossComponent.Kind(), state); err != nil {
		DestroyBoss(w, boss)
		return 0, fmt.Errorf("build boss: %w", err)
	}
	return boss, nil
}

func newLimb(w *ecs.World, boss ecs.Entity, side component.LimbSide, spec prefabs.LimbSpec) (ecs.Entity, error) {
	rest := common.V(spec.Rest.X, spec.Rest.Y)
	return buildEntity(w, side.String()+" limb",
		with(component.LimbComponent.Kind(), component.Limb{Side: side, Rest: rest, Boss: uint64(boss)}),
		with(component.TransformComponent.Kind(), component.Transform{X: rest.X, Y: rest.Y}),
		with(component.CollisionLayerComponent.Kind(), component.CollisionLayer{Layer: component.LayerLimb}),
		with(component.PhysicsBodyComponent.Kind(), component.PhysicsBody{
			Kind:   component.BodyKinematic,
			Radius: spec.Radius,
		}),
	)
}

// DestroyBoss removes the boss, its limbs and any maneuver in flight.
func DestroyBoss(w *ecs.World, boss ecs.Entity) {
	if b, ok := ecs.Get(w, boss, component.BossComponent.Kind()); ok {
		ecs.DestroyEntity(w, ecs.Entity(b.Left))
		ecs.DestroyEntity(w, ecs.Entity(b.Right))
	} else {
		// limbs of a boss that failed mid-build
		ecs.ForEach(w, component.LimbComponent.Kind(), func(e ecs.Entity, l *component.Limb) {
			if ecs.Entity(l.Boss) == boss {
				ecs.DestroyEntity(w, e)
			}
		})
	}
	ecs.DestroyEntity(w, boss)
}

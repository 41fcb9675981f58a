package entity

import (
	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
	"github.com/milk9111/bossarena/prefabs"
)

// NewItemAt spawns a Free item. The caller owns the ledger slot.
func NewItemAt(w *ecs.World, kind string, spec prefabs.ItemsSpec, pos common.Vec2) (ecs.Entity, error) {
	return buildEntity(w, "item "+kind,
		with(component.ItemComponent.Kind(), component.Item{Kind: kind, State: component.ItemFree}),
		with(component.TransformComponent.Kind(), component.Transform{X: pos.X, Y: pos.Y}),
		with(component.CollisionLayerComponent.Kind(), component.CollisionLayer{Layer: component.LayerItem}),
		with(component.PhysicsBodyComponent.Kind(), component.PhysicsBody{
			Kind:   component.BodyKinematic,
			Radius: spec.Radius,
		}),
	)
}

// NewSpawner creates the spawner entity for one item kind.
func NewSpawner(w *ecs.World, kind string, delay float64) (ecs.Entity, error) {
	return buildEntity(w, "spawner "+kind,
		with(component.SpawnerComponent.Kind(), component.Spawner{Kind: kind, Delay: delay}),
	)
}

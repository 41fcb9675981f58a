package system

import (
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
)

// HeldItemSystem keeps carried items on their holder. It runs after physics
// so items track the position the holder ended the tick at.
type HeldItemSystem struct{}

func NewHeldItemSystem() *HeldItemSystem {
	return &HeldItemSystem{}
}

func (s *HeldItemSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.ItemComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, item *component.Item, t *component.Transform) {
		if item.State != component.ItemHeld {
			return
		}
		holder, ok := ecs.Get(w, ecs.Entity(item.Holder), component.TransformComponent.Kind())
		if !ok {
			// holder vanished without dropping it
			item.State = component.ItemFree
			item.Holder = 0
			if layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
				layer.Layer = component.LayerItem
			}
			return
		}
		t.SetPos(holder.Pos())
	})
}

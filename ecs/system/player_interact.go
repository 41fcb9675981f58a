package system

import (
	"log/slog"

	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
)

// PlayerInteractSystem picks items up and sets them down. An idle player
// grabs the nearest Free or Placed item within reach; a holding player places
// its item where it stands, which arms it against the boss.
type PlayerInteractSystem struct {
	query  SpatialQuery
	logger *slog.Logger
}

func NewPlayerInteractSystem(query SpatialQuery, logger *slog.Logger) *PlayerInteractSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlayerInteractSystem{query: query, logger: logger}
}

func (s *PlayerInteractSystem) SetQuery(query SpatialQuery) {
	s.query = query
}

func (s *PlayerInteractSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}

	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.InteractionComponent.Kind(),
		func(e ecs.Entity, p *component.Player, in *component.Input, inter *component.Interaction) {
			if !in.InteractDown {
				return
			}
			switch inter.Mode {
			case component.InteractionHolding:
				s.place(w, e, p, inter)
			default:
				s.pickUp(w, e, p, inter)
			}
		})
}

func (s *PlayerInteractSystem) pickUp(w *ecs.World, e ecs.Entity, p *component.Player, inter *component.Interaction) {
	if s.query == nil {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}

	found, ok := s.query.RadiusQuery(t.Pos(), p.InteractRadius, component.LayerItem)
	if !ok {
		return
	}
	item, ok := ecs.Get(w, found, component.ItemComponent.Kind())
	if !ok || item.State == component.ItemHeld {
		return
	}

	item.State = component.ItemHeld
	item.Holder = uint64(e)
	if layer, ok := ecs.Get(w, found, component.CollisionLayerComponent.Kind()); ok {
		layer.Layer = component.LayerHeldItem
	}
	if it, ok := ecs.Get(w, found, component.TransformComponent.Kind()); ok {
		it.SetPos(t.Pos())
	}
	inter.Mode = component.InteractionHolding
	inter.Item = uint64(found)
	s.logger.Debug("item picked up", "player", p.ID, "item", found.String(), "kind", item.Kind)
}

func (s *PlayerInteractSystem) place(w *ecs.World, e ecs.Entity, p *component.Player, inter *component.Interaction) {
	held := ecs.Entity(inter.Item)
	inter.Mode = component.InteractionIdle
	inter.Item = 0

	item, ok := ecs.Get(w, held, component.ItemComponent.Kind())
	if !ok {
		return
	}
	item.State = component.ItemPlaced
	item.Holder = 0
	if layer, ok := ecs.Get(w, held, component.CollisionLayerComponent.Kind()); ok {
		layer.Layer = component.LayerItem
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		if it, ok := ecs.Get(w, held, component.TransformComponent.Kind()); ok {
			it.SetPos(t.Pos())
		}
	}
	s.logger.Debug("item placed", "player", p.ID, "item", held.String())
}

package system

import (
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
)

// InputSystem samples each player's control source into its Input component.
// Players without a source get neutral input.
type InputSystem struct {
	sources map[int]ControlSource
}

func NewInputSystem(sources map[int]ControlSource) *InputSystem {
	s := &InputSystem{sources: make(map[int]ControlSource, len(sources))}
	for id, src := range sources {
		s.SetSource(id, src)
	}
	return s
}

func (s *InputSystem) SetSource(id int, src ControlSource) {
	if src == nil {
		delete(s.sources, id)
		return
	}
	s.sources[id] = src
}

func (s *InputSystem) Source(id int) (ControlSource, bool) {
	src, ok := s.sources[id]
	return src, ok
}

func (s *InputSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, p *component.Player, in *component.Input) {
		src, ok := s.sources[p.ID]
		if !ok {
			*in = component.Input{}
			return
		}
		*in = component.Input{
			Axis:         src.AxisValue(ControlName(ControlHorizontal, p.ID)),
			JumpDown:     src.EdgeDown(ControlName(ControlJump, p.ID)),
			JumpUp:       src.EdgeUp(ControlName(ControlJump, p.ID)),
			CrouchDown:   src.EdgeDown(ControlName(ControlDown, p.ID)),
			CrouchUp:     src.EdgeUp(ControlName(ControlDown, p.ID)),
			InteractDown: src.EdgeDown(ControlName(ControlInteract, p.ID)),
			SpecialDown:  src.EdgeDown(ControlName(ControlSpecial, p.ID)),
		}
	})
}

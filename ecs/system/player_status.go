package system

import (
	"log/slog"

	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
)

// SpecialSystem fires a player's special when it is pressed with the
// cooldown spent, then restarts the cooldown.
type SpecialSystem struct {
	special SpecialFunc
}

func NewSpecialSystem(special SpecialFunc) *SpecialSystem {
	return &SpecialSystem{special: special}
}

// LogSpecial is the default special: it only records that it fired.
func LogSpecial(logger *slog.Logger) SpecialFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(w *ecs.World, player ecs.Entity) {
		id := 0
		if p, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok {
			id = p.ID
		}
		logger.Info("special used", "player", id)
	}
}

func (s *SpecialSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.CooldownComponent.Kind(),
		func(e ecs.Entity, p *component.Player, in *component.Input, cd *component.Cooldown) {
			if in.SpecialDown && cd.Ready() {
				cd.Arm(p.SpecialCooldown)
				if s.special != nil {
					s.special(w, e)
				}
				return
			}
			cd.Tick(dt)
		})
}

// InvulnerabilitySystem drains invincibility windows.
type InvulnerabilitySystem struct{}

func NewInvulnerabilitySystem() *InvulnerabilitySystem {
	return &InvulnerabilitySystem{}
}

func (s *InvulnerabilitySystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.InvulnerableComponent.Kind(), func(_ ecs.Entity, inv *component.Invulnerable) {
		inv.Tick(dt)
	})
}

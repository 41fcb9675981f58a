package system

import (
	"log/slog"

	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
	"github.com/milk9111/bossarena/ecs/entity"
)

// Contacts applies the gameplay consequences of physical contacts. Handlers
// run synchronously and may destroy entities; every handler re-checks that
// the entities it touches are still alive.
type Contacts struct {
	world  *ecs.World
	coord  Coordinator
	ledger *Ledger
	logger *slog.Logger
}

var _ ContactHandler = (*Contacts)(nil)

func NewContacts(w *ecs.World, coord Coordinator, ledger *Ledger, logger *slog.Logger) *Contacts {
	if logger == nil {
		logger = slog.Default()
	}
	return &Contacts{world: w, coord: coord, ledger: ledger, logger: logger}
}

func (c *Contacts) Land(player ecs.Entity) {
	if mv, ok := ecs.Get(c.world, player, component.MovementComponent.Kind()); ok {
		mv.Jumping = false
	}
}

func (c *Contacts) HitPlayer(player ecs.Entity) {
	p, ok := ecs.Get(c.world, player, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	h, ok := ecs.Get(c.world, player, component.HealthComponent.Kind())
	if !ok || h.Current <= 0 {
		return
	}
	inv, ok := ecs.Get(c.world, player, component.InvulnerableComponent.Kind())
	if ok {
		if !inv.Ready() {
			return
		}
		inv.Arm(p.InvincibilityTime)
	}

	h.Current--
	id := p.ID
	c.logger.Debug("player hit", "player", id, "health", h.Current)
	if h.Current > 0 {
		return
	}

	if c.coord != nil {
		c.coord.PlayerDied(id)
	}
	// the coordinator may already have torn the player down
	c.ledger.Release(entity.DestroyPlayer(c.world, player))
}

func (c *Contacts) HazardContact(item, boss ecs.Entity) {
	it, ok := ecs.Get(c.world, item, component.ItemComponent.Kind())
	if !ok || it.State != component.ItemPlaced {
		return
	}
	boss = c.bossOf(boss)
	if !ecs.Has(c.world, boss, component.BossComponent.Kind()) {
		return
	}
	h, ok := ecs.Get(c.world, boss, component.HealthComponent.Kind())
	if !ok || h.Current <= 0 {
		return
	}

	if ecs.DestroyEntity(c.world, item) {
		c.ledger.Release(1)
	}
	h.Current--
	c.logger.Info("boss hit", "item", it.Kind, "health", h.Current)
	if h.Current > 0 {
		return
	}

	if c.coord != nil {
		c.coord.BossDefeated()
	}
	entity.DestroyBoss(c.world, boss)
}

// bossOf resolves a limb to the boss that owns it.
func (c *Contacts) bossOf(e ecs.Entity) ecs.Entity {
	if l, ok := ecs.Get(c.world, e, component.LimbComponent.Kind()); ok {
		return ecs.Entity(l.Boss)
	}
	return e
}

package system

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
	"github.com/milk9111/bossarena/ecs/entity"
	"github.com/milk9111/bossarena/prefabs"
)

var errNoTarget = errors.New("no target")

// fakeCoordinator records the calls systems make back into the session.
type fakeCoordinator struct {
	running  bool
	targets  []ecs.Entity
	died     []int
	defeated int
}

func (c *fakeCoordinator) Running() bool { return c.running }

func (c *fakeCoordinator) PickRandomPlayer() (ecs.Entity, error) {
	if len(c.targets) == 0 {
		return 0, errNoTarget
	}
	return c.targets[0], nil
}

func (c *fakeCoordinator) PlayerDied(id int) { c.died = append(c.died, id) }

func (c *fakeCoordinator) BossDefeated() { c.defeated++ }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadConfig(t *testing.T) prefabs.Config {
	t.Helper()
	cfg, err := prefabs.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	return cfg
}

func mustPlayer(t *testing.T, w *ecs.World, cfg prefabs.Config, id int, pos common.Vec2) ecs.Entity {
	t.Helper()
	e, err := entity.NewPlayerAt(w, id, cfg.Player, pos)
	if err != nil {
		t.Fatalf("NewPlayerAt: %v", err)
	}
	return e
}

func mustBoss(t *testing.T, w *ecs.World, cfg prefabs.Config) ecs.Entity {
	t.Helper()
	e, err := entity.NewBoss(w, cfg.Boss, cfg.Arena)
	if err != nil {
		t.Fatalf("NewBoss: %v", err)
	}
	return e
}

func mustItem(t *testing.T, w *ecs.World, cfg prefabs.Config, state component.ItemState) ecs.Entity {
	t.Helper()
	e, err := entity.NewItemAt(w, "pin", cfg.Items, common.V(0, 0))
	if err != nil {
		t.Fatalf("NewItemAt: %v", err)
	}
	it, _ := ecs.Get(w, e, component.ItemComponent.Kind())
	it.State = state
	return e
}

// The property tests run under *rapid.T, so these return errors instead of
// failing a *testing.T.

func newBossForProperty(w *ecs.World, cfg prefabs.Config) (ecs.Entity, error) {
	return entity.NewBoss(w, cfg.Boss, cfg.Arena)
}

func newPlayerForProperty(w *ecs.World, cfg prefabs.Config) (ecs.Entity, error) {
	return entity.NewPlayerAt(w, 1, cfg.Player, common.V(0, 0))
}

func newItemForProperty(w *ecs.World, cfg prefabs.Config, state component.ItemState) (ecs.Entity, error) {
	e, err := entity.NewItemAt(w, "pin", cfg.Items, common.V(0, 0))
	if err != nil {
		return 0, err
	}
	it, _ := ecs.Get(w, e, component.ItemComponent.Kind())
	it.State = state
	return e, nil
}

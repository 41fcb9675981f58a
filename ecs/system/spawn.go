package system

import (
	"log/slog"

	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
	"github.com/milk9111/bossarena/ecs/entity"
	"github.com/milk9111/bossarena/prefabs"
)

// SpawnSystem drives the item spawners. Each spawner waits out its delay
// while the session runs and the ledger has room, then drops one Free item
// at a random spawn point. Losing either condition resets the wait.
type SpawnSystem struct {
	coord  Coordinator
	ledger *Ledger
	items  prefabs.ItemsSpec
	points []common.Vec2
	rng    common.RNG
	logger *slog.Logger
}

func NewSpawnSystem(coord Coordinator, ledger *Ledger, items prefabs.ItemsSpec, points []common.Vec2, rng common.RNG, logger *slog.Logger) *SpawnSystem {
	if logger == nil {
		logger = slog.Default()
	}
	s := &SpawnSystem{coord: coord, ledger: ledger, rng: rng, logger: logger}
	s.Configure(items, points)
	return s
}

// Configure swaps item tuning and spawn points, e.g. after a config reload.
func (s *SpawnSystem) Configure(items prefabs.ItemsSpec, points []common.Vec2) {
	s.items = items
	s.points = append([]common.Vec2(nil), points...)
}

func (s *SpawnSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	running := s.coord != nil && s.coord.Running()
	ecs.ForEach(w, component.SpawnerComponent.Kind(), func(_ ecs.Entity, sp *component.Spawner) {
		if !running || s.ledger.Full() {
			sp.Waiting = false
			sp.Elapsed = 0
			return
		}

		sp.Waiting = true
		sp.Elapsed += dt
		if sp.Elapsed < sp.Delay {
			return
		}
		sp.Waiting = false
		sp.Elapsed = 0

		// another spawner may have taken the last slot this tick
		if !s.ledger.TryReserve() {
			return
		}
		s.spawn(w, sp.Kind)
	})
}

func (s *SpawnSystem) spawn(w *ecs.World, kind string) {
	if len(s.points) == 0 {
		s.ledger.Release(1)
		return
	}
	idx := 0
	if s.rng != nil {
		idx = s.rng.IntN(len(s.points))
	}
	pos := s.points[idx]

	e, err := entity.NewItemAt(w, kind, s.items, pos)
	if err != nil {
		s.ledger.Release(1)
		s.logger.Error("spawn item", "kind", kind, "err", err)
		return
	}
	s.logger.Debug("item spawned", "kind", kind, "item", e.String(), "live", s.ledger.Live(), "cap", s.ledger.Cap())
}

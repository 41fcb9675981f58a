package system

import (
	"testing"

	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
	"github.com/milk9111/bossarena/ecs/entity"
	"pgregory.net/rapid"
)

func newSpawnFixture(t *testing.T, cap, spawners int) (*ecs.World, *SpawnSystem, *fakeCoordinator, *Ledger) {
	t.Helper()
	cfg := loadConfig(t)
	w := ecs.NewWorld()
	coord := &fakeCoordinator{running: true}
	ledger := NewLedger(cap)
	points := []common.Vec2{common.V(-1, 0), common.V(1, 0)}
	for i := 0; i < spawners; i++ {
		if _, err := entity.NewSpawner(w, "pin", 1.5); err != nil {
			t.Fatal(err)
		}
	}
	s := NewSpawnSystem(coord, ledger, cfg.Items, points, common.NewRNG(7), quietLogger())
	return w, s, coord, ledger
}

func itemCount(w *ecs.World) int {
	return ecs.Count(w, component.ItemComponent.Kind())
}

func TestSpawnSystemDelay(t *testing.T) {
	cases := []struct {
		name      string
		running   bool
		cap       int
		ticks     int
		dt        float64
		wantItems int
	}{
		{"spawns_after_delay", true, 2, 4, 0.5, 1},
		{"not_yet", true, 2, 2, 0.5, 0},
		{"idle_session_never_spawns", false, 2, 10, 0.5, 0},
		{"full_ledger_never_spawns", true, 0, 10, 0.5, 0},
		{"respects_cap_over_time", true, 2, 40, 0.5, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, s, coord, _ := newSpawnFixture(t, tc.cap, 1)
			coord.running = tc.running
			for i := 0; i < tc.ticks; i++ {
				s.Update(w, tc.dt)
			}
			if got := itemCount(w); got != tc.wantItems {
				t.Fatalf("items = %d, want %d", got, tc.wantItems)
			}
		})
	}
}

func TestSpawnSystemResetsWhenGateCloses(t *testing.T) {
	w, s, coord, _ := newSpawnFixture(t, 2, 1)

	s.Update(w, 1.0)
	coord.running = false
	s.Update(w, 0.1)
	coord.running = true
	s.Update(w, 1.0)

	if got := itemCount(w); got != 0 {
		t.Fatalf("a closed gate must restart the wait, got %d items", got)
	}
	s.Update(w, 0.5)
	if got := itemCount(w); got != 1 {
		t.Fatalf("expected one item after a full uninterrupted delay, got %d", got)
	}
}

func TestSpawnersFinishingTogetherRespectCap(t *testing.T) {
	w, s, _, ledger := newSpawnFixture(t, 1, 3)
	s.Update(w, 1.5)
	if got := itemCount(w); got != 1 || ledger.Live() != 1 {
		t.Fatalf("expected exactly one item under cap 1, got %d items, ledger %d", got, ledger.Live())
	}
}

// Live items never exceed the cap at a tick boundary, whatever mix of
// spawning, consuming and session toggling happens.
func TestSpawnCapProperty(t *testing.T) {
	cfg := loadConfig(t)

	rapid.Check(t, func(rt *rapid.T) {
		cap := rapid.IntRange(0, 4).Draw(rt, "cap")
		spawners := rapid.IntRange(1, 4).Draw(rt, "spawners")
		steps := rapid.IntRange(1, 200).Draw(rt, "steps")

		w := ecs.NewWorld()
		coord := &fakeCoordinator{running: true}
		ledger := NewLedger(cap)
		for i := 0; i < spawners; i++ {
			if _, err := entity.NewSpawner(w, "pin", 1.5); err != nil {
				rt.Fatal(err)
			}
		}
		s := NewSpawnSystem(coord, ledger, cfg.Items, []common.Vec2{common.V(0, 0)}, common.NewRNG(1), quietLogger())

		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 9).Draw(rt, "op") {
			case 0:
				coord.running = !coord.running
			case 1, 2:
				// consume one live item the way a hazard contact does
				if e, ok := ecs.First(w, component.ItemComponent.Kind()); ok && ecs.DestroyEntity(w, e) {
					ledger.Release(1)
				}
			}
			s.Update(w, rapid.Float64Range(0, 2).Draw(rt, "dt"))

			if ledger.Live() > ledger.Cap() {
				rt.Fatalf("ledger live %d exceeds cap %d", ledger.Live(), ledger.Cap())
			}
			if n := itemCount(w); n != ledger.Live() || n > cap {
				rt.Fatalf("items %d, ledger %d, cap %d", n, ledger.Live(), cap)
			}
		}
	})
}

package system

import (
	"strconv"

	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
)

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . SpatialQuery,ControlSource,Coordinator

// SpatialQuery answers geometric questions about the arena.
type SpatialQuery interface {
	// LineQuery casts from origin along dir and reports the first hit on layer
	// within maxDistance.
	LineQuery(origin, dir common.Vec2, maxDistance float64, layer component.Layer) (common.Vec2, bool)
	// RadiusQuery reports the entity on layer closest to center within radius.
	RadiusQuery(center common.Vec2, radius float64, layer component.Layer) (ecs.Entity, bool)
}

// ControlSource is the per-slot control state for the current tick. Control
// names carry the slot id, see ControlName.
type ControlSource interface {
	AxisValue(name string) float64
	EdgeDown(name string) bool
	EdgeUp(name string) bool
}

const (
	ControlHorizontal = "Horizontal"
	ControlJump       = "Jump"
	ControlDown       = "Down"
	ControlInteract   = "Interact"
	ControlSpecial    = "Special"
)

// ControlName returns the control name for a player slot, e.g. "Jump2".
func ControlName(control string, id int) string {
	return control + strconv.Itoa(id)
}

// Coordinator is the session as seen by systems.
type Coordinator interface {
	Running() bool
	PickRandomPlayer() (ecs.Entity, error)
	PlayerDied(id int)
	BossDefeated()
}

// ContactHandler receives the physical contacts the core reacts to.
type ContactHandler interface {
	// Land reports a player touching a platform from above.
	Land(player ecs.Entity)
	// HitPlayer reports the boss or a limb touching a player.
	HitPlayer(player ecs.Entity)
	// HazardContact reports an item touching the boss or one of its limbs.
	HazardContact(item, boss ecs.Entity)
}

// SpecialFunc is the payload of a player's special ability.
type SpecialFunc func(w *ecs.World, player ecs.Entity)

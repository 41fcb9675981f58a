package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// RectSpec is an axis-aligned box centered on X, Y.
type RectSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Top is the y of the upper face.
func (r RectSpec) Top() float64 {
	return r.Y + r.Height/2
}

type ArenaSpec struct {
	Name    string  `yaml:"name"`
	Gravity float64 `yaml:"gravity"`
	// EdgeX is the horizontal extent a swipe starts and ends at (±EdgeX).
	EdgeX float64 `yaml:"edge_x"`
	// PlatformLine splits targets on platforms (above) from targets on the floor.
	PlatformLine float64    `yaml:"platform_line"`
	Floor        RectSpec   `yaml:"floor"`
	Platforms    []RectSpec `yaml:"platforms"`
	// Walls are solid boxes that keep players from running off the floor.
	Walls        []RectSpec  `yaml:"walls"`
	PlayerSpawns []PointSpec `yaml:"player_spawns"`
	ItemSpawns   []PointSpec `yaml:"item_spawns"`
}

func LoadArenaSpec() (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec]("arena.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PlayerSpec struct {
	MaxHealth         int     `yaml:"max_health"`
	MoveSpeed         float64 `yaml:"move_speed"`
	JumpStrength      float64 `yaml:"jump_strength"`
	JumpTime          float64 `yaml:"jump_time"`
	JumpingGravity    float64 `yaml:"jumping_gravity"`
	FallingGravity    float64 `yaml:"falling_gravity"`
	SpecialCooldown   float64 `yaml:"special_cooldown"`
	InvincibilityTime float64 `yaml:"invincibility_time"`
	InteractRadius    float64 `yaml:"interact_radius"`
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	Mass              float64 `yaml:"mass"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type BossPhaseSpec struct {
	MaxHealth int     `yaml:"max_health"`
	MinWait   float64 `yaml:"min_wait"`
	MaxWait   float64 `yaml:"max_wait"`
	// AttackScript names a tengo script under scripts/. Empty selects by
	// the platform line alone.
	AttackScript string `yaml:"attack_script"`
}

type ManeuverTimingSpec struct {
	Approach float64 `yaml:"approach"`
	Strike   float64 `yaml:"strike"`
	Return   float64 `yaml:"return"`
}

type LimbSpec struct {
	Rest   PointSpec `yaml:"rest"`
	Radius float64   `yaml:"radius"`
}

type BossSpec struct {
	Name     string             `yaml:"name"`
	Position PointSpec          `yaml:"position"`
	Width    float64            `yaml:"width"`
	Height   float64            `yaml:"height"`
	Phase1   BossPhaseSpec      `yaml:"phase1"`
	Timing   ManeuverTimingSpec `yaml:"timing"`
	Left     LimbSpec           `yaml:"left"`
	Right    LimbSpec           `yaml:"right"`
	// DropProbe is how far below the target the drop looks for the floor.
	DropProbe      float64 `yaml:"drop_probe"`
	FloorFallbackY float64 `yaml:"floor_fallback_y"`
}

func LoadBossSpec() (*BossSpec, error) {
	spec, err := LoadSpec[BossSpec]("boss.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ItemsSpec struct {
	Cap        int      `yaml:"cap"`
	SpawnDelay float64  `yaml:"spawn_delay"`
	Radius     float64  `yaml:"radius"`
	Kinds      []string `yaml:"kinds"`
}

func LoadItemsSpec() (*ItemsSpec, error) {
	spec, err := LoadSpec[ItemsSpec]("items.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type StartPolicy string

const (
	// StartAny starts on the first interact edge from any expected slot.
	StartAny StartPolicy = "any"
	// StartAll waits until every slot has pressed interact.
	StartAll StartPolicy = "all"
)

type SessionSpec struct {
	Players     int         `yaml:"players"`
	StartPolicy StartPolicy `yaml:"start_policy"`
	// Debug turns invariant violations into panics.
	Debug bool `yaml:"debug"`
}

func LoadSessionSpec() (*SessionSpec, error) {
	spec, err := LoadSpec[SessionSpec]("session.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

package component

type BossPhase int

const (
	BossPhase1 BossPhase = iota + 1
)

func (p BossPhase) String() string {
	if p == BossPhase1 {
		return "phase1"
	}
	return "unknown"
}

// ManeuverTiming is the duration in seconds of each maneuver stage.
type ManeuverTiming struct {
	Approach float64
	Strike   float64
	Return   float64
}

// Boss stores phase, attack cooldown and arena geometry the maneuvers need.
// Left and Right are the limb entity handles.
type Boss struct {
	Phase    BossPhase
	Cooldown float64
	MinWait  float64
	MaxWait  float64

	PlatformLine   float64
	EdgeX          float64
	FloorFallbackY float64
	DropProbe      float64
	Timing         ManeuverTiming

	Left  uint64
	Right uint64
}

var BossComponent = NewComponent[Boss]()

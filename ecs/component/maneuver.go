package component

import "github.com/milk9111/bossarena/common"

type ManeuverKind int

const (
	ManeuverNone ManeuverKind = iota
	ManeuverSwipe
	ManeuverDrop
)

func (k ManeuverKind) String() string {
	switch k {
	case ManeuverSwipe:
		return "swipe"
	case ManeuverDrop:
		return "drop"
	default:
		return "none"
	}
}

type ManeuverStage int

const (
	StageApproach ManeuverStage = iota
	StageStrike
	StageReturn
)

func (s ManeuverStage) String() string {
	switch s {
	case StageStrike:
		return "strike"
	case StageReturn:
		return "return"
	default:
		return "approach"
	}
}

// Maneuver is the in-flight attack of a boss. It lives on the boss entity so
// destroying the boss cancels it.
//
// Waypoints holds the end position of each stage; the start of a stage is
// the end of the previous one (Rest for the approach).
type Maneuver struct {
	Kind    ManeuverKind
	Stage   ManeuverStage
	Elapsed float64
	Timing  ManeuverTiming

	Limb      uint64
	Rest      common.Vec2
	Target    common.Vec2
	Waypoints [3]common.Vec2
}

var ManeuverComponent = NewComponent[Maneuver]()

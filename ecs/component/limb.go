package component

import "github.com/milk9111/bossarena/common"

type LimbSide int

const (
	LimbLeft LimbSide = iota
	LimbRight
)

func (s LimbSide) String() string {
	if s == LimbRight {
		return "right"
	}
	return "left"
}

// Sign is -1 for the left limb and +1 for the right.
func (s LimbSide) Sign() float64 {
	if s == LimbRight {
		return 1
	}
	return -1
}

// Limb is one of the boss's hands. Rest is where it idles between maneuvers.
type Limb struct {
	Side LimbSide
	Rest common.Vec2
	Boss uint64
}

var LimbComponent = NewComponent[Limb]()

package component

type InteractionMode int

const (
	InteractionIdle InteractionMode = iota
	InteractionHolding
)

func (m InteractionMode) String() string {
	if m == InteractionHolding {
		return "holding"
	}
	return "idle"
}

// Interaction tracks what a player is carrying. Item is an entity handle and
// is only meaningful while Mode is InteractionHolding.
type Interaction struct {
	Mode InteractionMode
	Item uint64
}

var InteractionComponent = NewComponent[Interaction]()

package component

type ItemState int

const (
	ItemFree ItemState = iota
	ItemHeld
	ItemPlaced
)

func (s ItemState) String() string {
	switch s {
	case ItemHeld:
		return "held"
	case ItemPlaced:
		return "placed"
	default:
		return "free"
	}
}

// Item is a spawned pickup. A Placed item is a hazard to the boss. Holder is
// the carrying player's entity handle while Held.
type Item struct {
	Kind   string
	State  ItemState
	Holder uint64
}

var ItemComponent = NewComponent[Item]()

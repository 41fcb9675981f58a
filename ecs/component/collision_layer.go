package component

import "strings"

// Layer is a collision category bit. The physics adapter turns it into a
// shape filter; spatial queries take it as the layer to search.
type Layer uint32

const (
	LayerPlayer Layer = 1 << iota
	// LayerPlayerThroughPlatform is a crouching player: it still stands on
	// the floor but drops through one-way platforms.
	LayerPlayerThroughPlatform
	LayerPlatform
	LayerFloor
	LayerItem
	// LayerHeldItem is an item being carried; interact queries skip it.
	LayerHeldItem
	LayerBoss
	LayerLimb
)

var layerNames = []struct {
	layer Layer
	name  string
}{
	{LayerPlayer, "player"},
	{LayerPlayerThroughPlatform, "player_through_platform"},
	{LayerPlatform, "platform"},
	{LayerFloor, "floor"},
	{LayerItem, "item"},
	{LayerHeldItem, "held_item"},
	{LayerBoss, "boss"},
	{LayerLimb, "limb"},
}

func (l Layer) String() string {
	if l == 0 {
		return "none"
	}
	var parts []string
	for _, n := range layerNames {
		if l&n.layer != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "|")
}

// Mask returns the categories a body on this layer physically collides with.
func (l Layer) Mask() Layer {
	switch l {
	case LayerPlayer:
		return LayerPlatform | LayerFloor
	case LayerPlayerThroughPlatform:
		return LayerFloor
	default:
		return 0
	}
}

// CollisionLayer assigns an entity's collision category.
type CollisionLayer struct {
	Layer Layer
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()

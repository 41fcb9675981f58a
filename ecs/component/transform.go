package component

import "github.com/milk9111/bossarena/common"

// Transform is the world position of an entity. Y grows upward.
type Transform struct {
	X float64
	Y float64
}

func (t Transform) Pos() common.Vec2 {
	return common.Vec2{X: t.X, Y: t.Y}
}

func (t *Transform) SetPos(p common.Vec2) {
	t.X = p.X
	t.Y = p.Y
}

var TransformComponent = NewComponent[Transform]()

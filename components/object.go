package components

import (
	"github.com/automoto/runngun/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData owns an entity's position and size. Boxes are always computed
// from it so they cannot go stale.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()

func (o *ObjectData) Position() gamemath.Point {
	return gamemath.Point{X: o.X, Y: o.Y}
}

func (o *ObjectData) CollisionBox() gamemath.Rect {
	return gamemath.NewRect(o.X, o.Y, o.W, o.H)
}

func (o *ObjectData) Center() gamemath.Point {
	return gamemath.Point{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

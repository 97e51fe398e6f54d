package components

import (
	"github.com/automoto/runngun/shared/gamemath"
	"github.com/yohamta/donburi"
)

// HitboxData narrows the area that can hit or be hit, relative to the
// object's origin. Entities without it are hit on their collision box.
type HitboxData struct {
	OffsetX, OffsetY float64
	Width, Height    float64
}

var Hitbox = donburi.NewComponentType[HitboxData]()

// HitBox returns the lethal area of e. Dead entities have an empty box at
// their position.
func HitBox(e *donburi.Entry) gamemath.Rect {
	obj := Object.Get(e)
	if e.HasComponent(Entity) && Entity.Get(e).Dead {
		return gamemath.NewRect(obj.X, obj.Y, 0, 0)
	}
	if e.HasComponent(Hitbox) {
		hb := Hitbox.Get(e)
		return gamemath.NewRect(obj.X+hb.OffsetX, obj.Y+hb.OffsetY, hb.Width, hb.Height)
	}
	return obj.CollisionBox()
}

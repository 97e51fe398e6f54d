package collision

import (
	"fmt"

	"github.com/automoto/runngun/shared/gamemath"
)

// Kind selects how a surface reacts to contact.
type Kind int

const (
	// KindPlatform can only be landed on from above and is ignored while the
	// body is jumping.
	KindPlatform Kind = iota
	// KindBox is solid from every side unless it is a step.
	KindBox
	// KindBridge behaves like a platform until it collapses.
	KindBridge
)

func (k Kind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindBox:
		return "box"
	case KindBridge:
		return "bridge"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Surface is the collision view of a platform.
type Surface struct {
	Box    gamemath.Rect
	Kind   Kind
	IsStep bool // only meaningful for KindBox
}

// Body is the movement contract a character exposes to the collision pass.
type Body interface {
	CollisionBox() gamemath.Rect
	PrevPoint() gamemath.Point
	SetX(x float64)
	SetY(y float64)
	// Stay rests the body on a surface whose top edge is at y.
	Stay(y float64)
	IsJumpState() bool
}

// Apply resolves body against one surface and applies the response.
func Apply(body Body, s Surface) Result {
	if body.IsJumpState() && s.Kind != KindBox {
		return Result{}
	}

	res := Resolve(body.CollisionBox(), body.PrevPoint(), s.Box)
	switch {
	case res.Vertical:
		body.SetY(body.PrevPoint().Y)
		body.Stay(s.Box.Y)
	case res.Horizontal && s.Kind == KindBox:
		if s.IsStep {
			body.Stay(s.Box.Y)
		} else {
			body.SetX(body.PrevPoint().X)
		}
	}
	return res
}

// SurfaceObserver is implemented by bodies that need to know which surface
// ApplyAll is about to resolve them against.
type SurfaceObserver interface {
	Resolving(index int)
}

// ApplyAll runs Apply against every surface in order and returns how many
// surfaces produced a contact.
func ApplyAll(body Body, surfaces []Surface) int {
	observer, _ := body.(SurfaceObserver)
	hits := 0
	for i, s := range surfaces {
		if observer != nil {
			observer.Resolving(i)
		}
		if !Apply(body, s).None() {
			hits++
		}
	}
	return hits
}

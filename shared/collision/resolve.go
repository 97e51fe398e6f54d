// Package collision classifies and applies AABB contacts between a moving body
// and static surfaces. Pure data only, like gamemath.
package collision

import "github.com/automoto/runngun/shared/gamemath"

// Result of testing one moving box against one surface. At most one field is
// set.
type Result struct {
	Vertical   bool
	Horizontal bool
}

// None reports whether the boxes did not touch.
func (r Result) None() bool { return !r.Vertical && !r.Horizontal }

// Resolve classifies an overlap between moving and target. The moving box is
// re-tested at the previous Y: if that clears the overlap the penetration came
// from vertical motion, otherwise it is horizontal. Vertical always wins, so a
// fast diagonal move into a corner can read as a landing.
func Resolve(moving gamemath.Rect, prev gamemath.Point, target gamemath.Rect) Result {
	if !gamemath.Overlaps(moving, target) {
		return Result{}
	}
	moving.Y = prev.Y
	if !gamemath.Overlaps(moving, target) {
		return Result{Vertical: true}
	}
	return Result{Horizontal: true}
}

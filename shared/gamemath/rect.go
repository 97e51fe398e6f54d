// Package gamemath provides pure geometry and motion math shared by the
// simulation and its tools. It has no dependencies on ebitengine, donburi, or
// resolv.
package gamemath

import "fmt"

// Point is a position in world coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in world coordinates. Its origin is the
// top-left corner; Y grows downward.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect builds a rectangle, panicking on a negative size. Zero is a valid
// size.
func NewRect(x, y, w, h float64) Rect {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("gamemath: negative rect size %vx%v", w, h))
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

func (r Rect) Right() float64 { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Overlaps reports whether a and b share interior area. Edges that only touch
// do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

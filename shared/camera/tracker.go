// Package camera computes the world offset that keeps a target near a screen
// anchor. Offsets follow the render convention: a world point p is drawn at
// p + offset, so scrolling right makes OffsetX more negative.
package camera

import (
	"math"

	"github.com/automoto/runngun/shared/gamemath"
)

// Config describes the screen, the world and the scroll rules.
type Config struct {
	ScreenWidth, ScreenHeight float64
	WorldWidth, WorldHeight   float64

	// AnchorX and AnchorY are the screen coordinates the target is held at.
	// Use CenterAnchor for the screen center.
	AnchorX, AnchorY float64

	// BackScrollX lets the camera move left again after it has advanced.
	BackScrollX bool

	// ScrollY enables vertical tracking. When off the view stays framed at
	// the top of the world.
	ScrollY bool
}

// Tracker holds the camera state between ticks.
type Tracker struct {
	cfg Config

	OffsetX, OffsetY float64
}

func NewTracker(cfg Config) *Tracker {
	return &Tracker{cfg: cfg}
}

// CenterAnchor sets both anchors to the middle of the screen.
func (c Config) CenterAnchor() Config {
	c.AnchorX, c.AnchorY = c.ScreenWidth/2, c.ScreenHeight/2
	return c
}

// Update moves the offset toward the target and clamps it to the world.
func (t *Tracker) Update(target gamemath.Point) {
	x := clampOffset(t.cfg.AnchorX-target.X, t.cfg.ScreenWidth, t.cfg.WorldWidth)
	if t.cfg.BackScrollX || x < t.OffsetX {
		t.OffsetX = x
	}

	if t.cfg.ScrollY {
		t.OffsetY = clampOffset(t.cfg.AnchorY-target.Y, t.cfg.ScreenHeight, t.cfg.WorldHeight)
	}
}

// SnapTo places the camera on the target without the one-way rule.
func (t *Tracker) SnapTo(target gamemath.Point) {
	t.OffsetX = clampOffset(t.cfg.AnchorX-target.X, t.cfg.ScreenWidth, t.cfg.WorldWidth)
	if t.cfg.ScrollY {
		t.OffsetY = clampOffset(t.cfg.AnchorY-target.Y, t.cfg.ScreenHeight, t.cfg.WorldHeight)
	}
}

// View returns the visible world rectangle.
func (t *Tracker) View() gamemath.Rect {
	return gamemath.Rect{
		X:      -t.OffsetX,
		Y:      -t.OffsetY,
		Width:  t.cfg.ScreenWidth,
		Height: t.cfg.ScreenHeight,
	}
}

// Outside reports whether a point has left the visible world. Points exactly
// on an edge are still inside.
func (t *Tracker) Outside(p gamemath.Point) bool {
	return !t.View().Contains(p)
}

// clampOffset keeps [-offset, -offset+screen] within [0, world].
func clampOffset(offset, screen, world float64) float64 {
	lo := math.Min(screen-world, 0)
	return math.Max(lo, math.Min(0, offset))
}

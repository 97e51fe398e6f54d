package components

import (
	"github.com/automoto/runngun/shared/visual"
	"github.com/yohamta/donburi"
)

// ViewData is the simulation's handle on an entity's presence in the render
// tree. The simulation attaches, detaches and hides; drawing belongs to the
// renderers.
type ViewData struct {
	Attached bool
	Visible  bool
	Alpha    float32
	State    visual.State
}

var View = donburi.NewComponentType[ViewData]()

func NewView() ViewData {
	return ViewData{Attached: true, Visible: true, Alpha: 1}
}

// Detach removes the view from the render tree. Detaching twice is a no-op.
func (v *ViewData) Detach() {
	if !v.Attached {
		return
	}
	v.Attached = false
	v.Visible = false
}

// Shown reports whether a renderer should draw the view.
func (v *ViewData) Shown() bool { return v.Attached && v.Visible && v.Alpha > 0 }

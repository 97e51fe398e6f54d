// Package visual holds the view-side state machine for characters. The
// simulation never reads it; renderers use it to pick what to draw.
package visual

// State is the visual pose of a character.
type State int

const (
	Stay State = iota
	Run
	RunUp
	RunDown
	StayUp
	Lay
	Jump
	Fall
	Swim
	Dead
)

var stateNames = [...]string{
	Stay:    "stay",
	Run:     "run",
	RunUp:   "runUp",
	RunDown: "runDown",
	StayUp:  "stayUp",
	Lay:     "lay",
	Jump:    "jump",
	Fall:    "fall",
	Swim:    "swim",
	Dead:    "dead",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Input is the snapshot of simulation facts a transition depends on.
type Input struct {
	Moving  bool
	Up      bool
	Down    bool
	Jumping bool
	Falling bool
	InWater bool
	Dead    bool
}

// Next returns the state to show this frame. A dead character stays Dead
// until it is alive again, and then restarts from Stay.
func Next(current State, in Input) State {
	if in.Dead {
		return Dead
	}
	if current == Dead {
		return Stay
	}

	switch {
	case in.Jumping:
		return Jump
	case in.Falling:
		return Fall
	case in.InWater:
		return Swim
	case in.Moving && in.Up:
		return RunUp
	case in.Moving && in.Down:
		return RunDown
	case in.Moving:
		return Run
	case in.Up:
		return StayUp
	case in.Down:
		return Lay
	}
	return Stay
}

package components

import (
	"github.com/automoto/runngun/shared/gamemath"
	"github.com/yohamta/donburi"
)

// MotionState is the vertical movement mode of a gravitable body.
type MotionState int

const (
	MotionStay MotionState = iota
	// MotionJump is set by a jump or a drop-through. Only solid boxes collide.
	MotionJump
	MotionFlyDown
)

type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	Gravity      float64
	MaxFallSpeed float64
	Motion       MotionState

	// Prev is the position at the start of the current tick.
	Prev gamemath.Point

	// Ground is the platform the body last landed on.
	Ground *donburi.Entry
}

var Physics = donburi.NewComponentType[PhysicsData]()

func (p *PhysicsData) IsJumpState() bool { return p.Motion == MotionJump }

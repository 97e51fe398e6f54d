package systems

import (
	"github.com/automoto/runngun/components"
	"github.com/automoto/runngun/shared/gamemath"
)

// fall integrates one tick of gravity. A body that was resting or rising
// and now has downward speed switches to MotionFlyDown; the return value
// reports a body that was resting and just lost its footing.
func fall(physics *components.PhysicsData, obj *components.ObjectData) (leftGround bool) {
	if physics.SpeedY > 0 {
		leftGround = physics.Motion == components.MotionStay
		physics.Motion = components.MotionFlyDown
	}
	physics.SpeedY = gamemath.ClampSpeed(physics.SpeedY+physics.Gravity, physics.MaxFallSpeed)
	obj.Y += physics.SpeedY
	return leftGround
}

// jump launches a resting body upward. It does nothing in the air.
func jump(physics *components.PhysicsData, force float64) bool {
	if physics.Motion != components.MotionStay {
		return false
	}
	physics.Motion = components.MotionJump
	physics.SpeedY -= force
	return true
}

// throwDown drops a resting body through the platform under it. Only
// solid boxes stop it until it starts falling.
func throwDown(physics *components.PhysicsData) bool {
	if physics.Motion != components.MotionStay {
		return false
	}
	physics.Motion = components.MotionJump
	return true
}

// stay rests a body on a surface whose top edge is at y.
func stay(physics *components.PhysicsData, obj *components.ObjectData, y float64) {
	physics.Motion = components.MotionStay
	physics.SpeedY = 0
	obj.Y = y - obj.H
}

package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Aim angles in degrees, measured clockwise from the positive X axis.
const (
	AimForward   = 0.0
	AimUp        = -90.0
	AimUpAhead   = -45.0
	AimDown      = 90.0
	AimDownAhead = 45.0
)

// CalculateAimAngle returns the firing angle for the held directions.
// facingX is -1 or 1. Up wins over down; down without horizontal movement
// only aims straight down while airborne, otherwise it is the lying stance
// and fires forward.
func CalculateAimAngle(facingX float64, upPressed, downPressed, movingHorizontally, airborne bool) float64 {
	angle := AimForward
	switch {
	case upPressed && movingHorizontally:
		angle = AimUpAhead
	case upPressed:
		angle = AimUp
	case downPressed && movingHorizontally:
		angle = AimDownAhead
	case downPressed && airborne:
		angle = AimDown
	}
	if facingX < 0 {
		angle = 180 - angle
	}
	return angle
}

// Velocity splits a speed along an angle in degrees.
func Velocity(speed, angleDeg float64) (vx, vy float64) {
	rad := angleDeg * math.Pi / 180
	return speed * math.Cos(rad), speed * math.Sin(rad)
}

// AngleTo returns the angle in degrees from one point to another.
func AngleTo(from, to Point) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X) * 180 / math.Pi
}

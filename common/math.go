package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ClampLowerWins clamps v against hi first and lo last, so an inverted
// range (lo > hi) collapses to lo. mgl32.Clamp can return hi there.
func ClampLowerWins(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}

// ClampLen returns v scaled down to maxLen when it is longer.
func ClampLen(v mgl32.Vec3, maxLen float32) mgl32.Vec3 {
	l := v.Len()
	if l <= maxLen || l == 0 {
		return v
	}
	return v.Mul(maxLen / l)
}

// Inf returns positive infinity as a float32.
func Inf() float32 {
	return float32(math.Inf(1))
}

// Forward is the view direction of an unrotated camera.
var Forward = mgl32.Vec3{0, 0, -1}

// QuatFromYawPitch rotates by yaw about +Y, then by pitch about the local +X.
// Angles are in degrees.
func QuatFromYawPitch(yawDeg, pitchDeg float32) mgl32.Quat {
	yaw := mgl32.QuatRotate(mgl32.DegToRad(yawDeg), mgl32.Vec3{0, 1, 0})
	pitch := mgl32.QuatRotate(mgl32.DegToRad(pitchDeg), mgl32.Vec3{1, 0, 0})
	return yaw.Mul(pitch)
}

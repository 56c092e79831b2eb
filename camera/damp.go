package camera

import "github.com/go-gl/mathgl/mgl32"

// MinSmoothness is the floor applied to every smoothness time constant.
const MinSmoothness float32 = 0.0001

// SmoothDampScalar moves from toward to with critically damped smoothing.
// It returns the new position and the velocity to carry into the next call.
//
// Based on Game Programming Gems 4, 1.10 "Critically Damped Ease-In/Ease-Out
// Smoothing". The exponential decay uses the rational approximation from that
// chapter. maxSpeed caps the distance considered at maxSpeed*smoothness; pass
// +Inf for no cap.
//
// Products are rounded to float32 explicitly so the compiler cannot fuse them
// into multiply-adds and results stay identical on every platform.
func SmoothDampScalar(from, to, velocity, smoothness, maxSpeed, dt float32) (float32, float32) {
	smoothness = max(MinSmoothness, smoothness)
	omega := 2 / smoothness

	x := float32(omega * dt)
	exp := 1 / (1 + x + float32(0.48*x*x) + float32(0.235*x*x*x))

	distance := from - to
	maxDistance := float32(maxSpeed * smoothness)
	// When the cap engages, approach the capped target instead of to so one
	// tick never covers more than maxSpeed*dt.
	target := to
	if distance > maxDistance {
		distance = maxDistance
		target = from - distance
	} else if distance < -maxDistance {
		distance = -maxDistance
		target = from - distance
	}

	temp := float32((velocity + float32(omega*distance)) * dt)
	newVelocity := (velocity - float32(omega*temp)) * exp
	newPosition := target + float32((distance+temp)*exp)
	return newPosition, newVelocity
}

// SmoothDamp applies SmoothDampScalar to each axis independently.
func SmoothDamp(from, to, velocity mgl32.Vec3, smoothness, maxSpeed, dt float32) (mgl32.Vec3, mgl32.Vec3) {
	var pos, vel mgl32.Vec3
	for i := range pos {
		pos[i], vel[i] = SmoothDampScalar(from[i], to[i], velocity[i], smoothness, maxSpeed, dt)
	}
	return pos, vel
}

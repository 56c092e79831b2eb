package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hexfollow/scenario"
)

// keyState is one frame of held movement keys. Both WASD and ZQSD layouts
// map onto it.
type keyState struct {
	forward, back bool
	left, right   bool
	up, down      bool

	thrust              bool
	turnLeft, turnRight bool
}

func (k keyState) any() bool {
	return k.forward || k.back || k.left || k.right || k.up || k.down || k.thrust || k.turnLeft || k.turnRight
}

func axis(neg, pos bool) float32 {
	var v float32
	if neg {
		v--
	}
	if pos {
		v++
	}
	return v
}

// intent converts held keys and a cursor drag into a live intent. dx and dy
// are cursor deltas in pixels.
func (k keyState) intent(dx, dy float32) scenario.IntentSpec {
	move := mgl32.Vec3{axis(k.left, k.right), axis(k.down, k.up), axis(k.forward, k.back)}
	return scenario.IntentSpec{
		Move:   scenario.Vec3Spec{X: move.X(), Y: move.Y(), Z: move.Z()},
		Yaw:    dx,
		Pitch:  dy,
		Thrust: k.thrust,
		Turn:   axis(k.turnRight, k.turnLeft),
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func readKeys() keyState {
	return keyState{
		forward:   anyPressed(ebiten.KeyW, ebiten.KeyZ),
		back:      anyPressed(ebiten.KeyS),
		left:      anyPressed(ebiten.KeyA, ebiten.KeyQ),
		right:     anyPressed(ebiten.KeyD),
		up:        anyPressed(ebiten.KeyE),
		down:      anyPressed(ebiten.KeyC),
		thrust:    anyPressed(ebiten.KeyArrowUp),
		turnLeft:  anyPressed(ebiten.KeyArrowLeft),
		turnRight: anyPressed(ebiten.KeyArrowRight),
	}
}

// dragTracker reports cursor movement while the right button is held.
type dragTracker struct {
	active bool
	lastX  int
	lastY  int
}

func (d *dragTracker) update(pressed bool, x, y int) (dx, dy float32, dragging bool) {
	if !pressed {
		d.active = false
		return 0, 0, false
	}
	if !d.active {
		d.active = true
		d.lastX, d.lastY = x, y
		return 0, 0, true
	}
	dx, dy = float32(x-d.lastX), float32(y-d.lastY)
	d.lastX, d.lastY = x, y
	return dx, dy, true
}

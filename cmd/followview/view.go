package main

import "github.com/go-gl/mathgl/mgl32"

// view maps the simulation plane onto the screen around a centre point.
type view struct {
	center mgl32.Vec2
	// pixels per world unit
	ppu    float32
	width  float32
	height float32
}

const defaultPPU = 2

// newView fits twice the camera's visible height on screen so the view
// rectangle and the level edges show around it.
func newView(center, halfExtent mgl32.Vec2, width, height float32) view {
	ppu := float32(defaultPPU)
	if halfExtent.Y() > 0 {
		ppu = height / (4 * halfExtent.Y())
	}
	return view{center: center, ppu: ppu, width: width, height: height}
}

func (v view) toScreen(p mgl32.Vec2) (float32, float32) {
	return (p.X()-v.center.X())*v.ppu + v.width/2, v.height/2 - (p.Y()-v.center.Y())*v.ppu
}

// plane projects a world position onto the drawing plane. Free-flying
// cameras are drawn top down on the ground plane.
func plane(p mgl32.Vec3, free bool) mgl32.Vec2 {
	if free {
		return mgl32.Vec2{p.X(), -p.Z()}
	}
	return p.Vec2()
}

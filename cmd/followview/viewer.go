package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/hexfollow/camera"
	"github.com/milk9111/hexfollow/common"
	"github.com/milk9111/hexfollow/hex"
	"github.com/milk9111/hexfollow/scenario"
	"github.com/milk9111/hexfollow/sim"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// Viewer steps a scenario once per ebiten tick and draws it top down.
type Viewer struct {
	name   string
	runner *sim.Runner
	last   sim.Frame
	paused bool

	drag    dragTracker
	watcher *scenario.Watcher
	panel   *panel

	// hex grid geometry, rebuilt when the scenario reloads
	gridMesh  hex.Mesh
	gridVerts []ebiten.Vertex
}

func NewViewer(name string) (*Viewer, error) {
	v := &Viewer{name: name}
	v.panel = newPanel(v)
	if err := v.load(); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Viewer) load() error {
	spec, err := scenario.Load(v.name)
	if err != nil {
		return err
	}
	runner, err := sim.NewRunner(spec)
	if err != nil {
		return err
	}
	// the viewer only needs the latest frame
	runner.SetRecordEvery(spec.Ticks + 1)
	v.runner = runner
	v.last = sim.Frame{Camera: runner.Camera().Position(), Rotation: runner.Camera().Rotation()}
	v.buildGrid()
	v.panel.setFree(runner.Free())
	return nil
}

// Watch reloads the scenario when files under dir change.
func (v *Viewer) Watch(dir string) error {
	w, err := scenario.NewWatcher(dir, filepath.Join(dir, "scripts"))
	if err != nil {
		return err
	}
	v.watcher = w
	return nil
}

func (v *Viewer) Close() {
	if v.watcher != nil {
		_ = v.watcher.Close()
	}
}

func (v *Viewer) togglePause() {
	v.paused = !v.paused
	v.panel.setPaused(v.paused)
}

func (v *Viewer) reset() {
	if err := v.runner.Reset(); err != nil {
		log.Printf("reset %s: %v", v.name, err)
		return
	}
	v.last = sim.Frame{Camera: v.runner.Camera().Position(), Rotation: v.runner.Camera().Rotation()}
	v.buildGrid()
	v.panel.setFree(v.runner.Free())
}

func (v *Viewer) toggleFree() {
	v.runner.SetFree(!v.runner.Free())
	v.panel.setFree(v.runner.Free())
}

func (v *Viewer) pollWatcher() {
	if v.watcher == nil {
		return
	}
	select {
	case path, ok := <-v.watcher.Events:
		if !ok {
			v.watcher = nil
			return
		}
		if err := v.load(); err != nil {
			log.Printf("reload %s after %s: %v", v.name, path, err)
			return
		}
		log.Printf("reloaded %s", v.name)
	case err, ok := <-v.watcher.Errors:
		if ok && err != nil {
			log.Printf("scenario watch error: %v", err)
		}
	default:
	}
}

func (v *Viewer) Update() error {
	v.pollWatcher()
	v.panel.ui.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		v.toggleFree()
	}

	keys := readKeys()
	mx, my := ebiten.CursorPosition()
	dx, dy, dragging := v.drag.update(ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight), mx, my)
	if keys.any() || dragging {
		in := keys.intent(dx, dy)
		v.runner.SetIntent(&in)
	} else {
		v.runner.SetIntent(nil)
	}

	if !v.paused && !v.runner.Done() {
		f, err := v.runner.Step()
		if err != nil {
			log.Printf("%s: %v", v.name, err)
			v.paused = true
			v.panel.setPaused(true)
		} else {
			v.last = f
		}
	}

	v.panel.setStatus(v.status())
	return nil
}

func (v *Viewer) status() string {
	f := v.last
	state := "running"
	switch {
	case v.paused:
		state = "paused"
	case v.runner.Done():
		state = "done"
	}
	b, ok := v.runner.Camera().Bounds()
	return fmt.Sprintf("%s  tick %d/%d  %s\nmode %s  camera (%.1f, %.1f, %.1f)\nvelocity (%.1f, %.1f, %.1f)%s",
		v.name, v.runner.Tick(), v.runner.Spec.Ticks, state,
		f.Mode, f.Camera.X(), f.Camera.Y(), f.Camera.Z(),
		f.Velocity.X(), f.Velocity.Y(), f.Velocity.Z(), pinnedNote(b, ok))
}

// pinnedNote names the axes on which the view is wider than the level and
// the camera is held at the lower bound.
func pinnedNote(b camera.ViewportBounds, ok bool) string {
	if !ok {
		return ""
	}
	switch dx, dy := b.Degenerate(); {
	case dx && dy:
		return "\npinned on x and y"
	case dx:
		return "\npinned on x"
	case dy:
		return "\npinned on y"
	}
	return ""
}

func (v *Viewer) buildGrid() {
	v.gridMesh, v.gridVerts = hex.Mesh{}, nil
	tt, ok := v.runner.Target().(*scenario.TravelerTarget)
	if !ok {
		return
	}
	mesh := tt.Grid.Mesh()
	cells := tt.Grid.Cells()
	v.gridMesh = mesh
	v.gridVerts = make([]ebiten.Vertex, len(mesh.Vertices))
	for i := range mesh.Vertices {
		c := cells[i/7].Biome.Color()
		v.gridVerts[i] = ebiten.Vertex{
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(c.R) / 255,
			ColorG: float32(c.G) / 255,
			ColorB: float32(c.B) / 255,
			ColorA: 1,
		}
	}
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	free := v.runner.Free()
	cam := v.last.Camera
	vw := newView(plane(cam, free), v.runner.Camera().HalfExtent(), baseWidth, baseHeight)

	v.drawGrid(screen, vw)
	v.drawLevel(screen, vw)
	v.drawPath(screen, vw)

	if v.last.Present {
		tx, ty := vw.toScreen(plane(v.last.Target, free))
		vector.FillCircle(screen, tx, ty, 5, colornames.Yellow, true)
	}

	half := v.runner.Camera().HalfExtent()
	cx, cy := vw.toScreen(plane(cam, free))
	if half.X() > 0 && half.Y() > 0 && !free {
		// screen Y grows down, so the view's top-left sits one height above its bottom-left
		bx, by := vw.toScreen(v.runner.Camera().ViewBottomLeft())
		w, h := 2*half.X()*vw.ppu, 2*half.Y()*vw.ppu
		vector.StrokeRect(screen, bx, by-h, w, h, 2, colornames.Lime, false)
	}
	vector.FillCircle(screen, cx, cy, 3, colornames.Lime, true)
	if free {
		gx, gy := vw.toScreen(plane(v.runner.Rig().Goal(), true))
		vector.StrokeCircle(screen, gx, gy, 4, 1, colornames.Lime, true)
		fwd := v.last.Rotation.Rotate(common.Forward)
		fx, fy := vw.toScreen(plane(cam.Add(fwd.Mul(20/vw.ppu)), true))
		vector.StrokeLine(screen, cx, cy, fx, fy, 2, colornames.Lime, true)
	}

	v.panel.ui.Draw(screen)
}

// drawGrid draws the hex cells on the level plane.
func (v *Viewer) drawGrid(screen *ebiten.Image, vw view) {
	if len(v.gridVerts) == 0 {
		return
	}
	for i, p := range v.gridMesh.Vertices {
		x, y := vw.toScreen(scenario.GroundToLevel(p).Vec2())
		v.gridVerts[i].DstX, v.gridVerts[i].DstY = x, y
	}
	screen.DrawTriangles(v.gridVerts, v.gridMesh.Indices, whiteImage(), &ebiten.DrawTrianglesOptions{})
}

func (v *Viewer) drawLevel(screen *ebiten.Image, vw view) {
	level := v.runner.Spec.Level
	if level.Width <= 0 || level.Height <= 0 {
		return
	}
	x0, y0 := vw.toScreen(mgl32.Vec2{0, level.Height})
	vector.StrokeRect(screen, x0, y0, level.Width*vw.ppu, level.Height*vw.ppu, 1, colornames.Gray, false)

	if b, ok := v.runner.Camera().Bounds(); ok && !v.runner.Free() {
		bx, by := vw.toScreen(mgl32.Vec2{b.Left, b.Top})
		vector.StrokeRect(screen, bx, by, (b.Right-b.Left)*vw.ppu, (b.Top-b.Bottom)*vw.ppu, 1, color.RGBA{R: 0x40, G: 0x40, B: 0xa0, A: 0xff}, false)
	}
}

func (v *Viewer) drawPath(screen *ebiten.Image, vw view) {
	points := v.runner.Spec.Target.Waypoints
	if v.runner.Spec.Target.Kind != scenario.KindPath || len(points) < 2 {
		return
	}
	for i := range points {
		a, b := points[i], points[(i+1)%len(points)]
		ax, ay := vw.toScreen(mgl32.Vec2{a.X, a.Y})
		bx, by := vw.toScreen(mgl32.Vec2{b.X, b.Y})
		vector.StrokeLine(screen, ax, ay, bx, by, 1, colornames.Dimgray, true)
	}
}

var whiteImageInstance *ebiten.Image

func whiteImage() *ebiten.Image {
	if whiteImageInstance == nil {
		whiteImageInstance = ebiten.NewImage(3, 3)
		whiteImageInstance.Fill(color.White)
	}
	return whiteImageInstance
}

func (v *Viewer) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

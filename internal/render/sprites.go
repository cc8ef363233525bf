package render

import "lurch/internal/sim"

// SpriteFloats is the number of floats per point sprite:
// x, y, size, r, g, b, a, rotation.
const SpriteFloats = 8

// Sizes in cells. Background cells leave a thin gap so the grid shows.
const (
	CellSize  = 0.94
	ActorSize = 1.0
)

// Camera maps grid units to framebuffer pixels around a centre point.
type Camera struct {
	X, Y float64
	Zoom float64 // pixels per cell
}

// FitCamera centres a w x h grid in an fbW x fbH framebuffer at the largest
// zoom that keeps the whole grid visible.
func FitCamera(w, h, fbW, fbH int) Camera {
	cam := Camera{X: float64(w) / 2, Y: float64(h) / 2, Zoom: 1}
	if w <= 0 || h <= 0 || fbW <= 0 || fbH <= 0 {
		return cam
	}
	zx := float64(fbW) / float64(w)
	zy := float64(fbH) / float64(h)
	cam.Zoom = min(zx, zy)
	return cam
}

// SpriteCount returns the sprites Sprites emits for snap.
func SpriteCount(snap sim.Snapshot) int {
	return snap.Width*snap.Height + 1 + len(snap.Body)
}

// Sprites appends the draw list for snap to buf and returns it: grid cells,
// then food, then the body tail to head so the head is drawn last.
func Sprites(snap sim.Snapshot, buf []float32) []float32 {
	buf = buf[:0]
	dim := float32(1)
	if snap.Phase != sim.PhaseRunning {
		dim = IdleDim
	}

	cell := Palette.Cell.Scale(dim)
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			buf = appendSprite(buf, sim.Cell{X: x, Y: y}, CellSize, cell)
		}
	}

	buf = appendSprite(buf, snap.Food, ActorSize, Palette.Food.Scale(dim))

	body := Palette.Body.Scale(dim)
	for i := len(snap.Body) - 1; i >= 1; i-- {
		buf = appendSprite(buf, snap.Body[i], ActorSize, body)
	}
	if len(snap.Body) > 0 {
		buf = appendSprite(buf, snap.Body[0], ActorSize, Palette.Head.Scale(dim))
	}
	return buf
}

func appendSprite(buf []float32, c sim.Cell, size float32, col RGB) []float32 {
	return append(buf,
		float32(c.X)+0.5, float32(c.Y)+0.5, size,
		col.R, col.G, col.B, 1, 0,
	)
}

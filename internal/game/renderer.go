package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"lurch/internal/render"
	"lurch/internal/sim"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws a snapshot as one batch of point sprites.
type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uCamera     int32
	uZoom       int32
	uResolution int32

	// capacity is the VBO size in sprites.
	capacity int
	buf      []float32
}

func NewRenderer(capacity int) (*Renderer, error) {
	prog, err := linkProgram(cellVertSrc, cellFragSrc)
	if err != nil {
		return nil, fmt.Errorf("cell program: %w", err)
	}
	r := &Renderer{
		prog:     prog,
		capacity: capacity,
		buf:      make([]float32, 0, capacity*render.SpriteFloats),
	}

	// Each sprite: 8 floats (x, y, size, r, g, b, a, rotation). Rotation is unused.
	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(render.SpriteFloats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, capacity*int(stride), nil, gl.STREAM_DRAW)
	// aGridPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))

	gl.UseProgram(prog)
	r.uCamera = gl.GetUniformLocation(prog, gl.Str("uCamera\x00"))
	r.uZoom = gl.GetUniformLocation(prog, gl.Str("uZoom\x00"))
	r.uResolution = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

// Draw clears the framebuffer and renders snap fitted to it.
func (r *Renderer) Draw(snap sim.Snapshot, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.buf = render.Sprites(snap, r.buf)
	count := len(r.buf) / render.SpriteFloats
	if count == 0 {
		return
	}
	if count > r.capacity {
		count = r.capacity
	}
	cam := render.FitCamera(snap.Width, snap.Height, fbW, fbH)

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.Uniform2f(r.uCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.uZoom, float32(cam.Zoom))
	gl.Uniform2f(r.uResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferSubData(gl.ARRAY_BUFFER, 0, count*render.SpriteFloats*4, gl.Ptr(r.buf))
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}

// screen presents snapshots into the window's framebuffer.
type screen struct {
	window interface{ GetFramebufferSize() (int, int) }
	rend   *Renderer
}

func (s *screen) Present(snap sim.Snapshot) {
	fbW, fbH := s.window.GetFramebufferSize()
	if fbW <= 0 || fbH <= 0 {
		return
	}
	s.rend.Draw(snap, fbW, fbH)
}

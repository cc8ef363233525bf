package game

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"lurch/internal/render"
	"lurch/internal/sim"
)

// Run opens a window sized to the round's grid and drives r until the
// window closes. bus may be nil.
func Run(r *sim.Round, bus *sim.EventBus) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	cfg := r.Config()
	window, err := initWindow(cfg.Width*VirtualPixel, cfg.Height*VirtualPixel, WindowTitle)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	bg := render.Palette.Background
	gl.ClearColor(bg.R, bg.G, bg.B, 1.0)

	// One sprite per grid cell plus food and a full-length body.
	rend, err := NewRenderer(2*cfg.Width*cfg.Height + 1)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	if bus != nil {
		setTitle := func(e sim.Event) {
			window.SetTitle(fmt.Sprintf("%s | Score %d | High %d", WindowTitle, e.Score, e.HighScore))
		}
		bus.Subscribe(sim.EventRoundStarted, setTitle)
		bus.Subscribe(sim.EventFoodEaten, setTitle)
		bus.Subscribe(sim.EventRoundEnded, func(e sim.Event) {
			window.SetTitle(fmt.Sprintf("%s | Game over %d | High %d | SPACE to restart", WindowTitle, e.Score, e.HighScore))
		})
	}

	now := func() int64 { return int64(glfw.GetTime() * 1000) }
	sim.Loop(&desktop{window: window}, NewKeyboard(window), &screen{window: window, rend: rend}, r, now)
	return nil
}

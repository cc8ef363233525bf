package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"lurch/internal/sim"
)

// Bindings maps each logical key to the physical keys that hold it.
var Bindings = map[sim.Key][]glfw.Key{
	sim.KeyUp:      {glfw.KeyUp, glfw.KeyW},
	sim.KeyDown:    {glfw.KeyDown, glfw.KeyS},
	sim.KeyLeft:    {glfw.KeyLeft, glfw.KeyA},
	sim.KeyRight:   {glfw.KeyRight, glfw.KeyD},
	sim.KeyConfirm: {glfw.KeySpace},
	sim.KeyQuit:    {glfw.KeyEscape},
}

// Keyboard polls a glfw window for key state.
type Keyboard struct {
	window *glfw.Window
}

func NewKeyboard(window *glfw.Window) *Keyboard {
	return &Keyboard{window: window}
}

func (kb *Keyboard) KeyDown(k sim.Key) bool {
	for _, gk := range Bindings[k] {
		if kb.window.GetKey(gk) == glfw.Press {
			return true
		}
	}
	return false
}

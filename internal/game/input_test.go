package game

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"lurch/internal/sim"
)

func TestBindingsCoverMonitoredKeys(t *testing.T) {
	owner := make(map[glfw.Key]sim.Key)
	for _, k := range sim.MonitoredKeys {
		keys := Bindings[k]
		if len(keys) == 0 {
			t.Errorf("%v has no binding", k)
		}
		for _, gk := range keys {
			if prev, ok := owner[gk]; ok {
				t.Errorf("glfw key %d bound to both %v and %v", gk, prev, k)
			}
			owner[gk] = k
		}
	}
	if Bindings[sim.KeyConfirm][0] != glfw.KeySpace || Bindings[sim.KeyQuit][0] != glfw.KeyEscape {
		t.Errorf("Expected SPACE to confirm and ESCAPE to quit")
	}
}

package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"lurch/internal/render"
	"lurch/internal/sim"
)

// Each grid cell is two columns wide so cells look roughly square.
const cellCols = 2

func color(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R*255), int32(c.G*255), int32(c.B*255))
}

func cellStyle(c render.RGB, dim float32) tcell.Style {
	return tcell.StyleDefault.Background(color(c.Scale(dim)))
}

// Present draws the grid centred on screen with a status line beneath it.
func (t *Terminal) Present(snap sim.Snapshot) {
	t.screen.Clear()
	sw, sh := t.screen.Size()
	gw, gh := snap.Width*cellCols, snap.Height
	if sw < gw || sh < gh+1 {
		t.text(0, 0, fmt.Sprintf("terminal too small: need %dx%d", gw, gh+1), tcell.StyleDefault)
		return
	}
	ox, oy := (sw-gw)/2, (sh-gh-1)/2

	dim := float32(1)
	if snap.Phase != sim.PhaseRunning {
		dim = render.IdleDim
	}
	put := func(c sim.Cell, st tcell.Style) {
		if c.X < 0 || c.X >= snap.Width || c.Y < 0 || c.Y >= snap.Height {
			return
		}
		for i := 0; i < cellCols; i++ {
			t.screen.SetContent(ox+c.X*cellCols+i, oy+c.Y, ' ', nil, st)
		}
	}

	bg := cellStyle(render.Palette.Cell, dim)
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			put(sim.Cell{X: x, Y: y}, bg)
		}
	}
	put(snap.Food, cellStyle(render.Palette.Food, dim))
	body := cellStyle(render.Palette.Body, dim)
	for i := len(snap.Body) - 1; i >= 1; i-- {
		put(snap.Body[i], body)
	}
	if len(snap.Body) > 0 {
		put(snap.Body[0], cellStyle(render.Palette.Head, dim))
	}

	t.text(ox, oy+gh, status(snap), tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func status(snap sim.Snapshot) string {
	switch snap.Phase {
	case sim.PhaseNotStarted:
		return fmt.Sprintf("Press SPACE to start | High %d", snap.HighScore)
	case sim.PhaseEnded:
		return fmt.Sprintf("Game over! Score %d | High %d | SPACE to restart", snap.Score, snap.HighScore)
	}
	return fmt.Sprintf("Score %d | High %d | %.2f ups", snap.Score, snap.HighScore, snap.Rate)
}

func (t *Terminal) text(x, y int, s string, st tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, st)
	}
}

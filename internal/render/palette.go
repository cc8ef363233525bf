package render

// RGB is a linear colour with float channels in [0,1].
type RGB struct {
	R, G, B float32
}

func (c RGB) Scale(k float32) RGB {
	return RGB{R: c.R * k, G: c.G * k, B: c.B * k}
}

var Palette = struct {
	Background RGB
	Cell       RGB
	Head       RGB
	Body       RGB
	Food       RGB
}{
	Background: RGB{R: 0, G: 0, B: 0},
	Cell:       RGB{R: 0.1, G: 0.1, B: 0.1},
	Head:       RGB{R: 0.0, G: 1.0, B: 0.0},
	Body:       RGB{R: 0.0, G: 0.8, B: 0.0},
	Food:       RGB{R: 1.0, G: 0.0, B: 0.0},
}

// IdleDim scales every colour while the round is not running.
const IdleDim = 0.45

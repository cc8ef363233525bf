package game

// Window defaults.
const (
	WindowTitle  = "Snake"
	VirtualPixel = 20 // framebuffer pixels per grid cell
)

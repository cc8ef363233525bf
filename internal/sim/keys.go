package sim

// Key is one of the monitored logical keys.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyConfirm
	KeyQuit
)

// MonitoredKeys lists every key sampled each frame, in enumeration order.
var MonitoredKeys = [...]Key{KeyUp, KeyDown, KeyLeft, KeyRight, KeyConfirm, KeyQuit}

var keyNames = [...]string{
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyConfirm: "confirm",
	KeyQuit:    "quit",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "invalid"
}

// KeySet is a bitset over Key.
type KeySet uint8

func (s KeySet) Has(k Key) bool { return s&(1<<k) != 0 }

func (s KeySet) With(k Key) KeySet { return s | 1<<k }

func (s KeySet) Without(k Key) KeySet { return s &^ (1 << k) }

// KeySource reports whether a key is held right now.
type KeySource interface {
	KeyDown(k Key) bool
}

// KeyState holds the sets derived from one frame's sample.
type KeyState struct {
	Held     KeySet
	Pressed  KeySet
	Released KeySet
}

// NextKeyState samples every monitored key through raw and diffs the result
// against the previous frame's held set.
func NextKeyState(prev KeySet, raw func(Key) bool) KeyState {
	var held KeySet
	for _, k := range MonitoredKeys {
		if raw(k) {
			held = held.With(k)
		}
	}
	return KeyState{
		Held:     held,
		Pressed:  held &^ prev,
		Released: prev &^ held,
	}
}

// Input is the per-frame edge detector. Sample must run once per frame
// before any query.
type Input struct {
	state KeyState
}

// NewInput returns an input with nothing held.
func NewInput() *Input {
	return &Input{}
}

// Sample reads src for every monitored key and derives this frame's edges.
func (in *Input) Sample(src KeySource) {
	in.state = NextKeyState(in.state.Held, src.KeyDown)
}

func (in *Input) IsHeld(k Key) bool { return in.state.Held.Has(k) }

func (in *Input) IsJustPressed(k Key) bool { return in.state.Pressed.Has(k) }

func (in *Input) IsJustReleased(k Key) bool { return in.state.Released.Has(k) }

// State returns the held set and edges of the latest sample.
func (in *Input) State() KeyState { return in.state }

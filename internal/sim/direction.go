package sim

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}

func (c Cell) Add(o Cell) Cell { return Cell{X: c.X + o.X, Y: c.Y + o.Y} }

// Direction is a heading on the grid.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Unit offsets indexed by Direction. Y grows downward.
var offsets = [...]Cell{
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

var opposites = [...]Direction{
	Up:    Down,
	Down:  Up,
	Left:  Right,
	Right: Left,
}

var directionNames = [...]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

// Offset returns the unit step for d.
func (d Direction) Offset() Cell { return offsets[d] }

// Reverse returns the direction on the same axis with inverted sign.
func (d Direction) Reverse() Direction { return opposites[d] }

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "invalid"
}

// Opposite reports whether a and b act on the same axis with inverted sign.
func Opposite(a, b Direction) bool { return a.Reverse() == b }

package sim

// Snake is the actor: an ordered body, head first.
type Snake struct {
	body    []Cell
	heading Direction
	grow    bool
}

// NewSnake returns a length-1 snake at start.
func NewSnake(start Cell, heading Direction) *Snake {
	return &Snake{
		body:    []Cell{start},
		heading: heading,
	}
}

// Move advances the head one cell along the heading. The tail is dropped
// unless a grow is pending; the pending flag is cleared either way.
func (s *Snake) Move() {
	head := s.body[0].Add(s.heading.Offset())
	if s.grow {
		s.body = append(s.body, Cell{})
	}
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head
	s.grow = false
}

// Grow marks the next Move to keep the tail.
func (s *Snake) Grow() { s.grow = true }

// SetDirection changes the heading unless d reverses it.
func (s *Snake) SetDirection(d Direction) {
	if !s.Opposite(d) {
		s.heading = d
	}
}

// Opposite reports whether d is the reverse of the current heading.
func (s *Snake) Opposite(d Direction) bool { return Opposite(s.heading, d) }

// Heading returns the direction of the last move.
func (s *Snake) Heading() Direction { return s.heading }

// Head returns the leading cell.
func (s *Snake) Head() Cell { return s.body[0] }

// Body returns the occupied cells, head first. Callers must not modify it.
func (s *Snake) Body() []Cell { return s.body }

// Len returns the number of occupied cells.
func (s *Snake) Len() int { return len(s.body) }

// Occupies reports whether any body cell equals c.
func (s *Snake) Occupies(c Cell) bool {
	for _, b := range s.body {
		if b == c {
			return true
		}
	}
	return false
}

// CheckSelfCollision reports whether the head overlaps any other body cell.
func (s *Snake) CheckSelfCollision() bool {
	head := s.body[0]
	for _, b := range s.body[1:] {
		if b == head {
			return true
		}
	}
	return false
}

// OutOfBounds reports whether the head lies outside [0,w) x [0,h).
func (s *Snake) OutOfBounds(w, h int) bool {
	head := s.body[0]
	return head.X < 0 || head.X >= w || head.Y < 0 || head.Y >= h
}

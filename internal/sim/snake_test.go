package sim

import "testing"

func TestMoveKeepsLengthWithoutGrowth(t *testing.T) {
	s := &Snake{body: []Cell{{5, 5}, {4, 5}, {3, 5}}, heading: Right}
	dirs := []Direction{Right, Down, Down, Left, Up, Up, Left}
	for i, d := range dirs {
		s.SetDirection(d)
		s.Move()
		if s.Len() != 3 {
			t.Fatalf("step %d: expected length 3, got %d", i, s.Len())
		}
	}
}

func TestMoveRightFromFiveFive(t *testing.T) {
	s := NewSnake(Cell{5, 5}, Right)
	s.Move()
	if s.Head() != (Cell{6, 5}) {
		t.Errorf("Expected head (6,5), got %v", s.Head())
	}
	if s.Len() != 1 {
		t.Errorf("Expected length 1, got %d", s.Len())
	}
}

func TestGrowAppliesToNextMoveOnly(t *testing.T) {
	s := &Snake{body: []Cell{{5, 5}, {4, 5}}, heading: Right}
	s.Grow()
	s.Move()
	if s.Len() != 3 {
		t.Fatalf("Expected length 3 after grow+move, got %d", s.Len())
	}
	want := []Cell{{6, 5}, {5, 5}, {4, 5}}
	for i, c := range want {
		if s.Body()[i] != c {
			t.Errorf("body[%d]: expected %v, got %v", i, c, s.Body()[i])
		}
	}
	s.Move()
	s.Move()
	if s.Len() != 3 {
		t.Errorf("Expected growth to stop, got length %d", s.Len())
	}
	if s.Body()[2] != (Cell{6, 5}) {
		t.Errorf("Expected tail (6,5), got %v", s.Body()[2])
	}
}

func TestSetDirection(t *testing.T) {
	all := []Direction{Up, Down, Left, Right}
	for _, cur := range all {
		for _, d := range all {
			s := NewSnake(Cell{10, 10}, cur)
			s.SetDirection(d)
			if Opposite(cur, d) {
				if s.Heading() != cur {
					t.Errorf("%v -> %v: reversal changed heading to %v", cur, d, s.Heading())
				}
				if !s.Opposite(d) {
					t.Errorf("%v -> %v: expected Opposite true", cur, d)
				}
				continue
			}
			if s.Heading() != d {
				t.Errorf("%v -> %v: expected heading %v, got %v", cur, d, d, s.Heading())
			}
		}
	}
}

func TestOppositeIsSymmetricAxisInverse(t *testing.T) {
	pairs := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left}
	for d, rev := range pairs {
		if d.Reverse() != rev {
			t.Errorf("%v.Reverse(): expected %v, got %v", d, rev, d.Reverse())
		}
		if sum := d.Offset().Add(rev.Offset()); sum != (Cell{}) {
			t.Errorf("%v + %v offsets: expected zero, got %v", d, rev, sum)
		}
		if Opposite(d, d) {
			t.Errorf("%v should not be opposite itself", d)
		}
	}
}

func TestCheckSelfCollision(t *testing.T) {
	tests := []struct {
		name string
		body []Cell
		want bool
	}{
		{"single cell", []Cell{{5, 5}}, false},
		{"straight", []Cell{{5, 5}, {4, 5}, {3, 5}}, false},
		{"head on body", []Cell{{4, 5}, {5, 5}, {5, 6}, {4, 6}, {4, 5}}, true},
		{"head on neck", []Cell{{5, 5}, {5, 5}}, true},
	}
	for _, tt := range tests {
		s := &Snake{body: tt.body}
		if got := s.CheckSelfCollision(); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestSelfCollisionDetectedAfterMove(t *testing.T) {
	// A length-5 snake turning into itself: down, left, up lands on the old body.
	s := &Snake{body: []Cell{{5, 5}, {4, 5}, {3, 5}, {2, 5}, {1, 5}}, heading: Right}
	for _, d := range []Direction{Down, Left, Up} {
		s.SetDirection(d)
		s.Move()
	}
	if !s.CheckSelfCollision() {
		t.Errorf("Expected self collision, body %v", s.Body())
	}
}

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		head Cell
		want bool
	}{
		{Cell{-1, 10}, true},
		{Cell{40, 10}, true},
		{Cell{10, -1}, true},
		{Cell{10, 30}, true},
		{Cell{0, 0}, false},
		{Cell{39, 29}, false},
	}
	for _, tt := range tests {
		s := NewSnake(tt.head, Right)
		if got := s.OutOfBounds(40, 30); got != tt.want {
			t.Errorf("OutOfBounds(40,30) with head %v: expected %v, got %v", tt.head, tt.want, got)
		}
	}
}

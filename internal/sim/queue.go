package sim

// DirectionQueue buffers direction intents between logical steps.
type DirectionQueue struct {
	items []Direction
}

func (q *DirectionQueue) Push(d Direction) { q.items = append(q.items, d) }

// Len returns the number of buffered intents.
func (q *DirectionQueue) Len() int { return len(q.items) }

func (q *DirectionQueue) Clear() { q.items = q.items[:0] }

// Next pops entries until one does not reverse heading. Reversing entries
// are discarded. ok is false once the queue runs dry.
func (q *DirectionQueue) Next(heading Direction) (d Direction, ok bool) {
	for len(q.items) > 0 {
		d = q.items[0]
		q.items = q.items[1:]
		if !Opposite(heading, d) {
			return d, true
		}
	}
	return 0, false
}

// directionKeys maps direction keys to headings in enqueue order.
var directionKeys = [...]struct {
	key Key
	dir Direction
}{
	{KeyUp, Up},
	{KeyDown, Down},
	{KeyLeft, Left},
	{KeyRight, Right},
}

// EnqueuePressed appends every direction key just pressed this frame.
func (q *DirectionQueue) EnqueuePressed(in *Input) {
	for _, dk := range directionKeys {
		if in.IsJustPressed(dk.key) {
			q.Push(dk.dir)
		}
	}
}

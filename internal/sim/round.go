package sim

import (
	"fmt"
	"slices"
)

type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning          // snake moving
	PhaseEnded            // collision or boundary exit
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	}
	return "invalid"
}

// Snapshot is the read-only per-frame view handed to presentation.
type Snapshot struct {
	Width, Height int
	Body          []Cell // head first
	Food          Cell
	Phase         Phase
	Score         int
	HighScore     int
	Rate          float64
}

// Round owns the snake, food, score, pacing and phase. It is driven once per
// frame by Frame and is not safe for concurrent use.
type Round struct {
	cfg     Config
	session *Session
	rng     Source
	bus     *EventBus

	clock *Clock
	queue DirectionQueue
	snake *Snake
	food  Cell
	phase Phase
	score int
}

// NewRound validates cfg and returns a round in PhaseNotStarted. bus may be nil.
func NewRound(cfg Config, session *Session, rng Source, bus *EventBus) (*Round, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("%w: nil session", ErrInvalidConfig)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	r := &Round{
		cfg:     cfg,
		session: session,
		rng:     rng,
		bus:     bus,
		clock:   NewClock(cfg.BaseRate),
	}
	r.clock.SetMaxSteps(cfg.MaxCatchUp)
	r.reset()
	r.phase = PhaseNotStarted
	return r, nil
}

// reset replaces the snake, queue, food and score with fresh values.
func (r *Round) reset() {
	r.snake = NewSnake(r.cfg.Start, r.cfg.Heading)
	r.queue.Clear()
	r.score = 0
	r.clock.SetRate(r.cfg.BaseRate)
	r.food = r.mustPlaceFood()
}

// Start pins the clock reference time. Frame calls it implicitly on first use.
func (r *Round) Start(nowMillis int64) { r.clock.Start(nowMillis) }

// Frame runs one frame of the pipeline against an already sampled input:
// phase transitions, direction queueing, then every due logical step.
// It returns true when the quit key was just pressed.
func (r *Round) Frame(nowMillis int64, in *Input) (quit bool) {
	if in.IsJustPressed(KeyQuit) {
		quit = true
		r.emit(EventQuit)
	}
	r.handleInput(in)

	r.clock.Advance(nowMillis)
	steps := r.clock.DueSteps()
	for i := 0; i < steps && r.phase == PhaseRunning; i++ {
		r.Step()
	}
	r.clock.Consume()
	return quit
}

func (r *Round) handleInput(in *Input) {
	switch r.phase {
	case PhaseNotStarted:
		if in.IsJustPressed(KeyConfirm) {
			r.phase = PhaseRunning
			r.emit(EventRoundStarted)
		}
	case PhaseEnded:
		if in.IsJustPressed(KeyConfirm) {
			r.reset()
			r.phase = PhaseRunning
			r.emit(EventRoundStarted)
		}
	case PhaseRunning:
		r.queue.EnqueuePressed(in)
	}
}

// Step runs one logical step. It is a no-op unless the round is running.
func (r *Round) Step() {
	if r.phase != PhaseRunning {
		return
	}
	if d, ok := r.queue.Next(r.snake.Heading()); ok {
		r.snake.SetDirection(d)
	}
	r.snake.Move()

	if r.snake.Head() == r.food {
		r.snake.Grow()
		r.score += r.cfg.PointsPerFood
		r.session.Record(r.score)
		r.clock.SetRate(r.clock.Rate() + r.cfg.RateStep)
		r.food = r.mustPlaceFood()
		r.emit(EventFoodEaten)
	}

	if r.snake.CheckSelfCollision() || r.snake.OutOfBounds(r.cfg.Width, r.cfg.Height) {
		r.phase = PhaseEnded
		r.clock.SetRate(r.cfg.BaseRate)
		r.emit(EventRoundEnded)
	}
}

func (r *Round) emit(t EventType) {
	r.bus.Emit(Event{
		Type:      t,
		Cell:      r.snake.Head(),
		Score:     r.score,
		HighScore: r.session.HighScore(),
		Rate:      r.clock.Rate(),
	})
}

// mustPlaceFood panics when the grid has no free cell; play never fills it.
func (r *Round) mustPlaceFood() Cell {
	c, err := PlaceFood(r.rng, r.cfg.Width, r.cfg.Height, r.snake)
	if err != nil {
		panic(err)
	}
	return c
}

// PlaceFood samples uniform cells until one is not occupied by s.
// It returns ErrGridFull when s covers every cell.
func PlaceFood(rng Source, w, h int, s *Snake) (Cell, error) {
	if s.Len() >= w*h {
		return Cell{}, fmt.Errorf("place food on %dx%d grid with %d occupied cells: %w", w, h, s.Len(), ErrGridFull)
	}
	for {
		c := Cell{X: rng.Intn(w), Y: rng.Intn(h)}
		if !s.Occupies(c) {
			return c, nil
		}
	}
}

// Phase returns the current lifecycle phase.
func (r *Round) Phase() Phase { return r.phase }

// Score returns the points earned this round.
func (r *Round) Score() int { return r.score }

// HighScore returns the session best.
func (r *Round) HighScore() int { return r.session.HighScore() }

// Food returns the cell holding the food.
func (r *Round) Food() Cell { return r.food }

// Rate returns the current steps per second.
func (r *Round) Rate() float64 { return r.clock.Rate() }

// Snake returns the live snake. Callers must not mutate it.
func (r *Round) Snake() *Snake { return r.snake }

// Config returns the validated configuration the round was built with.
func (r *Round) Config() Config { return r.cfg }

// QueueLen returns the number of direction intents not yet applied.
func (r *Round) QueueLen() int { return r.queue.Len() }

// Snapshot copies the state presentation needs for one frame.
func (r *Round) Snapshot() Snapshot {
	return Snapshot{
		Width:     r.cfg.Width,
		Height:    r.cfg.Height,
		Body:      slices.Clone(r.snake.Body()),
		Food:      r.food,
		Phase:     r.phase,
		Score:     r.score,
		HighScore: r.session.HighScore(),
		Rate:      r.clock.Rate(),
	}
}

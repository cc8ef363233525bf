// Package term runs the game in a terminal through tcell.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"lurch/internal/sim"
)

// FrameRate is the default presentation rate in frames per second.
const FrameRate = 60

// ReleaseAfter is how long a key stays held without a repeat event. It
// spans the auto-repeat delay so a held key never re-fires.
const ReleaseAfter = 500 * time.Millisecond

// Terminal is the window, key source and presenter for a tcell screen.
//
// Terminals report presses and auto-repeats but never releases. A key is
// held while its events keep arriving within ReleaseAfter, and only the most
// recent key repeats, so any event releases every other key.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	now    func() time.Time

	down   sim.KeySet // keys held on the current frame
	seen   sim.KeySet // keys with an event since the previous frame
	last   sim.Key    // most recent key, held until ReleaseAfter lapses
	lastAt time.Time
	active bool
	closed bool

	frame time.Duration
	next  time.Time
}

// New wraps an initialised screen and starts pumping its events.
func New(screen tcell.Screen, fps int) *Terminal {
	if fps <= 0 {
		fps = FrameRate
	}
	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
		now:    time.Now,
		frame:  time.Second / time.Duration(fps),
	}
	screen.HideCursor()
	go t.pump()
	return t
}

func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Stop ends the event pump. Call it before finalising the screen.
func (t *Terminal) Stop() { close(t.done) }

// ShouldClose reports whether Close was called.
func (t *Terminal) ShouldClose() bool { return t.closed }

// Close asks the frame loop to stop after the current frame.
func (t *Terminal) Close() { t.closed = true }

// Refresh shows the frame, sleeps to the next frame boundary, then collects
// the key events that arrived meanwhile.
func (t *Terminal) Refresh() {
	t.screen.Show()

	now := time.Now()
	if t.next.IsZero() {
		t.next = now
	}
	t.next = t.next.Add(t.frame)
	if d := t.next.Sub(now); d > 0 {
		time.Sleep(d)
	} else {
		t.next = now
	}
	t.drain()
}

// drain collects pending events and recomputes the held set. Every key
// seen this frame is held, so distinct keys typed within one frame all
// register.
func (t *Terminal) drain() {
	t.seen = 0
	for {
		select {
		case ev := <-t.events:
			t.handle(ev)
		default:
			t.settle()
			return
		}
	}
}

func (t *Terminal) settle() {
	t.down = t.seen
	if !t.active {
		return
	}
	if t.now().Sub(t.lastAt) >= ReleaseAfter {
		t.active = false
		return
	}
	t.down = t.down.With(t.last)
}

func (t *Terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if k, ok := translate(ev.Key(), ev.Rune()); ok {
			t.seen = t.seen.With(k)
			t.last = k
			t.lastAt = t.now()
			t.active = true
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

// KeyDown reports whether k is held on the current frame.
func (t *Terminal) KeyDown(k sim.Key) bool { return t.down.Has(k) }

func translate(key tcell.Key, r rune) (sim.Key, bool) {
	switch key {
	case tcell.KeyUp:
		return sim.KeyUp, true
	case tcell.KeyDown:
		return sim.KeyDown, true
	case tcell.KeyLeft:
		return sim.KeyLeft, true
	case tcell.KeyRight:
		return sim.KeyRight, true
	case tcell.KeyEnter:
		return sim.KeyConfirm, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return sim.KeyQuit, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'k':
			return sim.KeyUp, true
		case 's', 'j':
			return sim.KeyDown, true
		case 'a', 'h':
			return sim.KeyLeft, true
		case 'd', 'l':
			return sim.KeyRight, true
		case ' ':
			return sim.KeyConfirm, true
		case 'q':
			return sim.KeyQuit, true
		}
	}
	return 0, false
}

// Run drives r on the controlling terminal until quit.
func Run(r *sim.Round) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	t := New(screen, FrameRate)
	defer t.Stop()

	now := func() int64 { return time.Now().UnixMilli() }
	sim.Loop(t, t, t, r, now)
	return nil
}

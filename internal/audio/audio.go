// Package audio plays short procedural sound effects through oto.
package audio

import (
	"io"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"lurch/internal/sim"
)

// Output format: interleaved stereo float32.
const (
	SampleRate   = 44100
	ChannelCount = 2
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundEat SoundKind = iota
	SoundStart
	SoundGameOver
)

// System owns the oto context. A nil *System is silent.
type System struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
}

// New opens the default output device.
func New() (*System, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &System{ctx: ctx, ready: ready, volume: 0.58}, nil
}

// Attach plays a sound for each round event on bus.
func (s *System) Attach(bus *sim.EventBus) {
	if s == nil || bus == nil {
		return
	}
	bus.Subscribe(sim.EventFoodEaten, func(e sim.Event) { s.Play(SoundEat, e) })
	bus.Subscribe(sim.EventRoundStarted, func(e sim.Event) { s.Play(SoundStart, e) })
	bus.Subscribe(sim.EventRoundEnded, func(e sim.Event) { s.Play(SoundGameOver, e) })
}

// Play voices kind for e on its own player and returns immediately. Sounds
// requested before the device is ready are dropped.
func (s *System) Play(kind SoundKind, e sim.Event) {
	if s == nil {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}
	samples := generateSound(kind, e)
	if len(samples) == 0 {
		return
	}
	go func() {
		player := s.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(s.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// generateSound renders kind for e. The eat chirp rises with e.Rate and the
// game-over fall lengthens with e.Score.
func generateSound(kind SoundKind, e sim.Event) []byte {
	switch kind {
	case SoundEat:
		return genEat(e.Rate)
	case SoundStart:
		return genStart()
	case SoundGameOver:
		return genGameOver(e.Score)
	}
	return nil
}

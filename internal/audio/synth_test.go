package audio

import (
	"io"
	"math"
	"testing"

	"lurch/internal/sim"
)

func sample(buf []byte, i int) float32 {
	o := i * 4
	bits := uint32(buf[o]) | uint32(buf[o+1])<<8 | uint32(buf[o+2])<<16 | uint32(buf[o+3])<<24
	return math.Float32frombits(bits)
}

func TestGenerateSoundLengths(t *testing.T) {
	tests := []struct {
		kind SoundKind
		ev   sim.Event
		secs float64
	}{
		{SoundEat, sim.Event{Rate: sim.BaseRate}, eatSecs},
		{SoundGameOver, sim.Event{Score: 0}, overMinSecs},
		{SoundGameOver, sim.Event{Score: 1000 * sim.PointsPerFood}, overMaxSecs},
	}
	for _, tt := range tests {
		buf := generateSound(tt.kind, tt.ev)
		want := frames(tt.secs) * ChannelCount * 4
		if len(buf) != want {
			t.Errorf("kind %d score %d: expected %d bytes, got %d", tt.kind, tt.ev.Score, want, len(buf))
		}
	}
	if len(generateSound(SoundStart, sim.Event{})) == 0 {
		t.Errorf("Expected start chime samples")
	}
	if generateSound(SoundKind(99), sim.Event{}) != nil {
		t.Errorf("Expected nil for unknown sound")
	}
}

func TestGameOverLengthFollowsScore(t *testing.T) {
	tests := []struct {
		score int
		want  float64
	}{
		{-10, overMinSecs},
		{0, overMinSecs},
		{5 * sim.PointsPerFood, overMinSecs + 5*overPerFood},
		{5*sim.PointsPerFood + 3, overMinSecs + 5*overPerFood},
		{1000 * sim.PointsPerFood, overMaxSecs},
	}
	for _, tt := range tests {
		if got := overSecs(tt.score); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("overSecs(%d): expected %v, got %v", tt.score, tt.want, got)
		}
	}
}

func TestEatPitchFollowsRate(t *testing.T) {
	tests := []struct {
		rate float64
		want float64
	}{
		{0, eatBaseFreq},
		{sim.BaseRate, eatBaseFreq},
		{sim.BaseRate * 2, eatBaseFreq * math.Sqrt(2)},
		{sim.BaseRate * 100, eatBaseFreq * math.Sqrt(eatMaxRatio)},
	}
	for _, tt := range tests {
		if got := eatPitch(tt.rate); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("eatPitch(%v): expected %v, got %v", tt.rate, tt.want, got)
		}
	}
	if eatPitch(sim.BaseRate+sim.RateStep) <= eatPitch(sim.BaseRate) {
		t.Errorf("Expected a faster round to raise the eat pitch")
	}
}

func TestSamplesInRange(t *testing.T) {
	events := []sim.Event{{Rate: sim.BaseRate}, {Rate: sim.BaseRate * 10, Score: 300}}
	for _, kind := range []SoundKind{SoundEat, SoundStart, SoundGameOver} {
		for _, e := range events {
			buf := generateSound(kind, e)
			for i := 0; i < len(buf)/4; i++ {
				v := sample(buf, i)
				if v < -1 || v > 1 || math.IsNaN(float64(v)) {
					t.Fatalf("kind %d: sample %d out of range: %v", kind, i, v)
				}
			}
		}
	}
}

func TestSoundsStartAndEndQuiet(t *testing.T) {
	for _, kind := range []SoundKind{SoundEat, SoundStart, SoundGameOver} {
		buf := generateSound(kind, sim.Event{Rate: sim.BaseRate})
		last := len(buf)/4 - 1
		if v := sample(buf, 0); v != 0 {
			t.Errorf("kind %d: expected silent first sample, got %v", kind, v)
		}
		if v := sample(buf, last); math.Abs(float64(v)) > 0.01 {
			t.Errorf("kind %d: expected near-silent last sample, got %v", kind, v)
		}
	}
}

func TestOscillatorWaveforms(t *testing.T) {
	var o osc
	if got := o.triangle(SampleRate / 4); got != 1 {
		t.Errorf("triangle at phase 0: expected 1, got %v", got)
	}
	if got := o.triangle(SampleRate / 4); got != 0 {
		t.Errorf("triangle at phase 1/4: expected 0, got %v", got)
	}
	if got := o.triangle(SampleRate / 4); got != -1 {
		t.Errorf("triangle at phase 1/2: expected -1, got %v", got)
	}

	var p osc
	if got := p.pulse(SampleRate/4, 0.3); got != 1 {
		t.Errorf("pulse at phase 0: expected 1, got %v", got)
	}
	if got := p.pulse(SampleRate/4, 0.3); got != 1 {
		t.Errorf("pulse at phase 1/4 with duty 0.3: expected 1, got %v", got)
	}
	if got := p.pulse(SampleRate/4, 0.3); got != -1 {
		t.Errorf("pulse at phase 1/2 with duty 0.3: expected -1, got %v", got)
	}
}

func TestSoundReaderDrains(t *testing.T) {
	r := &soundReader{data: []byte{1, 2, 3, 4, 5}}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("Expected 5 bytes, got %d", len(got))
	}
}

func TestNilSystemIsSilent(t *testing.T) {
	var s *System
	s.Play(SoundEat, sim.Event{})
	s.Attach(nil)
}

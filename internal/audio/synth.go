package audio

import (
	"math"

	"lurch/internal/sim"
)

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < ChannelCount; ch++ {
		o := i*8 + ch*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// frames is the frame count for secs of audio.
func frames(secs float64) int { return int(secs * SampleRate) }

// render clips and encodes a mono mix into a stereo buffer.
func render(mix []float64) []byte {
	buf := make([]byte, len(mix)*ChannelCount*4)
	for i, s := range mix {
		putStereoF32(buf, i, math.Tanh(s))
	}
	return buf
}

// osc is a phase accumulator, so frequency can change per sample without
// discontinuities.
type osc struct{ phase float64 }

func (o *osc) advance(freq float64) float64 {
	p := o.phase
	o.phase += freq / SampleRate
	o.phase -= math.Floor(o.phase)
	return p
}

func (o *osc) triangle(freq float64) float64 {
	p := o.advance(freq)
	return 4*math.Abs(p-0.5) - 1
}

func (o *osc) pulse(freq, duty float64) float64 {
	if o.advance(freq) < duty {
		return 1
	}
	return -1
}

// pluck is an envelope with a linear attack of a seconds and an
// exponential tail with time constant tau.
func pluck(t, a, tau float64) float64 {
	if t < a {
		return t / a
	}
	return math.Exp(-(t - a) / tau)
}

// fadeOut ramps the last d seconds of an n-frame sound to zero.
func fadeOut(i, n int, d float64) float64 {
	left := float64(n-i) / SampleRate
	if left >= d {
		return 1
	}
	return left / d
}

const (
	eatSecs      = 0.08
	eatBaseFreq  = 520.0
	eatMaxRatio  = 3.0
	overMinSecs  = 0.5
	overPerFood  = 0.02
	overMaxSecs  = 0.9
	overFromFreq = 440.0
	overToFreq   = 110.0
)

// eatPitch is the chirp's start frequency, rising with the step rate up to
// eatMaxRatio times the base.
func eatPitch(rate float64) float64 {
	ratio := rate / sim.BaseRate
	ratio = min(max(ratio, 1), eatMaxRatio)
	return eatBaseFreq * math.Sqrt(ratio)
}

// genEat: triangle chirp sweeping up a fifth, pitched by the current rate.
func genEat(rate float64) []byte {
	n := frames(eatSecs)
	from := eatPitch(rate)
	var o osc
	mix := make([]float64, n)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		freq := from * (1 + 0.5*p)
		mix[i] = o.triangle(freq) * pluck(t, 0.003, 0.03) * fadeOut(i, n, 0.01) * 0.7
	}
	return render(mix)
}

// genStart: three-note triangle arpeggio, C5 E5 G5.
func genStart() []byte {
	notes := []float64{523.25, 659.25, 783.99}
	step := frames(0.06)
	n := len(notes)*step + frames(0.15)
	mix := make([]float64, n)
	for ni, freq := range notes {
		var o osc
		for i := ni * step; i < n; i++ {
			t := float64(i-ni*step) / SampleRate
			mix[i] += o.triangle(freq) * pluck(t, 0.004, 0.07) * 0.35
		}
	}
	for i := range mix {
		mix[i] *= fadeOut(i, n, 0.02)
	}
	return render(mix)
}

// overSecs is the game-over length for a final score: longer falls for
// longer rounds.
func overSecs(score int) float64 {
	eaten := max(score, 0) / sim.PointsPerFood
	return min(overMinSecs+float64(eaten)*overPerFood, overMaxSecs)
}

// genGameOver: pulse glissando falling two octaves with a slow vibrato.
func genGameOver(score int) []byte {
	dur := overSecs(score)
	n := frames(dur)
	var lead, sub osc
	mix := make([]float64, n)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		freq := overFromFreq * math.Pow(overToFreq/overFromFreq, p)
		freq *= 1 + 0.015*math.Sin(2*math.Pi*6*t)
		env := pluck(t, 0.01, dur/2) * fadeOut(i, n, 0.05)
		mix[i] = (lead.pulse(freq, 0.3)*0.25 + sub.triangle(freq/2)*0.3) * env
	}
	return render(mix)
}

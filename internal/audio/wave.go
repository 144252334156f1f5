package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Waveform selects an oscillator shape.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSawtooth
	WaveTriangle
)

func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	case WaveSawtooth:
		return "sawtooth"
	case WaveTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// sample evaluates the waveform at phase p in [0, 1).
func (w Waveform) sample(p float64) float64 {
	switch w {
	case WaveSquare:
		if p < 0.5 {
			return 1
		}
		return -1
	case WaveSawtooth:
		return 2*p - 1
	case WaveTriangle:
		return 1 - 4*math.Abs(p-0.5)
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// oscillator is a mono wave generator written to both channels.
// A negative remaining count runs forever.
type oscillator struct {
	wave      Waveform
	phase     float64
	step      float64
	remaining int
}

func newOscillator(sr beep.SampleRate, freq float64, d time.Duration, wave Waveform) *oscillator {
	remaining := -1
	if d > 0 {
		remaining = sr.N(d)
	}
	return &oscillator{
		wave:      wave,
		step:      freq / float64(sr),
		remaining: remaining,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.remaining == 0 {
			return i, i > 0
		}
		v := o.wave.sample(o.phase)
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.step
		o.phase -= math.Floor(o.phase)
		if o.remaining > 0 {
			o.remaining--
		}
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay scales a finite stream by a gain that ramps exponentially from
// start to end over total samples.
type decay struct {
	streamer beep.Streamer
	start    float64
	ratio    float64 // end / start
	total    int
	pos      int
}

func newDecay(s beep.Streamer, total int, start, end float64) *decay {
	ratio := 0.0
	if start > 0 {
		ratio = end / start
	}
	return &decay{streamer: s, start: start, ratio: ratio, total: max(total, 1)}
}

func (d *decay) gain() float64 {
	return d.start * math.Pow(d.ratio, float64(d.pos)/float64(d.total))
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := range n {
		g := d.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newBeep builds a short tone whose gain falls from vol to the release floor.
func newBeep(sr beep.SampleRate, freq float64, d time.Duration, wave Waveform, vol float64) beep.Streamer {
	osc := newOscillator(sr, freq, d, wave)
	return newDecay(osc, sr.N(d), vol, releaseFloor)
}

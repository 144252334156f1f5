package audio

import (
	"errors"
	"io"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/neon-arcade/internal/config"
)

// fakeOutput records streamers instead of playing them.
type fakeOutput struct {
	mu      sync.Mutex
	initErr error
	inits   int
	closed  bool
	played  []beep.Streamer
	rate    beep.SampleRate
	buffer  int
}

func (f *fakeOutput) Init(sr beep.SampleRate, bufferSize int) error {
	f.inits++
	f.rate = sr
	f.buffer = bufferSize
	return f.initErr
}

func (f *fakeOutput) Play(s ...beep.Streamer) { f.played = append(f.played, s...) }
func (f *fakeOutput) Lock()                   { f.mu.Lock() }
func (f *fakeOutput) Unlock()                 { f.mu.Unlock() }
func (f *fakeOutput) Close()                  { f.closed = true }

// drain reads s to the end and returns every left-channel sample.
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for range 1000 {
		n, ok := s.Stream(buf)
		for i := range n {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("streamer did not finish")
	return nil
}

func newTestManager(t *testing.T, mute MuteState) (*Manager, *fakeOutput) {
	t.Helper()
	out := &fakeOutput{}
	m := NewManager(config.DefaultAudioConfig(), mute,
		WithOutput(out),
		WithLogger(log.New(io.Discard)),
	)
	if err := m.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return m, out
}

func TestInitIdempotent(t *testing.T) {
	m, out := newTestManager(t, nil)

	if err := m.Init(); err != nil {
		t.Fatalf("second Init: %v", err)
	}
	if out.inits != 1 {
		t.Errorf("device opened %d times, expected 1", out.inits)
	}
	if out.rate != 44100 {
		t.Errorf("sample rate = %d, expected 44100", out.rate)
	}
	if out.buffer != beep.SampleRate(44100).N(33*time.Millisecond) {
		t.Errorf("buffer = %d samples", out.buffer)
	}
	if !m.Initialized() {
		t.Error("manager should be initialized")
	}
}

func TestInitFailureLeavesManagerSilent(t *testing.T) {
	out := &fakeOutput{initErr: errors.New("no device")}
	m := NewManager(config.DefaultAudioConfig(), nil, WithOutput(out), WithLogger(log.New(io.Discard)))

	if err := m.Init(); err == nil {
		t.Fatal("expected init error")
	}
	if m.Initialized() {
		t.Fatal("failed init should leave the manager uninitialized")
	}

	m.PlayRotate()
	m.PlayLock()
	m.PlayClear(2)
	m.PlayTSpin()
	m.PlayMusic()
	m.ResumeMusic()
	m.Close()

	if len(out.played) != 0 {
		t.Errorf("uninitialized manager played %d streams", len(out.played))
	}
	if m.MusicPlaying() {
		t.Error("music should not start without a device")
	}
}

func TestDisabledConfigSkipsDevice(t *testing.T) {
	cfg := config.DefaultAudioConfig()
	cfg.Enabled = false
	out := &fakeOutput{}
	m := NewManager(cfg, nil, WithOutput(out), WithLogger(log.New(io.Discard)))

	if err := m.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if out.inits != 0 {
		t.Error("disabled audio should not open the device")
	}
	m.PlayLock()
	if len(out.played) != 0 {
		t.Error("disabled audio should not play")
	}
}

func TestCueDurations(t *testing.T) {
	sr := beep.SampleRate(44100)

	tests := []struct {
		name string
		play func(m *Manager)
		dur  time.Duration
	}{
		{"rotate", (*Manager).PlayRotate, 50 * time.Millisecond},
		{"lock", (*Manager).PlayLock, 100 * time.Millisecond},
		{"clear", func(m *Manager) { m.PlayClear(1) }, 150 * time.Millisecond},
		{"tspin", (*Manager).PlayTSpin, 200 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, out := newTestManager(t, nil)
			tc.play(m)

			if len(out.played) != 1 {
				t.Fatalf("expected one stream, got %d", len(out.played))
			}
			samples := drain(t, out.played[0])
			if len(samples) != sr.N(tc.dur) {
				t.Errorf("stream length = %d samples, expected %d", len(samples), sr.N(tc.dur))
			}
		})
	}
}

func TestBeepEnvelope(t *testing.T) {
	m, out := newTestManager(t, nil)
	m.PlayLock() // square wave, so every sample sits on the envelope

	samples := drain(t, out.played[0])
	if math.Abs(samples[0]-0.5) > 1e-9 {
		t.Errorf("first sample = %v, expected sfx volume 0.5", samples[0])
	}

	last := math.Abs(samples[len(samples)-1])
	if last > 0.011 || last < 0.009 {
		t.Errorf("last sample = %v, expected about 0.01", last)
	}

	prev := math.Inf(1)
	for i, s := range samples {
		if a := math.Abs(s); a > prev+1e-12 {
			t.Fatalf("envelope rises at sample %d: %v > %v", i, a, prev)
		} else {
			prev = a
		}
	}
}

func TestClearPitchRisesWithLines(t *testing.T) {
	tests := []struct {
		lines int
		freq  float64
	}{
		{0, 400},
		{1, 500},
		{4, 800},
	}
	for _, tc := range tests {
		if got := clearTone(tc.lines).Freq; got != tc.freq {
			t.Errorf("clearTone(%d) = %v Hz, expected %v", tc.lines, got, tc.freq)
		}
	}
}

func TestMutedSkipsEffects(t *testing.T) {
	mute := NewMuteFlag(true)
	m, out := newTestManager(t, mute)

	m.PlayRotate()
	m.PlayClear(3)
	m.PlayMusic()
	if len(out.played) != 0 {
		t.Fatalf("muted manager played %d streams", len(out.played))
	}

	mute.Set(false)
	m.PlayRotate()
	if len(out.played) != 1 {
		t.Errorf("unmuted manager should play, got %d streams", len(out.played))
	}
}

func TestMusicLifecycle(t *testing.T) {
	m, out := newTestManager(t, nil)
	want := 0.3 * 0.3

	m.PlayMusic()
	m.PlayMusic()
	if len(out.played) != 1 {
		t.Fatalf("PlayMusic should start one drone, got %d streams", len(out.played))
	}
	if math.Abs(m.MusicGain()-want) > 1e-9 {
		t.Errorf("music gain = %v, expected %v", m.MusicGain(), want)
	}

	m.PauseMusic()
	if m.MusicGain() != 0 || !m.MusicPlaying() {
		t.Errorf("paused drone should be silent but alive, gain=%v", m.MusicGain())
	}

	m.ResumeMusic()
	if math.Abs(m.MusicGain()-want) > 1e-9 {
		t.Errorf("resumed gain = %v, expected %v", m.MusicGain(), want)
	}

	drone := out.played[0]
	m.StopMusic()
	if m.MusicPlaying() {
		t.Error("music should be stopped")
	}
	buf := make([][2]float64, 16)
	if n, ok := drone.Stream(buf); n != 0 || ok {
		t.Error("stopped drone should drain from the output")
	}

	// Resume with nothing playing starts a new drone
	m.ResumeMusic()
	if !m.MusicPlaying() || len(out.played) != 2 {
		t.Error("ResumeMusic should start music when stopped")
	}
}

func TestMusicIsAudible(t *testing.T) {
	m, out := newTestManager(t, nil)
	m.PlayMusic()

	buf := make([][2]float64, 4410)
	n, ok := out.played[0].Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("drone should stream continuously, n=%d ok=%v", n, ok)
	}
	peak := 0.0
	for _, s := range buf {
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if peak == 0 || peak > 2*0.09+1e-9 {
		t.Errorf("drone peak = %v, expected (0, 0.18]", peak)
	}
}

func TestSetMuted(t *testing.T) {
	mute := NewMuteFlag(false)
	m, _ := newTestManager(t, mute)
	m.PlayMusic()

	mute.Set(true)
	m.SetMuted(true)
	if m.MusicGain() != 0 {
		t.Error("muting should silence music")
	}

	// Resuming while still muted keeps the drone silent
	m.ResumeMusic()
	if m.MusicGain() != 0 {
		t.Error("ResumeMusic must respect mute")
	}

	mute.Set(false)
	m.SetMuted(false)
	if m.MusicGain() == 0 {
		t.Error("unmuting should restore music")
	}
}

func TestCloseStopsEverything(t *testing.T) {
	m, out := newTestManager(t, nil)
	m.PlayMusic()
	m.Close()

	if !out.closed {
		t.Error("device should be closed")
	}
	if m.Initialized() || m.MusicPlaying() {
		t.Error("closed manager should be idle")
	}
	m.PlayRotate()
	if len(out.played) != 1 {
		t.Error("closed manager should not play")
	}
}

func TestMuteFlagToggle(t *testing.T) {
	f := NewMuteFlag(false)
	if !f.Toggle() || !f.IsMuted() {
		t.Error("toggle should mute")
	}
	if f.Toggle() || f.IsMuted() {
		t.Error("toggle should unmute")
	}
}

func TestWaveforms(t *testing.T) {
	tests := []struct {
		wave  Waveform
		phase float64
		want  float64
	}{
		{WaveSine, 0.25, 1},
		{WaveSine, 0.75, -1},
		{WaveSquare, 0.1, 1},
		{WaveSquare, 0.6, -1},
		{WaveSawtooth, 0, -1},
		{WaveSawtooth, 0.5, 0},
		{WaveTriangle, 0.5, 1},
		{WaveTriangle, 0, -1},
	}
	for _, tc := range tests {
		if got := tc.wave.sample(tc.phase); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%s(%v) = %v, expected %v", tc.wave, tc.phase, got, tc.want)
		}
	}
}

// Package audio synthesizes the arcade's sound effects and ambient music.
//
// Every sound is generated from oscillators at play time; there are no audio
// assets. The cue names (rotate, lock, clear, t-spin) are shared by every
// game in the arcade and mapped to game events by the platform layer.
package audio

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/neon-arcade/internal/config"
)

const (
	// releaseFloor is the gain every beep decays to.
	releaseFloor = 0.01

	// musicMix scales musicVolume for the ambient drone.
	musicMix = 0.3

	musicRootHz  = 220 // A3
	musicFifthHz = 330 // E4
)

// Cue names a procedural sound effect.
type Cue string

const (
	CueRotate Cue = "rotate"
	CueLock   Cue = "lock"
	CueClear  Cue = "clear"
	CueTSpin  Cue = "tspin"
)

// tone describes one oscillator beep.
type tone struct {
	Freq     float64
	Duration time.Duration
	Wave     Waveform
}

// clearTone returns the line-clear beep, pitched up 100 Hz per line.
func clearTone(lines int) tone {
	return tone{Freq: 400 + float64(lines)*100, Duration: 150 * time.Millisecond, Wave: WaveSine}
}

func defaultCues() map[Cue]tone {
	return map[Cue]tone{
		CueRotate: {Freq: 200, Duration: 50 * time.Millisecond, Wave: WaveSine},
		CueLock:   {Freq: 150, Duration: 100 * time.Millisecond, Wave: WaveSquare},
		CueClear:  {Freq: 400, Duration: 150 * time.Millisecond, Wave: WaveSine},
		CueTSpin:  {Freq: 600, Duration: 200 * time.Millisecond, Wave: WaveTriangle},
	}
}

// MuteState reports whether sound is muted. It is owned by the caller.
type MuteState interface {
	IsMuted() bool
}

// MuteFlag is a MuteState safe for use across goroutines.
type MuteFlag struct {
	muted atomic.Bool
}

// NewMuteFlag returns a flag with the given initial value.
func NewMuteFlag(muted bool) *MuteFlag {
	f := &MuteFlag{}
	f.muted.Store(muted)
	return f
}

// IsMuted implements MuteState.
func (f *MuteFlag) IsMuted() bool { return f.muted.Load() }

// Set updates the flag.
func (f *MuteFlag) Set(muted bool) { f.muted.Store(muted) }

// Toggle flips the flag and returns the new value.
func (f *MuteFlag) Toggle() bool {
	for {
		old := f.muted.Load()
		if f.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// music is the running ambient drone.
type music struct {
	ctrl   *beep.Ctrl
	volume *effects.Volume
}

// Manager plays procedural sounds. All methods are safe to call on an
// uninitialized manager; they do nothing until Init succeeds.
type Manager struct {
	mu sync.Mutex

	cfg    config.AudioConfig
	mute   MuteState
	out    Output
	logger *log.Logger

	sampleRate  beep.SampleRate
	initialized bool
	cues        map[Cue]tone
	music       *music
}

// Option configures a Manager.
type Option func(*Manager)

// WithOutput replaces the system speaker.
func WithOutput(out Output) Option {
	return func(m *Manager) { m.out = out }
}

// WithLogger sets the logger used for device errors.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// NewManager creates a manager reading mute from mute. A nil mute is never muted.
func NewManager(cfg config.AudioConfig, mute MuteState, opts ...Option) *Manager {
	if mute == nil {
		mute = NewMuteFlag(false)
	}
	m := &Manager{
		cfg:    cfg,
		mute:   mute,
		out:    Speaker(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init opens the output device and generates the cue set. It is idempotent.
// A device error is logged and returned; the manager then stays silent.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if !m.cfg.Enabled {
		m.logger.Debug("audio disabled by config")
		return nil
	}

	sr := beep.SampleRate(m.cfg.SampleRate)
	if sr <= 0 {
		sr = beep.SampleRate(44100)
	}
	buffer := sr.N(time.Duration(max(m.cfg.BufferMillis, 1)) * time.Millisecond)

	if err := m.out.Init(sr, buffer); err != nil {
		m.logger.Warn("audio unavailable, continuing without sound", "err", err)
		return fmt.Errorf("audio: init output: %w", err)
	}

	m.sampleRate = sr
	m.cues = defaultCues()
	m.initialized = true
	m.logger.Debug("audio initialized", "sample_rate", int(sr), "buffer", buffer)
	return nil
}

// Close stops all sound and releases the device.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.stopMusicLocked()
	m.out.Close()
	m.initialized = false
}

// Initialized reports whether the device is open.
func (m *Manager) Initialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// PlayRotate plays the short rotate blip.
func (m *Manager) PlayRotate() { m.playCue(CueRotate) }

// PlayLock plays the low square-wave thud.
func (m *Manager) PlayLock() { m.playCue(CueLock) }

// PlayTSpin plays the triangle-wave chime.
func (m *Manager) PlayTSpin() { m.playCue(CueTSpin) }

// PlayClear plays the clear beep pitched by the number of lines.
func (m *Manager) PlayClear(lines int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.cues[CueClear]; !ok || !m.canPlayLocked() {
		return
	}
	m.playToneLocked(clearTone(lines))
}

func (m *Manager) playCue(c Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.cues[c]
	if !ok || !m.canPlayLocked() {
		return
	}
	m.playToneLocked(t)
}

func (m *Manager) canPlayLocked() bool {
	return m.initialized && !m.mute.IsMuted()
}

func (m *Manager) playToneLocked(t tone) {
	m.out.Play(newBeep(m.sampleRate, t.Freq, t.Duration, t.Wave, m.cfg.SFXVolume))
}

// PlayMusic starts the ambient drone unless it is already playing.
func (m *Manager) PlayMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playMusicLocked()
}

func (m *Manager) playMusicLocked() {
	if !m.canPlayLocked() || m.music != nil {
		return
	}

	drone := beep.Mix(
		newOscillator(m.sampleRate, musicRootHz, 0, WaveSine),
		newOscillator(m.sampleRate, musicFifthHz, 0, WaveSine),
	)
	vol := &effects.Volume{Streamer: drone, Base: 2}
	setGain(vol, m.musicGain())

	m.music = &music{
		ctrl:   &beep.Ctrl{Streamer: vol},
		volume: vol,
	}
	m.out.Play(m.music.ctrl)
}

// StopMusic ends the drone. A later PlayMusic starts a fresh one.
func (m *Manager) StopMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopMusicLocked()
}

func (m *Manager) stopMusicLocked() {
	if m.music == nil {
		return
	}
	m.out.Lock()
	m.music.ctrl.Streamer = nil
	m.out.Unlock()
	m.music = nil
}

// PauseMusic silences the drone without stopping it.
func (m *Manager) PauseMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauseMusicLocked()
}

func (m *Manager) pauseMusicLocked() {
	if m.music == nil {
		return
	}
	m.out.Lock()
	setGain(m.music.volume, 0)
	m.out.Unlock()
}

// ResumeMusic restores the drone's gain, starting it if needed. Muted managers stay silent.
func (m *Manager) ResumeMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resumeMusicLocked()
}

func (m *Manager) resumeMusicLocked() {
	if m.mute.IsMuted() {
		return
	}
	if m.music == nil {
		m.playMusicLocked()
		return
	}
	m.out.Lock()
	setGain(m.music.volume, m.musicGain())
	m.out.Unlock()
}

// SetMuted pauses or resumes the music to follow a mute change.
// The MuteState must already report the new value.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if muted {
		m.pauseMusicLocked()
	} else {
		m.resumeMusicLocked()
	}
}

// MusicPlaying reports whether a drone exists, paused or not.
func (m *Manager) MusicPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.music != nil
}

// MusicGain returns the drone's current linear gain, 0 when stopped or paused.
func (m *Manager) MusicGain() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.music == nil || m.music.volume.Silent {
		return 0
	}
	return math.Pow(m.music.volume.Base, m.music.volume.Volume)
}

func (m *Manager) musicGain() float64 {
	return m.cfg.MusicVolume * musicMix
}

// setGain sets a linear gain on an exponential volume effect.
func setGain(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(gain)
	v.Silent = false
}

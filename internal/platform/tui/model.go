package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/audio"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

// statusRows is the number of terminal rows reserved below the game.
const statusRows = 1

// maxClearPitch caps the combo passed to PlayClear so the cue stays audible.
const maxClearPitch = 8

// Sound is the audio surface the model drives. *audio.Manager implements it.
type Sound interface {
	PlayRotate()
	PlayLock()
	PlayClear(lines int)
	PlayTSpin()
	PlayMusic()
	StopMusic()
	PauseMusic()
	ResumeMusic()
	SetMuted(muted bool)
}

type silence struct{}

func (silence) PlayRotate()   {}
func (silence) PlayLock()     {}
func (silence) PlayClear(int) {}
func (silence) PlayTSpin()    {}
func (silence) PlayMusic()    {}
func (silence) StopMusic()    {}
func (silence) PauseMusic()   {}
func (silence) ResumeMusic()  {}
func (silence) SetMuted(bool) {}

// leveled is implemented by games that track a level number.
type leveled interface {
	Level() int
}

// Option configures a Model.
type Option func(*Model)

// WithStore enables high score tracking and saving.
func WithStore(store *storage.Store) Option {
	return func(m *Model) { m.store = store }
}

// WithSound plays game events through s, reading mute from mute.
func WithSound(s Sound, mute *audio.MuteFlag) Option {
	return func(m *Model) {
		m.sound = s
		m.mute = mute
		m.hasSound = true
	}
}

// WithSettings loads and persists mute and theme through the store.
func WithSettings() Option {
	return func(m *Model) { m.persistSettings = true }
}

// WithLogger sets the model's logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithScreenshotDir overrides where Ctrl+S writes screenshots.
func WithScreenshotDir(dir string) Option {
	return func(m *Model) { m.screenshotDir = dir }
}

// Model is the Bubble Tea model for running an arcade game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       *KeyMapper
	help       help.Model
	theme      Theme
	logger     *log.Logger

	sound    Sound
	mute     *audio.MuteFlag
	hasSound bool

	highScore       int
	storedHigh      int  // Best score known to be in the store
	scoreSaved      bool // Whether score has been saved for current game over
	persistSettings bool
	showHelp        bool
	screenshotDir   string
	lastShot        string
	quitting        bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ...Option) *Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := &Model{
		game:       game,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
		help:       help.New(),
		theme:      DarkTheme(),
		logger:     log.New(io.Discard),
		sound:      silence{},
		mute:       audio.NewMuteFlag(false),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.screen = core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH))
	m.config.ScreenH = gameRows(cfg.ScreenH)
	m.help.Width = cfg.ScreenW

	m.loadSettings()
	m.loadHighScore()
	m.game.Reset(m.config)
	m.gameState = m.game.State()

	return m
}

func gameRows(h int) int {
	return max(h-statusRows, 0)
}

func (m *Model) loadSettings() {
	if m.store == nil || !m.persistSettings {
		return
	}
	if name, ok, err := m.store.Setting(storage.SettingTheme); err != nil {
		m.logger.Warn("cannot load theme", "err", err)
	} else if ok {
		m.theme = ThemeByName(name)
	}

	muted, err := m.store.BoolSetting(storage.SettingMuted, m.mute.IsMuted())
	if err != nil {
		m.logger.Warn("cannot load mute setting", "err", err)
	}
	m.mute.Set(muted)
}

func (m *Model) loadHighScore() {
	if m.store == nil {
		return
	}
	high, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("cannot load high score", "game", m.game.ID(), "err", err)
		return
	}
	m.highScore = high
	m.storedHigh = high
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if p, ok := m.keys.MapMouse(msg, 0); ok {
			m.inputFrame.SetPointer(p)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.handleResize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.handleTick()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToFrame(msg, &m.inputFrame) {
	case CommandQuit:
		m.quitting = true
		m.saveUnfinishedRecord()
		m.sound.StopMusic()
		return m, tea.Quit
	case CommandMute:
		m.toggleMute()
	case CommandTheme:
		m.toggleTheme()
	case CommandScreenshot:
		m.saveScreenshot()
	case CommandHelp:
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) toggleMute() {
	muted := m.mute.Toggle()
	// Unmuting only brings the music back while a game is in play
	if muted || m.gameState.Running {
		m.sound.SetMuted(muted)
	}
	m.logger.Debug("mute toggled", "muted", muted)

	if m.store != nil && m.persistSettings {
		if err := m.store.SetBoolSetting(storage.SettingMuted, muted); err != nil {
			m.logger.Warn("cannot save mute setting", "err", err)
		}
	}
}

func (m *Model) toggleTheme() {
	m.theme = m.theme.Next()
	m.logger.Debug("theme changed", "theme", m.theme.Name)

	if m.store != nil && m.persistSettings {
		if err := m.store.SetSetting(storage.SettingTheme, m.theme.Name); err != nil {
			m.logger.Warn("cannot save theme", "err", err)
		}
	}
}

// handleResize keeps the game running; only the screen mapping changes.
func (m *Model) handleResize(width, height int) {
	m.config.ScreenW = width
	m.config.ScreenH = gameRows(height)
	m.screen.Resize(width, m.config.ScreenH)
	m.game.Resize(width, m.config.ScreenH)
	m.help.Width = width
}

// handleTick advances the game one step and reacts to its events.
func (m *Model) handleTick() {
	if m.inputFrame.Has(core.ActionRestart) {
		m.saveUnfinishedRecord()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, e := range result.Events {
		m.dispatch(e)
	}

	if m.gameState.Score > m.highScore {
		m.highScore = m.gameState.Score
	}

	if !m.gameState.GameOver {
		m.scoreSaved = false
		return
	}

	// Save score on game over (once)
	if !m.scoreSaved && m.gameState.Score > 0 {
		m.saveScore()
	}
	m.scoreSaved = true
}

// dispatch maps a game event to sound and music changes.
func (m *Model) dispatch(e core.Event) {
	switch e.Type {
	case core.EventGameStarted:
		m.sound.ResumeMusic()
	case core.EventPaddleHit:
		m.sound.PlayRotate()
	case core.EventBrickBroken:
		m.sound.PlayClear(min(e.Count, maxClearPitch))
	case core.EventLifeLost:
		m.sound.PlayLock()
	case core.EventLevelComplete:
		m.sound.PlayTSpin()
	case core.EventPaused:
		m.sound.PauseMusic()
	case core.EventResumed:
		m.sound.ResumeMusic()
	case core.EventGameOver:
		m.sound.PlayLock()
		m.sound.StopMusic()
	}
}

func (m *Model) saveScore() {
	if m.store == nil {
		return
	}
	level := 1
	if lv, ok := m.game.(leveled); ok {
		level = lv.Level()
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, level); err != nil {
		m.logger.Warn("cannot save score", "game", m.game.ID(), "err", err)
		return
	}
	m.storedHigh = max(m.storedHigh, m.gameState.Score)
	m.logger.Info("score saved", "game", m.game.ID(), "score", m.gameState.Score, "level", level)
}

// saveUnfinishedRecord saves a game abandoned by restart or quit when its
// score beats the stored record.
func (m *Model) saveUnfinishedRecord() {
	if m.scoreSaved || m.gameState.GameOver || m.gameState.Score <= m.storedHigh {
		return
	}
	m.saveScore()
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("cannot locate home directory", "err", err)
			return
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.lastShot = path
}

// View renders the game and the status bar.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.theme) + "\n" + m.statusBar()
}

// HighScore returns the best score seen, including the running game.
func (m *Model) HighScore() int { return m.highScore }

// Muted reports the current mute state.
func (m *Model) Muted() bool { return m.mute.IsMuted() }

// ThemeName returns the active theme name.
func (m *Model) ThemeName() string { return m.theme.Name }

// RunModel starts the Bubble Tea program with the given model.
func RunModel(model *Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

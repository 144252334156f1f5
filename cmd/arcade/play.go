package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-arcade/internal/audio"
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/games/breakout"
	"github.com/vovakirdan/neon-arcade/internal/platform/tui"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

var (
	flagConfig      string
	flagDifficulty  string
	flagAudioConfig string
	flagMute        bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (breakout when omitted).

Controls:
  Left/Right, A/D   - Move paddle (mouse drag works too)
  Space/Enter       - Launch ball / next level
  P/Esc             - Pause
  R                 - Restart
  M                 - Mute sound
  T                 - Toggle dark/light theme
  Ctrl+S            - Save a text screenshot
  ?                 - Show key help
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower ball, more lives
  normal - Default settings
  hard   - Faster ball, fewer lives, speeds up each level
  fixed  - Disables per-level speed progression

Examples:
  arcade play
  arcade play breakout --difficulty hard
  arcade play --config ./my-breakout.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagAudioConfig, "audio-config", "", "Path to custom audio config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := gameArg(args)

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// An explicit config must be valid; implicit ones fall back to defaults
	if flagConfig != "" {
		if _, err := config.LoadBreakout(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(flagDifficulty)

	logger, closeLog := openLogger(flagLogPath)
	defer closeLog()

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts := []tui.Option{tui.WithLogger(logger)}

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
	} else {
		opts = append(opts, tui.WithStore(store), tui.WithSettings())
	}

	audioCfg, err := config.LoadAudio(flagAudioConfig)
	if err != nil {
		logger.Warn("using default audio config", "err", err)
		audioCfg = config.DefaultAudioConfig()
	}
	mute := audio.NewMuteFlag(false)
	sound := audio.NewManager(audioCfg, mute, audio.WithLogger(logger.With("component", "audio")))
	// A missing audio device leaves the game silent
	_ = sound.Init()
	opts = append(opts, tui.WithSound(sound, mute))

	model := tui.NewModel(game, cfg, opts...)
	if flagMute {
		mute.Set(true)
	}
	logger.Info("starting game", "game", gameID, "seed", flagSeed, "muted", mute.IsMuted())

	runErr := tui.RunModel(model)

	sound.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogger writes logs to path so the alternate screen stays clean.
// Logging is discarded when the file cannot be opened.
func openLogger(path string) (*log.Logger, func()) {
	discard := log.New(io.Discard)
	if path == "" {
		return discard, func() {}
	}

	expanded, err := storage.ExpandHome(path)
	if err != nil {
		return discard, func() {}
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o750); err != nil {
		return discard, func() {}
	}
	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- user supplied log path
	if err != nil {
		return discard, func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           log.InfoLevel,
	})
	return logger, func() { f.Close() }
}

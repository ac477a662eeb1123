package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dinorun/internal/audio"
	"github.com/vovakirdan/dinorun/internal/config"
	"github.com/vovakirdan/dinorun/internal/core"
	"github.com/vovakirdan/dinorun/internal/platform/tui"
	"github.com/vovakirdan/dinorun/internal/sim"
	"github.com/vovakirdan/dinorun/internal/storage"
)

var (
	flagConfig string
	flagSound  bool
	flagDebug  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a run in the current terminal.

Controls:
  Space/Up/W - Jump (also restarts after game over)
  Enter      - Restart after game over
  P/Esc      - Pause
  R          - Restart at any point
  Q/Ctrl+C   - Quit

Examples:
  dinorun play
  dinorun play --sound
  dinorun play --seed 42
  dinorun play --config ./my-dino.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log simulation trace to stderr")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Terminal size for the render surface
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Stderr is owned by the TUI, so the trace goes to a file.
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "dinorun"})
	if flagDebug {
		if f, logErr := os.OpenFile("dinorun-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); logErr == nil {
			logger = log.NewWithOptions(f, log.Options{Prefix: "dinorun", ReportTimestamp: true})
			defer f.Close()
		}
		logger.SetLevel(log.DebugLevel)
	}

	// Open run history; the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	// The save slot is the fast path for the HI readout; the database
	// keeps full history. Best of both seeds the session.
	slot, err := storage.OpenSaveSlot("dinorun")
	if err != nil {
		logger.Warn("could not open save slot", "error", err)
		slot = nil
	}

	var highScore uint32
	if slot != nil {
		if saved, slotErr := slot.HighScore(); slotErr == nil {
			highScore = saved
		}
	}
	if store != nil {
		if best, dbErr := store.HighScore(); dbErr == nil && uint32(best) > highScore {
			highScore = uint32(best)
		}
	}

	var sound *audio.Player
	if flagSound {
		sound = audio.NewPlayer()
		if soundErr := sound.Initialize(); soundErr != nil {
			logger.Warn("sound unavailable", "error", soundErr)
			sound = nil
		} else {
			defer sound.Cleanup()
		}
	}

	settings := sim.FromConfig(gameCfg, highScore)
	deps := tui.Deps{
		Store:  store,
		Slot:   slot,
		Sound:  sound,
		Logger: logger,
	}

	if runErr := tui.Run(cfg, settings, deps); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

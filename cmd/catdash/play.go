package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/feliform/catdash/internal/config"
	"github.com/feliform/catdash/internal/core"
	"github.com/feliform/catdash/internal/platform/tui"
	"github.com/feliform/catdash/internal/runner"
	"github.com/feliform/catdash/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run.

Controls:
  Space/Up/W - Jump (again mid-air with a feather charge)
  Down/S     - Slide
  F/X        - Shoot (needs a star charge)
  T          - Cycle color theme
  P/Esc      - Pause
  M          - Mute callouts
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower start, gentler spawn timer
  normal - Default pacing
  hard   - Faster start, tighter spawn timer
  fixed  - No progression, speed and spawn rate stay at their base values

Examples:
  catdash play
  catdash play --difficulty easy
  catdash play --config ./my-catdash.yaml
  catdash play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Terminal size, with sane fallbacks for pipes.
	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	opts := []runner.Option{runner.WithConfig(gameCfg)}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard, fixed)\n", flagDifficulty)
			os.Exit(1)
		}
		opts = append(opts, runner.WithPreset(preset))
	}

	game := runner.New(opts...)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(game, store, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

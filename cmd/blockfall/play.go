package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/foss-games/blockfall/internal/engine"
	"github.com/foss-games/blockfall/internal/randomizer"
	"github.com/foss-games/blockfall/internal/replay"
	"github.com/foss-games/blockfall/internal/rotation"
)

var (
	flagSeed           uint32
	flagGoal           int
	flagRotationSystem string
	flagRandomizer     string
	flagRecordPath     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play an interactive session",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().Uint32Var(&flagSeed, "seed", 0, "PRNG seed (0 picks a fresh seed)")
	playCmd.Flags().IntVar(&flagGoal, "goal", 0, "lines needed to end the session (0 keeps the default)")
	playCmd.Flags().StringVar(&flagRotationSystem, "rotation-system", "", "rotation system: srs, sega, dtet, nes, arika-srs, tgm, tgm3")
	playCmd.Flags().StringVar(&flagRandomizer, "randomizer", "", "randomizer: memoryless, nes, bag7, bag7-seam-check, multi-bag-2/4/9, tgm1, tgm2, tgm3")
	playCmd.Flags().StringVar(&flagRecordPath, "record", "", "write a replay of this session to the given path")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
	}).With("component", "play")

	opts := optionsFromEnvAndFlags()

	model, err := newPlayModel(opts, logger)
	if err != nil {
		return fmt.Errorf("blockfall: build engine: %w", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("blockfall: run session: %w", err)
	}

	if flagRecordPath != "" {
		if err := writeRecording(opts, model); err != nil {
			logger.Warn("could not write replay", "path", flagRecordPath, "error", err)
		} else {
			logger.Info("replay written", "path", flagRecordPath)
		}
	}

	return nil
}

// optionsFromEnvAndFlags starts from the engine's defaults and layers
// environment variable overrides (for local developer runs) and then CLI
// flags (which take precedence) on top, mirroring the teacher's convention
// of env-first, flag-second configuration.
func optionsFromEnvAndFlags() engine.Options {
	opts := engine.DefaultOptions()

	if v, err := strconv.ParseUint(os.Getenv("BLOCKFALL_SEED"), 10, 32); err == nil {
		opts.Seed = uint32(v)
	}
	if v, err := strconv.Atoi(os.Getenv("BLOCKFALL_GOAL")); err == nil {
		opts.Goal = v
	}
	if k, ok := rotationKindFromFlag(os.Getenv("BLOCKFALL_ROTATION_SYSTEM")); ok {
		opts.RotationSystem = k
	}
	if k, ok := randomizerKindFromFlag(os.Getenv("BLOCKFALL_RANDOMIZER")); ok {
		opts.Randomizer = k
	}

	if flagSeed != 0 {
		opts.Seed = flagSeed
	}
	if flagGoal != 0 {
		opts.Goal = flagGoal
	}
	if k, ok := rotationKindFromFlag(flagRotationSystem); ok {
		opts.RotationSystem = k
	}
	if k, ok := randomizerKindFromFlag(flagRandomizer); ok {
		opts.Randomizer = k
	}
	if opts.Seed == 0 {
		opts.Seed = uint32(time.Now().UnixNano())
	}

	return opts
}

func rotationKindFromFlag(v string) (rotation.Kind, bool) {
	switch v {
	case "srs":
		return rotation.Srs, true
	case "sega":
		return rotation.Sega, true
	case "dtet":
		return rotation.Dtet, true
	case "nes":
		return rotation.Nes, true
	case "arika-srs":
		return rotation.ArikaSrs, true
	case "tgm":
		return rotation.Tgm, true
	case "tgm3":
		return rotation.Tgm3, true
	default:
		return 0, false
	}
}

func randomizerKindFromFlag(v string) (randomizer.Kind, bool) {
	switch v {
	case "memoryless":
		return randomizer.Memoryless, true
	case "nes":
		return randomizer.Nes, true
	case "bag7":
		return randomizer.Bag7, true
	case "bag7-seam-check":
		return randomizer.Bag7SeamCheck, true
	case "multi-bag-2":
		return randomizer.MultiBag2, true
	case "multi-bag-4":
		return randomizer.MultiBag4, true
	case "multi-bag-9":
		return randomizer.MultiBag9, true
	case "tgm1":
		return randomizer.Tgm1, true
	case "tgm2":
		return randomizer.Tgm2, true
	case "tgm3":
		return randomizer.Tgm3, true
	default:
		return 0, false
	}
}

func writeRecording(opts engine.Options, m *playModel) error {
	f, err := os.Create(flagRecordPath)
	if err != nil {
		return err
	}
	defer f.Close()

	runID := uuid.New().String()
	return replay.Write(f, opts, runID, m.recordedInputs)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/foss-games/blockfall/internal/engine"
	"github.com/foss-games/blockfall/internal/keys"
	"github.com/foss-games/blockfall/internal/replay"
	"github.com/foss-games/blockfall/internal/scoring"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded session deterministically",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("blockfall: open replay: %w", err)
	}
	defer f.Close()

	opts, runID, inputs, err := replay.Read(f)
	if err != nil {
		return fmt.Errorf("blockfall: read replay: %w", err)
	}

	eng, err := engine.New(opts)
	if err != nil {
		return fmt.Errorf("blockfall: build engine: %w", err)
	}

	tracker := scoring.NewTracker()

	var held keys.Set
	nextEdge := 0
	for tick := uint32(0); !eng.Quit(); tick++ {
		for nextEdge < len(inputs) && inputs[nextEdge].Tick == tick {
			held = inputs[nextEdge].Keys
			nextEdge++
		}
		eng.Tick(held)
		tracker.Observe(eng.Snapshot())
	}

	snap := eng.Snapshot()
	if runID != "" {
		fmt.Printf("run: %s\n", runID)
	}
	fmt.Printf("final state: %s\n", snap.State)
	fmt.Printf("lines cleared: %d\n", snap.Stats.LinesCleared)
	fmt.Printf("blocks placed: %d\n", snap.Stats.BlocksPlaced)
	fmt.Printf("score: %d\n", tracker.Score)

	return nil
}

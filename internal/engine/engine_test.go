package engine

import (
	"testing"

	"github.com/foss-games/blockfall/internal/keys"
	"github.com/foss-games/blockfall/internal/piece"
	"github.com/foss-games/blockfall/internal/randomizer"
	"github.com/foss-games/blockfall/internal/rotation"
)

// testOptions returns Options tuned for fast, deterministic tests: zero
// Ready/Go/Are delay so state transitions happen one tick at a time.
func testOptions() Options {
	o := DefaultOptions()
	o.Seed = 12345
	o.WellWidth = 4
	o.WellHeight = 6
	o.ReadyPhaseLengthMs = 0
	o.GoPhaseLengthMs = 0
	o.AreDelayMs = 0
	o.LockDelayMs = 0
	o.Goal = 1000
	o.Randomizer = randomizer.Memoryless
	o.RotationSystem = rotation.Srs
	return o
}

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	e, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestReadyGoTransitionsIntoFalling(t *testing.T) {
	e := newTestEngine(t, testOptions())

	if e.state != Ready {
		t.Fatalf("expected initial state Ready, got %v", e.state)
	}

	e.Tick(0) // Ready -> Go
	if e.state != Go {
		t.Fatalf("after 1 tick: expected Go, got %v", e.state)
	}

	e.Tick(0) // Go -> NewPiece
	if e.state != NewPiece {
		t.Fatalf("after 2 ticks: expected NewPiece, got %v", e.state)
	}

	e.Tick(0) // NewPiece -> Falling
	if e.state != Falling {
		t.Fatalf("after 3 ticks: expected Falling, got %v", e.state)
	}
	if e.piece == nil {
		t.Fatal("expected a falling piece after spawn")
	}
}

func advanceToFalling(t *testing.T, e *Engine) {
	t.Helper()
	for i := 0; i < 3 && e.state != Falling; i++ {
		e.Tick(0)
	}
	if e.state != Falling {
		t.Fatalf("failed to reach Falling, stuck at %v", e.state)
	}
}

func TestHardDropLocksImmediately(t *testing.T) {
	e := newTestEngine(t, testOptions())
	advanceToFalling(t, e)

	e.Tick(keys.Up)
	if e.state != ClearLines {
		t.Fatalf("expected ClearLines after hard drop, got %v", e.state)
	}
	if e.stats.BlocksPlaced != 1 {
		t.Fatalf("expected 1 block placed, got %d", e.stats.BlocksPlaced)
	}
}

func TestClearLinesAdvancesThroughAreToNewPiece(t *testing.T) {
	e := newTestEngine(t, testOptions())
	advanceToFalling(t, e)

	e.Tick(keys.Up) // lock, -> ClearLines
	if e.state != ClearLines {
		t.Fatalf("expected ClearLines, got %v", e.state)
	}

	e.Tick(0) // ClearLines -> Are
	if e.state != Are {
		t.Fatalf("expected Are, got %v", e.state)
	}

	e.Tick(0) // Are -> NewPiece
	if e.state != NewPiece {
		t.Fatalf("expected NewPiece, got %v", e.state)
	}

	e.Tick(0) // NewPiece -> Falling
	if e.state != Falling {
		t.Fatalf("expected Falling, got %v", e.state)
	}
	if e.stats.BlocksPlaced != 1 {
		t.Fatalf("expected 1 block placed, got %d", e.stats.BlocksPlaced)
	}
}

func TestHoldDuringFallingSwapsOutCurrentPiece(t *testing.T) {
	e := newTestEngine(t, testOptions())
	advanceToFalling(t, e)

	firstID := e.piece.ID

	e.Tick(keys.Hold)
	if !e.hasHold {
		t.Fatal("expected hasHold true after first hold")
	}
	if e.holdID != firstID {
		t.Fatalf("expected holdID %v, got %v", firstID, e.holdID)
	}
	if e.piece == nil {
		t.Fatal("expected a new current piece after hold")
	}
	if e.holdAvailable {
		t.Fatal("expected holdAvailable false immediately after using hold")
	}
}

func TestGameOverWhenSpawnIsBlocked(t *testing.T) {
	opts := testOptions()
	e := newTestEngine(t, opts)

	// Fill the two rows every spawn shape can touch (y=1 and y=2) solid
	// across the whole width, using two O pieces the way board_test tiles
	// a full row: one flush against the left wall, one flush right of it.
	e.well.Lock(e.sys, piece.New(piece.O, -1, 1, piece.R0))
	e.well.Lock(e.sys, piece.New(piece.O, 1, 1, piece.R0))

	e.state = NewPiece
	e.Tick(0)

	if e.state != GameOver {
		t.Fatalf("expected GameOver, got %v", e.state)
	}
	if e.piece != nil {
		t.Fatal("expected no current piece after game over")
	}
}

func TestSnapshotReflectsLockedCells(t *testing.T) {
	e := newTestEngine(t, testOptions())
	advanceToFalling(t, e)
	e.Tick(keys.Up) // lock

	snap := e.Snapshot()
	if snap.Stats.BlocksPlaced != 1 {
		t.Fatalf("expected 1 block placed in snapshot, got %d", snap.Stats.BlocksPlaced)
	}

	found := false
	for _, row := range snap.Cells {
		for _, c := range row {
			if c.Occupied {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("expected at least one occupied cell after lock")
	}
}

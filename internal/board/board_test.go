package board

import (
	"testing"

	"github.com/foss-games/blockfall/internal/piece"
	"github.com/foss-games/blockfall/internal/rotation"
)

func TestCollidesOutOfBounds(t *testing.T) {
	w := New(10, 22)
	sys := rotation.New(rotation.Srs)
	if !w.CollidesWith(sys, piece.O, -1, 5, piece.R0) {
		t.Error("expected out-of-bounds collision on the left")
	}
	if !w.CollidesWith(sys, piece.O, 9, 5, piece.R0) {
		t.Error("expected out-of-bounds collision on the right")
	}
}

func TestLockAndClearLines(t *testing.T) {
	w := New(4, 4)
	sys := rotation.New(rotation.Srs)
	// Two O pieces, each a 2x2 block, exactly tile rows 2 and 3 of a
	// 4-wide well.
	for _, x := range []int8{-1, 1} {
		p := piece.New(piece.O, x, 2, piece.R0)
		w.Lock(sys, p)
	}
	cleared := w.ClearLines()
	if cleared != 2 {
		t.Fatalf("ClearLines() = %d, want 2 (rows 2 and 3 both full from the two O pieces)", cleared)
	}
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			if _, occupied := w.CellId(x, y); occupied {
				t.Fatalf("cell (%d,%d) still occupied after clearing every full row", x, y)
			}
		}
	}
}

func TestClearLinesOnlyRemovesFullRows(t *testing.T) {
	w := New(4, 4)
	sys := rotation.New(rotation.Srs)
	p := piece.New(piece.O, -1, 2, piece.R0)
	w.Lock(sys, p)
	cleared := w.ClearLines()
	if cleared != 0 {
		t.Fatalf("ClearLines() = %d, want 0 (no row is full)", cleared)
	}
	if _, occupied := w.CellId(0, 3); !occupied {
		t.Fatalf("expected locked cell to survive a no-op clear")
	}
}

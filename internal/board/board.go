// Package board implements the well grid: collision testing, piece
// locking, and line clearing.
package board

import (
	"github.com/foss-games/blockfall/internal/piece"
	"github.com/foss-games/blockfall/internal/rotation"
)

// cell is empty when occupied is false.
type cell struct {
	occupied bool
	id       piece.Id
}

// Well is the dense playing field grid. Row 0 is the top (including the
// hidden spawn rows); row Height-1 is the bottom.
type Well struct {
	Width, Height int
	grid          [][]cell
}

// New constructs an empty well of the given dimensions.
func New(width, height int) *Well {
	grid := make([][]cell, height)
	for y := range grid {
		grid[y] = make([]cell, width)
	}
	return &Well{Width: width, Height: height, grid: grid}
}

// CollidesWith reports whether a piece at (x, y, theta), using sys's block
// offsets, collides with the well's walls, floor, or occupied cells.
func (w *Well) CollidesWith(sys rotation.System, id piece.Id, x, y int8, theta piece.Theta) bool {
	for _, b := range sys.Blocks(id, theta) {
		bx := int(x) + int(b.X)
		by := int(y) + int(b.Y)
		if bx < 0 || bx >= w.Width || by < 0 || by >= w.Height {
			return true
		}
		if w.grid[by][bx].occupied {
			return true
		}
	}
	return false
}

// View binds a well to a rotation system, producing a rotation.Collider:
// rotation systems disagree on block geometry (TGM's flat I piece sits one
// row higher than the guideline's), so collision testing during a rotation
// attempt must go through whichever system is actually active.
func (w *Well) View(sys rotation.System) rotation.Collider {
	return systemView{well: w, sys: sys}
}

type systemView struct {
	well *Well
	sys  rotation.System
}

func (v systemView) Collides(id piece.Id, x, y int8, theta piece.Theta) bool {
	return v.well.CollidesWith(v.sys, id, x, y, theta)
}

// IsOccupied reports whether a single cell is out of bounds or filled.
func (w *Well) IsOccupied(x, y int) bool {
	if x < 0 || x >= w.Width || y < 0 || y >= w.Height {
		return true
	}
	return w.grid[y][x].occupied
}

// Lock writes a piece's blocks into the well, marking them with its id.
func (w *Well) Lock(sys rotation.System, p *piece.Piece) {
	for _, b := range sys.Blocks(p.ID, p.Theta) {
		x := int(p.X) + int(b.X)
		y := int(p.Y) + int(b.Y)
		if x < 0 || x >= w.Width || y < 0 || y >= w.Height {
			continue
		}
		w.grid[y][x] = cell{occupied: true, id: p.ID}
	}
}

// ClearLines removes every full row, shifts the rows above it down, and
// returns the number of rows cleared.
//
// The row-scan counter here is deliberately a signed int: a naive
// unsigned counter walking from Height-1 down to 0 underflows and wraps
// to a huge positive value the moment row 0 is cleared, turning a clean
// top-out into an out-of-bounds write.
func (w *Well) ClearLines() int {
	cleared := 0
	destY := w.Height - 1
	newGrid := make([][]cell, w.Height)
	for y := range newGrid {
		newGrid[y] = make([]cell, w.Width)
	}
	for y := w.Height - 1; y >= 0; y-- {
		full := true
		for x := 0; x < w.Width; x++ {
			if !w.grid[y][x].occupied {
				full = false
				break
			}
		}
		if full {
			cleared++
			continue
		}
		copy(newGrid[destY], w.grid[y])
		destY--
	}
	w.grid = newGrid
	return cleared
}

// CellId returns the piece id occupying a cell and whether it's occupied at
// all, for rendering.
func (w *Well) CellId(x, y int) (piece.Id, bool) {
	if x < 0 || x >= w.Width || y < 0 || y >= w.Height {
		return 0, false
	}
	c := w.grid[y][x]
	return c.id, c.occupied
}

// Clone returns a deep copy that shares no cell storage with w.
func (w *Well) Clone() *Well {
	out := New(w.Width, w.Height)
	for y := range w.grid {
		copy(out.grid[y], w.grid[y])
	}
	return out
}

package engine

import (
	"github.com/foss-games/blockfall/internal/piece"
)

// PieceView is a read-only copy of the active piece, safe to retain after
// the engine advances further.
type PieceView struct {
	ID       piece.Id
	X, Y     int8
	Theta    piece.Theta
	Blocks   []piece.Block
	GhostY   int8
	HasGhost bool
}

// Snapshot is the read-only view of engine state a host renders from. It
// never aliases engine-owned memory: every field is copied out.
type Snapshot struct {
	State State
	Stats Stats

	WellWidth, WellHeight int
	Cells                 [][]CellView

	Piece   *PieceView
	HoldID  piece.Id
	HasHold bool
	Preview []piece.Id

	TotalTicks int64
}

// CellView describes one board cell.
type CellView struct {
	Occupied bool
	ID       piece.Id
}

// Snapshot copies out the engine's current state for a host to render or
// inspect. It is safe to call every tick; the host is expected to discard
// the result once the next Tick runs.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		State:      e.state,
		Stats:      e.stats,
		WellWidth:  e.well.Width,
		WellHeight: e.well.Height,
		HoldID:     e.holdID,
		HasHold:    e.hasHold,
		TotalTicks: e.totalTicksRaw,
	}

	s.Cells = make([][]CellView, e.well.Height)
	for y := 0; y < e.well.Height; y++ {
		row := make([]CellView, e.well.Width)
		for x := 0; x < e.well.Width; x++ {
			id, occupied := e.well.CellId(x, y)
			row[x] = CellView{Occupied: occupied, ID: id}
		}
		s.Cells[y] = row
	}

	if e.piece != nil {
		pv := &PieceView{
			ID:     e.piece.ID,
			X:      e.piece.X,
			Y:      e.piece.Y,
			Theta:  e.piece.Theta,
			Blocks: e.sys.Blocks(e.piece.ID, e.piece.Theta),
		}
		if e.opts.ShowGhost {
			pv.GhostY = e.piece.YHardDrop
			pv.HasGhost = true
		}
		s.Piece = pv
	}

	s.Preview = make([]piece.Id, e.preview.Len())
	for i := range s.Preview {
		s.Preview[i] = e.preview.Peek(i)
	}

	return s
}

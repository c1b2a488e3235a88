// Package engine implements the tick-driven game state machine: it owns
// the well, the active piece, the hold slot, the preview queue, the
// randomizer, and the rotation system, and advances all of it exactly one
// fixed timestep per call to Tick.
package engine

import (
	"github.com/foss-games/blockfall/internal/board"
	"github.com/foss-games/blockfall/internal/fixedpoint"
	"github.com/foss-games/blockfall/internal/input"
	"github.com/foss-games/blockfall/internal/piece"
	"github.com/foss-games/blockfall/internal/prng"
	"github.com/foss-games/blockfall/internal/queue"
	"github.com/foss-games/blockfall/internal/randomizer"
	"github.com/foss-games/blockfall/internal/rotation"
)

// Stats tracks the counters a host typically wants to display. Only
// LinesCleared and BlocksPlaced are part of the core contract any testable
// property depends on; the rest are additive bookkeeping.
type Stats struct {
	LinesCleared int
	BlocksPlaced int
	PiecesByType [7]uint32
}

// Engine is a single self-contained game instance.
type Engine struct {
	opts Options

	well *board.Well
	sys  rotation.System
	rng  *prng.State
	rnd  randomizer.Randomizer

	preview *queue.Preview

	piece *piece.Piece

	holdID        piece.Id
	hasHold       bool
	holdAvailable bool

	state State

	das input.Interpreter

	genericCounter uint32
	areCounter     uint32
	totalTicksRaw  int64

	stats Stats
}

// New constructs an Engine from Options. It does not fill in defaults:
// callers start from DefaultOptions and override specific fields before
// calling New.
func New(opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{opts: opts, state: Ready, holdAvailable: true}
	e.well = board.New(opts.WellWidth, opts.WellHeight)
	e.sys = rotation.New(opts.RotationSystem)
	e.rng = prng.Seed(opts.Seed)
	e.rnd = randomizer.New(opts.Randomizer, e.rng)
	e.preview = queue.New(opts.PreviewPieceCount, e.rnd.Next)

	e.das = input.Interpreter{
		WellWidth:                int32(opts.WellWidth),
		DasDelayTicks:            opts.ticksSigned(opts.DasDelayMs),
		DasSpeedTicks:            opts.ticksSigned(opts.DasSpeedMs),
		GravityMsPerCell:         opts.GravityMsPerCell,
		SoftDropGravityMsPerCell: opts.SoftDropGravityMsPerCell,
		OneShotSoftDrop:          opts.OneShotSoftDrop,
	}

	return e, nil
}

// Quit reports whether the engine has reached a terminal state and the host
// should stop calling Tick.
func (e *Engine) Quit() bool {
	return e.state.Terminal()
}

// spawnPosition returns the canonical spawn coordinates for a piece.
func (e *Engine) spawnPosition(id piece.Id) (int8, int8) {
	x := int8(e.opts.WellWidth/2 - 1)
	y := int8(1)
	return x, y
}

// recomputeHardDrop walks the piece downward against the well to find the
// row it would occupy under a hard drop, without mutating it.
func (e *Engine) recomputeHardDrop(p *piece.Piece) int8 {
	view := e.well.View(e.sys)
	y := p.Y
	for !view.Collides(p.ID, p.X, y+1, p.Theta) {
		y++
	}
	return y
}

func (e *Engine) collidesAt(id piece.Id, x, y int8, theta piece.Theta) bool {
	return e.well.View(e.sys).Collides(id, x, y, theta)
}

// newFallingPiece builds and positions a piece of the given id at spawn,
// computing its initial hard-drop row.
func (e *Engine) newFallingPiece(id piece.Id) *piece.Piece {
	x, y := e.spawnPosition(id)
	p := piece.New(id, x, y, piece.R0)
	p.YActual = fixedpoint.FromParts(uint8(y), 0)
	p.YHardDrop = e.recomputeHardDrop(p)
	return p
}

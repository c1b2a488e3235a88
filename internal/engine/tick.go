package engine

import (
	"github.com/foss-games/blockfall/internal/fixedpoint"
	"github.com/foss-games/blockfall/internal/input"
	"github.com/foss-games/blockfall/internal/keys"
	"github.com/foss-games/blockfall/internal/piece"
)

// Tick advances the engine by one fixed timestep, given the virtual keys
// held during this frame. The dispatch order below is normative: DAS
// bookkeeping and edge detection happen first, then Quit/Restart are
// checked ahead of anything else, then the current state's handler runs.
func (e *Engine) Tick(held keys.Set) {
	e.totalTicksRaw++

	actions := e.das.Resolve(held)

	if actions.Quit {
		e.state = Quit
		return
	}
	if actions.Restart {
		e.state = Restart
		return
	}

	switch e.state {
	case Ready:
		e.tickReady(actions)
	case Go:
		e.tickGo(actions)
	case Are:
		e.tickAre(actions)
	case NewPiece:
		e.tickNewPiece()
	case Falling, Landed:
		e.tickFalling(actions)
	case ClearLines:
		e.tickClearLines()
	case Quit, GameOver, Restart:
		// terminal; nothing left to dispatch.
	}
}

func (e *Engine) tickReady(a input.Actions) {
	e.applyPreGameHold(a.Hold)
	readyTicks := e.opts.ticks(e.opts.ReadyPhaseLengthMs)
	if e.genericCounter == readyTicks {
		e.state = Go
		return
	}
	e.genericCounter++
}

func (e *Engine) tickGo(a input.Actions) {
	e.applyPreGameHold(a.Hold)
	total := e.opts.ticks(e.opts.ReadyPhaseLengthMs) + e.opts.ticks(e.opts.GoPhaseLengthMs)
	if e.genericCounter >= total {
		e.genericCounter = 0
		e.state = NewPiece
		return
	}
	e.genericCounter++
}

func (e *Engine) tickAre(a input.Actions) {
	if e.opts.AreCancellable && a.NewKeys != 0 {
		e.areCounter = 0
		e.state = NewPiece
		return
	}
	e.areCounter++
	if e.areCounter > e.opts.ticks(e.opts.AreDelayMs) {
		e.areCounter = 0
		e.state = NewPiece
	}
}

func (e *Engine) tickNewPiece() {
	id := e.preview.Take(e.rnd.Next)
	x, y := e.spawnPosition(id)
	if e.collidesAt(id, x, y, piece.R0) {
		e.piece = nil
		e.state = GameOver
		return
	}
	e.piece = e.newFallingPiece(id)
	e.holdAvailable = true
	e.state = Falling
}

func (e *Engine) tickClearLines() {
	cleared := e.well.ClearLines()
	e.stats.LinesCleared += cleared
	if e.stats.LinesCleared >= e.opts.Goal {
		e.state = GameOver
		return
	}
	e.areCounter = 0
	e.state = Are
}

func (e *Engine) tickFalling(a input.Actions) {
	p := e.piece
	if p == nil {
		e.state = NewPiece
		return
	}

	if a.HardDrop {
		p.Y = p.YHardDrop
		p.YActual = fixedpoint.FromParts(uint8(p.Y), 0)
		e.lockPiece()
		return
	}

	delta := fixedpoint.FromRatio(e.opts.MsPerTick, a.GravityMsPerCell)
	prevY := p.Y
	p.YActual = p.YActual.Add(delta)
	p.Y = int8(p.YActual.Integer())
	if p.Y > p.YHardDrop {
		p.Y = p.YHardDrop
		p.YActual = fixedpoint.FromParts(uint8(p.Y), 0)
	}

	if p.Y >= p.YHardDrop {
		e.state = Landed
	} else {
		if (e.opts.LockStyle == LockStep || e.opts.LockStyle == LockMove) && p.Y != prevY {
			p.LockTimer = 0
		}
		e.state = Falling
	}

	if e.state == Landed && p.LockTimer >= e.opts.ticks(e.opts.LockDelayMs) {
		e.lockPiece()
		return
	}

	if a.Hold && e.holdAvailable {
		e.applyInPlayHold()
		if e.state == GameOver {
			return
		}
		p = e.piece
	}

	if a.HasRotation {
		ok, wasFloorkick := e.sys.Rotate(e.well.View(e.sys), p, a.Rotation)
		if ok {
			if e.handleFloorkick(p, wasFloorkick) {
				e.lockPiece()
				return
			}
			p.YHardDrop = e.recomputeHardDrop(p)
		}
	}

	e.applyMovement(p, a.Movement)
	p.YHardDrop = e.recomputeHardDrop(p)

	if e.state == Landed {
		p.LockTimer++
	} else {
		p.LockTimer = 0
	}
}

// handleFloorkick counts a wallkick that moved the piece upward and
// reports whether the floorkick limit has now been reached, in which case
// the caller must force an immediate lock.
func (e *Engine) handleFloorkick(p *piece.Piece, wasFloorkick bool) bool {
	if !wasFloorkick || e.opts.FloorkickLimit == 0 {
		return false
	}
	p.FloorkickCount++
	return p.FloorkickCount >= e.opts.FloorkickLimit
}

func (e *Engine) applyMovement(p *piece.Piece, movement int32) {
	step := int8(1)
	if movement < 0 {
		step = -1
	}
	n := movement
	if n < 0 {
		n = -n
	}
	for i := int32(0); i < n; i++ {
		nx := p.X + step
		if e.collidesAt(p.ID, nx, p.Y, p.Theta) {
			break
		}
		p.Move(nx, p.Y, p.Theta)
	}
}

func (e *Engine) lockPiece() {
	e.well.Lock(e.sys, e.piece)
	e.stats.BlocksPlaced++
	e.stats.PiecesByType[e.piece.ID]++
	e.piece = nil
	e.state = ClearLines
}

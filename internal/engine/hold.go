package engine

import "github.com/foss-games/blockfall/internal/piece"

// applyPreGameHold implements hold during Ready/Go, where there is no
// current piece to swap with: the first hold pulls straight from the
// preview queue, and any hold after that swaps the held piece with the
// queue's head in place, without consuming a new randomizer draw.
func (e *Engine) applyPreGameHold(hold bool) {
	if !hold {
		return
	}
	if !e.holdAvailable && !e.opts.InfiniteReadyGoHold {
		return
	}
	if !e.hasHold {
		e.holdID = e.preview.Take(e.rnd.Next)
		e.hasHold = true
	} else {
		e.holdID = e.preview.SwapHead(e.holdID)
	}
	if !e.opts.InfiniteReadyGoHold {
		e.holdAvailable = false
	}
}

// applyInPlayHold swaps the current piece with the hold slot (or pulls a
// fresh piece from preview if the hold slot was empty), respawning the
// result at its default coordinates. Only one hold is allowed per piece.
func (e *Engine) applyInPlayHold() {
	var nextID piece.Id
	if !e.hasHold {
		e.holdID = e.piece.ID
		e.hasHold = true
		nextID = e.preview.Take(e.rnd.Next)
	} else {
		nextID = e.holdID
		e.holdID = e.piece.ID
	}
	e.spawnAt(nextID)
}

func (e *Engine) spawnAt(id piece.Id) {
	x, y := e.spawnPosition(id)
	if e.collidesAt(id, x, y, piece.R0) {
		e.piece = nil
		e.state = GameOver
		return
	}
	e.piece = e.newFallingPiece(id)
	e.holdAvailable = false
}

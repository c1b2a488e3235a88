package randomizer

import (
	"github.com/foss-games/blockfall/internal/piece"
	"github.com/foss-games/blockfall/internal/prng"
)

// tgm3 reproduces the TGM3 generator: a 35-slot bag preloaded with five
// copies of each piece, a 4-piece history, and a 7-slot "drought order"
// that tracks which piece has gone longest without appearing so a starved
// slot can be force-refilled.
//
// The "seen all seven, roll>0, and the candidate is the drought head"
// exemption below reproduces a quirk of the original generator rather than
// a deliberate design choice: once every piece has appeared at least once,
// that specific combination skips the refill it would otherwise do. It is
// kept exactly as observed, not "fixed".
type tgm3 struct {
	rng        *prng.State
	bag        [35]piece.Id
	drought    [7]piece.Id
	history    [4]piece.Id
	seen       [7]bool
	seenCount  int
	firstPiece bool
}

// NewTgm3 returns the TGM3 generator.
func NewTgm3(rng *prng.State) Randomizer {
	t := &tgm3{
		rng:        rng,
		drought:    [7]piece.Id{piece.J, piece.I, piece.Z, piece.L, piece.O, piece.T, piece.S},
		history:    [4]piece.Id{piece.S, piece.Z, piece.S, piece.Z},
		firstPiece: true,
	}
	order := [7]piece.Id{piece.I, piece.J, piece.L, piece.O, piece.S, piece.T, piece.Z}
	for i := 0; i < 35; i++ {
		t.bag[i] = order[i%7]
	}
	return t
}

func (t *tgm3) Kind() Kind { return Tgm3 }

func (t *tgm3) inHistory(id piece.Id) bool {
	for _, h := range t.history {
		if h == id {
			return true
		}
	}
	return false
}

func (t *tgm3) pushHistory(id piece.Id) {
	copy(t.history[:3], t.history[1:])
	t.history[3] = id
}

func (t *tgm3) shiftDroughtToTail(id piece.Id) {
	for i, d := range t.drought {
		if d == id {
			copy(t.drought[i:6], t.drought[i+1:])
			t.drought[6] = id
			return
		}
	}
}

func (t *tgm3) markSeen(id piece.Id) {
	if !t.seen[id] {
		t.seen[id] = true
		t.seenCount++
	}
}

func (t *tgm3) allSeen() bool {
	return t.seenCount == 7
}

func (t *tgm3) Next() piece.Id {
	if t.firstPiece {
		out := tgmFirstPieceChoices[t.rng.NextRange(0, 4)]
		t.firstPiece = false
		t.pushHistory(out)
		t.markSeen(out)
		return out
	}

	var out piece.Id
	var i uint32
	for roll := 0; roll < 6; roll++ {
		i = t.rng.NextRange(0, 35)
		candidate := t.bag[i]
		if !t.inHistory(candidate) {
			out = candidate
			t.markSeen(out)
			if !(t.allSeen() && roll > 0 && candidate == t.drought[0]) {
				t.bag[i] = t.drought[0]
			}
			t.shiftDroughtToTail(out)
			t.pushHistory(out)
			return out
		}
		if roll < 5 {
			t.bag[i] = t.drought[0]
		}
		out = candidate
	}
	t.markSeen(out)
	if !(t.allSeen() && out == t.drought[0]) {
		t.bag[i] = t.drought[0]
	}
	t.shiftDroughtToTail(out)
	t.pushHistory(out)
	return out
}

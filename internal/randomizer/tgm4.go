package randomizer

import (
	"github.com/foss-games/blockfall/internal/piece"
	"github.com/foss-games/blockfall/internal/prng"
)

// tgm4 reproduces the TGM1/TGM2 generator: a 4-piece circular history seeded
// with a fixed preload, a uniform first piece restricted to {J, I, L, T},
// and a bounded number of rerolls against the history for every piece after
// that.
type tgm4 struct {
	kind       Kind
	numRolls   int
	rng        *prng.State
	history    [4]piece.Id
	firstPiece bool
}

var tgmFirstPieceChoices = [4]piece.Id{piece.J, piece.I, piece.L, piece.T}

// NewTgm1 returns the TGM1 generator: a 4-reroll history check and a
// [Z,Z,Z,Z] preload.
func NewTgm1(rng *prng.State) Randomizer {
	return &tgm4{kind: Tgm1, numRolls: 4, rng: rng, firstPiece: true,
		history: [4]piece.Id{piece.Z, piece.Z, piece.Z, piece.Z}}
}

// NewTgm2 returns the TGM2 generator: a 6-reroll history check and a
// [Z,S,S,Z] preload.
func NewTgm2(rng *prng.State) Randomizer {
	return &tgm4{kind: Tgm2, numRolls: 6, rng: rng, firstPiece: true,
		history: [4]piece.Id{piece.Z, piece.S, piece.S, piece.Z}}
}

func (t *tgm4) Kind() Kind { return t.kind }

func (t *tgm4) Next() piece.Id {
	var out piece.Id
	if t.firstPiece {
		out = tgmFirstPieceChoices[t.rng.NextRange(0, 4)]
		t.firstPiece = false
	} else {
		out = piece.FromIndex(int(t.rng.NextRange(0, 7)))
		for i := 0; i < t.numRolls && t.inHistory(out); i++ {
			out = piece.FromIndex(int(t.rng.NextRange(0, 7)))
		}
	}
	t.pushHistory(out)
	return out
}

func (t *tgm4) inHistory(id piece.Id) bool {
	for _, h := range t.history {
		if h == id {
			return true
		}
	}
	return false
}

func (t *tgm4) pushHistory(id piece.Id) {
	copy(t.history[:3], t.history[1:])
	t.history[3] = id
}

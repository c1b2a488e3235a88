package randomizer

import (
	"github.com/foss-games/blockfall/internal/piece"
	"github.com/foss-games/blockfall/internal/prng"
)

// memoryless draws a uniform piece id every time, with no memory at all.
type memoryless struct {
	rng *prng.State
}

// NewMemoryless returns the simplest randomizer: every draw is an
// independent uniform choice over the seven pieces.
func NewMemoryless(rng *prng.State) Randomizer {
	return &memoryless{rng: rng}
}

func (m *memoryless) Kind() Kind { return Memoryless }

func (m *memoryless) Next() piece.Id {
	return piece.FromIndex(int(m.rng.NextRange(0, 7)))
}

// nesRandomizer reproduces the original NES Tetris generator: roll one of
// eight values; if the roll lands on the unused eighth slot or repeats the
// previous piece, reroll once more over the seven real pieces.
type nesRandomizer struct {
	rng     *prng.State
	lastOut piece.Id
	hasLast bool
}

// NewNes returns the NES randomizer.
func NewNes(rng *prng.State) Randomizer {
	return &nesRandomizer{rng: rng}
}

func (n *nesRandomizer) Kind() Kind { return Nes }

func (n *nesRandomizer) Next() piece.Id {
	roll := n.rng.NextRange(0, 8)
	if roll == 7 || (n.hasLast && piece.FromIndex(int(roll)) == n.lastOut) {
		roll = n.rng.NextRange(0, 7)
	}
	out := piece.FromIndex(int(roll))
	n.lastOut = out
	n.hasLast = true
	return out
}

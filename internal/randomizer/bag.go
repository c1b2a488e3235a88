package randomizer

import (
	"github.com/foss-games/blockfall/internal/piece"
	"github.com/foss-games/blockfall/internal/prng"
)

func isFirstPieceBanned(id piece.Id) bool {
	return id == piece.S || id == piece.Z || id == piece.O
}

// bag implements Bag7, Bag7SeamCheck, and the multi-bag variants: a pool of
// one or more full 7-piece sets, shuffled as a whole and consumed in order,
// refilled on exhaustion.
type bag struct {
	kind      Kind
	copies    int
	checkSeam bool
	rng       *prng.State
	pool      []piece.Id
	idx       int
	lastOut   piece.Id
	hasLast   bool
}

func newBag(kind Kind, copies int, checkSeam bool, rng *prng.State) *bag {
	b := &bag{kind: kind, copies: copies, checkSeam: checkSeam, rng: rng}
	b.refill()
	return b
}

func (b *bag) Kind() Kind { return b.kind }

func (b *bag) refill() {
	b.pool = make([]piece.Id, 0, 7*b.copies)
	for i := 0; i < b.copies; i++ {
		b.pool = append(b.pool, piece.All()...)
	}
	prng.Shuffle(b.rng, b.pool)
	for !b.hasLast && isFirstPieceBanned(b.pool[0]) {
		prng.Shuffle(b.rng, b.pool)
	}
	if b.checkSeam && b.hasLast && b.pool[0] == b.lastOut {
		j := b.rng.NextRange(1, uint32(len(b.pool)))
		b.pool[0], b.pool[j] = b.pool[j], b.pool[0]
	}
	b.idx = 0
}

func (b *bag) Next() piece.Id {
	if b.idx >= len(b.pool) {
		b.refill()
	}
	v := b.pool[b.idx]
	b.idx++
	b.lastOut = v
	b.hasLast = true
	return v
}

// NewBag7 returns the standard 7-bag randomizer: one shuffled copy of every
// piece per cycle, first-piece policy applied, no seam check.
func NewBag7(rng *prng.State) Randomizer {
	return newBag(Bag7, 1, false, rng)
}

// NewBag7SeamCheck is Bag7 with the additional rule that a bag boundary
// never repeats the immediately preceding piece.
func NewBag7SeamCheck(rng *prng.State) Randomizer {
	return newBag(Bag7SeamCheck, 1, true, rng)
}

// NewMultiBag returns a randomizer drawing from a pool of k copies of each
// piece, shuffled as a 7k-element whole. copies must be one of 2, 4, or 9.
func NewMultiBag(copies int, rng *prng.State) Randomizer {
	kind := MultiBag2
	switch copies {
	case 4:
		kind = MultiBag4
	case 9:
		kind = MultiBag9
	}
	return newBag(kind, copies, false, rng)
}

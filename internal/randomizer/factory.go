package randomizer

import "github.com/foss-games/blockfall/internal/prng"

// New constructs the Randomizer for a Kind, sharing the given PRNG state.
func New(k Kind, rng *prng.State) Randomizer {
	switch k {
	case Nes:
		return NewNes(rng)
	case Bag7SeamCheck:
		return NewBag7SeamCheck(rng)
	case MultiBag2:
		return NewMultiBag(2, rng)
	case MultiBag4:
		return NewMultiBag(4, rng)
	case MultiBag9:
		return NewMultiBag(9, rng)
	case Tgm1:
		return NewTgm1(rng)
	case Tgm2:
		return NewTgm2(rng)
	case Tgm3:
		return NewTgm3(rng)
	case Memoryless:
		return NewMemoryless(rng)
	default:
		return NewBag7(rng)
	}
}

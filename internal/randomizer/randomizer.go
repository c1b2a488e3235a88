// Package randomizer implements the family of piece sequencers: memoryless,
// NES, bag-N, multi-bag, and the TGM history/drought-queue variants. Every
// variant is driven by the same PRNG so that two engines seeded identically
// draw byte-identical piece sequences.
package randomizer

import "github.com/foss-games/blockfall/internal/piece"

// Kind names a randomizer variant for Options and the replay codec.
type Kind uint8

const (
	Memoryless Kind = iota
	Nes
	Bag7
	Bag7SeamCheck
	MultiBag2
	MultiBag4
	MultiBag9
	Tgm1
	Tgm2
	Tgm3
)

func (k Kind) String() string {
	names := [...]string{
		"memoryless", "nes", "bag7", "bag7-seam-check",
		"multi-bag-2", "multi-bag-4", "multi-bag-9",
		"tgm1", "tgm2", "tgm3",
	}
	if int(k) >= len(names) {
		return "unknown"
	}
	return names[k]
}

// Randomizer produces an infinite sequence of piece ids.
type Randomizer interface {
	Kind() Kind
	Next() piece.Id
}

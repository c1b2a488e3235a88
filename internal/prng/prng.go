// Package prng implements the small, non-cryptographic generator the engine
// uses for everything that must be replay-reproducible: randomizers and
// Fisher-Yates shuffles. It is a 4-word variant of Bob Jenkins' small fast
// PRNG. The exact rotate/xor/add formula is part of the contract: two
// engines seeded identically must draw identical piece sequences forever,
// which math/rand does not promise across Go versions.
package prng

// State is the generator's 4-word state.
type State struct {
	a, b, c, d uint32
}

func rotl(x uint32, k uint) uint32 {
	return (x << k) | (x >> (32 - k))
}

// Seed initializes the generator from a single 32-bit seed and discards the
// first 20 outputs, which is enough for the state to lose any structure
// carried over from the seed value itself.
func Seed(s uint32) *State {
	st := &State{a: 0xF1EA5EED, b: s, c: s, d: s}
	for i := 0; i < 20; i++ {
		st.Next()
	}
	return st
}

// Next returns the next 32-bit value in the sequence.
func (st *State) Next() uint32 {
	e := st.a - rotl(st.b, 27)
	st.a = st.b ^ rotl(st.c, 17)
	st.b = st.c + st.d
	st.c = st.d + e
	st.d = e + st.a
	return st.d
}

// NextRange returns a uniform value in [lo, hi) via rejection sampling. It
// panics if hi <= lo, since every caller in this module computes a
// non-degenerate range.
func (st *State) NextRange(lo, hi uint32) uint32 {
	if hi <= lo {
		panic("prng: NextRange requires hi > lo")
	}
	span := hi - lo
	// Reject draws that would bias the low end of the range when span
	// doesn't evenly divide 2^32.
	limit := (^uint32(0) / span) * span
	for {
		v := st.Next()
		if v < limit {
			return lo + v%span
		}
	}
}

// Shuffle permutes s in place using Fisher-Yates driven by NextRange. The
// iteration order (ascending, pairing index i with a draw from [i, len))
// is fixed: replays depend on drawing exactly this many random numbers in
// exactly this order.
func Shuffle[T any](st *State, s []T) {
	for i := 0; i < len(s)-1; i++ {
		j := st.NextRange(uint32(i), uint32(len(s)))
		s[i], s[j] = s[j], s[i]
	}
}

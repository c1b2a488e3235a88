package randomizer

import (
	"testing"

	"github.com/foss-games/blockfall/internal/piece"
	"github.com/foss-games/blockfall/internal/prng"
)

func TestBag7FirstPieceNeverBanned(t *testing.T) {
	for seed := uint32(0); seed < 50; seed++ {
		r := NewBag7(prng.Seed(seed))
		first := r.Next()
		if isFirstPieceBanned(first) {
			t.Fatalf("seed %d: first piece %v is banned", seed, first)
		}
	}
}

func TestBag7EmitsEachPieceOncePerCycle(t *testing.T) {
	r := NewBag7(prng.Seed(1))
	seen := map[piece.Id]int{}
	for i := 0; i < 7; i++ {
		seen[r.Next()]++
	}
	for _, id := range piece.All() {
		if seen[id] != 1 {
			t.Errorf("piece %v appeared %d times in one bag cycle, want 1", id, seen[id])
		}
	}
}

func TestBag7SeamCheckNeverRepeatsAcrossBoundary(t *testing.T) {
	r := NewBag7SeamCheck(prng.Seed(3))
	var prev piece.Id
	for cycle := 0; cycle < 100; cycle++ {
		for i := 0; i < 7; i++ {
			v := r.Next()
			if cycle > 0 && i == 0 && v == prev {
				t.Fatalf("cycle %d: bag boundary repeated piece %v", cycle, v)
			}
			if i == 6 {
				prev = v
			}
		}
	}
}

func TestMultiBagPoolSize(t *testing.T) {
	r := NewMultiBag(2, prng.Seed(9))
	seen := map[piece.Id]int{}
	for i := 0; i < 14; i++ {
		seen[r.Next()]++
	}
	for _, id := range piece.All() {
		if seen[id] != 2 {
			t.Errorf("piece %v appeared %d times in a 2-bag cycle, want 2", id, seen[id])
		}
	}
}

func TestDeterministicAcrossInstances(t *testing.T) {
	a := New(Bag7SeamCheck, prng.Seed(77))
	b := New(Bag7SeamCheck, prng.Seed(77))
	for i := 0; i < 50; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("draw %d diverged between two identically-seeded instances", i)
		}
	}
}

func TestTgm1FirstPieceRestricted(t *testing.T) {
	allowed := map[piece.Id]bool{piece.J: true, piece.I: true, piece.L: true, piece.T: true}
	for seed := uint32(0); seed < 50; seed++ {
		r := NewTgm1(prng.Seed(seed))
		if !allowed[r.Next()] {
			t.Fatalf("seed %d: TGM1 first piece not in {J,I,L,T}", seed)
		}
	}
}

func TestTgm3ProducesValidPieceIds(t *testing.T) {
	r := NewTgm3(prng.Seed(12))
	counts := map[piece.Id]int{}
	for i := 0; i < 500; i++ {
		v := r.Next()
		if v > piece.Z {
			t.Fatalf("draw %d: out-of-range piece id %v", i, v)
		}
		counts[v]++
	}
	for _, id := range piece.All() {
		if counts[id] == 0 {
			t.Errorf("piece %v never appeared in 500 draws", id)
		}
	}
}

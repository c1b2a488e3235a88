package queue

import (
	"testing"

	"github.com/foss-games/blockfall/internal/piece"
)

func TestTakeReturnsInOrderAndRefills(t *testing.T) {
	feed := []piece.Id{piece.I, piece.J, piece.L, piece.O, piece.S}
	i := 0
	next := func() piece.Id {
		v := feed[i%len(feed)]
		i++
		return v
	}
	q := New(3, next) // consumes I, J, L to fill
	if q.Peek(0) != piece.I || q.Peek(1) != piece.J || q.Peek(2) != piece.L {
		t.Fatalf("unexpected initial fill: %v %v %v", q.Peek(0), q.Peek(1), q.Peek(2))
	}
	v := q.Take(next) // returns I, refills with O
	if v != piece.I {
		t.Fatalf("Take() = %v, want I", v)
	}
	if q.Peek(0) != piece.J || q.Peek(1) != piece.L || q.Peek(2) != piece.O {
		t.Fatalf("unexpected queue after one Take: %v %v %v", q.Peek(0), q.Peek(1), q.Peek(2))
	}
}

func TestQueueAlwaysFull(t *testing.T) {
	n := 0
	next := func() piece.Id { n++; return piece.FromIndex(n % 7) }
	q := New(4, next)
	for i := 0; i < 20; i++ {
		q.Take(next)
		if q.Len() != 4 {
			t.Fatalf("queue length changed: %d", q.Len())
		}
	}
}

// Package queue implements the fixed-capacity preview ring buffer: no
// allocation after construction, so the engine's steady-state tick never
// touches the heap for piece lookahead.
package queue

import "github.com/foss-games/blockfall/internal/piece"

// Preview is a ring buffer of upcoming piece ids, always full after New.
type Preview struct {
	buf  []piece.Id
	head int
}

// New constructs a preview queue of the given capacity, filled by calling
// next repeatedly.
func New(capacity int, next func() piece.Id) *Preview {
	buf := make([]piece.Id, capacity)
	for i := range buf {
		buf[i] = next()
	}
	return &Preview{buf: buf}
}

// Take returns the head of the queue and replaces it with a freshly
// generated piece, advancing the head pointer.
func (q *Preview) Take(next func() piece.Id) piece.Id {
	if len(q.buf) == 0 {
		return next()
	}
	v := q.buf[q.head]
	q.buf[q.head] = next()
	q.head = (q.head + 1) % len(q.buf)
	return v
}

// Peek returns the i-th upcoming piece without mutating the queue. i=0 is
// the same piece Take would return next.
func (q *Preview) Peek(i int) piece.Id {
	return q.buf[(q.head+i)%len(q.buf)]
}

// SwapHead replaces the queue's head with v, without consuming a new
// randomizer draw, and returns the piece that was there. Used by hold
// during Ready/Go, where swapping with the preview doesn't cost a roll.
func (q *Preview) SwapHead(v piece.Id) piece.Id {
	old := q.buf[q.head]
	q.buf[q.head] = v
	return old
}

// Len returns the queue's fixed capacity.
func (q *Preview) Len() int {
	return len(q.buf)
}

// Package piece defines the falling piece entity: its identity, orientation,
// and the geometry invariants the engine maintains every tick.
package piece

import "github.com/foss-games/blockfall/internal/fixedpoint"

// Id identifies one of the seven standard piece shapes. The order matches
// the canonical serialization index used by replay options (I<J<L<O<S<T<Z).
type Id uint8

const (
	I Id = iota
	J
	L
	O
	S
	T
	Z
	numIds
)

func (id Id) String() string {
	names := [numIds]string{"I", "J", "L", "O", "S", "T", "Z"}
	if int(id) >= len(names) {
		return "?"
	}
	return names[id]
}

// FromIndex maps a 0..6 index onto an Id in canonical order.
func FromIndex(i int) Id {
	return Id(i)
}

// All returns the seven piece ids in canonical order. The slice is freshly
// allocated on each call so callers may shuffle it in place.
func All() []Id {
	return []Id{I, J, L, O, S, T, Z}
}

// Theta is one of the four 90-degree orientations of a piece.
type Theta uint8

const (
	R0 Theta = iota
	R90
	R180
	R270
)

// Rotation is a relative turn applied to a Theta.
type Rotation int8

const (
	AntiClockwise Rotation = -1
	Clockwise     Rotation = 1
	Half          Rotation = 2
)

// Rotate composes a Theta with a Rotation, wrapping modulo 4.
func (th Theta) Rotate(r Rotation) Theta {
	return Theta((int(th) + int(r) + 4) % 4)
}

// Block is a cell offset within a piece's 4x4 bounding box.
type Block struct {
	X, Y int8
}

// Piece is the single falling piece the engine is actively resolving.
type Piece struct {
	ID    Id
	X, Y  int8
	Theta Theta

	// YActual is the fractional vertical position gravity accumulates into.
	// Its integer part must equal Y after every tick.
	YActual fixedpoint.UQ8_24

	// YHardDrop is the row the piece would occupy if hard-dropped right now.
	YHardDrop int8

	// LockTimer counts ticks since the piece has been resting on something
	// it cannot fall through. It is bounded by the configured lock delay.
	LockTimer uint32

	// FloorkickCount counts wallkicks that moved the piece upward, used to
	// cap infinite spin-to-stall play.
	FloorkickCount uint32
}

// New constructs a piece at the given position and orientation with its
// fractional position initialized from the integer row.
func New(id Id, x, y int8, theta Theta) *Piece {
	return &Piece{
		ID:      id,
		X:       x,
		Y:       y,
		Theta:   theta,
		YActual: fixedpoint.FromParts(uint8(y), 0),
	}
}

// Move relocates the piece, resetting its fractional position's integer
// part to match while preserving the accumulated fraction. YHardDrop is left
// unchanged; callers recompute it after a move.
func (p *Piece) Move(x, y int8, theta Theta) {
	p.X = x
	p.Y = y
	p.Theta = theta
	p.YActual = fixedpoint.FromParts(uint8(y), p.YActual.Fraction())
}

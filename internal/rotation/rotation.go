// Package rotation implements the pluggable family of rotation systems: the
// block-offset table for each (piece, orientation) and the wallkick
// procedure tried when a rotation would otherwise collide.
//
// Each system is a sum-type variant rather than an open class hierarchy:
// System is a small interface, and every concrete system is its own
// zero-size type satisfying it. There is no shared base struct to extend.
package rotation

import "github.com/foss-games/blockfall/internal/piece"

// Kind names one of the supported rotation systems, used by Options and the
// replay options block.
type Kind uint8

const (
	Srs Kind = iota
	Sega
	Dtet
	Nes
	ArikaSrs
	Tgm
	Tgm3
)

func (k Kind) String() string {
	names := [...]string{"srs", "sega", "dtet", "nes", "arika-srs", "tgm", "tgm3"}
	if int(k) >= len(names) {
		return "unknown"
	}
	return names[k]
}

// Collider reports whether a piece at the given position and orientation
// would collide with a well's walls, floor, or occupied cells. board.Well's
// View method returns one, but the interface keeps rotation free of a
// direct board dependency.
type Collider interface {
	Collides(id piece.Id, x, y int8, theta piece.Theta) bool
}

// System is one pluggable rotation ruleset.
type System interface {
	Kind() Kind
	// Blocks returns the four cell offsets for a piece at a given
	// orientation, within its 4x4 bounding box.
	Blocks(id piece.Id, theta piece.Theta) []piece.Block
	// Rotate attempts to turn p by r against well, trying each kick in
	// order and committing the first that doesn't collide. It returns
	// whether the rotation succeeded, and whether the committed kick moved
	// the piece upward (a floorkick, which the engine counts separately).
	Rotate(well Collider, p *piece.Piece, r piece.Rotation) (ok bool, wasFloorkick bool)
}

type kickOffset struct {
	DX, DY int8
}

type transitionKey struct {
	From, To piece.Theta
}

func transition(theta piece.Theta, r piece.Rotation) transitionKey {
	return transitionKey{From: theta, To: theta.Rotate(r)}
}

// attemptKicks runs the shared kick-trying procedure: for each offset in
// order, test the new orientation at the offset position; commit and report
// on the first that neither collides with well nor is rejected by the
// optional exception predicate. exceptionFn may be nil.
func attemptKicks(well Collider, p *piece.Piece, newTheta piece.Theta, kicks []kickOffset, exceptionFn func(dx, dy int8) bool) (ok bool, wasFloorkick bool) {
	for _, k := range kicks {
		nx := p.X + k.DX
		ny := p.Y + k.DY
		if well.Collides(p.ID, nx, ny, newTheta) {
			continue
		}
		if exceptionFn != nil && exceptionFn(k.DX, k.DY) {
			continue
		}
		p.Move(nx, ny, newTheta)
		return true, k.DY < 0
	}
	return false, false
}

package rotation

import "github.com/foss-games/blockfall/internal/piece"

// segaSystem and nesSystem never kick: a rotation either fits at the
// piece's current position or it fails outright. They exist as distinct
// types (rather than one "no kick" flag) so each carries its own Kind and
// can gain its own block table without disturbing the other.
type segaSystem struct{}

func NewSega() System { return segaSystem{} }

func (segaSystem) Kind() Kind { return Sega }

func (segaSystem) Blocks(id piece.Id, theta piece.Theta) []piece.Block {
	return blocksFrom(standardShapes, id, theta)
}

func (segaSystem) Rotate(well Collider, p *piece.Piece, r piece.Rotation) (bool, bool) {
	newTheta := p.Theta.Rotate(r)
	return attemptKicks(well, p, newTheta, halfKicks, nil)
}

type nesSystem struct{}

func NewNes() System { return nesSystem{} }

func (nesSystem) Kind() Kind { return Nes }

func (nesSystem) Blocks(id piece.Id, theta piece.Theta) []piece.Block {
	return blocksFrom(standardShapes, id, theta)
}

func (nesSystem) Rotate(well Collider, p *piece.Piece, r piece.Rotation) (bool, bool) {
	newTheta := p.Theta.Rotate(r)
	return attemptKicks(well, p, newTheta, halfKicks, nil)
}

// dtetKicks is the "symmetric 6-kick" table: unlike SRS, DTET tries the
// same six offsets regardless of which transition is being made, trading
// table size for a more forgiving spin game.
var dtetKicks = []kickOffset{
	{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {-1, -1}, {1, -1},
}

type dtetSystem struct{}

func NewDtet() System { return dtetSystem{} }

func (dtetSystem) Kind() Kind { return Dtet }

func (dtetSystem) Blocks(id piece.Id, theta piece.Theta) []piece.Block {
	return blocksFrom(standardShapes, id, theta)
}

func (dtetSystem) Rotate(well Collider, p *piece.Piece, r piece.Rotation) (bool, bool) {
	newTheta := p.Theta.Rotate(r)
	if p.ID == piece.O || r == piece.Half {
		return attemptKicks(well, p, newTheta, halfKicks, nil)
	}
	return attemptKicks(well, p, newTheta, dtetKicks, nil)
}

package rotation

import "github.com/foss-games/blockfall/internal/piece"

// srsJLSTZKicks and srsIKicks are the canonical Tetris Guideline SRS wall
// kick tables, transcribed in this module's y-down convention (every dy
// below has its sign flipped relative to the well-known y-up presentation
// of these tables, since here row numbers grow downward).
var srsJLSTZKicks = map[transitionKey][]kickOffset{
	{piece.R0, piece.R90}:   {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{piece.R90, piece.R0}:   {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{piece.R90, piece.R180}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{piece.R180, piece.R90}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{piece.R180, piece.R270}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{piece.R270, piece.R180}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{piece.R270, piece.R0}:   {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{piece.R0, piece.R270}:   {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
}

var srsIKicks = map[transitionKey][]kickOffset{
	{piece.R0, piece.R90}:   {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{piece.R90, piece.R0}:   {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{piece.R90, piece.R180}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	{piece.R180, piece.R90}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{piece.R180, piece.R270}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{piece.R270, piece.R180}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{piece.R270, piece.R0}:   {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{piece.R0, piece.R270}:   {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
}

var halfKicks = []kickOffset{{0, 0}}

type srsSystem struct{}

// NewSrs returns the standard SRS rotation system.
func NewSrs() System { return srsSystem{} }

func (srsSystem) Kind() Kind { return Srs }

func (srsSystem) Blocks(id piece.Id, theta piece.Theta) []piece.Block {
	return blocksFrom(standardShapes, id, theta)
}

func (s srsSystem) Rotate(well Collider, p *piece.Piece, r piece.Rotation) (bool, bool) {
	return rotateWithTable(well, p, r, srsIKicks, srsJLSTZKicks)
}

// rotateWithTable is shared by every kick-table-driven system: O never
// kicks (it's rotationally symmetric in bounding box terms), I uses its own
// table, everything else uses the JLSTZ table, and Half rotations only ever
// try the identity offset.
func rotateWithTable(well Collider, p *piece.Piece, r piece.Rotation, iKicks, jlstzKicks map[transitionKey][]kickOffset) (bool, bool) {
	newTheta := p.Theta.Rotate(r)
	if p.ID == piece.O {
		return attemptKicks(well, p, newTheta, halfKicks, nil)
	}
	if r == piece.Half {
		return attemptKicks(well, p, newTheta, halfKicks, nil)
	}
	key := transition(p.Theta, r)
	table := jlstzKicks
	if p.ID == piece.I {
		table = iKicks
	}
	kicks, ok := table[key]
	if !ok {
		kicks = halfKicks
	}
	return attemptKicks(well, p, newTheta, kicks, nil)
}

type arikaSrsSystem struct{}

// NewArikaSrs returns the Arika variant of SRS, which reuses the JLSTZ kick
// table for the I piece instead of SRS's wider dedicated table.
func NewArikaSrs() System { return arikaSrsSystem{} }

func (arikaSrsSystem) Kind() Kind { return ArikaSrs }

func (arikaSrsSystem) Blocks(id piece.Id, theta piece.Theta) []piece.Block {
	return blocksFrom(standardShapes, id, theta)
}

func (arikaSrsSystem) Rotate(well Collider, p *piece.Piece, r piece.Rotation) (bool, bool) {
	return rotateWithTable(well, p, r, srsJLSTZKicks, srsJLSTZKicks)
}

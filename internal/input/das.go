// Package input turns a per-tick virtual key bitset into the movement,
// rotation, and gravity decisions the engine's state machine consumes,
// implementing delayed auto shift (DAS) and auto-repeat rate (ARR).
package input

import (
	"github.com/foss-games/blockfall/internal/keys"
	"github.com/foss-games/blockfall/internal/piece"
)

// Actions is what a single tick's input resolves to.
type Actions struct {
	Movement         int32 // horizontal delta in cells, possibly spanning the whole well for instant ARR
	Rotation         piece.Rotation
	HasRotation      bool
	GravityMsPerCell uint32
	Hold             bool
	HardDrop         bool
	Lock             bool
	Quit             bool
	Restart          bool
	NewKeys          keys.Set
}

// Interpreter holds the DAS memory that must persist across ticks.
type Interpreter struct {
	DasCounter int32
	LastKeys   keys.Set

	WellWidth                int32
	DasDelayTicks            int32
	DasSpeedTicks            int32
	GravityMsPerCell         uint32
	SoftDropGravityMsPerCell uint32
	OneShotSoftDrop          bool
}

// Resolve computes this tick's Actions from the held key bitset and updates
// the interpreter's DAS memory in place.
func (in *Interpreter) Resolve(held keys.Set) Actions {
	newKeys := keys.Edges(held, in.LastKeys)

	a := Actions{NewKeys: newKeys, GravityMsPerCell: in.GravityMsPerCell}

	leftHeld := held.Held(keys.Left)
	rightHeld := held.Held(keys.Right)

	switch {
	case leftHeld && !rightHeld:
		a.Movement = -in.resolveDas()
	case rightHeld && !leftHeld:
		a.Movement = in.resolveDas()
	default:
		in.DasCounter = 0
	}

	softDropActive := held.Held(keys.Down)
	if in.OneShotSoftDrop {
		softDropActive = newKeys.Held(keys.Down)
	}
	if softDropActive {
		a.GravityMsPerCell = in.SoftDropGravityMsPerCell
	}

	switch {
	case newKeys.Held(keys.RotateLeft):
		a.Rotation, a.HasRotation = piece.AntiClockwise, true
	case newKeys.Held(keys.RotateRight):
		a.Rotation, a.HasRotation = piece.Clockwise, true
	case newKeys.Held(keys.RotateHalf):
		a.Rotation, a.HasRotation = piece.Half, true
	}

	if newKeys.Held(keys.Hold) {
		a.Hold = true
	}
	if newKeys.Held(keys.Up) {
		a.HardDrop = true
		a.Lock = true
	}
	if held.Held(keys.Quit) {
		a.Quit = true
	}
	if newKeys.Held(keys.Restart) {
		a.Restart = true
	}

	in.LastKeys = held
	return a
}

// resolveDas implements the counter state machine for one horizontal
// direction: before the DAS threshold is reached, holding the key moves the
// piece once (on the initial edge) and then waits; past the threshold, it
// repeats every DasSpeedTicks ticks, or moves all the way to the wall in one
// shot when DasSpeedTicks is zero (instant ARR).
func (in *Interpreter) resolveDas() int32 {
	if in.DasCounter == 0 {
		in.DasCounter = -1
		return 1
	}
	if in.DasCounter > -in.DasDelayTicks {
		in.DasCounter--
		return 0
	}
	if in.DasSpeedTicks != 0 {
		in.DasCounter -= in.DasSpeedTicks - 1
		return 1
	}
	return in.WellWidth
}

package engine

import (
	"fmt"

	"github.com/foss-games/blockfall/internal/randomizer"
	"github.com/foss-games/blockfall/internal/replayerr"
	"github.com/foss-games/blockfall/internal/rotation"
)

// InvalidOptionsError reports which field of Options failed validation.
type InvalidOptionsError struct {
	Field string
	Value any
}

func (e *InvalidOptionsError) Error() string {
	return fmt.Sprintf("%s=%v: %v", e.Field, e.Value, replayerr.ErrInvalidOptions)
}

func (e *InvalidOptionsError) Unwrap() error {
	return replayerr.ErrInvalidOptions
}

// LockStyle controls when the lock timer resets while a piece is resting.
type LockStyle uint8

const (
	LockEntry LockStyle = iota
	LockStep
	LockMove
)

func (s LockStyle) String() string {
	switch s {
	case LockEntry:
		return "entry"
	case LockStep:
		return "step"
	default:
		return "move"
	}
}

// InitialActionStyle is the replay options vocabulary's setting for whether
// input held during Are/Ready/Go carries into the next piece's spawn. The
// engine stores it and replays round-trip it, but the engine does not read
// it: Persistent and Trigger both behave as None.
type InitialActionStyle uint8

const (
	InitialActionNone InitialActionStyle = iota
	InitialActionPersistent
	InitialActionTrigger
)

func (s InitialActionStyle) String() string {
	switch s {
	case InitialActionPersistent:
		return "persistent"
	case InitialActionTrigger:
		return "trigger"
	default:
		return "none"
	}
}

// Options configures a new Engine. Use DefaultOptions and override only the
// fields that matter to the caller.
type Options struct {
	Seed uint32

	WellWidth  int
	WellHeight int
	WellHidden int

	DasSpeedMs int32
	DasDelayMs int32

	AreDelayMs      uint32
	AreCancellable  bool

	WarnOnBadFinesse bool

	LockStyle   LockStyle
	LockDelayMs uint32

	FloorkickLimit uint32

	OneShotSoftDrop bool

	RotationSystem rotation.Kind

	InitialActionStyle InitialActionStyle

	GravityMsPerCell         uint32
	SoftDropGravityMsPerCell uint32

	Randomizer randomizer.Kind

	ReadyPhaseLengthMs uint32
	GoPhaseLengthMs    uint32
	InfiniteReadyGoHold bool

	PreviewPieceCount int

	Goal int

	ShowGhost bool

	// MsPerTick is the host's fixed timestep; it isn't part of the
	// original option vocabulary but every tick-count conversion in this
	// engine depends on it, so it's threaded through Options rather than
	// hardcoded.
	MsPerTick uint32
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		WellWidth:                10,
		WellHeight:               22,
		WellHidden:               2,
		DasSpeedMs:               0,
		DasDelayMs:               150,
		AreDelayMs:               0,
		AreCancellable:           false,
		WarnOnBadFinesse:         false,
		LockStyle:                LockMove,
		LockDelayMs:              150,
		FloorkickLimit:           1,
		OneShotSoftDrop:          false,
		RotationSystem:           rotation.Srs,
		InitialActionStyle:       InitialActionNone,
		GravityMsPerCell:         1000,
		SoftDropGravityMsPerCell: 200,
		Randomizer:               randomizer.Bag7SeamCheck,
		ReadyPhaseLengthMs:       833,
		GoPhaseLengthMs:          833,
		InfiniteReadyGoHold:      false,
		PreviewPieceCount:        4,
		Goal:                     40,
		ShowGhost:                true,
		MsPerTick:                16,
	}
}

// ticks converts a millisecond duration to a tick count at the options'
// configured timestep, rounding down.
func (o Options) ticks(ms uint32) uint32 {
	if o.MsPerTick == 0 {
		return 0
	}
	return ms / o.MsPerTick
}

func (o Options) ticksSigned(ms int32) int32 {
	if o.MsPerTick == 0 {
		return 0
	}
	return ms / int32(o.MsPerTick)
}

// Validate checks the bounds SPEC_FULL.md places on well and preview sizes.
func (o Options) Validate() error {
	if o.WellWidth <= 0 || o.WellWidth > 20 {
		return &InvalidOptionsError{Field: "well_width", Value: o.WellWidth}
	}
	if o.WellHeight <= 0 || o.WellHeight > 25 {
		return &InvalidOptionsError{Field: "well_height", Value: o.WellHeight}
	}
	if o.PreviewPieceCount < 0 || o.PreviewPieceCount > 5 {
		return &InvalidOptionsError{Field: "preview_piece_count", Value: o.PreviewPieceCount}
	}
	return nil
}

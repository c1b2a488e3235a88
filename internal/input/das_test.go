package input

import (
	"testing"

	"github.com/foss-games/blockfall/internal/keys"
)

func newInterpreter() *Interpreter {
	return &Interpreter{
		WellWidth:        10,
		DasDelayTicks:    9, // 150ms at 60 ticks/sec, rounded for the test
		DasSpeedTicks:    0,
		GravityMsPerCell: 1000,
	}
}

func TestDasInfiniteChargeMovesToWall(t *testing.T) {
	in := newInterpreter()
	var total int32
	for i := int32(0); i < in.DasDelayTicks+1; i++ {
		a := in.Resolve(keys.Left)
		total += a.Movement
	}
	if total != -(1 + in.WellWidth) {
		t.Errorf("cumulative movement after charging DAS = %d, want %d", total, -(1 + in.WellWidth))
	}
}

func TestReleasingKeyResetsCounter(t *testing.T) {
	in := newInterpreter()
	in.Resolve(keys.Left)
	in.Resolve(keys.Set(0))
	if in.DasCounter != 0 {
		t.Errorf("DasCounter after release = %d, want 0", in.DasCounter)
	}
}

func TestRotateEdgeOnlyFiresOnce(t *testing.T) {
	in := newInterpreter()
	a1 := in.Resolve(keys.RotateRight)
	a2 := in.Resolve(keys.RotateRight)
	if !a1.HasRotation {
		t.Error("expected rotation on key-down edge")
	}
	if a2.HasRotation {
		t.Error("expected no rotation while key stays held")
	}
}

func TestHardDropSetsLock(t *testing.T) {
	in := newInterpreter()
	a := in.Resolve(keys.Up)
	if !a.HardDrop || !a.Lock {
		t.Errorf("Up edge: HardDrop=%v Lock=%v, want both true", a.HardDrop, a.Lock)
	}
}

func TestSoftDropOverridesGravity(t *testing.T) {
	in := newInterpreter()
	in.SoftDropGravityMsPerCell = 200
	a := in.Resolve(keys.Down)
	if a.GravityMsPerCell != 200 {
		t.Errorf("GravityMsPerCell with soft drop held = %d, want 200", a.GravityMsPerCell)
	}
}

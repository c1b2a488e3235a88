package fixedpoint

import "testing"

func TestFromRatioIntegerPart(t *testing.T) {
	cases := []struct {
		a, b uint32
		want uint8
	}{
		{1000, 1000, 1},
		{500, 1000, 0},
		{16, 1, 16},
		{0, 7, 0},
	}
	for _, c := range cases {
		got := FromRatio(c.a, c.b).Integer()
		if got != c.want {
			t.Errorf("FromRatio(%d, %d).Integer() = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestAddAccumulatesFraction(t *testing.T) {
	step := FromRatio(250, 1000) // 0.25 cells per tick, exact in 24 fraction bits
	var acc UQ8_24
	for i := 0; i < 3; i++ {
		acc = acc.Add(step)
	}
	if acc.Integer() != 0 {
		t.Fatalf("after 3 steps of 0.25, integer part = %d, want 0", acc.Integer())
	}
	acc = acc.Add(step)
	if acc.Integer() != 1 {
		t.Fatalf("after 4 steps of 0.25, integer part = %d, want 1", acc.Integer())
	}
}

func TestAddWraps(t *testing.T) {
	v := UQ8_24(^uint32(0))
	got := v.Add(UQ8_24(2))
	if got != UQ8_24(1) {
		t.Errorf("Add wraparound = %d, want 1", got)
	}
}

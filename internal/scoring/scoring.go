// Package scoring implements an optional guideline-style score accessory.
// It is a pure reader of engine.Snapshot: it never touches the well, the
// piece, or any engine-owned state, and the engine runs identically whether
// or not a host bothers to track a Tracker at all.
package scoring

import "github.com/foss-games/blockfall/internal/engine"

// LevelUpLines is how many cleared lines it takes to advance one level.
const LevelUpLines = 10

// Tracker accumulates a score from a sequence of engine snapshots, deriving
// line-clear deltas from Stats.LinesCleared rather than hooking into the
// engine's tick logic.
type Tracker struct {
	Score             int
	Level             int
	ConsecutiveClears int
	BackToBack        bool

	lastLinesCleared int
	initialized      bool
}

// NewTracker returns a Tracker starting at level 1.
func NewTracker() *Tracker {
	return &Tracker{Level: 1}
}

// Observe folds one snapshot into the tracker's running score. Snapshots
// must be observed in tick order; skipping snapshots undercounts clears.
func (t *Tracker) Observe(snap engine.Snapshot) {
	if !t.initialized {
		t.lastLinesCleared = snap.Stats.LinesCleared
		t.initialized = true
		return
	}

	cleared := snap.Stats.LinesCleared - t.lastLinesCleared
	t.lastLinesCleared = snap.Stats.LinesCleared

	if cleared <= 0 {
		t.ConsecutiveClears = 0
		t.BackToBack = false
		return
	}

	t.Score += bonus(cleared, t.Level, t.ConsecutiveClears, t.BackToBack)
	t.ConsecutiveClears++
	t.BackToBack = cleared == 4
	t.Level = snap.Stats.LinesCleared/LevelUpLines + 1
}

// bonus computes the score awarded for one line-clear event, following the
// guideline scoring table with a combo and back-to-back multiplier on top.
func bonus(clearedLines, level, consecutiveClears int, backToBack bool) int {
	base := 0
	switch clearedLines {
	case 1:
		base = 100
	case 2:
		base = 300
	case 3:
		base = 500
	case 4:
		base = 800
	}

	score := base * level
	if consecutiveClears > 1 {
		score += 50 * (consecutiveClears - 1) * level
	}
	if backToBack {
		score = int(float64(score) * 1.5)
	}
	return score
}

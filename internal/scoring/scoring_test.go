package scoring

import (
	"testing"

	"github.com/foss-games/blockfall/internal/engine"
)

func snap(lines int) engine.Snapshot {
	return engine.Snapshot{Stats: engine.Stats{LinesCleared: lines}}
}

func TestFirstObservationEstablishesBaseline(t *testing.T) {
	tr := NewTracker()
	tr.Observe(snap(0))
	if tr.Score != 0 {
		t.Fatalf("expected score 0 after baseline observation, got %d", tr.Score)
	}
}

func TestSingleLineClearAwardsBaseScore(t *testing.T) {
	tr := NewTracker()
	tr.Observe(snap(0))
	tr.Observe(snap(1))
	if tr.Score != 100 {
		t.Fatalf("expected 100, got %d", tr.Score)
	}
	if tr.ConsecutiveClears != 1 {
		t.Fatalf("expected ConsecutiveClears 1, got %d", tr.ConsecutiveClears)
	}
}

func TestTetrisSetsBackToBack(t *testing.T) {
	tr := NewTracker()
	tr.Observe(snap(0))
	tr.Observe(snap(4))
	if !tr.BackToBack {
		t.Fatal("expected BackToBack true after a 4-line clear")
	}

	scoreAfterFirst := tr.Score
	tr.Observe(snap(8))
	if tr.Score <= scoreAfterFirst {
		t.Fatal("expected back-to-back bonus to increase the score")
	}
}

func TestNonClearTickResetsCombo(t *testing.T) {
	tr := NewTracker()
	tr.Observe(snap(0))
	tr.Observe(snap(1))
	tr.Observe(snap(1))
	if tr.ConsecutiveClears != 0 {
		t.Fatalf("expected combo reset, got %d", tr.ConsecutiveClears)
	}
	if tr.BackToBack {
		t.Fatal("expected BackToBack cleared after a non-clearing tick")
	}
}

func TestLevelAdvancesEveryTenLines(t *testing.T) {
	tr := NewTracker()
	tr.Observe(snap(0))
	tr.Observe(snap(10))
	if tr.Level != 2 {
		t.Fatalf("expected level 2 at 10 lines, got %d", tr.Level)
	}
}

package fabric

import (
	"testing"

	"github.com/kcirtapfromspace/sudoku/internal/core"
)

const wikipediaPuzzle = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func mustGrid(t *testing.T, s string) core.Grid {
	t.Helper()
	if len(s) != core.TotalCells {
		t.Fatalf("fixture must be 81 chars, got %d", len(s))
	}
	var values [core.TotalCells]int
	for i, ch := range s {
		if ch != '.' && ch != '0' {
			values[i] = int(ch - '0')
		}
	}
	return core.NewGrid(values)
}

func TestFromGridProjectsCandidates(t *testing.T) {
	g := mustGrid(t, wikipediaPuzzle)
	f, err := FromGrid(g)
	if err != nil {
		t.Fatalf("unexpected contradiction: %v", err)
	}
	if err := f.CheckInvariants(); err != nil {
		t.Fatalf("invariants violated after FromGrid: %v", err)
	}

	// Cell 2 (R1C3) is empty in the puzzle and should not carry 5 (row peer)
	// or 3 (row peer) as a candidate.
	cands := f.CellCandidates(2)
	if cands.Has(5) || cands.Has(3) {
		t.Errorf("cell 2 candidates should exclude row peers' values, got %v", cands)
	}
}

func TestEliminateIsIdempotent(t *testing.T) {
	g := mustGrid(t, wikipediaPuzzle)
	f, err := FromGrid(g)
	if err != nil {
		t.Fatalf("unexpected contradiction: %v", err)
	}
	cell := 2
	before := f.CellCandidates(cell)
	if before.Has(1) {
		outcome := f.Eliminate(cell, 1)
		if outcome == NoOp {
			t.Fatal("first elimination of a present candidate should not be a no-op")
		}
		again := f.Eliminate(cell, 1)
		if again != NoOp {
			t.Errorf("re-eliminating an absent candidate should be a no-op, got %v", again)
		}
	}
}

func TestPlaceCascadesSingles(t *testing.T) {
	g := mustGrid(t, wikipediaPuzzle)
	f, err := FromGrid(g)
	if err != nil {
		t.Fatalf("unexpected contradiction: %v", err)
	}
	if err := f.CheckInvariants(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
	if f.Grid().IsSolved() {
		t.Fatal("fixture should not be solved by propagation alone before any placements")
	}
	// R5C5 (cell 40) can only be 5; placing it cascades the remaining
	// singles through the whole puzzle.
	if outcome := f.Place(40, 5); outcome != Changed {
		t.Fatalf("placing the naked single should succeed, got %v", outcome)
	}
	if !f.Grid().IsSolved() {
		t.Error("placing one single should cascade singles until the puzzle is solved")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := mustGrid(t, wikipediaPuzzle)
	f, _ := FromGrid(g)
	clone := f.Clone()
	clone.Eliminate(2, 1)
	orig := f.CellCandidates(2)
	cloned := clone.CellCandidates(2)
	if orig == cloned && orig.Has(1) {
		t.Error("mutating the clone should not affect the original fabric")
	}
}

func TestContradictionDetected(t *testing.T) {
	// Two givens of the same digit in one row is an immediate contradiction
	// once propagation removes the other row cells' candidates... but a
	// Grid constructed with a genuine duplicate given is invalid input we
	// still must not panic on: force it through Place directly instead.
	var values [core.TotalCells]int
	values[0] = 1
	g := core.NewGrid(values)
	f, err := FromGrid(g)
	if err != nil {
		t.Fatalf("valid single-given grid should not contradict: %v", err)
	}
	if outcome := f.Place(core.IndexOf(0, 1), 1); outcome != Contradiction {
		t.Errorf("placing a peer's value should contradict, got %v", outcome)
	}
}

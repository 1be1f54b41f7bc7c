package basics

import (
	"testing"

	"github.com/kcirtapfromspace/sudoku/internal/core"
	"github.com/kcirtapfromspace/sudoku/internal/fabric"
)

func gridFromString(t *testing.T, s string) core.Grid {
	t.Helper()
	var values [core.TotalCells]int
	for i, ch := range s {
		if ch != '.' && ch != '0' {
			values[i] = int(ch - '0')
		}
	}
	return core.NewGrid(values)
}

func TestFindNakedSingleMatchesFirstHint(t *testing.T) {
	const puzzle = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	g := gridFromString(t, puzzle)
	f, err := fabric.FromGrid(g)
	if err != nil {
		t.Fatalf("unexpected contradiction: %v", err)
	}
	// FromGrid places nothing, so the fabric still holds forced singles
	// (R5C5 can only be 5); the first basic hint is a naked single.
	h := Find(f)
	if h == nil || h.Technique != core.TechNakedSingle {
		t.Fatalf("expected a naked-single hint, got %+v", h)
	}
}

func TestNakedPairEliminatesFromRestOfUnit(t *testing.T) {
	// Reduce every cell of the first row to {1,2}: cells 0 and 1 form a naked
	// pair whose digits are eliminated from the other cells of the row.
	var values [core.TotalCells]int
	g := core.NewGrid(values)
	f, err := fabric.FromGrid(g)
	if err != nil {
		t.Fatalf("unexpected contradiction: %v", err)
	}
	for c := 2; c < core.GridSize; c++ {
		for d := 3; d <= core.GridSize; d++ {
			f.Eliminate(c, d)
		}
	}
	f.Eliminate(0, 3)
	for d := 4; d <= core.GridSize; d++ {
		f.Eliminate(0, d)
	}
	f.Eliminate(1, 3)
	for d := 4; d <= core.GridSize; d++ {
		f.Eliminate(1, d)
	}

	h := findNakedTuple(f, 2)
	if h == nil {
		t.Fatal("expected a naked pair hint")
	}
	if h.Technique != core.TechNakedPair {
		t.Errorf("expected naked-pair technique, got %s", h.Technique)
	}
	if len(h.Eliminations) == 0 {
		t.Error("expected at least one elimination")
	}
}

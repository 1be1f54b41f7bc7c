package als

import (
	"testing"

	"github.com/kcirtapfromspace/sudoku/internal/core"
	"github.com/kcirtapfromspace/sudoku/internal/fabric"
)

func TestEnumerateFindsSizeOneAls(t *testing.T) {
	var values [core.TotalCells]int
	g := core.NewGrid(values)
	f, err := fabric.FromGrid(g)
	if err != nil {
		t.Fatalf("unexpected contradiction: %v", err)
	}
	// Force cell 0 down to exactly two candidates: a size-1 ALS.
	for d := 3; d <= core.GridSize; d++ {
		f.Eliminate(0, d)
	}
	sets := Enumerate(f)
	found := false
	for _, s := range sets {
		if len(s.Cells) == 1 && s.Cells[0] == 0 && s.Cands.Count() == 2 {
			found = true
		}
	}
	if !found {
		t.Error("expected to find a size-1 ALS at cell 0 with 2 candidates")
	}
}

func TestDisjointSets(t *testing.T) {
	a := Set{Cells: []int{0, 1}}
	b := Set{Cells: []int{2, 3}}
	c := Set{Cells: []int{1, 5}}
	if !disjoint(a, b) {
		t.Error("a and b share no cells, should be disjoint")
	}
	if disjoint(a, c) {
		t.Error("a and c share cell 1, should not be disjoint")
	}
}

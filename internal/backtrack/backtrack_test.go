package backtrack

import (
	"testing"

	"github.com/kcirtapfromspace/sudoku/internal/core"
)

func gridFromString(s string) core.Grid {
	var values [core.TotalCells]int
	for i, ch := range s {
		if ch != '.' && ch != '0' {
			values[i] = int(ch - '0')
		}
	}
	return core.NewGrid(values)
}

const wikipediaPuzzle = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
const wikipediaSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"

func TestSolveFindsUniqueSolution(t *testing.T) {
	g := gridFromString(wikipediaPuzzle)
	solved, outcome := Solve(g)
	if outcome != Unique {
		t.Fatalf("expected Unique, got %v", outcome)
	}
	want := gridFromString(wikipediaSolution)
	for c := 0; c < core.TotalCells; c++ {
		if solved.Value(c) != want.Value(c) {
			t.Errorf("cell %d: got %d, want %d", c, solved.Value(c), want.Value(c))
		}
	}
}

func TestSolveReportsNoSolution(t *testing.T) {
	var values [core.TotalCells]int
	values[0] = 1
	values[1] = 1 // two givens of the same value in one row: unsolvable
	g := core.NewGrid(values)
	_, outcome := Solve(g)
	if outcome != NoSolution {
		t.Errorf("expected NoSolution, got %v", outcome)
	}
}

func TestCountSolutionsCapsAtMax(t *testing.T) {
	var values [core.TotalCells]int // empty grid has astronomically many solutions
	g := core.NewGrid(values)
	n := CountSolutions(g, 2)
	if n != 2 {
		t.Errorf("expected count capped at 2, got %d", n)
	}
}

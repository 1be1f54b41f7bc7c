package altsolve

import (
	"testing"
	"time"

	"github.com/kcirtapfromspace/sudoku/internal/backtrack"
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

func TestSolveAgreesWithBacktracker(t *testing.T) {
	g := gridFromString(wikipediaPuzzle)
	got, outcome := Solve(g, DefaultTimeout)
	if outcome != backtrack.Unique {
		t.Fatalf("expected Unique, got %v", outcome)
	}
	want := gridFromString(wikipediaSolution)
	if got.Values() != want.Values() {
		t.Errorf("FD solver solution disagrees with the known solution")
	}
}

func TestSolveReportsNoSolution(t *testing.T) {
	var values [core.TotalCells]int
	values[0] = 1
	values[1] = 1 // two givens of the same value in one row: unsolvable
	g := core.NewGrid(values)
	_, outcome := Solve(g, 2*time.Second)
	if outcome != backtrack.NoSolution {
		t.Errorf("expected NoSolution, got %v", outcome)
	}
}

func TestAgreesCrossChecksBacktrackResult(t *testing.T) {
	g := gridFromString(wikipediaPuzzle)
	solution, outcome := backtrack.Solve(g)
	if outcome != backtrack.Unique {
		t.Fatalf("backtracker expected Unique, got %v", outcome)
	}
	if !Agrees(g, solution, outcome) {
		t.Errorf("FD solver should agree with the backtracking oracle")
	}
}

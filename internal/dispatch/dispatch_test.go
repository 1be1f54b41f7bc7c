package dispatch

import (
	"testing"

	"github.com/kcirtapfromspace/sudoku/internal/core"
)

const wikipediaPuzzle = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func gridFromString(s string) core.Grid {
	var values [core.TotalCells]int
	for i, ch := range s {
		if ch != '.' && ch != '0' {
			values[i] = int(ch - '0')
		}
	}
	return core.NewGrid(values)
}

func TestGetNextPlacementTerminatesWithSetValue(t *testing.T) {
	g := gridFromString(wikipediaPuzzle)
	result := GetNextPlacement(g)
	if result.Status != StatusHint {
		t.Fatalf("expected a hint, got status %v", result.Status)
	}
	if result.Hint.Action != core.ActionSetValue {
		t.Errorf("get_next_placement must always return a SetValue hint, got %v", result.Hint.Action)
	}
}

func TestGetNextPlacementOnMultipleSolutionGrid(t *testing.T) {
	var values [core.TotalCells]int // empty grid: astronomically many solutions
	g := core.NewGrid(values)
	result := GetNextPlacement(g)
	if result.Status != StatusMultiple {
		t.Errorf("expected Multiple on an unconstrained grid, got %v", result.Status)
	}
}

func TestGetHintOnSolvedGrid(t *testing.T) {
	const solved = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
	g := gridFromString(solved)
	result := GetHint(g)
	if result.Status != StatusSolved {
		t.Errorf("expected Solved on a fully solved grid, got %v", result.Status)
	}
}

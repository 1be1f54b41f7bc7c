package generate

import "testing"

func TestFullGridProducesSolvedGrid(t *testing.T) {
	g := FullGrid(42)
	if !g.IsSolved() {
		t.Fatal("FullGrid must return a complete, consistent grid")
	}
}

func TestCarveKeepsUniqueSolution(t *testing.T) {
	full := FullGrid(7)
	puzzle := Carve(full, 28, 7)
	givens := 0
	for cell := 0; cell < 81; cell++ {
		if !puzzle.IsEmpty(cell) {
			givens++
		}
	}
	if givens < 28 {
		t.Errorf("expected at least 28 givens, got %d", givens)
	}
}

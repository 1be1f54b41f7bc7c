package fish

import (
	"testing"

	"github.com/kcirtapfromspace/sudoku/internal/core"
)

func TestTechniqueForBasicSizes(t *testing.T) {
	if techniqueFor(2, Basic, false) != core.TechXWing {
		t.Error("size 2 unfinned basic should be x-wing")
	}
	if techniqueFor(2, Basic, true) != core.TechFinnedXWing {
		t.Error("size 2 finned basic should be finned-x-wing")
	}
	if techniqueFor(3, Basic, false) != core.TechSwordfish {
		t.Error("size 3 unfinned basic should be swordfish")
	}
	if techniqueFor(4, Franken, false) != core.TechFrankenFish {
		t.Error("franken constraint should report franken-fish regardless of size")
	}
	if techniqueFor(3, Mutant, true) != core.TechMutantFish {
		t.Error("mutant constraint should report mutant-fish regardless of fin status")
	}
}

func TestSingleBox(t *testing.T) {
	if box, ok := singleBox([]int{0, 1, 2}); !ok || box != 0 {
		t.Errorf("cells 0,1,2 share box 0, got %d,%v", box, ok)
	}
	if _, ok := singleBox([]int{0, 3}); ok {
		t.Error("cells in different boxes should not report a single box")
	}
}

func TestIntersectCandidates(t *testing.T) {
	a := []core.Candidate{{Row: 0, Col: 0, Digit: 4}, {Row: 1, Col: 1, Digit: 4}}
	b := []core.Candidate{{Row: 1, Col: 1, Digit: 4}}
	got := intersectCandidates(a, b)
	if len(got) != 1 || got[0] != b[0] {
		t.Errorf("expected intersection {%v}, got %v", b[0], got)
	}
}

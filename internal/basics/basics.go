// Package basics implements the naked/hidden n-tuple axioms (n in 1..4)
// and the pointing/box-line intersection reduction, the first stage of
// the hint dispatch pipeline. Grounded on the teacher's
// internal/sudoku/human techniques_simple.go/techniques_pairs.go/
// techniques_triples.go, generalized from four separate per-n functions
// into one combinatorial procedure parameterized by n, since the axiom
// is identical for every tuple size.
package basics

import (
	"sort"

	"github.com/kcirtapfromspace/sudoku/internal/core"
	"github.com/kcirtapfromspace/sudoku/internal/fabric"
)

var nakedTechniqueByN = map[int]core.TechniqueID{
	1: core.TechNakedSingle,
	2: core.TechNakedPair,
	3: core.TechNakedTriple,
	4: core.TechNakedQuad,
}

var hiddenTechniqueByN = map[int]core.TechniqueID{
	1: core.TechHiddenSingle,
	2: core.TechHiddenPair,
	3: core.TechHiddenTriple,
	4: core.TechHiddenQuad,
}

// Find runs the basic techniques in increasing n order (naked before
// hidden at each n, matching the teacher's pipeline order of singles
// before pairs before triples), returning the first applicable hint.
func Find(f *fabric.Fabric) *core.Hint {
	for n := 1; n <= 4; n++ {
		if h := findNakedTuple(f, n); h != nil {
			return h
		}
		if h := findHiddenTuple(f, n); h != nil {
			return h
		}
	}
	if h := findPointingOrBoxLine(f); h != nil {
		return h
	}
	return nil
}

// findNakedTuple looks, sector by sector in id order, for n empty cells
// whose candidate union has size n, tie-broken by lexicographic cell
// tuple within the sector.
func findNakedTuple(f *fabric.Fabric, n int) *core.Hint {
	for s := 0; s < core.NumSectors; s++ {
		empties := emptyCellsOf(f, s)
		if len(empties) < n {
			continue
		}
		for _, combo := range core.Combinations(empties, n) {
			union := core.Candidates(0)
			for _, c := range combo {
				union = union.Union(f.CellCandidates(c))
			}
			if union.Count() != n {
				continue
			}
			elims := eliminateFromOthers(f, empties, combo, union)
			if len(elims) == 0 {
				continue
			}
			return &core.Hint{
				Action:       core.ActionEliminate,
				Eliminations: elims,
				Technique:    nakedTechniqueByN[n],
				SEScore:      seScoreNaked(n),
				Proof: core.ProofCertificate{
					Kind:  core.ProofBasic,
					Basic: &core.BasicCertificate{Cells: combo, Digits: union.ToSlice()},
				},
			}
		}
	}
	return nil
}

// findHiddenTuple looks for n digits whose position-union within a
// sector has size n.
func findHiddenTuple(f *fabric.Fabric, n int) *core.Hint {
	for s := 0; s < core.NumSectors; s++ {
		var liveDigits []int
		for d := 1; d <= core.GridSize; d++ {
			if f.DigitPositions(s, d) != 0 {
				liveDigits = append(liveDigits, d)
			}
		}
		if len(liveDigits) < n {
			continue
		}
		for _, combo := range core.Combinations(liveDigits, n) {
			cellSet := map[int]bool{}
			for _, d := range combo {
				for _, c := range f.DigitCells(s, d) {
					cellSet[c] = true
				}
			}
			if len(cellSet) != n {
				continue
			}
			cells := make([]int, 0, n)
			for c := range cellSet {
				cells = append(cells, c)
			}
			sort.Ints(cells)

			comboSet := core.NewCandidates(combo)
			var elims []core.Candidate
			for _, c := range cells {
				extra := f.CellCandidates(c).Subtract(comboSet)
				for _, d := range extra.ToSlice() {
					elims = append(elims, core.MakeElimination(c, d))
				}
			}
			if len(elims) == 0 {
				continue
			}
			return &core.Hint{
				Action:       core.ActionEliminate,
				Eliminations: elims,
				Technique:    hiddenTechniqueByN[n],
				SEScore:      seScoreHidden(n),
				Proof: core.ProofCertificate{
					Kind:  core.ProofBasic,
					Basic: &core.BasicCertificate{Cells: cells, Digits: combo},
				},
			}
		}
	}
	return nil
}

// findPointingOrBoxLine is the Fish engine's n=1 case ("Pointing /
// BoxLine" is size-1 Basic-constraint Fish) applied directly here
// since it needs no cover-set search: a digit confined to
// one row/col within a box points that row/col; confined to one box
// within a row/col reduces the box.
func findPointingOrBoxLine(f *fabric.Fabric) *core.Hint {
	for box := core.BoxSectorBase; box < core.BoxSectorBase+core.GridSize; box++ {
		for d := 1; d <= core.GridSize; d++ {
			cells := f.DigitCells(box, d)
			if len(cells) < 2 || len(cells) > 3 {
				continue
			}
			if row, ok := sameRow(cells); ok {
				if h := pointingHint(f, cells, d, core.RowSectorBase+row, box, core.TechPointingPair); h != nil {
					return h
				}
			}
			if col, ok := sameCol(cells); ok {
				if h := pointingHint(f, cells, d, core.ColSectorBase+col, box, core.TechPointingPair); h != nil {
					return h
				}
			}
		}
	}
	for line := core.RowSectorBase; line < core.BoxSectorBase; line++ {
		for d := 1; d <= core.GridSize; d++ {
			cells := f.DigitCells(line, d)
			if len(cells) < 2 || len(cells) > 3 {
				continue
			}
			if box, ok := sameBox(cells); ok {
				if h := pointingHint(f, cells, d, core.BoxSectorBase+box, line, core.TechBoxLineReduction); h != nil {
					return h
				}
			}
		}
	}
	return nil
}

func pointingHint(f *fabric.Fabric, source []int, digit, targetSector, sourceSector int, tech core.TechniqueID) *core.Hint {
	var elims []core.Candidate
	inSource := map[int]bool{}
	for _, c := range source {
		inSource[c] = true
	}
	for _, c := range core.SectorCells[targetSector] {
		if inSource[c] {
			continue
		}
		if f.CellCandidates(c).Has(digit) {
			elims = append(elims, core.MakeElimination(c, digit))
		}
	}
	if len(elims) == 0 {
		return nil
	}
	return &core.Hint{
		Action:       core.ActionEliminate,
		Eliminations: elims,
		Technique:    tech,
		SEScore:      seScorePointing(),
		Proof: core.ProofCertificate{
			Kind:  core.ProofBasic,
			Basic: &core.BasicCertificate{Cells: source, Digits: []int{digit}},
		},
	}
}

func emptyCellsOf(f *fabric.Fabric, sector int) []int {
	var out []int
	for _, c := range core.SectorCells[sector] {
		if f.Grid().IsEmpty(c) {
			out = append(out, c)
		}
	}
	return out
}

func eliminateFromOthers(f *fabric.Fabric, allEmpty, combo []int, union core.Candidates) []core.Candidate {
	inCombo := map[int]bool{}
	for _, c := range combo {
		inCombo[c] = true
	}
	var elims []core.Candidate
	for _, c := range allEmpty {
		if inCombo[c] {
			continue
		}
		extra := f.CellCandidates(c).Intersect(union)
		for _, d := range extra.ToSlice() {
			elims = append(elims, core.MakeElimination(c, d))
		}
	}
	return elims
}

func sameRow(cells []int) (int, bool) {
	row := core.RowOf(cells[0])
	for _, c := range cells[1:] {
		if core.RowOf(c) != row {
			return 0, false
		}
	}
	return row, true
}

func sameCol(cells []int) (int, bool) {
	col := core.ColOf(cells[0])
	for _, c := range cells[1:] {
		if core.ColOf(c) != col {
			return 0, false
		}
	}
	return col, true
}

func sameBox(cells []int) (int, bool) {
	box := core.BoxOf(cells[0])
	for _, c := range cells[1:] {
		if core.BoxOf(c) != box {
			return 0, false
		}
	}
	return box, true
}

// SE scores below follow the standard Sudoku Explainer ladder for basic
// techniques (see internal/rating for the full table); duplicated here
// as small literals since each basic sub-technique tags its own score
// at the point of discovery rather than looking it up by TechniqueID.
func seScoreNaked(n int) float32 {
	switch n {
	case 1:
		return 2.3
	case 2:
		return 3.0
	case 3:
		return 3.6
	default:
		return 4.0
	}
}

func seScoreHidden(n int) float32 {
	switch n {
	case 1:
		return 1.5
	case 2:
		return 3.4
	case 3:
		return 4.0
	default:
		return 5.4
	}
}

func seScorePointing() float32 { return 2.6 }

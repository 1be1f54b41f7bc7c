// Package uniqueness implements the deadly-pattern avoidance engine:
// Unique Rectangle types 1-4, Hidden UR, Avoidable UR, BUG, and Empty
// Rectangle. Grounded on the teacher's
// internal/sudoku/human/techniques/ur.go and techniques_advanced.go
// (BUG), generalized to a single rectangle-pattern scanner.
// Must only run when the puzzle is known to have a unique solution;
// enforced by the dispatcher, not here.
package uniqueness

import (
	"github.com/kcirtapfromspace/sudoku/internal/core"
	"github.com/kcirtapfromspace/sudoku/internal/fabric"
)

// Find runs UR types 1-4, then Hidden UR, Avoidable Rectangle, BUG,
// then Empty Rectangle, in that order.
func Find(f *fabric.Fabric) *core.Hint {
	if h := findUniqueRectangle(f); h != nil {
		return h
	}
	if h := findHiddenUniqueRectangle(f); h != nil {
		return h
	}
	if h := findAvoidableRectangle(f); h != nil {
		return h
	}
	if h := findBUG(f); h != nil {
		return h
	}
	if h := findEmptyRectangle(f); h != nil {
		return h
	}
	return nil
}

type rectangle struct {
	cells [4]int // TL, TR, BL, BR
}

func candidateRectangles() []rectangle {
	var out []rectangle
	for r1 := 0; r1 < core.GridSize; r1++ {
		for r2 := r1 + 1; r2 < core.GridSize; r2++ {
			for c1 := 0; c1 < core.GridSize; c1++ {
				for c2 := c1 + 1; c2 < core.GridSize; c2++ {
					tl, tr := core.IndexOf(r1, c1), core.IndexOf(r1, c2)
					bl, br := core.IndexOf(r2, c1), core.IndexOf(r2, c2)
					if core.BoxOf(tl) != core.BoxOf(tr) && core.BoxOf(tl) == core.BoxOf(bl) && core.BoxOf(tr) == core.BoxOf(br) {
						out = append(out, rectangle{cells: [4]int{tl, tr, bl, br}})
					}
				}
			}
		}
	}
	return out
}

// findUniqueRectangle detects the classic two-bivalue-corner,
// two-roof-corner pattern and its type 1-4 variants.
func findUniqueRectangle(f *fabric.Fabric) *core.Hint {
	for _, rect := range candidateRectangles() {
		cells := rect.cells
		empties := 0
		for _, c := range cells {
			if f.Grid().IsEmpty(c) {
				empties++
			}
		}
		if empties < 3 {
			continue
		}
		common := core.AllCandidates()
		for _, c := range cells {
			if f.Grid().IsEmpty(c) {
				common = common.Intersect(f.CellCandidates(c))
			}
		}
		if common.Count() < 2 {
			continue
		}
		digits := common.ToSlice()
		if len(digits) > 2 {
			digits = digits[:2]
		}
		pair := core.NewCandidates(digits)

		var floor, roof []int
		for _, c := range cells {
			if !f.Grid().IsEmpty(c) {
				continue
			}
			if f.CellCandidates(c) == pair {
				floor = append(floor, c)
			} else {
				roof = append(roof, c)
			}
		}

		if len(floor) == 3 && len(roof) == 1 {
			// Type 1: three corners hold exactly the pair, so the lone roof
			// cell cannot take either pair digit without completing the
			// deadly pattern; both pair digits are eliminated from it.
			roofCell := roof[0]
			extra := f.CellCandidates(roofCell).Subtract(pair)
			if extra.IsEmpty() {
				continue
			}
			var elims []core.Candidate
			for _, d := range pair.ToSlice() {
				elims = append(elims, core.MakeElimination(roofCell, d))
			}
			return &core.Hint{
				Action:       core.ActionEliminate,
				Eliminations: elims,
				Technique:    core.TechUniqueRectangle,
				SEScore:      4.5,
				Proof: core.ProofCertificate{
					Kind: core.ProofUniqueness,
					Uniqueness: &core.UniquenessCertificate{Floor: floor, Roof: roof, Digits: pair.ToSlice()},
				},
			}
		}

		if len(floor) == 2 && len(roof) == 2 {
			if h := findURType2(f, floor, roof, pair); h != nil {
				return h
			}
			if h := findURType3(f, floor, roof, pair); h != nil {
				return h
			}
			if h := findURType4(f, floor, roof, pair, rect); h != nil {
				return h
			}
		}
	}
	return nil
}

// findURType2: both roof cells share exactly one extra digit z; z can
// be eliminated from any cell seeing both roof cells.
func findURType2(f *fabric.Fabric, floor, roof []int, pair core.Candidates) *core.Hint {
	extraA := f.CellCandidates(roof[0]).Subtract(pair)
	extraB := f.CellCandidates(roof[1]).Subtract(pair)
	common := extraA.Intersect(extraB)
	if common.Count() != 1 {
		return nil
	}
	z, _ := common.Only()
	var elims []core.Candidate
	for c := 0; c < core.TotalCells; c++ {
		if !f.Grid().IsEmpty(c) || c == roof[0] || c == roof[1] {
			continue
		}
		if f.CellCandidates(c).Has(z) && core.ArePeers(c, roof[0]) && core.ArePeers(c, roof[1]) {
			elims = append(elims, core.MakeElimination(c, z))
		}
	}
	if len(elims) == 0 {
		return nil
	}
	return &core.Hint{
		Action:       core.ActionEliminate,
		Eliminations: elims,
		Technique:    core.TechUniqueRectangleType2,
		SEScore:      4.6,
		Proof: core.ProofCertificate{
			Kind:       core.ProofUniqueness,
			Uniqueness: &core.UniquenessCertificate{Floor: floor, Roof: roof, Digits: append(pair.ToSlice(), z)},
		},
	}
}

// findURType3: the roof cells' extra candidates, combined with a third
// cell sharing their sector, form a naked subset.
func findURType3(f *fabric.Fabric, floor, roof []int, pair core.Candidates) *core.Hint {
	extra := f.CellCandidates(roof[0]).Union(f.CellCandidates(roof[1])).Subtract(pair)
	if extra.IsEmpty() || extra.Count() > 3 {
		return nil
	}
	for _, sector := range commonSectors(roof[0], roof[1]) {
		for _, c := range core.SectorCells[sector] {
			if c == roof[0] || c == roof[1] || !f.Grid().IsEmpty(c) {
				continue
			}
			union := extra.Union(f.CellCandidates(c))
			if union.Count() != extra.Count() {
				continue
			}
			var elims []core.Candidate
			for _, other := range core.SectorCells[sector] {
				if other == roof[0] || other == roof[1] || other == c || !f.Grid().IsEmpty(other) {
					continue
				}
				rem := f.CellCandidates(other).Intersect(union)
				for _, d := range rem.ToSlice() {
					elims = append(elims, core.MakeElimination(other, d))
				}
			}
			if len(elims) == 0 {
				continue
			}
			return &core.Hint{
				Action:       core.ActionEliminate,
				Eliminations: elims,
				Technique:    core.TechUniqueRectangleType3,
				SEScore:      4.8,
				Proof: core.ProofCertificate{
					Kind:       core.ProofUniqueness,
					Uniqueness: &core.UniquenessCertificate{Floor: floor, Roof: roof, Digits: union.ToSlice()},
				},
			}
		}
	}
	return nil
}

// findURType4: one pair digit is a conjugate in the roof cells' shared
// sector, forcing the other digit out of both roof cells.
func findURType4(f *fabric.Fabric, floor, roof []int, pair core.Candidates, rect rectangle) *core.Hint {
	for _, sector := range commonSectors(roof[0], roof[1]) {
		for _, d := range pair.ToSlice() {
			mask := f.DigitPositions(sector, d)
			cells := f.DigitCells(sector, d)
			if popcountMask(mask) == 2 && containsBoth(cells, roof[0], roof[1]) {
				other, _ := pair.Subtract(core.NewCandidates([]int{d})).Only()
				var elims []core.Candidate
				for _, c := range roof {
					if f.CellCandidates(c).Has(other) {
						elims = append(elims, core.MakeElimination(c, other))
					}
				}
				if len(elims) == 0 {
					continue
				}
				return &core.Hint{
					Action:       core.ActionEliminate,
					Eliminations: elims,
					Technique:    core.TechUniqueRectangleType4,
					SEScore:      4.8,
					Proof: core.ProofCertificate{
						Kind:       core.ProofUniqueness,
						Uniqueness: &core.UniquenessCertificate{Floor: floor, Roof: roof, Digits: []int{d, other}},
					},
				}
			}
		}
	}
	return nil
}

func commonSectors(a, b int) []int {
	var out []int
	for _, sa := range core.CellSectors[a] {
		for _, sb := range core.CellSectors[b] {
			if sa == sb {
				out = append(out, sa)
			}
		}
	}
	return out
}

func containsBoth(cells []int, a, b int) bool {
	hasA, hasB := false, false
	for _, c := range cells {
		if c == a {
			hasA = true
		}
		if c == b {
			hasB = true
		}
	}
	return hasA && hasB
}

func popcountMask(m uint16) int {
	n := 0
	for m != 0 {
		n += int(m & 1)
		m >>= 1
	}
	return n
}

// findHiddenUniqueRectangle looks for a rectangle where digit x forms
// conjugate pairs along one corner's row and its corner's column; if
// the diagonally opposite corner also held y instead of x there, x
// would be forced back onto the same deadly checkerboard through
// those two conjugate links, so y is eliminated from that diagonal
// corner directly (not from outside peers, unlike UR types 1-4).
func findHiddenUniqueRectangle(f *fabric.Fabric) *core.Hint {
	for _, rect := range candidateRectangles() {
		corners := rect.cells
		if !allEmpty(f, corners[:]...) {
			continue
		}
		common := f.CellCandidates(corners[0])
		for _, c := range corners[1:] {
			common = common.Intersect(f.CellCandidates(c))
		}
		if common.Count() < 2 {
			continue
		}
		for _, pd := range pairsOf(common) {
			if h := hiddenURForPair(f, corners, pd[0], pd[1]); h != nil {
				return h
			}
			if h := hiddenURForPair(f, corners, pd[1], pd[0]); h != nil {
				return h
			}
		}
	}
	return nil
}

// hiddenURForPair tries every corner as the conjugate anchor for x; the
// diagonal corner loses y if the anchor's row and column are both
// conjugate pairs for x through this rectangle.
func hiddenURForPair(f *fabric.Fabric, corners [4]int, x, y int) *core.Hint {
	diag := [4]int{corners[3], corners[2], corners[1], corners[0]}
	for i, anchor := range corners {
		d := diag[i]
		rowSector := core.RowSectorBase + core.RowOf(anchor)
		colSector := core.ColSectorBase + core.ColOf(anchor)
		if !isConjugatePair(f, rowSector, x, anchor) || !isConjugatePair(f, colSector, x, anchor) {
			continue
		}
		if !f.CellCandidates(d).Has(y) {
			continue
		}
		return &core.Hint{
			Action:       core.ActionEliminate,
			Eliminations: []core.Candidate{core.MakeElimination(d, y)},
			Technique:    core.TechHiddenUniqueRectangle,
			SEScore:      4.8,
			Proof: core.ProofCertificate{
				Kind:       core.ProofUniqueness,
				Uniqueness: &core.UniquenessCertificate{Floor: []int{anchor}, Roof: []int{d}, Digits: []int{x, y}},
			},
		}
	}
	return nil
}

// findAvoidableRectangle looks for a rectangle with three corners
// already placed as a p/q checkerboard (one diagonal pair both p, the
// other diagonal pair both q): the unsolved fourth corner would
// complete a second, swappable solution if it also held p, so p is
// eliminated from it.
func findAvoidableRectangle(f *fabric.Fabric) *core.Hint {
	for _, rect := range candidateRectangles() {
		corners := rect.cells
		diag := [4]int{corners[3], corners[2], corners[1], corners[0]}
		emptyIdx := -1
		emptyCount := 0
		for i, c := range corners {
			if f.Grid().IsEmpty(c) {
				emptyCount++
				emptyIdx = i
			}
		}
		if emptyCount != 1 {
			continue
		}
		target := corners[emptyIdx]
		diagCell := diag[emptyIdx]
		pDigit := f.Grid().Value(diagCell)
		if pDigit == 0 {
			continue
		}
		var adjacent []int
		for i, c := range corners {
			if i != emptyIdx && c != diagCell {
				adjacent = append(adjacent, c)
			}
		}
		if len(adjacent) != 2 {
			continue
		}
		qDigit1, qDigit2 := f.Grid().Value(adjacent[0]), f.Grid().Value(adjacent[1])
		if qDigit1 == 0 || qDigit2 == 0 || qDigit1 != qDigit2 || qDigit1 == pDigit {
			continue
		}
		if !f.CellCandidates(target).Has(pDigit) {
			continue
		}
		return &core.Hint{
			Action:       core.ActionEliminate,
			Eliminations: []core.Candidate{core.MakeElimination(target, pDigit)},
			Technique:    core.TechAvoidableRectangle,
			SEScore:      4.7,
			Proof: core.ProofCertificate{
				Kind:       core.ProofUniqueness,
				Uniqueness: &core.UniquenessCertificate{Floor: adjacent, Roof: []int{diagCell}, Digits: []int{pDigit, qDigit1}},
			},
		}
	}
	return nil
}

func allEmpty(f *fabric.Fabric, cells ...int) bool {
	for _, c := range cells {
		if !f.Grid().IsEmpty(c) {
			return false
		}
	}
	return true
}

func pairsOf(c core.Candidates) [][2]int {
	digits := c.ToSlice()
	var out [][2]int
	for i := 0; i < len(digits); i++ {
		for j := i + 1; j < len(digits); j++ {
			out = append(out, [2]int{digits[i], digits[j]})
		}
	}
	return out
}

func isConjugatePair(f *fabric.Fabric, sector, digit, cell int) bool {
	mask := f.DigitPositions(sector, digit)
	if popcountMask(mask) != 2 {
		return false
	}
	for _, c := range f.DigitCells(sector, digit) {
		if c == cell {
			return true
		}
	}
	return false
}

// findBUG (Bivalue Universal Grave): if every empty cell is bivalue
// except one tri-value cell, the puzzle would have two solutions
// unless the extra digit in that cell (the one appearing an odd number
// of times among its peers) is placed.
func findBUG(f *fabric.Fabric) *core.Hint {
	var triCell int = -1
	for c := 0; c < core.TotalCells; c++ {
		if !f.Grid().IsEmpty(c) {
			continue
		}
		n := f.CellCandidates(c).Count()
		if n == 2 {
			continue
		}
		if n == 3 && triCell == -1 {
			triCell = c
			continue
		}
		return nil
	}
	if triCell == -1 {
		return nil
	}
	for _, d := range f.CellCandidates(triCell).ToSlice() {
		count := 0
		for _, sector := range core.CellSectors[triCell] {
			if popcountMask(f.DigitPositions(sector, d)) == 2 {
				count++
			}
		}
		if count < 3 {
			return &core.Hint{
				Action:    core.ActionSetValue,
				Cell:      triCell,
				Digit:     d,
				Technique: core.TechBUG,
				SEScore:   5.0,
				Proof: core.ProofCertificate{
					Kind:       core.ProofUniqueness,
					Uniqueness: &core.UniquenessCertificate{Floor: []int{triCell}, Digits: []int{d}},
				},
			}
		}
	}
	return nil
}

// findEmptyRectangle: a box where a digit's candidates are confined to
// one row and one column within the box; combined with a conjugate
// pair on an intersecting line elsewhere, eliminates at the
// intersection of that line's partner row/col and the ER's other line.
func findEmptyRectangle(f *fabric.Fabric) *core.Hint {
	for box := core.BoxSectorBase; box < core.BoxSectorBase+core.GridSize; box++ {
		for d := 1; d <= core.GridSize; d++ {
			cells := f.DigitCells(box, d)
			if len(cells) < 2 {
				continue
			}
			row, col, ok := erShape(cells)
			if !ok {
				continue
			}
			for _, sector := range []int{core.RowSectorBase + row, core.ColSectorBase + col} {
				if popcountMask(f.DigitPositions(sector, d)) != 2 {
					continue
				}
				other := otherConjugate(f, sector, d, cells)
				if other == -1 {
					continue
				}
				target := intersectionCell(sector, other, row, col)
				if target == -1 || !f.Grid().IsEmpty(target) || !f.CellCandidates(target).Has(d) {
					continue
				}
				return &core.Hint{
					Action:       core.ActionEliminate,
					Eliminations: []core.Candidate{core.MakeElimination(target, d)},
					Technique:    core.TechEmptyRectangle,
					SEScore:      4.2,
					Proof: core.ProofCertificate{
						Kind:       core.ProofUniqueness,
						Uniqueness: &core.UniquenessCertificate{Floor: cells, Digits: []int{d}},
					},
				}
			}
		}
	}
	return nil
}

// erShape reports whether a box's digit cells fit an empty-rectangle
// shape: every cell lies in one row or one column within the box, and
// that row and column are returned.
func erShape(cells []int) (row, col int, ok bool) {
	for _, rc := range cells {
		for _, cc := range cells {
			r, c := core.RowOf(rc), core.ColOf(cc)
			covered := true
			for _, x := range cells {
				if core.RowOf(x) != r && core.ColOf(x) != c {
					covered = false
					break
				}
			}
			if covered {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func otherConjugate(f *fabric.Fabric, sector, digit int, exclude []int) int {
	in := map[int]bool{}
	for _, c := range exclude {
		in[c] = true
	}
	for _, c := range f.DigitCells(sector, digit) {
		if !in[c] {
			return c
		}
	}
	return -1
}

func intersectionCell(sector, other, row, col int) int {
	if sector >= core.RowSectorBase && sector < core.ColSectorBase {
		return core.IndexOf(row, core.ColOf(other))
	}
	if sector >= core.ColSectorBase && sector < core.BoxSectorBase {
		return core.IndexOf(core.RowOf(other), col)
	}
	return -1
}

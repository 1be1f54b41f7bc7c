// Package als implements the Almost-Locked-Set engine: ALS-XZ, ALS
// chains, Sue de Coq, and Death Blossom are all built on one ALS
// enumeration plus Restricted-Common-Candidate (RCC) linking.
// Grounded on the teacher's internal/sudoku/human/techniques_sdc.go and
// techniques_blossom.go (which hand-roll single-subroutine versions of
// Sue de Coq / Death Blossom over its own Board), generalized here to
// share one ALS index across every subroutine.
package als

import (
	"sort"

	"github.com/kcirtapfromspace/sudoku/internal/core"
	"github.com/kcirtapfromspace/sudoku/internal/fabric"
)

// Set is an Almost Locked Set: n empty cells within one sector whose
// candidate union has size n+1.
type Set struct {
	Sector int
	Cells  []int
	Cands  core.Candidates
}

func (s Set) totalCells() int { return len(s.Cells) }

// Enumerate finds every ALS of size 1..4 across all 27 sectors.
func Enumerate(f *fabric.Fabric) []Set {
	var out []Set
	for s := 0; s < core.NumSectors; s++ {
		var empties []int
		for _, c := range core.SectorCells[s] {
			if f.Grid().IsEmpty(c) {
				empties = append(empties, c)
			}
		}
		for n := 1; n <= 4 && n <= len(empties); n++ {
			for _, combo := range core.Combinations(empties, n) {
				union := core.Candidates(0)
				for _, c := range combo {
					union = union.Union(f.CellCandidates(c))
				}
				if union.Count() == n+1 {
					out = append(out, Set{Sector: s, Cells: combo, Cands: union})
				}
			}
		}
	}
	return out
}

// Find runs XY-Wing, XYZ-Wing, WXYZ-Wing, ALS-XZ, ALS-XY-Wing, Sue de
// Coq, ALS-XY-Chain, the general ALS chain (in that order, shortest
// first on ties), then Death Blossom.
func Find(f *fabric.Fabric) *core.Hint {
	if h := findXYWing(f); h != nil {
		return h
	}
	if h := findXYZWing(f); h != nil {
		return h
	}
	if h := findWXYZWing(f); h != nil {
		return h
	}
	sets := Enumerate(f)
	if h := findXZ(f, sets); h != nil {
		return h
	}
	if h := findALSXYWing(f, sets); h != nil {
		return h
	}
	if h := findSueDeCoq(f); h != nil {
		return h
	}
	if h := findALSXYChain(f, sets); h != nil {
		return h
	}
	if h := findChain(f, sets); h != nil {
		return h
	}
	if h := findDeathBlossom(f, sets); h != nil {
		return h
	}
	return nil
}

// findXYZWing extends XY-Wing with a trivalue pivot {x,y,z}: two
// bivalue pincers, one {x,z} and the other {y,z}, both seeing the
// pivot and together covering exactly the pivot's three digits. z is
// eliminated from any cell seeing the pivot and both pincers (the
// pivot itself is a peer in this variant, unlike plain XY-Wing).
func findXYZWing(f *fabric.Fabric) *core.Hint {
	for pivot := 0; pivot < core.TotalCells; pivot++ {
		if !f.Grid().IsEmpty(pivot) || f.CellCandidates(pivot).Count() != 3 {
			continue
		}
		pivotCands := f.CellCandidates(pivot)
		var pincers []int
		for _, p := range core.Peers[pivot] {
			if f.Grid().IsEmpty(p) && f.CellCandidates(p).Count() == 2 && f.CellCandidates(p).Subtract(pivotCands).IsEmpty() {
				pincers = append(pincers, p)
			}
		}
		for i := 0; i < len(pincers); i++ {
			for j := i + 1; j < len(pincers); j++ {
				pa, pb := pincers[i], pincers[j]
				candA, candB := f.CellCandidates(pa), f.CellCandidates(pb)
				if candA.Union(candB) != pivotCands {
					continue
				}
				z, ok := candA.Intersect(candB).Only()
				if !ok {
					continue
				}
				var elims []core.Candidate
				for c := 0; c < core.TotalCells; c++ {
					if c == pivot || c == pa || c == pb || !f.Grid().IsEmpty(c) || !f.CellCandidates(c).Has(z) {
						continue
					}
					if core.ArePeers(c, pivot) && core.ArePeers(c, pa) && core.ArePeers(c, pb) {
						elims = append(elims, core.MakeElimination(c, z))
					}
				}
				if len(elims) == 0 {
					continue
				}
				return &core.Hint{
					Action:       core.ActionEliminate,
					Eliminations: elims,
					Technique:    core.TechXYZWing,
					SEScore:      4.4,
					Proof: core.ProofCertificate{
						Kind: core.ProofAls,
						Als: &core.AlsCertificate{
							Sets: []core.AlsSet{
								{Cells: []int{pivot}, Digits: pivotCands.ToSlice()},
								{Cells: []int{pa}, Digits: candA.ToSlice()},
								{Cells: []int{pb}, Digits: candB.ToSlice()},
							},
						},
					},
				}
			}
		}
	}
	return nil
}

// findWXYZWing generalizes XYZ-Wing to a pivot plus one to three
// pincers covering exactly four digits total: a digit z present in
// every cell of the group, with every z-occurrence mutually seeing the
// others (the restricted-common-candidate condition), is eliminated
// from any cell outside the group seeing all of them.
func findWXYZWing(f *fabric.Fabric) *core.Hint {
	for pivot := 0; pivot < core.TotalCells; pivot++ {
		if !f.Grid().IsEmpty(pivot) {
			continue
		}
		pivotCands := f.CellCandidates(pivot)
		if pivotCands.Count() < 2 || pivotCands.Count() > 4 {
			continue
		}
		var candidates []int
		for _, p := range core.Peers[pivot] {
			if f.Grid().IsEmpty(p) && f.CellCandidates(p).Count() >= 2 && f.CellCandidates(p).Count() <= 3 {
				candidates = append(candidates, p)
			}
		}
		for take := 1; take <= 3 && take <= len(candidates); take++ {
			for _, combo := range core.Combinations(candidates, take) {
				group := append([]int{pivot}, combo...)
				union := pivotCands
				for _, c := range combo {
					union = union.Union(f.CellCandidates(c))
				}
				if union.Count() != 4 {
					continue
				}
				if h := wxyzWingFromGroup(f, group, union); h != nil {
					return h
				}
			}
		}
	}
	return nil
}

func wxyzWingFromGroup(f *fabric.Fabric, group []int, union core.Candidates) *core.Hint {
	inGroup := map[int]bool{}
	for _, c := range group {
		inGroup[c] = true
	}
	for _, z := range union.ToSlice() {
		var zCells []int
		present := true
		for _, c := range group {
			if !f.CellCandidates(c).Has(z) {
				present = false
				break
			}
			zCells = append(zCells, c)
		}
		if !present || len(zCells) < 2 || !core.AllSeeAll(zCells, zCells) {
			continue
		}
		var elims []core.Candidate
		for c := 0; c < core.TotalCells; c++ {
			if inGroup[c] || !f.Grid().IsEmpty(c) || !f.CellCandidates(c).Has(z) {
				continue
			}
			if core.AllSeeAll([]int{c}, zCells) {
				elims = append(elims, core.MakeElimination(c, z))
			}
		}
		if len(elims) == 0 {
			continue
		}
		sets := make([]core.AlsSet, len(group))
		for i, c := range group {
			sets[i] = core.AlsSet{Cells: []int{c}, Digits: f.CellCandidates(c).ToSlice()}
		}
		return &core.Hint{
			Action:       core.ActionEliminate,
			Eliminations: elims,
			Technique:    core.TechWXYZWing,
			SEScore:      4.6,
			Proof: core.ProofCertificate{
				Kind: core.ProofAls,
				Als:  &core.AlsCertificate{Sets: sets},
			},
		}
	}
	return nil
}

// findALSXYWing restricts the general ALS chain to exactly three sets
// linked by two RCC digits: the hub-plus-two-pincers shape is a
// length-3 chain, just named and scored as its own technique rather
// than folded into the open-ended ALS chain.
func findALSXYWing(f *fabric.Fabric, sets []Set) *core.Hint {
	h := findChainOfLength(f, sets, 3)
	if h == nil {
		return nil
	}
	h.Technique = core.TechALSXYWing
	h.SEScore = 5.7
	return h
}

// findALSXYChain restricts the general ALS chain to sets of exactly
// two cells (almost-bivalue ALS) at length four or more: the
// "bivalue-only" case of the general chain, named separately since the
// size restriction is what makes it XY-Chain-shaped rather than a
// generic ALS chain.
func findALSXYChain(f *fabric.Fabric, sets []Set) *core.Hint {
	var pairs []Set
	for _, s := range sets {
		if len(s.Cells) == 2 {
			pairs = append(pairs, s)
		}
	}
	for length := 4; length <= 6; length++ {
		h := findChainOfLength(f, pairs, length)
		if h == nil {
			continue
		}
		h.Technique = core.TechALSXYChain
		h.SEScore = 6.0
		return h
	}
	return nil
}

// findXYWing: a bivalue pivot {x,y} with two bivalue pincers that each
// see the pivot, one holding {x,z} and the other {y,z}. Unlike the
// ALS-XZ RCC path (which needs the two sets to mutually see each
// other on the RCC digit), the pincers here generally don't see each
// other at all — the pivot is what ties them together. z is
// eliminated from every cell that sees both pincers.
func findXYWing(f *fabric.Fabric) *core.Hint {
	var bivalues []int
	for c := 0; c < core.TotalCells; c++ {
		if f.Grid().IsEmpty(c) && f.CellCandidates(c).Count() == 2 {
			bivalues = append(bivalues, c)
		}
	}
	for _, pivot := range bivalues {
		pivotCands := f.CellCandidates(pivot)
		digits := pivotCands.ToSlice()
		if len(digits) != 2 {
			continue
		}
		x, y := digits[0], digits[1]
		var pincersX, pincersY []int
		for _, c := range bivalues {
			if c == pivot || !core.ArePeers(c, pivot) {
				continue
			}
			cand := f.CellCandidates(c)
			if cand.Equals(pivotCands) {
				continue
			}
			switch {
			case cand.Has(x) && !cand.Has(y):
				pincersX = append(pincersX, c)
			case cand.Has(y) && !cand.Has(x):
				pincersY = append(pincersY, c)
			}
		}
		for _, px := range pincersX {
			zX, ok := f.CellCandidates(px).Subtract(core.NewCandidates([]int{x})).Only()
			if !ok {
				continue
			}
			for _, py := range pincersY {
				zY, ok := f.CellCandidates(py).Subtract(core.NewCandidates([]int{y})).Only()
				if !ok || zX != zY {
					continue
				}
				z := zX
				var elims []core.Candidate
				for c := 0; c < core.TotalCells; c++ {
					if c == pivot || c == px || c == py || !f.Grid().IsEmpty(c) {
						continue
					}
					if f.CellCandidates(c).Has(z) && core.ArePeers(c, px) && core.ArePeers(c, py) {
						elims = append(elims, core.MakeElimination(c, z))
					}
				}
				if len(elims) == 0 {
					continue
				}
				return &core.Hint{
					Action:       core.ActionEliminate,
					Eliminations: elims,
					Technique:    core.TechXYWing,
					SEScore:      4.2,
					Proof: core.ProofCertificate{
						Kind: core.ProofAls,
						Als: &core.AlsCertificate{
							Sets: []core.AlsSet{
								{Cells: []int{pivot}, Digits: digits},
								{Cells: []int{px}, Digits: f.CellCandidates(px).ToSlice()},
								{Cells: []int{py}, Digits: f.CellCandidates(py).ToSlice()},
							},
						},
					},
				}
			}
		}
	}
	return nil
}

func disjoint(a, b Set) bool {
	in := map[int]bool{}
	for _, c := range a.Cells {
		in[c] = true
	}
	for _, c := range b.Cells {
		if in[c] {
			return false
		}
	}
	return true
}

// rccDigits returns every digit present in both sets where every
// x-cell in A sees every x-cell in B (the RCC condition).
func rccDigits(f *fabric.Fabric, a, b Set) []int {
	common := a.Cands.Intersect(b.Cands)
	var out []int
	for _, x := range common.ToSlice() {
		aCells := cellsWithDigit(f, a.Cells, x)
		bCells := cellsWithDigit(f, b.Cells, x)
		if core.AllSeeAll(aCells, bCells) {
			out = append(out, x)
		}
	}
	return out
}

func cellsWithDigit(f *fabric.Fabric, cells []int, digit int) []int {
	var out []int
	for _, c := range cells {
		if f.CellCandidates(c).Has(digit) {
			out = append(out, c)
		}
	}
	return out
}

// findXZ implements ALS-XZ: for every disjoint pair (A,B) with an RCC
// digit x, any other common digit z gives an elimination at cells
// outside A∪B seeing every z-cell of both sets.
func findXZ(f *fabric.Fabric, sets []Set) *core.Hint {
	sort.Slice(sets, func(i, j int) bool { return byCountThenCells(sets[i], sets[j]) })
	for i := range sets {
		for j := range sets {
			if i == j || !disjoint(sets[i], sets[j]) {
				continue
			}
			a, b := sets[i], sets[j]
			rccs := rccDigits(f, a, b)
			if len(rccs) == 0 {
				continue
			}
			x := rccs[0]
			common := a.Cands.Intersect(b.Cands)
			for _, z := range common.ToSlice() {
				if z == x {
					continue
				}
				zCellsA := cellsWithDigit(f, a.Cells, z)
				zCellsB := cellsWithDigit(f, b.Cells, z)
				elims := eliminateSeeingAll(f, append(a.Cells, b.Cells...), zCellsA, zCellsB, z)
				if len(elims) == 0 {
					continue
				}
				return &core.Hint{
					Action:       core.ActionEliminate,
					Eliminations: elims,
					Technique:    core.TechALSXZ,
					SEScore:      5.5,
					Proof: core.ProofCertificate{
						Kind: core.ProofAls,
						Als: &core.AlsCertificate{
							Sets:  []core.AlsSet{toAlsSet(a), toAlsSet(b)},
							Links: []int{x},
						},
					},
				}
			}
		}
	}
	return nil
}

func eliminateSeeingAll(f *fabric.Fabric, excluded, setA, setB []int, digit int) []core.Candidate {
	exclude := map[int]bool{}
	for _, c := range excluded {
		exclude[c] = true
	}
	seers := map[int]bool{}
	for c := 0; c < core.TotalCells; c++ {
		if exclude[c] || !f.Grid().IsEmpty(c) || !f.CellCandidates(c).Has(digit) {
			continue
		}
		if core.AllSeeAll([]int{c}, setA) && core.AllSeeAll([]int{c}, setB) {
			seers[c] = true
		}
	}
	var out []core.Candidate
	for c := range seers {
		out = append(out, core.MakeElimination(c, digit))
	}
	return out
}

func toAlsSet(s Set) core.AlsSet { return core.AlsSet{Cells: s.Cells, Digits: s.Cands.ToSlice()} }

func byCountThenCells(a, b Set) bool {
	if a.totalCells() != b.totalCells() {
		return a.totalCells() < b.totalCells()
	}
	for i := 0; i < len(a.Cells) && i < len(b.Cells); i++ {
		if a.Cells[i] != b.Cells[i] {
			return a.Cells[i] < b.Cells[i]
		}
	}
	return len(a.Cells) < len(b.Cells)
}

// findChain searches for an ALS chain of length 2, 4, 5 or 6 (length 3
// is the ALS-XY-Wing search Find runs earlier): A1 RCC-linked to A2 ...
// to Ak, common digit z between the endpoints not used as an RCC gives
// the elimination. Returns the shortest chain found.
func findChain(f *fabric.Fabric, sets []Set) *core.Hint {
	for _, length := range []int{2, 4, 5, 6} {
		if h := findChainOfLength(f, sets, length); h != nil {
			return h
		}
	}
	return nil
}

func findChainOfLength(f *fabric.Fabric, sets []Set, length int) *core.Hint {
	type path struct {
		chain []Set
		links []int
	}
	var dfs func(p path) *core.Hint
	dfs = func(p path) *core.Hint {
		if len(p.chain) == length {
			first, last := p.chain[0], p.chain[len(p.chain)-1]
			used := map[int]bool{}
			for _, l := range p.links {
				used[l] = true
			}
			common := first.Cands.Intersect(last.Cands)
			for _, z := range common.ToSlice() {
				if used[z] {
					continue
				}
				zA := cellsWithDigit(f, first.Cells, z)
				zB := cellsWithDigit(f, last.Cells, z)
				var allCells []int
				for _, s := range p.chain {
					allCells = append(allCells, s.Cells...)
				}
				elims := eliminateSeeingAll(f, allCells, zA, zB, z)
				if len(elims) > 0 {
					sets := make([]core.AlsSet, len(p.chain))
					for i, s := range p.chain {
						sets[i] = toAlsSet(s)
					}
					return &core.Hint{
						Action:       core.ActionEliminate,
						Eliminations: elims,
						Technique:    core.TechALSChain,
						SEScore:      6.0 + float32(length)*0.2,
						Proof: core.ProofCertificate{
							Kind: core.ProofAls,
							Als:  &core.AlsCertificate{Sets: sets, Links: p.links},
						},
					}
				}
			}
			return nil
		}
		last := p.chain[len(p.chain)-1]
		for _, cand := range sets {
			if !disjoint(last, cand) {
				continue
			}
			overlap := false
			for _, s := range p.chain {
				if !disjoint(s, cand) {
					overlap = true
					break
				}
			}
			if overlap {
				continue
			}
			rccs := rccDigits(f, last, cand)
			for _, x := range rccs {
				next := path{chain: append(append([]Set{}, p.chain...), cand), links: append(append([]int{}, p.links...), x)}
				if h := dfs(next); h != nil {
					return h
				}
			}
		}
		return nil
	}

	for _, start := range sets {
		if h := dfs(path{chain: []Set{start}}); h != nil {
			return h
		}
	}
	return nil
}

// findSueDeCoq: intersection of a box and a line (2-3 empty cells),
// with a disjoint ALS in the rest of the box and one in the rest of
// the line whose candidate sets partition the intersection's candidates.
func findSueDeCoq(f *fabric.Fabric) *core.Hint {
	for box := core.BoxSectorBase; box < core.BoxSectorBase+core.GridSize; box++ {
		for line := 0; line < 2*core.BoxSize; line++ { // 0-2: rows through the box, 3-5: columns
			intersection := boxLineIntersection(box, line)
			empties := filterEmpty(f, intersection)
			if len(empties) < 2 || len(empties) > 3 {
				continue
			}
			iCands := core.Candidates(0)
			for _, c := range empties {
				iCands = iCands.Union(f.CellCandidates(c))
			}
			restBox := subtractCells(core.SectorCells[box][:], empties)
			restBox = filterEmpty(f, restBox)
			lineSector := lineSectorOf(empties[0], line)
			restLine := subtractCells(core.SectorCells[lineSector][:], empties)
			restLine = filterEmpty(f, restLine)

			for na := 1; na <= len(restBox); na++ {
				for _, comboA := range core.Combinations(restBox, na) {
					candsA := unionCands(f, comboA)
					if !candsA.Subtract(iCands).IsEmpty() {
						continue
					}
					for nb := 1; nb <= len(restLine); nb++ {
						for _, comboB := range core.Combinations(restLine, nb) {
							if !disjointCells(comboA, comboB) {
								continue
							}
							candsB := unionCands(f, comboB)
							if !candsB.Subtract(iCands).IsEmpty() {
								continue
							}
							if candsA.Union(candsB) != iCands || !candsA.Intersect(candsB).IsEmpty() {
								continue
							}
							elims := sueDeCoqEliminations(f, empties, comboA, comboB, candsA, candsB, restBox, restLine)
							if len(elims) == 0 {
								continue
							}
							return &core.Hint{
								Action:       core.ActionEliminate,
								Eliminations: elims,
								Technique:    core.TechSueDeCoq,
								SEScore:      5.0,
								Proof: core.ProofCertificate{
									Kind: core.ProofAls,
									Als: &core.AlsCertificate{
										Sets: []core.AlsSet{
											{Cells: empties, Digits: iCands.ToSlice()},
											{Cells: comboA, Digits: candsA.ToSlice()},
											{Cells: comboB, Digits: candsB.ToSlice()},
										},
									},
								},
							}
						}
					}
				}
			}
		}
	}
	return nil
}

func boxLineIntersection(box, line int) []int {
	boxCells := map[int]bool{}
	for _, c := range core.SectorCells[box] {
		boxCells[c] = true
	}
	boxIdx := box - core.BoxSectorBase
	boxRow, boxCol := (boxIdx/core.BoxSize)*core.BoxSize, (boxIdx%core.BoxSize)*core.BoxSize
	var out []int
	if line < core.BoxSize {
		for r := boxRow + line; r < boxRow+core.BoxSize; r++ {
			var row []int
			for c := boxCol; c < boxCol+core.BoxSize; c++ {
				row = append(row, core.IndexOf(r, c))
			}
			out = row
			break
		}
	} else {
		for c := boxCol + line - core.BoxSize; c < boxCol+core.BoxSize; c++ {
			var col []int
			for r := boxRow; r < boxRow+core.BoxSize; r++ {
				col = append(col, core.IndexOf(r, c))
			}
			out = col
			break
		}
	}
	return out
}

func lineSectorOf(cell, line int) int {
	if line < core.BoxSize {
		return core.RowSectorBase + core.RowOf(cell)
	}
	return core.ColSectorBase + core.ColOf(cell)
}

func filterEmpty(f *fabric.Fabric, cells []int) []int {
	var out []int
	for _, c := range cells {
		if f.Grid().IsEmpty(c) {
			out = append(out, c)
		}
	}
	return out
}

func subtractCells(all, remove []int) []int {
	rm := map[int]bool{}
	for _, c := range remove {
		rm[c] = true
	}
	var out []int
	for _, c := range all {
		if !rm[c] {
			out = append(out, c)
		}
	}
	return out
}

func unionCands(f *fabric.Fabric, cells []int) core.Candidates {
	u := core.Candidates(0)
	for _, c := range cells {
		u = u.Union(f.CellCandidates(c))
	}
	return u
}

func disjointCells(a, b []int) bool {
	in := map[int]bool{}
	for _, c := range a {
		in[c] = true
	}
	for _, c := range b {
		if in[c] {
			return false
		}
	}
	return true
}

func sueDeCoqEliminations(f *fabric.Fabric, intersection, setA, setB []int, candsA, candsB core.Candidates, restBox, restLine []int) []core.Candidate {
	var out []core.Candidate
	skip := map[int]bool{}
	for _, c := range setA {
		skip[c] = true
	}
	for _, c := range restBox {
		if skip[c] {
			continue
		}
		extra := f.CellCandidates(c).Intersect(candsA)
		for _, d := range extra.ToSlice() {
			out = append(out, core.MakeElimination(c, d))
		}
	}
	skip = map[int]bool{}
	for _, c := range setB {
		skip[c] = true
	}
	for _, c := range restLine {
		if skip[c] {
			continue
		}
		extra := f.CellCandidates(c).Intersect(candsB)
		for _, d := range extra.ToSlice() {
			out = append(out, core.MakeElimination(c, d))
		}
	}
	return out
}

// findDeathBlossom: a stem cell with candidates d1..dk, each with a
// disjoint ALS petal whose di-cells all see the stem; a digit common to
// every petal but not among the stem digits eliminates at any cell
// seeing every z-cell across every petal.
func findDeathBlossom(f *fabric.Fabric, sets []Set) *core.Hint {
	for stem := 0; stem < core.TotalCells; stem++ {
		if !f.Grid().IsEmpty(stem) {
			continue
		}
		stemCands := f.CellCandidates(stem)
		digits := stemCands.ToSlice()
		if len(digits) < 2 {
			continue
		}
		petals := map[int]Set{}
		var petalCells []int
		ok := true
		for _, d := range digits {
			petal, found := findPetal(f, sets, stem, d, petalCells)
			if !found {
				ok = false
				break
			}
			petals[d] = petal
			petalCells = append(petalCells, petal.Cells...)
		}
		if !ok {
			continue
		}
		common := core.AllCandidates()
		for _, p := range petals {
			common = common.Intersect(p.Cands)
		}
		common = common.Subtract(stemCands)
		if common.IsEmpty() {
			continue
		}
		for _, z := range common.ToSlice() {
			var allPetalCells []int
			petalZCells := make([][]int, 0, len(petals))
			for _, p := range petals {
				allPetalCells = append(allPetalCells, p.Cells...)
				petalZCells = append(petalZCells, cellsWithDigit(f, p.Cells, z))
			}
			excluded := append([]int{stem}, allPetalCells...)
			elims := eliminateSeeingAllMulti(f, excluded, petalZCells, z)
			if len(elims) == 0 {
				continue
			}
			alsSets := []core.AlsSet{{Cells: []int{stem}, Digits: digits}}
			for _, p := range petals {
				alsSets = append(alsSets, toAlsSet(p))
			}
			return &core.Hint{
				Action:       core.ActionEliminate,
				Eliminations: elims,
				Technique:    core.TechDeathBlossom,
				SEScore:      7.5,
				Proof: core.ProofCertificate{
					Kind: core.ProofAls,
					Als:  &core.AlsCertificate{Sets: alsSets},
				},
			}
		}
	}
	return nil
}

func findPetal(f *fabric.Fabric, sets []Set, stem, digit int, taken []int) (Set, bool) {
	for _, s := range sets {
		in := false
		for _, c := range s.Cells {
			if c == stem {
				in = true
				break
			}
		}
		if in || !s.Cands.Has(digit) || !disjointCells(s.Cells, taken) {
			continue
		}
		dCells := cellsWithDigit(f, s.Cells, digit)
		if core.AllSeeAll([]int{stem}, dCells) {
			return s, true
		}
	}
	return Set{}, false
}

func eliminateSeeingAllMulti(f *fabric.Fabric, excluded []int, groups [][]int, digit int) []core.Candidate {
	exclude := map[int]bool{}
	for _, c := range excluded {
		exclude[c] = true
	}
	var out []core.Candidate
	for c := 0; c < core.TotalCells; c++ {
		if exclude[c] || !f.Grid().IsEmpty(c) || !f.CellCandidates(c).Has(digit) {
			continue
		}
		seesAll := true
		for _, g := range groups {
			if !core.AllSeeAll([]int{c}, g) {
				seesAll = false
				break
			}
		}
		if seesAll {
			out = append(out, core.MakeElimination(c, digit))
		}
	}
	return out
}

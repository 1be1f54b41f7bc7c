// Package aic implements the Alternating Inference Chain engine: the
// link graph (strong/weak edges derived on demand from the fabric,
// never persisted) plus one alternating search whose node-type
// restrictions yield X-Chain, W-Wing, general AIC, and 3D Medusa
// coloring as special cases, plus forcing chains and Nishio as
// branch-and-propagate variants of the same idea. Kraken Fish is not
// detected: its TechniqueId exists but no search here produces it.
// Grounded on the teacher's internal/sudoku/human/techniques_aic.go,
// techniques_xcycles.go, techniques_medusa.go, techniques_wings.go, and
// techniques_forcing.go (each a standalone hand-rolled search),
// generalized into a single alternating-search procedure.
package aic

import (
	"github.com/kcirtapfromspace/sudoku/internal/core"
	"github.com/kcirtapfromspace/sudoku/internal/fabric"
)

// node is one candidate with a polarity: true means "asserted" (this
// candidate is placed), false means "eliminated" (this candidate is
// ruled out). Chains alternate strong/weak edges starting from a weak
// assertion (polarity true at depth 0).
type node struct {
	cell, digit int
	strong      bool
}

// Find runs the chain searches from most to least restricted: W-Wing,
// the single-digit search (X-Chain) for each digit, the general AIC
// search across digits, XY-Chain, 3D Medusa, then the forcing-chain
// family (digit forcing chains, Nishio, cell forcing chains).
func Find(f *fabric.Fabric) *core.Hint {
	if h := findWWing(f); h != nil {
		return h
	}
	for d := 1; d <= core.GridSize; d++ {
		if h := searchDigit(f, d, true); h != nil {
			return h
		}
	}
	if h := searchGeneral(f); h != nil {
		return h
	}
	if h := findXYChain(f); h != nil {
		return h
	}
	if h := findMedusa(f); h != nil {
		return h
	}
	if h := findDigitForcingChain(f); h != nil {
		return h
	}
	if h := findNishio(f); h != nil {
		return h
	}
	if h := findForcingChain(f); h != nil {
		return h
	}
	return nil
}

const maxDepth = 10

// searchDigit runs the alternating search restricted to one digit
// (X-Chain / Simple Coloring territory).
func searchDigit(f *fabric.Fabric, digit int, singleDigit bool) *core.Hint {
	cells := liveCellsFor(f, digit)
	for _, start := range cells {
		if h := alternate(f, node{cell: start, digit: digit, strong: true}, singleDigit, digit); h != nil {
			tech := core.TechXChain
			switch {
			case !singleDigit:
				tech = core.TechAIC
			case h.Proof.Aic != nil && len(h.Proof.Aic.Nodes) == 4:
				// The minimal two-strong-link X-Chain is the classic
				// Skyscraper shape; relabel rather than search for it
				// separately.
				tech = core.TechSkyscraper
				h.SEScore = 4.0
			}
			h.Technique = tech
			return h
		}
	}
	return nil
}

func searchGeneral(f *fabric.Fabric) *core.Hint {
	for c := 0; c < core.TotalCells; c++ {
		if !f.Grid().IsEmpty(c) {
			continue
		}
		for _, d := range f.CellCandidates(c).ToSlice() {
			if h := alternate(f, node{cell: c, digit: d, strong: true}, false, 0); h != nil {
				h.Technique = core.TechAIC
				return h
			}
		}
	}
	return nil
}

func liveCellsFor(f *fabric.Fabric, digit int) []int {
	var out []int
	for c := 0; c < core.TotalCells; c++ {
		if f.Grid().IsEmpty(c) && f.CellCandidates(c).Has(digit) {
			out = append(out, c)
		}
	}
	return out
}

// alternate runs a depth-limited DFS alternating strong -> weak ->
// strong ... from start, checking the two valid terminations (Type 1,
// Type 2) at every weak step. Revisit prevention is per polarity:
// visited[node]=polarity seen.
func alternate(f *fabric.Fabric, start node, singleDigit bool, fixedDigit int) *core.Hint {
	type visitKey struct {
		cell, digit int
		strong      bool
	}
	seen := map[visitKey]bool{}
	path := []node{start}

	var dfs func(cur node, wantStrong bool, depth int) *core.Hint
	dfs = func(cur node, wantStrong bool, depth int) *core.Hint {
		if depth > maxDepth {
			return nil
		}
		key := visitKey{cur.cell, cur.digit, wantStrong}
		if seen[key] {
			return nil
		}
		seen[key] = true
		defer delete(seen, key)

		var next []node
		if wantStrong {
			next = strongLinksFrom(f, cur, singleDigit, fixedDigit)
		} else {
			next = weakLinksFrom(f, cur, singleDigit, fixedDigit)
		}

		for _, n := range next {
			newPath := append(append([]node{}, path...), n)
			if !wantStrong && len(newPath) >= 4 {
				if h := checkTermination(f, start, n, newPath); h != nil {
					return h
				}
			}
			path = newPath
			if h := dfs(n, !wantStrong, depth+1); h != nil {
				return h
			}
			path = path[:len(path)-1]
		}
		return nil
	}

	return dfs(start, false, 1)
}

// strongLinksFrom returns every node reachable from cur by a strong
// edge: the other cell of a conjugate pair sharing a sector and digit,
// or (if cur's cell is bivalue) the other digit in the same cell.
func strongLinksFrom(f *fabric.Fabric, cur node, singleDigit bool, fixedDigit int) []node {
	var out []node
	for _, sector := range core.CellSectors[cur.cell] {
		mask := f.DigitPositions(sector, cur.digit)
		if popcount(mask) == 2 {
			for _, c := range f.DigitCells(sector, cur.digit) {
				if c != cur.cell {
					out = append(out, node{cell: c, digit: cur.digit, strong: true})
				}
			}
		}
	}
	if !singleDigit {
		cands := f.CellCandidates(cur.cell)
		if cands.Count() == 2 {
			for _, d := range cands.ToSlice() {
				if d != cur.digit {
					out = append(out, node{cell: cur.cell, digit: d, strong: true})
				}
			}
		}
	}
	return out
}

// weakLinksFrom returns every node reachable from cur by a weak edge:
// any other live candidate in the same cell, or the same digit in a
// peer cell.
func weakLinksFrom(f *fabric.Fabric, cur node, singleDigit bool, fixedDigit int) []node {
	var out []node
	if !singleDigit {
		cands := f.CellCandidates(cur.cell)
		for _, d := range cands.ToSlice() {
			if d != cur.digit {
				out = append(out, node{cell: cur.cell, digit: d})
			}
		}
	}
	for _, peer := range core.Peers[cur.cell] {
		if f.Grid().IsEmpty(peer) && f.CellCandidates(peer).Has(cur.digit) {
			out = append(out, node{cell: peer, digit: cur.digit})
		}
	}
	return out
}

func checkTermination(f *fabric.Fabric, start, end node, path []node) *core.Hint {
	if end.digit == start.digit && end.cell != start.cell {
		// Type 1: same digit, different cells, reached by a weak edge.
		var elims []core.Candidate
		for c := 0; c < core.TotalCells; c++ {
			if !f.Grid().IsEmpty(c) || c == start.cell || c == end.cell {
				continue
			}
			if !f.CellCandidates(c).Has(start.digit) {
				continue
			}
			if core.ArePeers(c, start.cell) && core.ArePeers(c, end.cell) {
				elims = append(elims, core.MakeElimination(c, start.digit))
			}
		}
		if len(elims) == 0 {
			return nil
		}
		return buildHint(elims, path)
	}
	if end.cell == start.cell && end.digit != start.digit {
		// Type 2: same cell, different digits.
		cands := f.CellCandidates(start.cell)
		var elims []core.Candidate
		for _, d := range cands.ToSlice() {
			if d != start.digit && d != end.digit {
				elims = append(elims, core.MakeElimination(start.cell, d))
			}
		}
		if len(elims) == 0 {
			return nil
		}
		return buildHint(elims, path)
	}
	return nil
}

func buildHint(elims []core.Candidate, path []node) *core.Hint {
	nodes := make([]core.AicNode, len(path))
	for i, n := range path {
		nodes[i] = core.AicNode{Cell: n.cell, Digit: n.digit, Strong: n.strong}
	}
	return &core.Hint{
		Action:       core.ActionEliminate,
		Eliminations: elims,
		Technique:    core.TechAIC,
		SEScore:      6.0 + float32(len(path))*0.1,
		Proof: core.ProofCertificate{
			Kind: core.ProofAic,
			Aic:  &core.AicCertificate{Nodes: nodes},
		},
	}
}

func popcount(m uint16) int {
	n := 0
	for m != 0 {
		n += int(m & 1)
		m >>= 1
	}
	return n
}

// findWWing: a length-6 template, bivalue cell A={x,y}, strong link on
// y to a conjugate pair, weak to the other end, strong (bivalue) back
// to a cell B={x,y}. Implemented directly as a fixed template rather
// than a general search.
func findWWing(f *fabric.Fabric) *core.Hint {
	var bivalues []int
	for c := 0; c < core.TotalCells; c++ {
		if f.Grid().IsEmpty(c) && f.CellCandidates(c).Count() == 2 {
			bivalues = append(bivalues, c)
		}
	}
	for i := 0; i < len(bivalues); i++ {
		for j := i + 1; j < len(bivalues); j++ {
			a, b := bivalues[i], bivalues[j]
			if f.CellCandidates(a) != f.CellCandidates(b) {
				continue
			}
			digits := f.CellCandidates(a).ToSlice()
			if len(digits) != 2 {
				continue
			}
			x, y := digits[0], digits[1]
			if elims := wWingElims(f, a, b, x, y); len(elims) > 0 {
				return wWingHint(a, b, x, y, elims)
			}
			if elims := wWingElims(f, a, b, y, x); len(elims) > 0 {
				return wWingHint(a, b, y, x, elims)
			}
		}
	}
	return nil
}

func wWingElims(f *fabric.Fabric, a, b, linkDigit, elimDigit int) []core.Candidate {
	aLinks := conjugatePeers(f, a, linkDigit)
	bLinks := conjugatePeers(f, b, linkDigit)
	linked := false
	for _, p := range aLinks {
		for _, q := range bLinks {
			if p == q {
				linked = true
			}
		}
	}
	if !linked {
		return nil
	}
	var elims []core.Candidate
	for c := 0; c < core.TotalCells; c++ {
		if !f.Grid().IsEmpty(c) || c == a || c == b {
			continue
		}
		if f.CellCandidates(c).Has(elimDigit) && core.ArePeers(c, a) && core.ArePeers(c, b) {
			elims = append(elims, core.MakeElimination(c, elimDigit))
		}
	}
	return elims
}

func conjugatePeers(f *fabric.Fabric, cell, digit int) []int {
	var out []int
	for _, sector := range core.CellSectors[cell] {
		if popcount(f.DigitPositions(sector, digit)) == 2 {
			for _, c := range f.DigitCells(sector, digit) {
				if c != cell {
					out = append(out, c)
				}
			}
		}
	}
	return out
}

func wWingHint(a, b, linkDigit, elimDigit int, elims []core.Candidate) *core.Hint {
	return &core.Hint{
		Action:       core.ActionEliminate,
		Eliminations: elims,
		Technique:    core.TechWWing,
		SEScore:      4.4,
		Proof: core.ProofCertificate{
			Kind: core.ProofAic,
			Aic: &core.AicCertificate{Nodes: []core.AicNode{
				{Cell: a, Digit: elimDigit, Strong: true},
				{Cell: a, Digit: linkDigit, Strong: false},
				{Cell: b, Digit: linkDigit, Strong: false},
				{Cell: b, Digit: elimDigit, Strong: true},
			}},
		},
	}
}

// findMedusa performs 3D Medusa coloring: two-color the strong-edge
// subgraph's connected components and apply the contradiction rule
// (two same-colored nodes sharing a sector or cell means that color is
// false). The "sees both colors" elimination is not applied.
func findMedusa(f *fabric.Fabric) *core.Hint {
	colors := map[node]int{}
	var allNodes []node
	for c := 0; c < core.TotalCells; c++ {
		if !f.Grid().IsEmpty(c) {
			continue
		}
		for _, d := range f.CellCandidates(c).ToSlice() {
			allNodes = append(allNodes, node{cell: c, digit: d})
		}
	}

	colorOf := 0
	for _, start := range allNodes {
		if _, ok := colors[start]; ok {
			continue
		}
		colorOf++
		component := []node{}
		queue := []node{start}
		colors[start] = colorOf * 2
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			component = append(component, cur)
			for _, n := range strongLinksFrom(f, cur, false, 0) {
				if _, ok := colors[n]; !ok {
					colors[n] = flip(colors[cur])
					queue = append(queue, n)
				}
			}
		}
		if h := medusaContradiction(f, component, colors); h != nil {
			return h
		}
	}
	return nil
}

// findXYChain searches bivalue cells only: b0={x,y1}, b1={y1,y2}, ...,
// linked in series by a digit shared between consecutive cells. If the
// chain returns to the starting digit x at some later cell, x is
// eliminated from any cell seeing both ends. A restriction of the
// general alternating search to bivalue nodes, kept as a dedicated
// walk since the bivalue restriction lets every link be a plain
// same-cell pair rather than a derived strong/weak edge.
func findXYChain(f *fabric.Fabric) *core.Hint {
	var bivalues []int
	for c := 0; c < core.TotalCells; c++ {
		if f.Grid().IsEmpty(c) && f.CellCandidates(c).Count() == 2 {
			bivalues = append(bivalues, c)
		}
	}
	for _, start := range bivalues {
		digits := f.CellCandidates(start).ToSlice()
		x, y := digits[0], digits[1]
		if h := xyChainStep(f, start, x, y, []int{start}, map[int]bool{start: true}); h != nil {
			return h
		}
		if h := xyChainStep(f, start, y, x, []int{start}, map[int]bool{start: true}); h != nil {
			return h
		}
	}
	return nil
}

// xyChainStep extends the chain from cur, which was entered holding
// target (the digit the chain must return to in order to close) and
// carries link forward to the next bivalue peer.
func xyChainStep(f *fabric.Fabric, cur, target, link int, path []int, visited map[int]bool) *core.Hint {
	if len(path) > maxDepth {
		return nil
	}
	for _, peer := range core.Peers[cur] {
		if visited[peer] || !f.Grid().IsEmpty(peer) {
			continue
		}
		cand := f.CellCandidates(peer)
		if cand.Count() != 2 || !cand.Has(link) {
			continue
		}
		next, _ := cand.Subtract(core.NewCandidates([]int{link})).Only()
		newPath := append(append([]int{}, path...), peer)
		if next == target && len(newPath) >= 3 {
			if h := xyChainClose(f, path[0], peer, target, newPath); h != nil {
				return h
			}
		}
		visited[peer] = true
		if h := xyChainStep(f, peer, target, next, newPath, visited); h != nil {
			return h
		}
		delete(visited, peer)
	}
	return nil
}

func xyChainClose(f *fabric.Fabric, start, end, digit int, path []int) *core.Hint {
	inPath := map[int]bool{}
	for _, c := range path {
		inPath[c] = true
	}
	var elims []core.Candidate
	for c := 0; c < core.TotalCells; c++ {
		if inPath[c] || !f.Grid().IsEmpty(c) || !f.CellCandidates(c).Has(digit) {
			continue
		}
		if core.ArePeers(c, start) && core.ArePeers(c, end) {
			elims = append(elims, core.MakeElimination(c, digit))
		}
	}
	if len(elims) == 0 {
		return nil
	}
	nodes := make([]core.AicNode, len(path))
	for i, c := range path {
		nodes[i] = core.AicNode{Cell: c, Digit: digit, Strong: i%2 == 0}
	}
	return &core.Hint{
		Action:       core.ActionEliminate,
		Eliminations: elims,
		Technique:    core.TechXYChain,
		SEScore:      6.0,
		Proof: core.ProofCertificate{
			Kind: core.ProofAic,
			Aic:  &core.AicCertificate{Nodes: nodes},
		},
	}
}

// findForcingChain is the Cell Forcing Chain: a cell with two or three
// live candidates, each assumed in turn and propagated by Place's
// built-in singles cascade. If every branch independently forces the
// same placement or rules out the same candidate elsewhere, that
// conclusion holds regardless of which candidate the source cell
// turns out to hold. Built on Fabric.Clone/Place so each branch gets
// its own cascade of singles for free.
func findForcingChain(f *fabric.Fabric) *core.Hint {
	for numCands := 2; numCands <= 3; numCands++ {
		for cell := 0; cell < core.TotalCells; cell++ {
			if !f.Grid().IsEmpty(cell) || f.CellCandidates(cell).Count() != numCands {
				continue
			}
			digits := f.CellCandidates(cell).ToSlice()
			branches := make([]*fabric.Fabric, len(digits))
			valid := make([]bool, len(digits))
			for i, d := range digits {
				clone := f.Clone()
				branches[i] = clone
				valid[i] = clone.Place(cell, d) != fabric.Contradiction
			}
			if h := forcingFromBranches(f, cell, digits, branches, valid); h != nil {
				return h
			}
		}
	}
	return nil
}

func forcingFromBranches(f *fabric.Fabric, sourceCell int, digits []int, branches []*fabric.Fabric, valid []bool) *core.Hint {
	invalidCount, invalidIdx := 0, -1
	for i, v := range valid {
		if !v {
			invalidCount++
			invalidIdx = i
		}
	}
	if invalidCount == 1 && len(digits) == 2 {
		otherIdx := 1 - invalidIdx
		return &core.Hint{
			Action:    core.ActionSetValue,
			Cell:      sourceCell,
			Digit:     digits[otherIdx],
			Technique: core.TechForcingChain,
			SEScore:   8.0,
			Proof: core.ProofCertificate{
				Kind: core.ProofForcing,
				Forcing: &core.ForcingCertificate{
					SourceCell: sourceCell,
					Branches: []core.ForcingBranch{
						{AssumeCell: sourceCell, AssumeDigit: digits[invalidIdx]},
					},
				},
			},
		}
	}
	if invalidCount > 0 {
		return nil
	}

	for target := 0; target < core.TotalCells; target++ {
		if target == sourceCell || !f.Grid().IsEmpty(target) {
			continue
		}
		first := branches[0].Grid().Value(target)
		if first == 0 {
			continue
		}
		agree := true
		for _, b := range branches[1:] {
			if b.Grid().Value(target) != first {
				agree = false
				break
			}
		}
		if agree {
			return &core.Hint{
				Action:    core.ActionSetValue,
				Cell:      target,
				Digit:     first,
				Technique: core.TechForcingChain,
				SEScore:   8.0,
				Proof: core.ProofCertificate{
					Kind:    core.ProofForcing,
					Forcing: branchCertificate(f, sourceCell, digits, branches),
				},
			}
		}
	}

	for target := 0; target < core.TotalCells; target++ {
		if target == sourceCell || !f.Grid().IsEmpty(target) {
			continue
		}
		for _, z := range f.CellCandidates(target).ToSlice() {
			if allBranchesRuleOut(branches, target, z) {
				return &core.Hint{
					Action:       core.ActionEliminate,
					Eliminations: []core.Candidate{core.MakeElimination(target, z)},
					Technique:    core.TechForcingChain,
					SEScore:      8.0,
					Proof: core.ProofCertificate{
						Kind:    core.ProofForcing,
						Forcing: branchCertificate(f, sourceCell, digits, branches),
					},
				}
			}
		}
	}
	return nil
}

func allBranchesRuleOut(branches []*fabric.Fabric, target, digit int) bool {
	for _, b := range branches {
		if b.Grid().IsEmpty(target) {
			if b.CellCandidates(target).Has(digit) {
				return false
			}
		} else if b.Grid().Value(target) == digit {
			return false
		}
	}
	return true
}

func branchCertificate(f *fabric.Fabric, sourceCell int, digits []int, branches []*fabric.Fabric) *core.ForcingCertificate {
	bs := make([]core.ForcingBranch, len(branches))
	for i, b := range branches {
		placements := map[int]int{}
		for c := 0; c < core.TotalCells; c++ {
			if f.Grid().IsEmpty(c) {
				if v := b.Grid().Value(c); v != 0 {
					placements[c] = v
				}
			}
		}
		bs[i] = core.ForcingBranch{AssumeCell: sourceCell, AssumeDigit: digits[i], Placements: placements}
	}
	return &core.ForcingCertificate{SourceCell: sourceCell, Branches: bs}
}

// findDigitForcingChain is the Unit/Digit Forcing Chain: a digit
// confined to two or three positions within one sector, each position
// assumed in turn and propagated, built on Fabric.Clone/Place the
// same way findForcingChain is.
func findDigitForcingChain(f *fabric.Fabric) *core.Hint {
	for d := 1; d <= core.GridSize; d++ {
		for s := 0; s < core.NumSectors; s++ {
			positions := f.DigitCells(s, d)
			if len(positions) < 2 || len(positions) > 3 {
				continue
			}
			branches := make([]*fabric.Fabric, len(positions))
			valid := make([]bool, len(positions))
			for i, c := range positions {
				clone := f.Clone()
				branches[i] = clone
				valid[i] = clone.Place(c, d) != fabric.Contradiction
			}
			if h := digitForcingFromBranches(f, d, positions, branches, valid); h != nil {
				return h
			}
		}
	}
	return nil
}

func digitForcingFromBranches(f *fabric.Fabric, digit int, positions []int, branches []*fabric.Fabric, valid []bool) *core.Hint {
	invalidCount, invalidIdx := 0, -1
	for i, v := range valid {
		if !v {
			invalidCount++
			invalidIdx = i
		}
	}
	posSet := map[int]bool{}
	for _, p := range positions {
		posSet[p] = true
	}

	if invalidCount == 1 && len(positions) == 2 {
		otherIdx := 1 - invalidIdx
		return &core.Hint{
			Action:    core.ActionSetValue,
			Cell:      positions[otherIdx],
			Digit:     digit,
			Technique: core.TechDigitForcingChain,
			SEScore:   7.0,
			Proof: core.ProofCertificate{
				Kind:    core.ProofForcing,
				Forcing: digitBranchCertificate(f, digit, positions, branches),
			},
		}
	}
	if invalidCount > 0 {
		return nil
	}

	for target := 0; target < core.TotalCells; target++ {
		if posSet[target] || !f.Grid().IsEmpty(target) {
			continue
		}
		first := branches[0].Grid().Value(target)
		if first == 0 {
			continue
		}
		agree := true
		for _, b := range branches[1:] {
			if b.Grid().Value(target) != first {
				agree = false
				break
			}
		}
		if agree {
			return &core.Hint{
				Action:    core.ActionSetValue,
				Cell:      target,
				Digit:     first,
				Technique: core.TechDigitForcingChain,
				SEScore:   7.0,
				Proof: core.ProofCertificate{
					Kind:    core.ProofForcing,
					Forcing: digitBranchCertificate(f, digit, positions, branches),
				},
			}
		}
	}

	for target := 0; target < core.TotalCells; target++ {
		if posSet[target] || !f.Grid().IsEmpty(target) {
			continue
		}
		for _, z := range f.CellCandidates(target).ToSlice() {
			if allBranchesRuleOut(branches, target, z) {
				return &core.Hint{
					Action:       core.ActionEliminate,
					Eliminations: []core.Candidate{core.MakeElimination(target, z)},
					Technique:    core.TechDigitForcingChain,
					SEScore:      7.0,
					Proof: core.ProofCertificate{
						Kind:    core.ProofForcing,
						Forcing: digitBranchCertificate(f, digit, positions, branches),
					},
				}
			}
		}
	}
	return nil
}

func digitBranchCertificate(f *fabric.Fabric, digit int, positions []int, branches []*fabric.Fabric) *core.ForcingCertificate {
	bs := make([]core.ForcingBranch, len(branches))
	for i, b := range branches {
		placements := map[int]int{}
		for c := 0; c < core.TotalCells; c++ {
			if f.Grid().IsEmpty(c) {
				if v := b.Grid().Value(c); v != 0 {
					placements[c] = v
				}
			}
		}
		bs[i] = core.ForcingBranch{AssumeCell: positions[i], AssumeDigit: digit, Placements: placements}
	}
	return &core.ForcingCertificate{SourceDigit: digit, Branches: bs}
}

// findNishio assumes a single candidate and propagates via Place's
// singles cascade alone, with no further branching; a contradiction
// proves that candidate false. The same bivalue-contradiction
// short-circuit findForcingChain uses, generalized to any single
// candidate rather than just one half of a bivalue cell.
func findNishio(f *fabric.Fabric) *core.Hint {
	for c := 0; c < core.TotalCells; c++ {
		if !f.Grid().IsEmpty(c) {
			continue
		}
		for _, d := range f.CellCandidates(c).ToSlice() {
			clone := f.Clone()
			if clone.Place(c, d) == fabric.Contradiction {
				return &core.Hint{
					Action:       core.ActionEliminate,
					Eliminations: []core.Candidate{core.MakeElimination(c, d)},
					Technique:    core.TechNishio,
					SEScore:      7.5,
					Proof: core.ProofCertificate{
						Kind: core.ProofForcing,
						Forcing: &core.ForcingCertificate{
							SourceCell: c,
							Branches:   []core.ForcingBranch{{AssumeCell: c, AssumeDigit: d}},
						},
					},
				}
			}
		}
	}
	return nil
}

func flip(c int) int {
	if c%2 == 0 {
		return c + 1
	}
	return c - 1
}

func medusaContradiction(f *fabric.Fabric, component []node, colors map[node]int) *core.Hint {
	for i := range component {
		for j := i + 1; j < len(component); j++ {
			a, b := component[i], component[j]
			if colors[a] != colors[b] {
				continue
			}
			sameCellDiffDigit := a.cell == b.cell && a.digit != b.digit
			samePeerSameDigit := a.digit == b.digit && core.ArePeers(a.cell, b.cell)
			if sameCellDiffDigit || samePeerSameDigit {
				badColor := colors[a]
				var elims []core.Candidate
				for n, c := range colors {
					if c == badColor {
						elims = append(elims, core.MakeElimination(n.cell, n.digit))
					}
				}
				if len(elims) == 0 {
					continue
				}
				nodes := make([]core.AicNode, 0, len(component))
				for _, n := range component {
					nodes = append(nodes, core.AicNode{Cell: n.cell, Digit: n.digit, Strong: true})
				}
				return &core.Hint{
					Action:       core.ActionEliminate,
					Eliminations: elims,
					Technique:    core.TechMedusa3D,
					SEScore:      6.2,
					Proof: core.ProofCertificate{
						Kind: core.ProofAic,
						Aic:  &core.AicCertificate{Nodes: nodes},
					},
				}
			}
		}
	}
	return nil
}

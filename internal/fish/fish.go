// Package fish implements the generic Fish engine: X-Wing, Swordfish,
// Jellyfish, Franken Fish, Mutant Fish, their finned variants, and
// Siamese Fish detection are all one parameterized procedure over
// (digit, size, constraint, finned) rather than separate algorithms.
// Grounded on the teacher's internal/sudoku/human/techniques_fish.go
// (X-Wing/Swordfish/Jellyfish as separate hand-written functions),
// generalized into a single base-set/cover-set search.
package fish

import (
	"sort"

	"github.com/kcirtapfromspace/sudoku/internal/core"
	"github.com/kcirtapfromspace/sudoku/internal/fabric"
)

// Constraint restricts which sector types may serve as base/cover sets.
type Constraint int

const (
	Basic Constraint = iota
	Franken
	Mutant
)

var sizeTechnique = map[int]map[bool]core.TechniqueID{
	2: {false: core.TechXWing, true: core.TechFinnedXWing},
	3: {false: core.TechSwordfish, true: core.TechFinnedSwordfish},
	4: {false: core.TechJellyfish, true: core.TechFinnedJellyfish},
}

var seScore = map[core.TechniqueID]float32{
	core.TechXWing:           3.2,
	core.TechFinnedXWing:     3.4,
	core.TechSwordfish:       3.8,
	core.TechFinnedSwordfish: 4.0,
	core.TechJellyfish:       5.2,
	core.TechFinnedJellyfish: 5.4,
	core.TechFrankenFish:     6.0,
	core.TechMutantFish:      6.5,
}

// Find searches in a fixed deterministic order: increasing n, Basic
// before Franken before Mutant, and within each of those tiers every
// digit is scanned for an unfinned hit before any digit's finned hit
// is allowed to win — finned-status is an outer key relative to
// digit, not resolved digit-by-digit. Returns the first hit, or a
// Siamese-merged hit if two finned fishes sharing a fin box are found
// for the same digit.
func Find(f *fabric.Fabric) *core.Hint {
	lineSectors := sectorsFor(Basic)
	allSectors := sectorsFor(Mutant)
	for n := 2; n <= 4; n++ {
		if h := selectFromResults(searchAllDigits(f, n, lineSectors, classifyBasic)); h != nil {
			return h
		}
		var frankenResults, mutantResults []fishResult
		for _, r := range searchAllDigits(f, n, allSectors, classifyMixed) {
			if r.constraint == Franken {
				frankenResults = append(frankenResults, r)
			} else {
				mutantResults = append(mutantResults, r)
			}
		}
		if h := selectFromResults(frankenResults); h != nil {
			return h
		}
		if h := selectFromResults(mutantResults); h != nil {
			return h
		}
	}
	return nil
}

// searchAllDigits runs searchSize for every digit in order, so that
// callers see all of a tier's candidates before picking one.
func searchAllDigits(f *fabric.Fabric, n int, sectors []int, classify func(base, cover []int) Constraint) []fishResult {
	var all []fishResult
	for d := 1; d <= core.GridSize; d++ {
		all = append(all, searchSize(f, d, n, sectors, classify)...)
	}
	return all
}

// selectFromResults picks the first unfinned hit across the whole
// results slice; only once every result has been checked for an
// unfinned hit does it fall back to a finned one (merging two
// same-digit, same-fin-box finned hits into a Siamese Fish first).
// Results must be pre-sorted by digit, which searchAllDigits already
// guarantees.
func selectFromResults(results []fishResult) *core.Hint {
	var firstFinned *fishResult
	var pendingFinned *fishResult
	var siameseHint *core.Hint
	lastDigit := -1
	for i := range results {
		r := &results[i]
		if r.digit != lastDigit {
			pendingFinned = nil
			lastDigit = r.digit
		}
		if !r.finned {
			return r.toHint(seScore, false)
		}
		if siameseHint == nil {
			if pendingFinned != nil && pendingFinned.finBox == r.finBox {
				siameseHint = siamese(pendingFinned, r, seScore)
			} else {
				pendingFinned = r
			}
		}
		if firstFinned == nil {
			firstFinned = r
		}
	}
	if siameseHint != nil {
		return siameseHint
	}
	if firstFinned != nil {
		return firstFinned.toHint(seScore, false)
	}
	return nil
}

type fishResult struct {
	digit, n    int
	constraint  Constraint
	finned      bool
	base, cover []int // sector ids
	fins        []int // cell indices
	finBox      int
	eliminate   []core.Candidate
}

func (r *fishResult) techniqueID() core.TechniqueID {
	return techniqueFor(r.n, r.constraint, r.finned)
}

func (r *fishResult) toHint(scores map[core.TechniqueID]float32, siamese bool) *core.Hint {
	tech := r.techniqueID()
	return &core.Hint{
		Action:       core.ActionEliminate,
		Eliminations: r.eliminate,
		Technique:    tech,
		SEScore:      scores[tech],
		Proof: core.ProofCertificate{
			Kind: core.ProofFish,
			Fish: &core.FishCertificate{Digit: r.digit, Base: r.base, Cover: r.cover, Fins: r.fins, Siamese: siamese},
		},
	}
}

func siamese(a, b *fishResult, scores map[core.TechniqueID]float32) *core.Hint {
	merged := intersectCandidates(a.eliminate, b.eliminate)
	if len(merged) == 0 {
		return a.toHint(scores, false)
	}
	base := dedupSectors(append(append([]int{}, a.base...), b.base...))
	cover := dedupSectors(append(append([]int{}, a.cover...), b.cover...))
	return &core.Hint{
		Action:       core.ActionEliminate,
		Eliminations: merged,
		Technique:    core.TechSiameseFish,
		SEScore:      scores[unfinnedOf(a.techniqueID())],
		Proof: core.ProofCertificate{
			Kind: core.ProofFish,
			Fish: &core.FishCertificate{Digit: a.digit, Base: base, Cover: cover, Fins: append(a.fins, b.fins...), Siamese: true},
		},
	}
}

func unfinnedOf(t core.TechniqueID) core.TechniqueID {
	switch t {
	case core.TechFinnedXWing:
		return core.TechXWing
	case core.TechFinnedSwordfish:
		return core.TechSwordfish
	case core.TechFinnedJellyfish:
		return core.TechJellyfish
	}
	return t
}

// sectorsFor returns the sector universe a tier draws its base/cover
// sets from. Basic is restricted to lines (no boxes), so every Basic
// result is row/col by construction. Franken and Mutant both draw
// from the full 27-sector universe; classifyMixed tells them apart
// after the fact by inspecting which sector types a given base/cover
// pair actually used.
func sectorsFor(c Constraint) []int {
	if c == Basic {
		s := make([]int, 0, core.BoxSectorBase)
		for i := core.RowSectorBase; i < core.BoxSectorBase; i++ {
			s = append(s, i)
		}
		return s
	}
	s := make([]int, 0, core.NumSectors)
	for i := 0; i < core.NumSectors; i++ {
		s = append(s, i)
	}
	return s
}

// classifyBasic is used for the lines-only tier, where sectorsFor(Basic)
// guarantees every base/cover pair is already a pure row/col fish.
func classifyBasic(base, cover []int) Constraint {
	return Basic
}

// classifyMixed tells Franken from Mutant fish by the sector types a
// base/cover pair actually spans: Franken mixes boxes with exactly
// one line type (rows-and-boxes, or cols-and-boxes); anything else —
// rows and cols both present, or boxes alone — is Mutant.
func classifyMixed(base, cover []int) Constraint {
	var hasRow, hasCol, hasBox bool
	for _, s := range base {
		hasRow, hasCol, hasBox = markSectorType(s, hasRow, hasCol, hasBox)
	}
	for _, s := range cover {
		hasRow, hasCol, hasBox = markSectorType(s, hasRow, hasCol, hasBox)
	}
	if hasBox && hasRow != hasCol {
		return Franken
	}
	return Mutant
}

func markSectorType(s int, hasRow, hasCol, hasBox bool) (bool, bool, bool) {
	switch {
	case s < core.ColSectorBase:
		return true, hasCol, hasBox
	case s < core.BoxSectorBase:
		return hasRow, true, hasBox
	default:
		return hasRow, hasCol, true
	}
}

func searchSize(f *fabric.Fabric, digit, n int, sectors []int, classify func(base, cover []int) Constraint) []fishResult {
	var out []fishResult
	bases := core.Combinations(sectors, n)
	for _, base := range bases {
		betaMask := uint16(0)
		baseCells := map[int]bool{}
		total := 0
		for _, s := range base {
			mask := f.DigitPositions(s, digit)
			if mask == 0 {
				total = -1
				break
			}
			for _, c := range f.DigitCells(s, digit) {
				if !baseCells[c] {
					baseCells[c] = true
					total++
				}
			}
			betaMask |= mask
		}
		if total < n {
			continue
		}
		beta := setKeys(baseCells)

		covers := core.Combinations(sectors, n)
		for _, cover := range covers {
			if overlaps(base, cover) {
				continue
			}
			if !coverIntersectsBase(f, cover, digit, baseCells) {
				continue
			}
			coverCells := map[int]bool{}
			for _, s := range cover {
				for _, c := range f.DigitCells(s, digit) {
					coverCells[c] = true
				}
			}
			phi := subtractSet(baseCells, coverCells)
			eps := subtractSet(coverCells, baseCells)

			if len(phi) == 0 {
				elims := candidatesFor(eps, digit)
				if len(elims) == 0 {
					continue
				}
				out = append(out, fishResult{
					digit: digit, n: n, constraint: classify(base, cover), finned: false,
					base: base, cover: cover, eliminate: elims,
				})
				continue
			}

			finCells := phi
			if box, ok := singleBox(finCells); ok {
				var restricted []int
				for _, c := range eps {
					if core.BoxOf(c) == box {
						restricted = append(restricted, c)
					}
				}
				elims := candidatesFor(restricted, digit)
				if len(elims) == 0 {
					continue
				}
				out = append(out, fishResult{
					digit: digit, n: n, constraint: classify(base, cover), finned: true,
					base: base, cover: cover, fins: finCells, finBox: box,
					eliminate: elims,
				})
			}
		}
		_ = beta
	}
	return out
}

func techniqueFor(n int, c Constraint, finned bool) core.TechniqueID {
	if c != Basic {
		if c == Franken {
			return core.TechFrankenFish
		}
		return core.TechMutantFish
	}
	return sizeTechnique[n][finned]
}

func setKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

func subtractSet(a, b map[int]bool) []int {
	var out []int
	for k := range a {
		if !b[k] {
			out = append(out, k)
		}
	}
	sort.Ints(out)
	return out
}

func candidatesFor(cells []int, digit int) []core.Candidate {
	out := make([]core.Candidate, 0, len(cells))
	for _, c := range cells {
		out = append(out, core.MakeElimination(c, digit))
	}
	return out
}

func overlaps(a, b []int) bool {
	set := map[int]bool{}
	for _, x := range a {
		set[x] = true
	}
	for _, y := range b {
		if set[y] {
			return true
		}
	}
	return false
}

func coverIntersectsBase(f *fabric.Fabric, cover []int, digit int, baseCells map[int]bool) bool {
	for _, s := range cover {
		for _, c := range f.DigitCells(s, digit) {
			if baseCells[c] {
				return true
			}
		}
	}
	return false
}

func singleBox(cells []int) (int, bool) {
	if len(cells) == 0 {
		return 0, false
	}
	box := core.BoxOf(cells[0])
	for _, c := range cells[1:] {
		if core.BoxOf(c) != box {
			return 0, false
		}
	}
	return box, true
}

func dedupSectors(s []int) []int {
	seen := map[int]bool{}
	var out []int
	for _, x := range s {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	sort.Ints(out)
	return out
}

func intersectCandidates(a, b []core.Candidate) []core.Candidate {
	set := map[core.Candidate]bool{}
	for _, c := range a {
		set[c] = true
	}
	var out []core.Candidate
	for _, c := range b {
		if set[c] {
			out = append(out, c)
		}
	}
	return out
}

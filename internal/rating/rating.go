// Package rating holds the fixed TechniqueId -> SE-score table and the
// difficulty-tier ladder, and implements rate(grid): solve once via the
// dispatcher, track the hardest technique used. Grounded on the
// teacher's internal/sudoku/human/technique_registry.go (TechniqueRegistry:
// a slug+title+tier entry per technique), generalized with a numeric
// SE score reported alongside the discrete tier.
package rating

import (
	"github.com/kcirtapfromspace/sudoku/internal/core"
	"github.com/kcirtapfromspace/sudoku/internal/dispatch"
)

// Tier is the discrete difficulty ladder.
type Tier int

const (
	Beginner Tier = iota
	Easy
	Medium
	Intermediate
	Hard
	Expert
	Master
	Extreme
)

func (t Tier) String() string {
	return [...]string{"Beginner", "Easy", "Medium", "Intermediate", "Hard", "Expert", "Master", "Extreme"}[t]
}

// Entry is one row of the TechniqueId -> SE score/tier table.
type Entry struct {
	Technique core.TechniqueID
	SEScore   float32
	Tier      Tier
}

// Table is the fixed technique registry, ordered roughly by increasing
// difficulty, as the teacher's TechniqueRegistry is ordered by tier.
var Table = []Entry{
	{core.TechNakedSingle, 2.3, Beginner},
	{core.TechHiddenSingle, 1.5, Beginner},
	{core.TechPointingPair, 2.6, Easy},
	{core.TechBoxLineReduction, 2.6, Easy},
	{core.TechNakedPair, 3.0, Easy},
	{core.TechHiddenPair, 3.4, Easy},
	{core.TechNakedTriple, 3.6, Medium},
	{core.TechHiddenTriple, 4.0, Medium},
	{core.TechNakedQuad, 4.0, Medium},
	{core.TechHiddenQuad, 5.4, Hard},
	{core.TechXWing, 3.2, Medium},
	{core.TechFinnedXWing, 3.4, Medium},
	{core.TechSwordfish, 3.8, Intermediate},
	{core.TechFinnedSwordfish, 4.0, Intermediate},
	{core.TechJellyfish, 5.2, Hard},
	{core.TechFinnedJellyfish, 5.4, Hard},
	{core.TechSkyscraper, 4.0, Intermediate},
	{core.TechEmptyRectangle, 4.2, Intermediate},
	{core.TechXYWing, 4.2, Intermediate},
	{core.TechXYZWing, 4.4, Hard},
	{core.TechWXYZWing, 4.6, Hard},
	{core.TechWWing, 4.4, Hard},
	{core.TechUniqueRectangle, 4.5, Intermediate},
	{core.TechUniqueRectangleType2, 4.6, Intermediate},
	{core.TechUniqueRectangleType3, 4.8, Hard},
	{core.TechUniqueRectangleType4, 4.8, Hard},
	{core.TechHiddenUniqueRectangle, 4.8, Hard},
	{core.TechAvoidableRectangle, 4.7, Hard},
	{core.TechBUG, 5.0, Hard},
	{core.TechSueDeCoq, 5.0, Hard},
	{core.TechALSXZ, 5.5, Expert},
	{core.TechALSXYWing, 5.7, Expert},
	{core.TechALSXYChain, 6.0, Expert},
	{core.TechALSChain, 6.2, Expert},
	{core.TechDeathBlossom, 7.5, Master},
	{core.TechXChain, 6.0, Expert},
	{core.TechXYChain, 6.0, Expert},
	{core.TechAIC, 6.5, Expert},
	{core.TechMedusa3D, 6.2, Expert},
	{core.TechFrankenFish, 6.0, Master},
	{core.TechMutantFish, 6.5, Master},
	{core.TechSiameseFish, 6.0, Master},
	{core.TechDigitForcingChain, 7.0, Master},
	{core.TechForcingChain, 8.0, Extreme},
	{core.TechNishio, 7.5, Master},
	{core.TechBacktracking, 9.5, Extreme},
}

var byTechnique = func() map[core.TechniqueID]Entry {
	m := make(map[core.TechniqueID]Entry, len(Table))
	for _, e := range Table {
		m[e.Technique] = e
	}
	return m
}()

// Lookup returns the table entry for a technique, with a Beginner/0
// zero value if the technique is unknown.
func Lookup(t core.TechniqueID) Entry {
	if e, ok := byTechnique[t]; ok {
		return e
	}
	return Entry{Technique: t}
}

// Result is Rate's return value.
type Result struct {
	SE           float32
	TierValue    Tier
	MaxTechnique core.TechniqueID
}

// Rate solves g one placement at a time via the dispatcher, tracking
// the hardest technique used by SE score, until the grid is solved or
// the dispatcher reports no further hint. Shared by the HTTP and
// WebSocket transports so neither reimplements the rating loop.
func Rate(g core.Grid) Result {
	maxScore := float32(0)
	maxTech := core.TechNakedSingle
	cur := g
	for i := 0; i < 1000; i++ {
		result := dispatch.GetNextPlacement(cur)
		if result.Status != dispatch.StatusHint {
			break
		}
		if result.Hint.SEScore > maxScore {
			maxScore = result.Hint.SEScore
			maxTech = result.Hint.Technique
		}
		cur = cur.Place(result.Hint.Cell, result.Hint.Digit)
	}
	entry := Lookup(maxTech)
	return Result{SE: maxScore, TierValue: entry.Tier, MaxTechnique: maxTech}
}

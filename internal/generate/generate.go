// Package generate implements a minimal puzzle generator: fill a
// complete grid, then carve givens out one at a time while the
// backtracker still reports a unique solution. Grounded on the
// teacher's internal/sudoku/dp/solver.go (GenerateFullGrid/CarveGivens,
// its own tiny LCG and fill/carve recursion), adapted onto core.Grid
// and the backtracker oracle instead of the teacher's []int board and
// dp.CountSolutions, and trimmed to a single driver rather than the
// teacher's five-difficulty subset-carving pipeline (out of scope: no
// puzzle generator beyond a minimal driver).
package generate

import (
	"github.com/kcirtapfromspace/sudoku/internal/backtrack"
	"github.com/kcirtapfromspace/sudoku/internal/basics"
	"github.com/kcirtapfromspace/sudoku/internal/core"
	"github.com/kcirtapfromspace/sudoku/internal/fabric"
)

// lcg is the teacher's deterministic shuffle source, kept identical so
// a given seed still reproduces the same grid.
type lcg struct{ state int64 }

func newLCG(seed int64) *lcg { return &lcg{state: seed} }

func (r *lcg) next() int64 {
	r.state = (r.state*1103515245 + 12345) & 0x7fffffff
	return r.state
}

func (r *lcg) shuffle(arr []int) {
	for i := len(arr) - 1; i > 0; i-- {
		j := int(r.next()) % (i + 1)
		arr[i], arr[j] = arr[j], arr[i]
	}
}

// FullGrid fills an empty grid completely using randomized
// backtracking seeded by seed.
func FullGrid(seed int64) core.Grid {
	var values [core.TotalCells]int
	rng := newLCG(seed)
	fill(&values, rng)
	return core.NewGrid(values)
}

func fill(values *[core.TotalCells]int, rng *lcg) bool {
	idx := -1
	for i := 0; i < core.TotalCells; i++ {
		if values[i] == 0 {
			idx = i
			break
		}
	}
	if idx == -1 {
		return true
	}
	digits := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	rng.shuffle(digits)
	for _, d := range digits {
		values[idx] = d
		g := core.NewGrid(*values)
		if g.IsConsistent() && fill(values, rng) {
			return true
		}
		values[idx] = 0
	}
	return false
}

// Carve removes cells from a solved grid one at a time, in a
// seed-shuffled order, keeping the removal only while the backtracker
// still reports a unique solution, stopping once the clue count is
// down to minGivens (it never carves below minGivens).
func Carve(solved core.Grid, minGivens int, seed int64) core.Grid {
	cur := solved
	order := make([]int, core.TotalCells)
	for i := range order {
		order[i] = i
	}
	newLCG(seed + 1).shuffle(order)

	givens := core.TotalCells
	for _, cell := range order {
		if givens <= minGivens {
			break
		}
		digit := cur.Value(cell)
		if digit == 0 {
			continue
		}
		candidate := cur.Clear(cell)
		if _, outcome := backtrack.Solve(candidate); outcome == backtrack.Unique {
			cur = candidate
			givens--
		}
	}
	return cur
}

// RatedCarve carves like Carve but additionally requires the result
// to stay solvable without guessing: every step of the basics engine
// (naked/hidden singles and tuples, pointing pairs) must still make
// progress, so the output needs no Fish/ALS/AIC/backtracking to solve.
func RatedCarve(solved core.Grid, minGivens int, seed int64) core.Grid {
	cur := solved
	order := make([]int, core.TotalCells)
	for i := range order {
		order[i] = i
	}
	newLCG(seed + 1).shuffle(order)

	givens := core.TotalCells
	for _, cell := range order {
		if givens <= minGivens {
			break
		}
		digit := cur.Value(cell)
		if digit == 0 {
			continue
		}
		candidate := cur.Clear(cell)
		if _, outcome := backtrack.Solve(candidate); outcome != backtrack.Unique {
			continue
		}
		if !solvableWithBasics(candidate) {
			continue
		}
		cur = candidate
		givens--
	}
	return cur
}

func solvableWithBasics(g core.Grid) bool {
	f, err := fabric.FromGrid(g)
	if err != nil {
		return false
	}
	for !f.Grid().IsSolved() {
		// FromGrid and Eliminate place nothing, so place a naked single
		// here; Place cascades the remaining singles.
		placed := false
		for c := 0; c < core.TotalCells && !placed; c++ {
			if d, ok := f.CellCandidates(c).Only(); ok && f.Grid().IsEmpty(c) {
				if f.Place(c, d) == fabric.Contradiction {
					return false
				}
				placed = true
			}
		}
		if placed {
			continue
		}
		h := basics.Find(f)
		if h == nil {
			return false
		}
		if h.Action == core.ActionSetValue {
			if f.Place(h.Cell, h.Digit) == fabric.Contradiction {
				return false
			}
			continue
		}
		for _, e := range h.Eliminations {
			cell := core.FromCellRef(core.CellRef{Row: e.Row, Col: e.Col})
			if f.Eliminate(cell, e.Digit) == fabric.Contradiction {
				return false
			}
		}
	}
	return true
}

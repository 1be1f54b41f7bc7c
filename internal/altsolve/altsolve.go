// Package altsolve cross-checks the backtracking oracle against a
// second, structurally unrelated solver: gokando's miniKanren
// finite-domain constraint engine. Grounded on gokando's
// examples/sudoku (FDAllDifferent per row/column/box, FDIn for the
// 1-9 domain, FDSolve to run the constraint store, RunWithContext for
// the timeout), generalized here to read/write this module's core.Grid
// and to ask for two solutions at once so multiplicity falls out of a
// single run rather than a separate counting pass.
package altsolve

import (
	"context"
	"fmt"
	"time"

	"github.com/gitrdm/gokando/pkg/minikanren"

	"github.com/kcirtapfromspace/sudoku/internal/backtrack"
	"github.com/kcirtapfromspace/sudoku/internal/core"
)

// DefaultTimeout bounds worst-case constraint-propagation time on a
// malformed or adversarial grid; the FD solver has no MRV heuristic to
// fall back on the way the backtracker does.
const DefaultTimeout = 10 * time.Second

// Solve runs the finite-domain solver for up to two solutions and
// reports the same three-way Outcome the backtracking oracle uses, so
// callers can compare verdicts directly.
func Solve(g core.Grid, timeout time.Duration) (core.Grid, backtrack.Outcome) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	results := minikanren.RunWithContext(ctx, 2, func(q *minikanren.Var) minikanren.Goal {
		return sudokuGoal(g, q)
	})
	switch len(results) {
	case 0:
		return core.Grid{}, backtrack.NoSolution
	case 1:
		return gridFromTerm(results[0]), backtrack.Unique
	default:
		return core.Grid{}, backtrack.Multiple
	}
}

// Agrees reports whether the FD solver reaches the same verdict (and,
// for a unique solution, the same grid) as a backtrack.Solve result
// already computed for g.
func Agrees(g core.Grid, wantSolution core.Grid, wantOutcome backtrack.Outcome) bool {
	got, outcome := Solve(g, DefaultTimeout)
	if outcome != wantOutcome {
		return false
	}
	if outcome == backtrack.Unique {
		return got.Values() == wantSolution.Values()
	}
	return true
}

func sudokuGoal(g core.Grid, solution *minikanren.Var) minikanren.Goal {
	vars := make([]minikanren.Term, core.TotalCells)
	for i := range vars {
		vars[i] = minikanren.Fresh(fmt.Sprintf("c%d", i))
	}

	var goals []minikanren.Goal
	for i := 0; i < core.TotalCells; i++ {
		if v := g.Value(i); v != 0 {
			goals = append(goals, minikanren.Eq(vars[i], minikanren.NewAtom(v)))
		}
	}
	for s := 0; s < core.NumSectors; s++ {
		sectorVars := make([]*minikanren.Var, core.GridSize)
		for k, c := range core.SectorCells[s] {
			sectorVars[k] = vars[c].(*minikanren.Var)
		}
		goals = append(goals, minikanren.FDAllDifferent(sectorVars...))
	}
	digits := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	for i := range vars {
		goals = append(goals, minikanren.FDIn(vars[i].(*minikanren.Var), digits))
	}
	goals = append(goals, minikanren.Eq(solution, minikanren.List(vars...)))
	return minikanren.FDSolve(minikanren.Conj(goals...))
}

func gridFromTerm(term minikanren.Term) core.Grid {
	g := core.Grid{}
	pair, ok := term.(*minikanren.Pair)
	if !ok {
		return g
	}
	for i := 0; i < core.TotalCells; i++ {
		atom, ok := pair.Car().(*minikanren.Atom)
		if !ok {
			return g
		}
		g = g.Place(i, atom.Value().(int))
		if cdr, ok := pair.Cdr().(*minikanren.Pair); ok {
			pair = cdr
		} else if i < core.TotalCells-1 {
			return g
		}
	}
	return g
}

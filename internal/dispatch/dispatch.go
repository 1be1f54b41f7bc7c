// Package dispatch implements the Hint Dispatcher: the ordered
// technique pipeline (Basic < Fish < ALS < AIC < Uniqueness <
// Backtracking) and the two public operations get_hint and
// get_next_placement, the latter chaining eliminations against the
// backtracker oracle until a verified placement emerges. Grounded on
// the teacher's internal/sudoku/human/solver.go (SolveStep: runs each
// technique detector in a fixed order, returns the first Move),
// generalized with an oracle verification loop the teacher's
// solver.go has no equivalent of.
package dispatch

import (
	"github.com/google/uuid"

	"github.com/kcirtapfromspace/sudoku/internal/als"
	"github.com/kcirtapfromspace/sudoku/internal/backtrack"
	"github.com/kcirtapfromspace/sudoku/internal/basics"
	"github.com/kcirtapfromspace/sudoku/internal/core"
	"github.com/kcirtapfromspace/sudoku/internal/fabric"
	"github.com/kcirtapfromspace/sudoku/internal/fish"
	"github.com/kcirtapfromspace/sudoku/internal/aic"
	"github.com/kcirtapfromspace/sudoku/internal/uniqueness"
)

// Status is the terminal state of a hint or solve attempt.
type Status int

const (
	StatusHint Status = iota
	StatusSolved
	StatusNoSolution
	StatusMultiple
)

// Result wraps a Hint with its terminal status, since Solved/NoSolution
// are not themselves hints.
type Result struct {
	Status Status
	Hint   *core.Hint
}

const maxVerifiedIterations = 500

// pipeline runs the ordered technique stack; the first rule that fires
// wins. uniquenessEnabled gates the
// Uniqueness engine: it adds an axiom beyond the three core axioms and
// must be skipped for grids not guaranteed to have a unique solution.
func pipeline(f *fabric.Fabric, uniquenessEnabled bool) *core.Hint {
	if h := basics.Find(f); h != nil {
		return h
	}
	if h := fish.Find(f); h != nil {
		return h
	}
	if h := als.Find(f); h != nil {
		return h
	}
	if h := aic.Find(f); h != nil {
		return h
	}
	if uniquenessEnabled {
		if h := uniqueness.Find(f); h != nil {
			return h
		}
	}
	return nil
}

// GetHint returns the first applicable technique in pipeline order,
// unverified.
func GetHint(g core.Grid) Result {
	if g.IsSolved() {
		return Result{Status: StatusSolved}
	}
	f, err := fabric.FromGrid(g)
	if err != nil {
		return Result{Status: StatusNoSolution}
	}
	if f.Grid().IsSolved() {
		return Result{Status: StatusSolved}
	}
	if h := pipeline(f, backtrack.CountSolutions(g, 2) == 1); h != nil {
		h.TraceID = uuid.NewString()
		return Result{Status: StatusHint, Hint: h}
	}
	return fallbackHint(f)
}

// GetNextPlacement is the safe path: solve once for the oracle, then
// loop applying get_hint results, verifying every elimination and
// placement against the oracle solution before trusting it. Any
// unsound step falls back to a plain backtracking placement.
func GetNextPlacement(g core.Grid) Result {
	if g.IsSolved() {
		return Result{Status: StatusSolved}
	}
	solution, outcome := backtrack.Solve(g)
	switch outcome {
	case backtrack.NoSolution:
		return Result{Status: StatusNoSolution}
	case backtrack.Multiple:
		return Result{Status: StatusMultiple}
	}

	f, err := fabric.FromGrid(g)
	if err != nil {
		return Result{Status: StatusNoSolution}
	}
	traceID := uuid.NewString()

	for i := 0; i < maxVerifiedIterations; i++ {
		if f.Grid().IsSolved() {
			return Result{Status: StatusSolved}
		}
		h := pipeline(f, true)
		if h == nil {
			return oracleFallback(f, solution, traceID)
		}
		switch h.Action {
		case core.ActionSetValue:
			if solution.Value(h.Cell) != h.Digit {
				return oracleFallback(f, solution, traceID)
			}
			h.TraceID = traceID
			if f.Place(h.Cell, h.Digit) == fabric.Contradiction {
				return oracleFallback(f, solution, traceID)
			}
			return Result{Status: StatusHint, Hint: h}
		case core.ActionEliminate:
			if !eliminationsSound(solution, h.Eliminations) {
				return oracleFallback(f, solution, traceID)
			}
			for _, e := range h.Eliminations {
				cell := core.FromCellRef(core.CellRef{Row: e.Row, Col: e.Col})
				if f.Eliminate(cell, e.Digit) == fabric.Contradiction {
					return oracleFallback(f, solution, traceID)
				}
			}
		}
	}
	return oracleFallback(f, solution, traceID)
}

func eliminationsSound(solution core.Grid, elims []core.Candidate) bool {
	for _, e := range elims {
		cell := core.FromCellRef(core.CellRef{Row: e.Row, Col: e.Col})
		if solution.Value(cell) == e.Digit {
			return false
		}
	}
	return true
}

// oracleFallback returns a plain SetValue hint for the MRV cell of the
// oracle solution: the belt-and-braces guarantee that get_next_placement
// always terminates in a sound placement even if every logical engine
// has a bug.
func oracleFallback(f *fabric.Fabric, solution core.Grid, traceID string) Result {
	cell := mrvCell(f)
	if cell == -1 {
		return Result{Status: StatusSolved}
	}
	digit := solution.Value(cell)
	return Result{
		Status: StatusHint,
		Hint: &core.Hint{
			Action:    core.ActionSetValue,
			Cell:      cell,
			Digit:     digit,
			Technique: core.TechBacktracking,
			SEScore:   9.5,
			Proof:     core.ProofCertificate{Kind: core.ProofBacktracking},
			TraceID:   traceID,
		},
	}
}

func fallbackHint(f *fabric.Fabric) Result {
	cell := mrvCell(f)
	if cell == -1 {
		return Result{Status: StatusSolved}
	}
	solution, outcome := backtrack.Solve(f.Grid())
	if outcome != backtrack.Unique {
		if outcome == backtrack.Multiple {
			return Result{Status: StatusMultiple}
		}
		return Result{Status: StatusNoSolution}
	}
	return Result{
		Status: StatusHint,
		Hint: &core.Hint{
			Action:    core.ActionSetValue,
			Cell:      cell,
			Digit:     solution.Value(cell),
			Technique: core.TechBacktracking,
			SEScore:   9.5,
			Proof:     core.ProofCertificate{Kind: core.ProofBacktracking},
			TraceID:   uuid.NewString(),
		},
	}
}

func mrvCell(f *fabric.Fabric) int {
	best, bestCount := -1, core.GridSize+1
	for c := 0; c < core.TotalCells; c++ {
		if !f.Grid().IsEmpty(c) {
			continue
		}
		n := f.CellCandidates(c).Count()
		if n < bestCount {
			best, bestCount = c, n
		}
	}
	return best
}

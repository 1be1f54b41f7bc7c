// Package backtrack implements the depth-first brute-force solver used
// both as the final fallback technique and as the soundness oracle for
// verified hints. Grounded on the teacher's internal/sudoku/dp/solver.go
// (Solve/CountSolutions/solve/isValid), which picks the first empty
// cell in row-major order; this version instead picks the empty cell
// with fewest remaining candidates (MRV) for far fewer dead ends on
// hard grids.
package backtrack

import (
	"github.com/kcirtapfromspace/sudoku/internal/core"
)

// Outcome of a solve attempt.
type Outcome int

const (
	Unique Outcome = iota
	NoSolution
	Multiple
)

// Solve runs MRV-ordered backtracking search, always stopping once a
// second solution is found (reported as Multiple); the first solution
// found is returned only when it is the only one.
func Solve(g core.Grid) (core.Grid, Outcome) {
	board := g.Values()
	if !givensConsistent(board) {
		return core.Grid{}, NoSolution
	}
	cands := candidateGrid(board)
	var solution [core.TotalCells]int
	count := 0

	var dfs func() bool
	dfs = func() bool {
		cell, ok := pickMRV(board, cands)
		if !ok {
			count++
			if count == 1 {
				solution = board
			}
			return count >= 2 // stop early once a second solution is found
		}
		for _, d := range cands[cell].ToSlice() {
			if !placesValidly(board, cell, d) {
				continue
			}
			board[cell] = d
			if dfs() {
				return true
			}
			board[cell] = 0
		}
		return false
	}
	dfs()

	switch count {
	case 0:
		return core.Grid{}, NoSolution
	case 1:
		return core.NewGrid(solution), Unique
	default:
		return core.Grid{}, Multiple
	}
}

// CountSolutions counts up to maxCount solutions without materializing
// them, a cheap uniqueness check (the dispatcher's GetHint uses it to
// decide whether the Uniqueness engine may run).
func CountSolutions(g core.Grid, maxCount int) int {
	board := g.Values()
	if !givensConsistent(board) {
		return 0
	}
	cands := candidateGrid(board)
	count := 0

	var dfs func()
	dfs = func() {
		if count >= maxCount {
			return
		}
		cell, ok := pickMRV(board, cands)
		if !ok {
			count++
			return
		}
		for _, d := range cands[cell].ToSlice() {
			if count >= maxCount {
				return
			}
			if !placesValidly(board, cell, d) {
				continue
			}
			board[cell] = d
			dfs()
			board[cell] = 0
		}
	}
	dfs()
	return count
}

func candidateGrid(board [core.TotalCells]int) [core.TotalCells]core.Candidates {
	var cands [core.TotalCells]core.Candidates
	for c := 0; c < core.TotalCells; c++ {
		if board[c] != 0 {
			continue
		}
		all := core.AllCandidates()
		for _, p := range core.Peers[c] {
			if board[p] != 0 {
				all = all.Clear(board[p])
			}
		}
		cands[c] = all
	}
	return cands
}

// pickMRV returns the empty cell with fewest live candidates
// (recomputed against the current board, since cands is only the
// initial projection), tie-broken by lowest index. Reports false if
// the board is fully assigned.
func pickMRV(board [core.TotalCells]int, cands [core.TotalCells]core.Candidates) (int, bool) {
	best := -1
	bestCount := core.GridSize + 1
	for c := 0; c < core.TotalCells; c++ {
		if board[c] != 0 {
			continue
		}
		n := liveCandidateCount(board, c, cands[c])
		if n < bestCount {
			best, bestCount = c, n
			if n == 0 {
				return best, true
			}
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

func liveCandidateCount(board [core.TotalCells]int, cell int, initial core.Candidates) int {
	live := initial
	for _, p := range core.Peers[cell] {
		if board[p] != 0 {
			live = live.Clear(board[p])
		}
	}
	return live.Count()
}

func givensConsistent(board [core.TotalCells]int) bool {
	for c := 0; c < core.TotalCells; c++ {
		if board[c] == 0 {
			continue
		}
		for _, p := range core.Peers[c] {
			if p > c && board[p] == board[c] {
				return false
			}
		}
	}
	return true
}

func placesValidly(board [core.TotalCells]int, cell, digit int) bool {
	for _, p := range core.Peers[cell] {
		if board[p] == digit {
			return false
		}
	}
	return true
}

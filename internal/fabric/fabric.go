// Package fabric implements CandidateFabric: the solver's working state.
// It holds a dense per-cell candidate bitmask plus the derived
// sector-digit index (which positions of a sector still carry a digit),
// and is the only thing the higher engines read or write candidates
// through. Grounded on the teacher's internal/sudoku/human Board, split
// out into its own package and generalized with the sector-digit index
// the Fish/ALS/AIC engines need in O(1).
package fabric

import (
	"github.com/kcirtapfromspace/sudoku/internal/core"
)

// Outcome reports what a mutator did.
type Outcome int

const (
	NoOp Outcome = iota
	Changed
	Contradiction
)

// Fabric is the CandidateFabric: per-cell candidate masks plus the
// sector-digit derived index. Candidates only shrink and placements only
// grow over a Fabric's lifetime (see invariants in invariants.go).
type Fabric struct {
	grid core.Grid

	// cellCandidates[c] is the live candidate bitmask of cell c. Zero for
	// any placed (Given or Placed) cell.
	cellCandidates [core.TotalCells]core.Candidates

	// sectorDigitCells[s][d-1] has bit k set iff the k-th cell of sector s
	// still carries digit d as a candidate.
	sectorDigitCells [core.NumSectors][core.GridSize]uint16

	contradictionAt int // -1 if none
}

// FromGrid projects a Fabric from a Grid: candidates of each empty cell
// start as {1..9} minus the values already placed among its peers;
// given/placed cells carry no candidates. No singles are placed here:
// propagation runs only after Place. Returns a ContradictionError if an
// empty cell is left with no candidate.
func FromGrid(g core.Grid) (*Fabric, error) {
	f := &Fabric{grid: g, contradictionAt: -1}

	for c := 0; c < core.TotalCells; c++ {
		if !g.IsEmpty(c) {
			continue
		}
		cands := core.AllCandidates()
		for _, peer := range core.Peers[c] {
			if v := g.Value(peer); v != 0 {
				cands = cands.Clear(v)
			}
		}
		f.setCellCandidates(c, cands)
	}

	for c := 0; c < core.TotalCells; c++ {
		if !g.IsEmpty(c) && f.cellCandidates[c] != 0 {
			// defensive: placed cells never carry stray candidate bits
			f.setCellCandidates(c, 0)
		}
	}

	for c := 0; c < core.TotalCells; c++ {
		if g.IsEmpty(c) && f.cellCandidates[c].IsEmpty() {
			f.contradictionAt = c
			return f, &core.ContradictionError{Cell: c}
		}
	}
	return f, nil
}

func (f *Fabric) setCellCandidates(cell int, cands core.Candidates) {
	old := f.cellCandidates[cell]
	f.cellCandidates[cell] = cands
	for d := 1; d <= core.GridSize; d++ {
		if old.Has(d) == cands.Has(d) {
			continue
		}
		for _, sector := range core.CellSectors[cell] {
			pos := core.PosInSector(sector, cell)
			if cands.Has(d) {
				f.sectorDigitCells[sector][d-1] |= 1 << uint(pos)
			} else {
				f.sectorDigitCells[sector][d-1] &^= 1 << uint(pos)
			}
		}
	}
}

// Grid returns the current placed-value view (ignores candidates).
func (f *Fabric) Grid() core.Grid { return f.grid }

// CellCandidates returns the live candidate bitmask of a cell.
func (f *Fabric) CellCandidates(cell int) core.Candidates { return f.cellCandidates[cell] }

// DigitPositions returns the 9-bit mask of positions within sector that
// still carry digit as a candidate (bit k set iff SectorCells[sector][k]
// carries digit).
func (f *Fabric) DigitPositions(sector, digit int) uint16 {
	return f.sectorDigitCells[sector][digit-1]
}

// DigitCells returns the actual cell indices within sector that still
// carry digit as a candidate.
func (f *Fabric) DigitCells(sector, digit int) []int {
	mask := f.sectorDigitCells[sector][digit-1]
	var out []int
	for k := 0; k < core.GridSize; k++ {
		if mask&(1<<uint(k)) != 0 {
			out = append(out, core.SectorCells[sector][k])
		}
	}
	return out
}

// Peers returns the 20 cells sharing a sector with cell.
func (f *Fabric) Peers(cell int) []int { return core.Peers[cell] }

// Eliminate clears digit from cell's candidates. Returns Contradiction if
// the cell becomes empty while still unplaced.
func (f *Fabric) Eliminate(cell, digit int) Outcome {
	if !f.grid.IsEmpty(cell) {
		return NoOp
	}
	cur := f.cellCandidates[cell]
	if !cur.Has(digit) {
		return NoOp
	}
	f.setCellCandidates(cell, cur.Clear(digit))
	if f.cellCandidates[cell].IsEmpty() {
		f.contradictionAt = cell
		return Contradiction
	}
	return Changed
}

// Place asserts digit is cell's value: records it as Placed, clears every
// other candidate from cell, and eliminates digit from every peer.
// Cascades naked/hidden singles to quiescence via propagate.
func (f *Fabric) Place(cell, digit int) Outcome {
	if !f.grid.IsEmpty(cell) {
		if f.grid.Value(cell) == digit {
			return NoOp
		}
		return Contradiction
	}
	if !f.cellCandidates[cell].Has(digit) {
		return Contradiction
	}

	f.grid = f.grid.Place(cell, digit)
	f.setCellCandidates(cell, 0)

	for _, peer := range core.Peers[cell] {
		if f.Eliminate(peer, digit) == Contradiction {
			return Contradiction
		}
	}

	if err := f.propagate(); err != nil {
		return Contradiction
	}
	return Changed
}

// propagate runs basic propagation to quiescence: naked singles (a cell
// with exactly one candidate) and hidden singles (a digit with exactly
// one remaining position in some sector) are applied by rescanning every
// cell, then every sector, each pass until no more placements are forced.
// Returns a
// ContradictionError if propagation proves the grid inconsistent.
func (f *Fabric) propagate() error {
	for {
		progressed := false

		for c := 0; c < core.TotalCells; c++ {
			if !f.grid.IsEmpty(c) {
				continue
			}
			if f.cellCandidates[c].IsEmpty() {
				f.contradictionAt = c
				return &core.ContradictionError{Cell: c}
			}
			if d, ok := f.cellCandidates[c].Only(); ok {
				if f.placeNoCascade(c, d) == Contradiction {
					return &core.ContradictionError{Cell: c}
				}
				progressed = true
			}
		}

		for s := 0; s < core.NumSectors && !progressed; s++ {
			for d := 1; d <= core.GridSize; d++ {
				mask := f.sectorDigitCells[s][d-1]
				if mask != 0 && mask&(mask-1) == 0 { // exactly one bit set
					cell := core.SectorCells[s][trailingZero(mask)]
					if f.grid.IsEmpty(cell) {
						if f.placeNoCascade(cell, d) == Contradiction {
							return &core.ContradictionError{Cell: cell}
						}
						progressed = true
					}
				}
			}
		}

		if !progressed {
			return nil
		}
	}
}

// placeNoCascade performs the placement bookkeeping of Place without
// recursively invoking propagate (the caller's propagate loop already
// re-scans everything each pass).
func (f *Fabric) placeNoCascade(cell, digit int) Outcome {
	f.grid = f.grid.Place(cell, digit)
	f.setCellCandidates(cell, 0)
	for _, peer := range core.Peers[cell] {
		if f.Eliminate(peer, digit) == Contradiction {
			return Contradiction
		}
	}
	return Changed
}

func trailingZero(mask uint16) int {
	for i := 0; i < core.GridSize; i++ {
		if mask&(1<<uint(i)) != 0 {
			return i
		}
	}
	return -1
}

// Clone returns a deep, independent copy of the Fabric, suitable for a
// forcing-chain branch: the clone shares no backing storage with f.
func (f *Fabric) Clone() *Fabric {
	nf := &Fabric{
		grid:            f.grid,
		cellCandidates:  f.cellCandidates,
		sectorDigitCells: f.sectorDigitCells,
		contradictionAt: f.contradictionAt,
	}
	return nf
}

// IsQuiescent reports whether no empty cell is a naked single (a solved
// grid qualifies). Hidden singles are not checked.
func (f *Fabric) IsQuiescent() bool {
	for c := 0; c < core.TotalCells; c++ {
		if f.grid.IsEmpty(c) {
			if _, ok := f.cellCandidates[c].Only(); ok {
				return false
			}
		}
	}
	return true
}

// CellsWithCandidateCount returns all empty cells whose candidate count
// falls in [min, max] inclusive.
func (f *Fabric) CellsWithCandidateCount(min, max int) []int {
	var out []int
	for c := 0; c < core.TotalCells; c++ {
		if !f.grid.IsEmpty(c) {
			continue
		}
		n := f.cellCandidates[c].Count()
		if n >= min && n <= max {
			out = append(out, c)
		}
	}
	return out
}

// CellsWithDigit returns the cells of unit (a slice of cell indices) that
// still carry digit as a candidate.
func (f *Fabric) CellsWithDigit(unit []int, digit int) []int {
	var out []int
	for _, c := range unit {
		if f.grid.IsEmpty(c) && f.cellCandidates[c].Has(digit) {
			out = append(out, c)
		}
	}
	return out
}

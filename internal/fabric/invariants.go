package fabric

import "github.com/kcirtapfromspace/sudoku/internal/core"

// CheckInvariants verifies I1-I3 hold for the current state. It is used
// by tests and is deliberately not called on any hot path.
//
//	I1: bit d of cellCandidates[c] iff bit pos(c,s) of sectorDigitCells[s][d-1]
//	    for each of c's three sectors.
//	I2: a placed cell's candidates are empty and its value is absent from
//	    every peer's candidates.
//	I3: each sector-digit mask has popcount <= 9.
//	I4: no empty cell has zero candidates. Not checked here; FromGrid,
//	    Eliminate and Place report it as a contradiction instead.
func (f *Fabric) CheckInvariants() error {
	for c := 0; c < core.TotalCells; c++ {
		for d := 1; d <= core.GridSize; d++ {
			want := f.cellCandidates[c].Has(d)
			for _, sector := range core.CellSectors[c] {
				pos := core.PosInSector(sector, c)
				got := f.sectorDigitCells[sector][d-1]&(1<<uint(pos)) != 0
				if got != want {
					return invariantErr("I1", c)
				}
			}
		}

		if !f.grid.IsEmpty(c) {
			if f.cellCandidates[c] != 0 {
				return invariantErr("I2", c)
			}
			v := f.grid.Value(c)
			for _, peer := range core.Peers[c] {
				if f.cellCandidates[peer].Has(v) {
					return invariantErr("I2", c)
				}
			}
		}
	}

	for s := 0; s < core.NumSectors; s++ {
		for d := 1; d <= core.GridSize; d++ {
			if popcount16(f.sectorDigitCells[s][d-1]) > core.GridSize {
				return invariantErr("I3", s)
			}
		}
	}

	return nil
}

func popcount16(m uint16) int {
	n := 0
	for m != 0 {
		n += int(m & 1)
		m >>= 1
	}
	return n
}

type invariantError struct {
	name string
	at   int
}

func (e *invariantError) Error() string {
	return "fabric: invariant " + e.name + " violated"
}

func invariantErr(name string, at int) error { return &invariantError{name: name, at: at} }

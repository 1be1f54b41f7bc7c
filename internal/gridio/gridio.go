// Package gridio implements the text grid format: parse, emit, and a
// canonical SHA-256 hash. Grounded on the teacher's request/response
// grid handling in internal/transport/http/routes.go (which accepts an
// 81-entry int array), adapted to a char-based format
// ('.' or '0' for empty, whitespace ignored on parse).
package gridio

import (
	"crypto/sha256"
	"strings"

	"github.com/kcirtapfromspace/sudoku/internal/core"
)

// Parse reads an 81-character grid string, ignoring whitespace and
// line breaks. '.' and '0' mean empty; '1'-'9' are givens.
func Parse(s string) (core.Grid, error) {
	var filtered []rune
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		filtered = append(filtered, r)
	}
	if len(filtered) != core.TotalCells {
		return core.Grid{}, &core.ParseError{Kind: core.WrongLength, Pos: len(filtered)}
	}
	var values [core.TotalCells]int
	for i, r := range filtered {
		switch {
		case r == '.' || r == '0':
			values[i] = 0
		case r >= '1' && r <= '9':
			values[i] = int(r - '0')
		default:
			return core.Grid{}, &core.ParseError{Kind: core.InvalidChar, Pos: i, Got: r}
		}
	}
	return core.NewGrid(values), nil
}

// Emit produces the canonical 81-character representation of g: digits
// for filled cells, '.' for empty.
func Emit(g core.Grid) string {
	var b strings.Builder
	b.Grow(core.TotalCells)
	for c := 0; c < core.TotalCells; c++ {
		if v := g.Value(c); v != 0 {
			b.WriteByte(byte('0' + v))
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// CanonicalHash returns the SHA-256 digest of Emit(g). Stdlib
// crypto/sha256 only: no third-party hash library in the pack improves
// on stdlib SHA-256 for a fixed 81-byte input, so this is the one
// justified stdlib-only path in the domain stack.
func CanonicalHash(g core.Grid) [32]byte {
	return sha256.Sum256([]byte(Emit(g)))
}

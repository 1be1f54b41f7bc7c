package gridio

import (
	"testing"

	"github.com/kcirtapfromspace/sudoku/internal/core"
)

const wikipediaPuzzle = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func TestRoundTrip(t *testing.T) {
	g, err := Parse(wikipediaPuzzle)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if got := Emit(g); got != wikipediaPuzzle {
		t.Errorf("emit(parse(s)) = %q, want %q", got, wikipediaPuzzle)
	}
}

func TestParseIgnoresWhitespace(t *testing.T) {
	spaced := "53. .7....\n6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	g, err := Parse(spaced)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if Emit(g) != wikipediaPuzzle {
		t.Error("whitespace should be ignored during parse")
	}
}

func TestParseWrongLength(t *testing.T) {
	_, err := Parse("123")
	pe, ok := err.(*core.ParseError)
	if !ok || pe.Kind != core.WrongLength {
		t.Errorf("expected a WrongLength ParseError, got %v", err)
	}
}

func TestParseInvalidChar(t *testing.T) {
	bad := wikipediaPuzzle[:10] + "X" + wikipediaPuzzle[11:]
	_, err := Parse(bad)
	pe, ok := err.(*core.ParseError)
	if !ok || pe.Kind != core.InvalidChar {
		t.Errorf("expected an InvalidChar ParseError, got %v", err)
	}
}

func TestCanonicalHashIsDeterministic(t *testing.T) {
	g, _ := Parse(wikipediaPuzzle)
	h1 := CanonicalHash(g)
	h2 := CanonicalHash(g)
	if h1 != h2 {
		t.Error("hashing the same grid twice should be deterministic")
	}
}

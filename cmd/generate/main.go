// Command generate is a minimal CLI driver around internal/generate: it
// fills one complete grid and carves it down to a target clue count,
// printing the puzzle and its solution. Grounded on the teacher's
// cmd/generate/main.go (flag-driven CLI, seed parameter), trimmed from
// its worker-pool bulk-generation and JSON puzzle-file output (out of
// scope: no puzzle generator beyond a minimal driver, no persistence).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kcirtapfromspace/sudoku/internal/generate"
	"github.com/kcirtapfromspace/sudoku/internal/gridio"
)

func main() {
	seed := flag.Int64("seed", 1, "seed for the random fill/carve order")
	givens := flag.Int("givens", 28, "minimum number of clues to leave in the puzzle")
	rated := flag.Bool("rated", false, "require the puzzle to be solvable with naked/hidden singles, tuples, and pointing pairs alone")
	flag.Parse()

	full := generate.FullGrid(*seed)

	var puzzle = full
	if *rated {
		puzzle = generate.RatedCarve(full, *givens, *seed)
	} else {
		puzzle = generate.Carve(full, *givens, *seed)
	}

	fmt.Printf("puzzle:   %s\n", gridio.Emit(puzzle))
	fmt.Printf("solution: %s\n", gridio.Emit(full))

	os.Exit(0)
}

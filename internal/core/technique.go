package core

// TechniqueID names a human Sudoku technique. The ~45 named techniques are
// not distinct algorithms: most are parameter instantiations of the Fish,
// ALS, and AIC engines (see internal/fish, internal/als, internal/aic).
// This identifier is what downstream tools (rating, transports) key on,
// and it must be emitted verbatim.
type TechniqueID string

const (
	// Basic
	TechNakedSingle       TechniqueID = "naked-single"
	TechHiddenSingle      TechniqueID = "hidden-single"
	TechNakedPair         TechniqueID = "naked-pair"
	TechHiddenPair        TechniqueID = "hidden-pair"
	TechPointingPair      TechniqueID = "pointing-pair"
	TechBoxLineReduction  TechniqueID = "box-line-reduction"
	TechNakedTriple       TechniqueID = "naked-triple"
	TechHiddenTriple      TechniqueID = "hidden-triple"
	TechNakedQuad         TechniqueID = "naked-quad"
	TechHiddenQuad        TechniqueID = "hidden-quad"

	// Fish
	TechXWing           TechniqueID = "x-wing"
	TechFinnedXWing     TechniqueID = "finned-x-wing"
	TechSwordfish       TechniqueID = "swordfish"
	TechFinnedSwordfish TechniqueID = "finned-swordfish"
	TechJellyfish       TechniqueID = "jellyfish"
	TechFinnedJellyfish TechniqueID = "finned-jellyfish"
	TechFrankenFish     TechniqueID = "franken-fish"
	TechMutantFish      TechniqueID = "mutant-fish"
	TechSiameseFish     TechniqueID = "siamese-fish"
	TechKrakenFish      TechniqueID = "kraken-fish" // identifier only; detection is a Non-goal, see DESIGN.md

	// Wings / coloring (AIC specializations and ALS-adjacent)
	TechXYWing         TechniqueID = "xy-wing"
	TechXYZWing        TechniqueID = "xyz-wing"
	TechWXYZWing       TechniqueID = "wxyz-wing"
	TechWWing          TechniqueID = "w-wing"
	TechSimpleColoring TechniqueID = "simple-coloring"
	TechSkyscraper     TechniqueID = "skyscraper"
	TechEmptyRectangle TechniqueID = "empty-rectangle"
	TechMedusa3D       TechniqueID = "medusa-3d"
	TechGroupedXCycles TechniqueID = "grouped-x-cycles" // identifier only; detection is a Non-goal, see DESIGN.md
	TechXChain         TechniqueID = "x-chain"
	TechXYChain        TechniqueID = "xy-chain"
	TechAIC            TechniqueID = "aic"

	// ALS family
	TechALSXZ      TechniqueID = "als-xz"
	TechALSXYWing  TechniqueID = "als-xy-wing"
	TechALSXYChain TechniqueID = "als-xy-chain"
	TechALSChain   TechniqueID = "als-chain"
	TechSueDeCoq   TechniqueID = "sue-de-coq"
	TechDeathBlossom TechniqueID = "death-blossom"

	// Uniqueness
	TechUniqueRectangle       TechniqueID = "unique-rectangle"
	TechUniqueRectangleType2 TechniqueID = "unique-rectangle-type-2"
	TechUniqueRectangleType3 TechniqueID = "unique-rectangle-type-3"
	TechUniqueRectangleType4 TechniqueID = "unique-rectangle-type-4"
	TechHiddenUniqueRectangle TechniqueID = "hidden-unique-rectangle"
	TechAvoidableRectangle   TechniqueID = "avoidable-rectangle"
	TechBUG                  TechniqueID = "bug"

	// Forcing
	TechDigitForcingChain TechniqueID = "digit-forcing-chain"
	TechForcingChain      TechniqueID = "forcing-chain"
	TechNishio            TechniqueID = "nishio"

	// Terminal / fallback
	TechBacktracking  TechniqueID = "backtracking"
	TechContradiction TechniqueID = "contradiction"
)

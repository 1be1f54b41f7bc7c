// Package http exposes the solver core as a thin JSON API: solve, hint,
// next-placement, rate, and a liveness check. Grounded on the teacher's
// internal/transport/http/routes.go (gin.Engine, RegisterRoutes,
// validatePuzzleString, status-code-per-error-kind style), replacing
// the teacher's game/session/daily-puzzle endpoints (out of scope: no
// persistence of user games) with solver endpoints.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/kcirtapfromspace/sudoku/internal/altsolve"
	"github.com/kcirtapfromspace/sudoku/internal/backtrack"
	"github.com/kcirtapfromspace/sudoku/internal/core"
	"github.com/kcirtapfromspace/sudoku/internal/dispatch"
	"github.com/kcirtapfromspace/sudoku/internal/gridio"
	"github.com/kcirtapfromspace/sudoku/internal/rating"
	"github.com/kcirtapfromspace/sudoku/pkg/config"
)

var cfg *config.Config

// RegisterRoutes wires the solver endpoints onto r, matching the
// teacher's RegisterRoutes(r, cfg) shape.
func RegisterRoutes(r *gin.Engine, c *config.Config) {
	cfg = c

	r.GET("/healthz", healthHandler)

	api := r.Group("/api/v1")
	{
		api.POST("/solve", solveHandler)
		api.POST("/hint", hintHandler)
		api.POST("/next-placement", nextPlacementHandler)
		api.POST("/rate", rateHandler)
		api.POST("/verify", verifyHandler)
	}
}

type gridRequest struct {
	Grid string `json:"grid"`
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseRequest(c *gin.Context) (core.Grid, bool) {
	var req gridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return core.Grid{}, false
	}
	g, err := gridio.Parse(req.Grid)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return core.Grid{}, false
	}
	return g, true
}

func solveHandler(c *gin.Context) {
	g, ok := parseRequest(c)
	if !ok {
		return
	}
	solution, outcome := backtrack.Solve(g)
	switch outcome {
	case backtrack.Unique:
		c.JSON(http.StatusOK, gin.H{"status": "solved", "grid": gridio.Emit(solution)})
	case backtrack.Multiple:
		c.JSON(http.StatusConflict, gin.H{"status": "multiple"})
	default:
		c.JSON(http.StatusConflict, gin.H{"status": "no_solution"})
	}
}

func hintHandler(c *gin.Context) {
	g, ok := parseRequest(c)
	if !ok {
		return
	}
	result := dispatch.GetHint(g)
	writeDispatchResult(c, result)
}

func nextPlacementHandler(c *gin.Context) {
	g, ok := parseRequest(c)
	if !ok {
		return
	}
	result := dispatch.GetNextPlacement(g)
	writeDispatchResult(c, result)
}

func writeDispatchResult(c *gin.Context, result dispatch.Result) {
	switch result.Status {
	case dispatch.StatusSolved:
		c.JSON(http.StatusOK, gin.H{"status": "solved"})
	case dispatch.StatusNoSolution:
		c.JSON(http.StatusConflict, gin.H{"status": "no_solution"})
	case dispatch.StatusMultiple:
		c.JSON(http.StatusConflict, gin.H{"status": "multiple"})
	default:
		c.JSON(http.StatusOK, gin.H{"status": "hint", "hint": hintJSON(result.Hint)})
	}
}

func hintJSON(h *core.Hint) gin.H {
	return gin.H{
		"action":       actionName(h.Action),
		"cell":         core.ToCellRef(h.Cell),
		"digit":        h.Digit,
		"eliminations": h.Eliminations,
		"technique":    h.Technique,
		"se_score":     h.SEScore,
		"trace_id":     h.TraceID,
	}
}

func actionName(a core.ActionKind) string {
	if a == core.ActionSetValue {
		return "set_value"
	}
	return "eliminate"
}

// verifyHandler cross-checks the MRV backtracking oracle against the
// miniKanren finite-domain solver and reports whether they agree, so a
// caller can catch an oracle regression without trusting a single
// solver implementation.
func verifyHandler(c *gin.Context) {
	g, ok := parseRequest(c)
	if !ok {
		return
	}
	solution, outcome := backtrack.Solve(g)
	agrees := altsolve.Agrees(g, solution, outcome)
	if !agrees {
		log.Warn().Str("grid", gridio.Emit(g)).Msg("finite-domain solver disagrees with backtracking oracle")
	}
	resp := gin.H{"agrees": agrees}
	switch outcome {
	case backtrack.Unique:
		resp["status"] = "solved"
		resp["grid"] = gridio.Emit(solution)
	case backtrack.Multiple:
		resp["status"] = "multiple"
	default:
		resp["status"] = "no_solution"
	}
	c.JSON(http.StatusOK, resp)
}

func rateHandler(c *gin.Context) {
	g, ok := parseRequest(c)
	if !ok {
		return
	}
	result := rating.Rate(g)
	log.Debug().Str("max_technique", string(result.MaxTechnique)).Float32("se", result.SE).Msg("rated puzzle")
	c.JSON(http.StatusOK, gin.H{
		"se":            result.SE,
		"tier":          result.TierValue.String(),
		"max_technique": result.MaxTechnique,
	})
}

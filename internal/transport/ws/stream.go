// Package ws streams get_next_placement steps over a WebSocket as they
// are produced, for a caller that wants to watch a solve unfold live.
// Grounded on smilemakc-mbflow's
// internal/application/observer/websocket_observer.go (gorilla/websocket,
// one JSON message per event, Timestamp field), simplified from its
// multi-client hub to one dedicated connection per stream request since
// each solve here has exactly one observer.
package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/kcirtapfromspace/sudoku/internal/core"
	"github.com/kcirtapfromspace/sudoku/internal/dispatch"
	"github.com/kcirtapfromspace/sudoku/internal/gridio"
	"github.com/kcirtapfromspace/sudoku/internal/rating"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// StepMessage is one pushed message of the solve stream.
type StepMessage struct {
	Type         string        `json:"type"` // "step", "solved", "no_solution", "multiple", "error"
	Technique    string        `json:"technique,omitempty"`
	SEScore      float32       `json:"se_score,omitempty"`
	Cell         *core.CellRef `json:"cell,omitempty"`
	Digit        int           `json:"digit,omitempty"`
	RatingSE     float32       `json:"rating_se,omitempty"`
	RatingTier   string        `json:"rating_tier,omitempty"`
	MaxTechnique string        `json:"max_technique,omitempty"`
	Timestamp    time.Time     `json:"timestamp"`
}

type streamRequest struct {
	Grid string `json:"grid"`
}

// RegisterRoutes mounts the streaming endpoint.
func RegisterRoutes(r *gin.Engine, pingInterval time.Duration) {
	r.GET("/api/v1/stream/solve", func(c *gin.Context) {
		handleStream(c, pingInterval)
	})
}

func handleStream(c *gin.Context, pingInterval time.Duration) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	var req streamRequest
	if err := conn.ReadJSON(&req); err != nil {
		log.Error().Err(err).Msg("failed to read stream request")
		return
	}
	g, err := gridio.Parse(req.Grid)
	if err != nil {
		_ = conn.WriteJSON(StepMessage{Type: "error", Timestamp: time.Now()})
		return
	}

	ping := time.NewTicker(pingInterval)
	defer ping.Stop()
	done := make(chan struct{})
	go func() {
		defer close(done)
		streamSolve(conn, g)
	}()

	for {
		select {
		case <-done:
			return
		case <-ping.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func streamSolve(conn *websocket.Conn, g core.Grid) {
	rated := rating.Rate(g)
	cur := g
	for {
		result := dispatch.GetNextPlacement(cur)
		switch result.Status {
		case dispatch.StatusSolved:
			writeMessage(conn, StepMessage{
				Type:         "solved",
				RatingSE:     rated.SE,
				RatingTier:   rated.TierValue.String(),
				MaxTechnique: string(rated.MaxTechnique),
				Timestamp:    time.Now(),
			})
			return
		case dispatch.StatusNoSolution:
			writeMessage(conn, StepMessage{Type: "no_solution", Timestamp: time.Now()})
			return
		case dispatch.StatusMultiple:
			writeMessage(conn, StepMessage{Type: "multiple", Timestamp: time.Now()})
			return
		default:
			h := result.Hint
			ref := core.ToCellRef(h.Cell)
			writeMessage(conn, StepMessage{
				Type:      "step",
				Technique: string(h.Technique),
				SEScore:   h.SEScore,
				Cell:      &ref,
				Digit:     h.Digit,
				Timestamp: time.Now(),
			})
			cur = cur.Place(h.Cell, h.Digit)
		}
	}
}

func writeMessage(conn *websocket.Conn, msg StepMessage) {
	b, err := json.Marshal(msg)
	if err != nil {
		return
	}
	_ = conn.WriteMessage(websocket.TextMessage, b)
}

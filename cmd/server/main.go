// Command server boots the HTTP and WebSocket solver API. Grounded on
// the teacher's cmd/server/main.go (gin engine, graceful shutdown on
// SIGINT/SIGTERM), with the puzzle-file preload dropped (out of scope:
// no persistence) and obs.Init/zerolog wired in for structured startup
// and shutdown logging.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/kcirtapfromspace/sudoku/internal/obs"
	httpTransport "github.com/kcirtapfromspace/sudoku/internal/transport/http"
	wsTransport "github.com/kcirtapfromspace/sudoku/internal/transport/ws"
	"github.com/kcirtapfromspace/sudoku/pkg/config"
)

func main() {
	cfg := config.Load()
	obs.Init(cfg.LogLevel)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	httpTransport.RegisterRoutes(r, cfg)
	wsTransport.RegisterRoutes(r, cfg.WSPingInterval)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info().Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

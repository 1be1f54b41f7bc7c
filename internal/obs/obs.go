// Package obs configures structured logging for the transport layer.
// Grounded on smilemakc-mbflow's internal/config.go zerolog setup
// (global github.com/rs/zerolog/log, level parsed from a config
// string); the solver core itself stays silent (pure functions, no
// I/O) — only internal/transport/http, internal/transport/ws and
// cmd/server log through this package.
package obs

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init installs a console-writer zerolog global logger at the given
// level (any of zerolog's level names; unrecognized values fall back
// to info).
func Init(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
}

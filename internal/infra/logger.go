package infra

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "shipline").
		Logger()
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

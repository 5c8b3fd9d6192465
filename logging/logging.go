// Package logging builds the zerolog loggers used across the game
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/solar-winds/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ParseLevel maps a config level name to a zerolog level, defaulting to info
func ParseLevel(s string) zerolog.Level {
	switch strings.ToUpper(s) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "DISABLED", "OFF":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New creates the root logger
// The terminal belongs to the renderer, so output goes to cfg.File or nowhere
func New(cfg config.Log) (zerolog.Logger, io.Closer, error) {
	if cfg.File == "" {
		return zerolog.New(io.Discard), nopCloser{}, nil
	}

	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("opening log file %s: %w", cfg.File, err)
	}

	w := zerolog.ConsoleWriter{
		Out:        file,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	log := zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
	return log, file, nil
}

// Sampled wraps log with a burst sampler for hot paths
// At most burst entries pass per period, then one in every 100
func Sampled(log zerolog.Logger, burst uint32, period time.Duration) zerolog.Logger {
	return log.With().Bool("sampled", true).Logger().Sample(&zerolog.BurstSampler{
		Burst:       burst,
		Period:      period,
		NextSampler: &zerolog.BasicSampler{N: 100},
	})
}

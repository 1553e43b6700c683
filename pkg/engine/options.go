package engine

import (
	"log/slog"

	"github.com/google/uuid"
)

// Option is a function that configures an Engine instance.
type Option func(*Engine)

// WithLogger provides a logger for the engine's debug output.
// If not specified, logging is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.log = logger
		}
	}
}

// WithID overrides the engine's instance identifier, which appears in
// every log line. Defaults to a random UUID per engine.
func WithID(id uuid.UUID) Option {
	return func(e *Engine) {
		if id != uuid.Nil {
			e.id = id
		}
	}
}

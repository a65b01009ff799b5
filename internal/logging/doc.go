// Package logging constructs the slog loggers used across spritegen: a
// compact console handler for interactive use and a JSON handler for
// machine consumption, plus context plumbing for request-scoped loggers.
package logging

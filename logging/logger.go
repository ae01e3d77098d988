// Package logging builds the leveled logger shared by hookdeps commands.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

const prefix = "hookdeps"

// New creates a logger writing to w at the named level.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: prefix,
		Level:  lvl,
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// OrDiscard returns logger, or a discarding logger when it is nil.
func OrDiscard(logger *log.Logger) *log.Logger {
	if logger != nil {
		return logger
	}
	return Discard()
}

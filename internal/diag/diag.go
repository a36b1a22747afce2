// Package diag is the warning channel for tracker lookup failures. The
// tracker never returns errors for missing records; it warns here and carries
// on, so the sink is the only place those misses become visible.
package diag

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Sink receives human-readable warnings. Implementations must not panic.
type Sink interface {
	Warnf(format string, args ...any)
}

// zerologSink writes warnings through a structured logger at warn level.
type zerologSink struct {
	log zerolog.Logger
}

func (s zerologSink) Warnf(format string, args ...any) {
	s.log.Warn().Msgf(format, args...)
}

// NewZerolog wraps a structured logger as a Sink.
func NewZerolog(l zerolog.Logger) Sink { return zerologSink{log: l} }

// Default returns the stderr sink used when no Sink is configured: a zerolog
// console writer so the warning text stays readable on a terminal.
func Default() Sink {
	l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	return zerologSink{log: l}
}

// Memory collects warnings for tests.
type Memory struct {
	warnings []string
}

func (m *Memory) Warnf(format string, args ...any) {
	m.warnings = append(m.warnings, fmt.Sprintf(format, args...))
}

// Warnings returns a copy of everything warned so far.
func (m *Memory) Warnings() []string {
	out := make([]string, len(m.warnings))
	copy(out, m.warnings)
	return out
}

package glyphswap

import (
	"errors"
	"fmt"
)

// Sentinel errors for the glyphswap package.
var (
	// ErrUnknownSymbolSet is returned when a symbol set name has no catalog.
	ErrUnknownSymbolSet = errors.New("glyphswap: unknown symbol set")

	// ErrVideoUnavailable is returned by a VideoEncoder when the encoding
	// capability is not present. Callers omit the video instead of failing.
	ErrVideoUnavailable = errors.New("glyphswap: video encoding unavailable")
)

// ConfigError reports an invalid generation parameter. Configuration errors
// are detected before any sampling happens and abort the whole run.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("glyphswap: invalid %s: %s", e.Field, e.Reason)
}

// configErrorf builds a ConfigError with a formatted reason.
func configErrorf(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ConsistencyError reports a broken internal invariant, such as a sequence
// pair whose halves differ in length or a symbol without an assigned color.
// It indicates a bug, never bad input.
type ConsistencyError struct {
	Op     string
	Detail string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("glyphswap: %s: internal consistency violation: %s", e.Op, e.Detail)
}

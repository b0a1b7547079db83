package nn

import (
	"fmt"

	"github.com/pkg/errors"
)

// ConfigError reports an invalid construction parameter: bad widths, a bad
// basis degree or grid, or a coefficient vector whose length does not match
// its basis. It is only ever returned from constructors; once a value is
// built its configuration is valid for the value's lifetime.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "kan: invalid configuration: " + e.Msg
}

// configf builds a ConfigError from a format string.
func configf(format string, args ...any) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// wrapConfig converts a lower-level construction error into a ConfigError.
func wrapConfig(err error, context string) error {
	return &ConfigError{Msg: context + ": " + err.Error()}
}

// DimensionError reports a vector-length mismatch at a forward/backward
// boundary. The call that produced it aborted before mutating any
// coefficient or gradient state, so the caller can retry with correctly
// shaped inputs.
type DimensionError struct {
	Op   string // "forward" or "backward"
	Want int
	Got  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("kan: %s: expected vector of length %d, got %d", e.Op, e.Want, e.Got)
}

// ErrNoTrace is returned by Backward when no forward pass is pending: every
// backward call consumes the activation trace recorded by exactly one
// preceding forward call.
var ErrNoTrace = errors.New("kan: backward called without a pending forward trace")

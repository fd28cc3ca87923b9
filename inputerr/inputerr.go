// Package inputerr defines the canonical fatal error type shared by the
// device locator and the hook adapter.
package inputerr

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every ConfigError via errors.Is.
var ErrConfiguration = errors.New("input configuration error")

// Kind classifies a configuration error.
type Kind int

const (
	// KindAmbiguousDevice means more than one entity claims a global device role.
	KindAmbiguousDevice Kind = iota + 1
	// KindUnmappedCode means an OS input code has no canonical mapping.
	KindUnmappedCode
)

func (k Kind) String() string {
	switch k {
	case KindAmbiguousDevice:
		return "ambiguous device"
	case KindUnmappedCode:
		return "unmapped code"
	default:
		return "unknown"
	}
}

// ConfigError is a non-recoverable configuration error. The simulation step
// that observes one must fail instead of skipping the tick.
type ConfigError struct {
	Kind   Kind
	Detail string
}

func (e *ConfigError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", ErrConfiguration, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", ErrConfiguration, e.Kind, e.Detail)
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

func ErrAmbiguousDevice(detail string) *ConfigError {
	return &ConfigError{Kind: KindAmbiguousDevice, Detail: detail}
}

func ErrUnmappedCode(detail string) *ConfigError {
	return &ConfigError{Kind: KindUnmappedCode, Detail: detail}
}

// IsKind reports whether err wraps a ConfigError of kind k.
func IsKind(err error, k Kind) bool {
	var ce *ConfigError
	if !errors.As(err, &ce) {
		return false
	}
	return ce.Kind == k
}

//go:build !linux

package hook

import (
	"context"
	"log/slog"
)

type unsupportedSource struct{}

func (unsupportedSource) Start(context.Context) (<-chan Event, error) { return nil, ErrUnsupported }
func (unsupportedSource) Close() error                               { return nil }

// NewDefaultSource returns a Source that always fails to start on this platform.
func NewDefaultSource(_ Config, _ *slog.Logger) Source {
	return unsupportedSource{}
}

// DefaultCodes returns an empty table on this platform.
func DefaultCodes() *CodeTable {
	return &CodeTable{Name: "none"}
}

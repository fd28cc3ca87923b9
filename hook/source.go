package hook

import (
	"context"
	"errors"
)

// ErrUnsupported is returned by sources that cannot run on this platform.
var ErrUnsupported = errors.New("hook: global input capture is not supported on this platform")

// Source is a global input hook. Start installs the hook and returns the
// event stream; the channel is closed once the hook stops, either because
// ctx is done or Close was called.
type Source interface {
	Start(ctx context.Context) (<-chan Event, error)
	Close() error
}

// Config is embedded into commands under the "hook." prefix.
type Config struct {
	Devices      string `help:"Glob matching the input device nodes to capture" default:"/dev/input/event*" env:"INPUTSYNC_HOOK_DEVICES"`
	SkipUnmapped bool   `help:"Skip OS codes without a canonical mapping instead of failing" env:"INPUTSYNC_HOOK_SKIP_UNMAPPED"`
	Buffer       int    `help:"Capacity of the hook event queue" default:"1024" env:"INPUTSYNC_HOOK_BUFFER"`
}

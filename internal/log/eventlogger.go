package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// EventLogger records raw hook events, one line each.
type EventLogger interface {
	Log(ev fmt.Stringer)
}

type eventLogger struct {
	w   io.Writer
	mu  sync.Mutex
	now func() time.Time
}

// NewEvent creates a new EventLogger. If writer is nil, returns a no-op logger.
func NewEvent(w io.Writer) EventLogger {
	return &eventLogger{w: w, now: time.Now}
}

// Log writes a timestamped line for ev. Safe for concurrent use.
func (l *eventLogger) Log(ev fmt.Stringer) {
	if l.w == nil || ev == nil {
		return
	}
	line := fmt.Sprintf("%s %s\n", l.now().Format("2006/01/02 15:04:05.000000"), ev.String())

	l.mu.Lock()
	_, _ = io.WriteString(l.w, line)
	l.mu.Unlock()
}

// EventOutput picks the writer for raw event lines. An event file wins; at
// trace level without one, events go to stdout, or to stderr when a live
// status line owns stdout. Otherwise events are discarded and w is nil.
func EventOutput(cfg Config, status bool, stdout, stderr io.Writer) (w io.Writer, closer io.Closer, err error) {
	if cfg.EventFile != "" {
		f, err := os.OpenFile(cfg.EventFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		return f, f, nil
	}
	if ParseLevel(cfg.Level) > LevelTrace {
		return nil, nil, nil
	}
	if status {
		return stderr, nil, nil
	}
	return stdout, nil, nil
}

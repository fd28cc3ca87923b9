package hook

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Alia5/inputsync/capture"
	"github.com/Alia5/inputsync/inputerr"
	"github.com/Alia5/inputsync/internal/log"
)

// Stats counts adapter activity since creation.
type Stats struct {
	Dispatched uint64
	Skipped    uint64
}

// Adapter feeds hook events into a capture.Buffer. Dispatch must only be
// called from a single goroutine, the one draining the Source.
type Adapter struct {
	buf          *capture.Buffer
	table        *CodeTable
	skipUnmapped bool

	logger *slog.Logger
	events log.EventLogger

	dispatched atomic.Uint64
	skipped    atomic.Uint64
	fatal      atomic.Pointer[error]
}

// NewAdapter returns an Adapter writing into buf. events may be nil.
func NewAdapter(buf *capture.Buffer, table *CodeTable, skipUnmapped bool, logger *slog.Logger, events log.EventLogger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	if events == nil {
		events = log.NewEvent(nil)
	}
	return &Adapter{
		buf:          buf,
		table:        table,
		skipUnmapped: skipUnmapped,
		logger:       logger,
		events:       events,
	}
}

// Dispatch applies one event. An unmapped key or button code is a fatal
// configuration error and leaves the buffer untouched, unless the adapter
// was built to skip unmapped codes.
func (a *Adapter) Dispatch(ev Event) error {
	a.events.Log(ev)

	switch ev.Kind {
	case KeyPressed, KeyReleased:
		k, ok := a.table.Key(ev.Code)
		if !ok {
			return a.unmapped(ev)
		}
		a.buf.SetKey(k, ev.Kind == KeyPressed)
	case ButtonPressed, ButtonReleased:
		b, ok := a.table.Button(ev.Code)
		if !ok {
			return a.unmapped(ev)
		}
		a.buf.SetButton(b, ev.Kind == ButtonPressed)
	case PointerMoved, ButtonDragged:
		a.buf.SetPosition(mgl32.Vec2{ev.X, ev.Y})
	case WheelScrolled:
		a.buf.SetScroll(mgl32.Vec2{ev.X, ev.Y})
	default:
		return fmt.Errorf("hook: unknown event kind %d", uint8(ev.Kind))
	}
	a.dispatched.Add(1)
	return nil
}

func (a *Adapter) unmapped(ev Event) error {
	if a.skipUnmapped {
		a.skipped.Add(1)
		a.logger.Debug("skipping unmapped input code", "kind", ev.Kind, "code", ev.Code, "table", a.table.Name)
		return nil
	}
	return inputerr.ErrUnmappedCode(fmt.Sprintf("%s code 0x%03x has no entry in the %q table", ev.Kind, ev.Code, a.table.Name))
}

// Run drains events until the channel closes, ctx is done or a fatal
// configuration error occurs. The fatal error is returned and kept for Err.
func (a *Adapter) Run(ctx context.Context, events <-chan Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := a.Dispatch(ev); err != nil {
				if inputerr.IsKind(err, inputerr.KindUnmappedCode) {
					a.fatal.CompareAndSwap(nil, &err)
					a.logger.Error("hook adapter stopped", "error", err)
					return err
				}
				a.logger.Warn("dropping hook event", "event", ev, "error", err)
			}
		}
	}
}

// Err returns the fatal error that stopped Run, if any.
func (a *Adapter) Err() error {
	if p := a.fatal.Load(); p != nil {
		return *p
	}
	return nil
}

// Stats returns a snapshot of the counters.
func (a *Adapter) Stats() Stats {
	return Stats{
		Dispatched: a.dispatched.Load(),
		Skipped:    a.skipped.Load(),
	}
}

// Package globalinput drives global keyboard and mouse reconciliation from a
// simulation loop.
//
// A System is ticked once per frame with Update. Each tick locates the
// entities holding the global keyboard and mouse roles, installs the OS hook
// the first time one of them exists, then reconciles the capture buffer into
// their published state.
package globalinput

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/yohamta/donburi"

	"github.com/Alia5/inputsync/capture"
	"github.com/Alia5/inputsync/component"
	"github.com/Alia5/inputsync/device/keyboard"
	"github.com/Alia5/inputsync/device/mouse"
	"github.com/Alia5/inputsync/hook"
	"github.com/Alia5/inputsync/internal/log"
	"github.com/Alia5/inputsync/locate"
	"github.com/Alia5/inputsync/reconcile"
)

// System is not safe for concurrent use. Update and Close must be called from
// the simulation goroutine.
type System struct {
	world   donburi.World
	source  hook.Source
	table   *hook.CodeTable
	config  hook.Config
	logger  *slog.Logger
	events  log.EventLogger
	locator *locate.Locator

	// OnChange, if set, receives every republished index.
	OnChange func(reconcile.Change)

	total time.Duration

	buf        *capture.Buffer
	reconciler *reconcile.Reconciler
	adapter    *hook.Adapter
	cancel     context.CancelFunc
	done       chan struct{}
	closeOnce  sync.Once
}

// New returns a System over world. Nothing is installed until Update finds a
// qualifying device. events may be nil.
func New(world donburi.World, source hook.Source, table *hook.CodeTable, config hook.Config, logger *slog.Logger, events log.EventLogger) *System {
	if logger == nil {
		logger = slog.Default()
	}
	return &System{
		world:   world,
		source:  source,
		table:   table,
		config:  config,
		logger:  logger,
		events:  events,
		locator: locate.New(logger),
	}
}

// Update runs one tick. elapsed is added to the running total used as the
// last-update timestamp. A tick that returns an error leaves both the total
// and the published state untouched.
func (s *System) Update(elapsed time.Duration) error {
	if s.adapter != nil {
		if err := s.adapter.Err(); err != nil {
			return err
		}
	}

	devices, err := s.locator.Locate(s.world)
	if err != nil {
		return err
	}

	if s.buf == nil {
		if !devices.Any() {
			s.total += elapsed
			return nil
		}
		if err := s.install(); err != nil {
			return err
		}
	}
	s.total += elapsed

	var kb *keyboard.State
	var ms *mouse.State
	if devices.Keyboard != nil {
		kb = component.Keyboard.Get(devices.Keyboard)
	}
	if devices.Mouse != nil {
		ms = component.Mouse.Get(devices.Mouse)
	}

	s.reconciler.OnChange = s.OnChange
	res := s.reconciler.Sweep(kb, ms)
	if res.Keyboard {
		component.Touch(devices.Keyboard, s.total)
	}
	if res.Mouse {
		component.Touch(devices.Mouse, s.total)
	}
	return nil
}

func (s *System) install() error {
	ctx, cancel := context.WithCancel(context.Background())
	events, err := s.source.Start(ctx)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to install input hook: %w", err)
	}

	s.buf = capture.New()
	s.reconciler = reconcile.New(s.buf, s.logger)
	s.adapter = hook.NewAdapter(s.buf, s.table, s.config.SkipUnmapped, s.logger, s.events)
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		_ = s.adapter.Run(ctx, events)
	}()

	s.logger.Info("input hook installed", "codes", s.table.Name)
	return nil
}

// Installed reports whether the hook has been installed.
func (s *System) Installed() bool {
	return s.buf != nil
}

// Elapsed returns the running total of elapsed tick time.
func (s *System) Elapsed() time.Duration {
	return s.total
}

// Stats returns the hook adapter counters, or zero before install.
func (s *System) Stats() hook.Stats {
	if s.adapter == nil {
		return hook.Stats{}
	}
	return s.adapter.Stats()
}

// Close stops the hook and waits for the capture goroutine to exit. No
// writes reach the capture buffer afterwards.
func (s *System) Close() error {
	var err error
	s.closeOnce.Do(func() {
		if s.buf == nil {
			return
		}
		s.cancel()
		err = s.source.Close()
		<-s.done

		st := s.adapter.Stats()
		s.logger.Info("input hook stopped", "dispatched", st.Dispatched, "skipped", st.Skipped)
		s.buf.Reset()
	})
	return err
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/yohamta/donburi"

	"github.com/Alia5/inputsync/button"
	"github.com/Alia5/inputsync/component"
	"github.com/Alia5/inputsync/device/keyboard"
	"github.com/Alia5/inputsync/device/mouse"
	"github.com/Alia5/inputsync/globalinput"
	"github.com/Alia5/inputsync/hook"
	"github.com/Alia5/inputsync/internal/log"
	"github.com/Alia5/inputsync/internal/util"
	"github.com/Alia5/inputsync/reconcile"
)

type Run struct {
	Tick   time.Duration `help:"Simulation tick interval" default:"16ms" env:"INPUTSYNC_TICK"`
	Status bool          `help:"Show a live status line when stdout is a terminal" env:"INPUTSYNC_STATUS"`
	Hook   hook.Config   `embed:"" prefix:"hook."`
}

// Run is called by Kong when the run command is executed.
func (r *Run) Run(logger *slog.Logger, events log.EventLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src := hook.NewDefaultSource(r.Hook, logger)
	return r.Loop(ctx, src, hook.DefaultCodes(), util.StatusWriter(os.Stdout), logger, events)
}

// Loop ticks a single global keyboard and mouse until ctx is done or a fatal
// error occurs. status may be nil.
func (r *Run) Loop(ctx context.Context, src hook.Source, table *hook.CodeTable, status io.Writer, logger *slog.Logger, events log.EventLogger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if r.Tick <= 0 {
		return fmt.Errorf("tick must be positive, got %s", r.Tick)
	}
	if !r.Status {
		status = nil
	}

	world := donburi.NewWorld()
	entry := world.Entry(world.Create(component.Global, component.Keyboard, component.Mouse, component.LastUpdate))

	sys := globalinput.New(world, src, table, r.Hook, logger, events)
	sys.OnChange = func(c reconcile.Change) { logChange(logger, entry, c) }
	defer func() {
		if err := sys.Close(); err != nil {
			logger.Warn("failed to stop input hook", "error", err)
		}
	}()

	logger.Info("Starting input loop", "tick", r.Tick, "codes", table.Name, "skipUnmapped", r.Hook.SkipUnmapped)

	ticker := time.NewTicker(r.Tick)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			if status != nil {
				fmt.Fprintln(status)
			}
			logger.Info("Stopping input loop", "elapsed", sys.Elapsed())
			return nil
		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now
			if err := sys.Update(elapsed); err != nil {
				logger.Error("input reconciliation failed", "error", err)
				return err
			}
			if status != nil {
				writeStatus(status, entry)
			}
		}
	}
}

func logChange(logger *slog.Logger, entry *donburi.Entry, c reconcile.Change) {
	level := slog.LevelDebug
	if c.Transition == button.WasPressed || c.Transition == button.WasReleased {
		level = slog.LevelInfo
	}
	ctx := context.Background()

	switch c.Source {
	case reconcile.SourceKey:
		logger.Log(ctx, level, "key", "key", keyboard.Key(c.Index), "transition", c.Transition)
	case reconcile.SourceButton:
		st := component.Mouse.Get(entry)
		logger.Log(ctx, level, "button", "button", mouse.Button(c.Index), "transition", c.Transition, "mask", st.Mask())
	case reconcile.SourceMotion:
		st := component.Mouse.Get(entry)
		logger.Debug("motion", "position", vec(st.Position), "delta", vec(st.Delta))
	case reconcile.SourceScroll:
		st := component.Mouse.Get(entry)
		logger.Info("scroll", "scroll", vec(st.Scroll))
	}
}

func writeStatus(w io.Writer, entry *donburi.Entry) {
	kb := component.Keyboard.Get(entry)
	ms := component.Mouse.Get(entry)

	keys := make([]string, 0, 4)
	for _, k := range kb.Down() {
		keys = append(keys, k.String())
	}
	mask := ms.Mask()
	buttons := make([]string, 0, mouse.ButtonCount)
	for b := mouse.Button(0); b < mouse.ButtonCount; b++ {
		if mask&(1<<b) != 0 {
			buttons = append(buttons, b.String())
		}
	}
	fmt.Fprintf(w, "\r\033[Kkeys [%s] buttons [%s] pos %s scroll %s",
		strings.Join(keys, " "), strings.Join(buttons, " "), vec(ms.Position), vec(ms.Scroll))
}

func vec(v [2]float32) string {
	return fmt.Sprintf("(%g,%g)", v[0], v[1])
}


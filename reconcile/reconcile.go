// Package reconcile turns the raw capture buffer into published, edge-triggered
// device state once per simulation tick.
package reconcile

import (
	"log/slog"

	"github.com/Alia5/inputsync/button"
	"github.com/Alia5/inputsync/capture"
	"github.com/Alia5/inputsync/device/keyboard"
	"github.com/Alia5/inputsync/device/mouse"
)

// Source identifies which table a Change came from.
type Source uint8

const (
	SourceKey Source = iota
	SourceButton
	SourceMotion
	SourceScroll
)

func (s Source) String() string {
	switch s {
	case SourceKey:
		return "key"
	case SourceButton:
		return "button"
	case SourceMotion:
		return "motion"
	case SourceScroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// Change describes one republished index. Index is a keyboard.Key or a
// mouse.Button depending on Source; it is zero for motion and scroll.
type Change struct {
	Source     Source
	Index      int
	Transition button.Transition
}

// Result reports which devices were updated by a Sweep.
type Result struct {
	Keyboard bool
	Mouse    bool
}

// Reconciler owns the per-button raw samples it saw on the previous tick.
// It is not safe for concurrent use; call it from the simulation tick only.
type Reconciler struct {
	buf *capture.Buffer

	keys    [keyboard.KeyCount]bool
	buttons [mouse.ButtonCount]bool

	// OnChange, if set, is called for every republished index.
	OnChange func(Change)

	logger *slog.Logger
}

// New returns a Reconciler reading from buf.
func New(buf *capture.Buffer, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{buf: buf, logger: logger}
}

// Sweep reconciles the published states against the capture buffer. A nil
// state means no entity holds that role this tick; its remembered samples
// still advance so an entity appearing later only sees edges from then on.
// The buffer's motion flags are consumed exactly once, whether or not a
// mouse is present.
func (r *Reconciler) Sweep(kb *keyboard.State, ms *mouse.State) Result {
	var res Result
	if kb != nil {
		res.Keyboard = r.Keyboard(kb)
	} else {
		for i := range r.keys {
			r.keys[i] = r.buf.Key(keyboard.Key(i))
		}
	}
	motion := r.buf.TakeMotion()
	if ms != nil {
		res.Mouse = r.Mouse(ms, motion)
	} else {
		for i := range r.buttons {
			r.buttons[i] = r.buf.Button(mouse.Button(i))
		}
	}
	return res
}

// Keyboard sweeps the key table into st and reports whether any key was
// republished.
func (r *Reconciler) Keyboard(st *keyboard.State) bool {
	updated := false
	for i := range r.keys {
		k := keyboard.Key(i)
		computed := r.advance(&r.keys[i], r.buf.Key(k))
		if !button.Changed(st.Button(k), computed) {
			continue
		}
		t := computed.Transition()
		st.Apply(k, t)
		updated = true
		r.emit(Change{Source: SourceKey, Index: i, Transition: t})
	}
	return updated
}

// Mouse sweeps the button table into st, then applies the consumed motion,
// and reports whether anything was republished.
func (r *Reconciler) Mouse(st *mouse.State, motion capture.Motion) bool {
	updated := false
	for i := range r.buttons {
		b := mouse.Button(i)
		computed := r.advance(&r.buttons[i], r.buf.Button(b))
		if !button.Changed(st.Button(b), computed) {
			continue
		}
		t := computed.Transition()
		st.Apply(b, t)
		updated = true
		r.emit(Change{Source: SourceButton, Index: i, Transition: t})
	}

	if motion.Moved {
		st.Move(motion.Position)
		updated = true
		r.emit(Change{Source: SourceMotion})
	}
	if motion.Scrolled {
		st.ScrollTo(motion.Scroll)
		updated = true
		r.emit(Change{Source: SourceScroll})
	}
	return updated
}

// advance builds the State for one index from the remembered sample and the
// fresh one, then remembers the fresh sample. The remembered value moves on
// every tick so each physical transition is reported once.
func (r *Reconciler) advance(remembered *bool, current bool) button.State {
	s := button.New(*remembered, current)
	*remembered = current
	return s
}

func (r *Reconciler) emit(c Change) {
	r.logger.Debug("input changed", "source", c.Source, "index", c.Index, "transition", c.Transition)
	if r.OnChange != nil {
		r.OnChange(c)
	}
}

// Package locate finds the entities acting as the global keyboard and mouse.
package locate

import (
	"fmt"
	"log/slog"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/Alia5/inputsync/component"
	"github.com/Alia5/inputsync/inputerr"
)

// Devices is the result of one scan.
type Devices struct {
	Keyboard *donburi.Entry
	Mouse    *donburi.Entry
}

// Any reports whether at least one role is filled.
func (d Devices) Any() bool {
	return d.Keyboard != nil || d.Mouse != nil
}

// Locator scans a world for entities tagged Global that carry the keyboard or
// mouse capability.
type Locator struct {
	keyboards *donburi.Query
	mice      *donburi.Query
	logger    *slog.Logger

	last Devices
}

// New returns a Locator. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Locator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Locator{
		keyboards: donburi.NewQuery(filter.Contains(component.Global, component.Keyboard)),
		mice:      donburi.NewQuery(filter.Contains(component.Global, component.Mouse)),
		logger:    logger,
	}
}

// Locate runs one scan. Finding more than one entity for the same role is a
// fatal configuration error; nothing is returned for either role in that case.
func (l *Locator) Locate(w donburi.World) (Devices, error) {
	var d Devices

	kb, err := l.single(w, l.keyboards, "keyboard")
	if err != nil {
		return Devices{}, err
	}
	ms, err := l.single(w, l.mice, "mouse")
	if err != nil {
		return Devices{}, err
	}
	d.Keyboard, d.Mouse = kb, ms

	l.logChanges(d)
	l.last = d
	return d, nil
}

func (l *Locator) single(w donburi.World, q *donburi.Query, role string) (*donburi.Entry, error) {
	switch n := q.Count(w); {
	case n == 0:
		return nil, nil
	case n > 1:
		return nil, inputerr.ErrAmbiguousDevice(fmt.Sprintf("%d entities are tagged as the global %s", n, role))
	}
	entry, ok := q.First(w)
	if !ok {
		return nil, nil
	}
	return entry, nil
}

func (l *Locator) logChanges(d Devices) {
	if entity(d.Keyboard) != entity(l.last.Keyboard) {
		l.logger.Debug("global keyboard changed", "entity", entity(d.Keyboard))
	}
	if entity(d.Mouse) != entity(l.last.Mouse) {
		l.logger.Debug("global mouse changed", "entity", entity(d.Mouse))
	}
}

func entity(e *donburi.Entry) donburi.Entity {
	var none donburi.Entity
	if e == nil {
		return none
	}
	return e.Entity()
}

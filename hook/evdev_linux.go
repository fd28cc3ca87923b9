//go:build linux

package hook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	evdev "github.com/holoplot/go-evdev"
	"golang.org/x/sys/unix"
)

type deviceKind int

const (
	kindKeyboard deviceKind = 1 << iota
	kindMouse
)

// EvdevSource captures every keyboard and mouse under a /dev/input glob.
// Relative pointer motion is accumulated into an absolute position shared by
// all opened devices.
type EvdevSource struct {
	pattern string
	buffer  int
	logger  *slog.Logger

	mu      sync.Mutex
	devices []*evdev.InputDevice
	wg      sync.WaitGroup
	started bool

	cursorX, cursorY float32
	held             int
}

// NewEvdevSource returns an unstarted evdev Source.
func NewEvdevSource(cfg Config, logger *slog.Logger) *EvdevSource {
	if logger == nil {
		logger = slog.Default()
	}
	buffer := cfg.Buffer
	if buffer <= 0 {
		buffer = 1024
	}
	return &EvdevSource{pattern: cfg.Devices, buffer: buffer, logger: logger}
}

// NewDefaultSource returns the platform's global input Source.
func NewDefaultSource(cfg Config, logger *slog.Logger) Source {
	return NewEvdevSource(cfg, logger)
}

// DefaultCodes returns the code table matching NewDefaultSource.
func DefaultCodes() *CodeTable {
	return EvdevCodes()
}

// Start opens all matching devices and begins reading them.
func (s *EvdevSource) Start(ctx context.Context) (<-chan Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil, errors.New("hook: evdev source already started")
	}

	matches, err := filepath.Glob(s.pattern)
	if err != nil {
		return nil, fmt.Errorf("hook: invalid device glob %q: %w", s.pattern, err)
	}

	type opened struct {
		dev  *evdev.InputDevice
		kind deviceKind
	}
	var devs []opened
	var denied []string
	for _, path := range matches {
		dev, err := evdev.Open(path)
		if err != nil {
			if errors.Is(err, unix.EACCES) || errors.Is(err, unix.EPERM) {
				denied = append(denied, path)
			}
			continue
		}
		kind := classifyDevice(dev)
		if kind == 0 {
			_ = dev.Close()
			continue
		}
		name, _ := dev.Name()
		s.logger.Info("opened input device", "path", path, "name", name,
			"keyboard", kind&kindKeyboard != 0, "mouse", kind&kindMouse != 0)
		devs = append(devs, opened{dev: dev, kind: kind})
	}

	if len(devs) == 0 {
		if len(denied) > 0 {
			return nil, fmt.Errorf("hook: permission denied opening %d input devices (add the user to the 'input' group): %w", len(denied), unix.EACCES)
		}
		return nil, fmt.Errorf("hook: no keyboard or mouse matches %q", s.pattern)
	}

	out := make(chan Event, s.buffer)
	for _, d := range devs {
		s.devices = append(s.devices, d.dev)
		s.wg.Add(1)
		go s.readLoop(ctx, d.dev, d.kind, out)
	}
	s.started = true

	go func() {
		<-ctx.Done()
		_ = s.Close()
	}()
	go func() {
		s.wg.Wait()
		close(out)
	}()
	return out, nil
}

// Close closes all open devices, which makes every read loop exit.
func (s *EvdevSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for _, dev := range s.devices {
		if err := dev.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.devices = nil
	return errors.Join(errs...)
}

// classifyDevice checks capabilities to determine whether dev is a keyboard,
// mouse, or both. Returns 0 if neither.
func classifyDevice(dev *evdev.InputDevice) deviceKind {
	var kind deviceKind

	capableTypes := dev.CapableTypes()
	hasType := func(t evdev.EvType) bool {
		for _, ct := range capableTypes {
			if ct == t {
				return true
			}
		}
		return false
	}
	if !hasType(evdev.EV_KEY) {
		return 0
	}

	codes := dev.CapableEvents(evdev.EV_KEY)
	codeSet := make(map[evdev.EvCode]bool, len(codes))
	for _, c := range codes {
		codeSet[c] = true
	}
	if codeSet[evdev.KEY_A] {
		kind |= kindKeyboard
	}
	if codeSet[evdev.BTN_LEFT] && hasType(evdev.EV_REL) {
		kind |= kindMouse
	}
	return kind
}

// isMouseButton reports whether code is a mouse button with a canonical
// mapping. Extra mouse buttons (BTN_TASK and up), touch, tool and joystick
// codes are dropped here.
func isMouseButton(code evdev.EvCode) bool {
	_, ok := evdevButtons[code]
	return ok
}

// isKey reports whether code is a keyboard key with a canonical mapping.
// Vendor and system keys without a HID usage (KEY_CALC, KEY_SLEEP, ...) are
// dropped here.
func isKey(code evdev.EvCode) bool {
	_, ok := evdevKeys[code]
	return ok
}

func (s *EvdevSource) readLoop(ctx context.Context, dev *evdev.InputDevice, kind deviceKind, out chan<- Event) {
	defer s.wg.Done()

	var dx, dy float32
	var absolute bool
	var absX, absY float32

	emit := func(ev Event) bool {
		select {
		case out <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}

	for {
		ie, err := dev.ReadOne()
		if err != nil {
			return
		}

		switch ie.Type {
		case evdev.EV_KEY:
			if ie.Value == 2 {
				continue // autorepeat
			}
			down := ie.Value != 0
			var ev Event
			switch {
			case isMouseButton(ie.Code):
				if kind&kindMouse == 0 {
					continue
				}
				ev = Event{Kind: ButtonReleased, Code: uint16(ie.Code)}
				if down {
					ev.Kind = ButtonPressed
				}
				s.trackHeld(down)
			case isKey(ie.Code):
				if kind&kindKeyboard == 0 {
					continue
				}
				ev = Event{Kind: KeyReleased, Code: uint16(ie.Code)}
				if down {
					ev.Kind = KeyPressed
				}
			default:
				continue
			}
			if !emit(ev) {
				return
			}

		case evdev.EV_REL:
			if kind&kindMouse == 0 {
				continue
			}
			switch ie.Code {
			case evdev.REL_X:
				dx += float32(ie.Value)
			case evdev.REL_Y:
				dy += float32(ie.Value)
			case evdev.REL_WHEEL:
				if !emit(Event{Kind: WheelScrolled, Y: float32(ie.Value)}) {
					return
				}
			case evdev.REL_HWHEEL:
				if !emit(Event{Kind: WheelScrolled, X: float32(ie.Value)}) {
					return
				}
			}

		case evdev.EV_ABS:
			if kind&kindMouse == 0 {
				continue
			}
			switch ie.Code {
			case evdev.ABS_X:
				absX, absolute = float32(ie.Value), true
			case evdev.ABS_Y:
				absY, absolute = float32(ie.Value), true
			}

		case evdev.EV_SYN:
			if ie.Code != evdev.SYN_REPORT {
				continue
			}
			if dx == 0 && dy == 0 && !absolute {
				continue
			}
			ev := s.moveCursor(dx, dy, absolute, absX, absY)
			dx, dy, absolute = 0, 0, false
			if !emit(ev) {
				return
			}
		}
	}
}

func (s *EvdevSource) trackHeld(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if down {
		s.held++
	} else if s.held > 0 {
		s.held--
	}
}

func (s *EvdevSource) moveCursor(dx, dy float32, absolute bool, x, y float32) Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if absolute {
		s.cursorX, s.cursorY = x, y
	}
	s.cursorX += dx
	s.cursorY += dy

	kind := PointerMoved
	if s.held > 0 {
		kind = ButtonDragged
	}
	return Event{Kind: kind, X: s.cursorX, Y: s.cursorY}
}

package testing

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Alia5/inputsync/device/keyboard"
	"github.com/Alia5/inputsync/device/mouse"
	"github.com/Alia5/inputsync/hook"
)

// Codes used by CreateTestTable.
const (
	CodeA       uint16 = 30
	CodeShift   uint16 = 42
	CodeLeft    uint16 = 272
	CodeRight   uint16 = 273
	CodeUnknown uint16 = 999
)

// MockSource is a channel-backed hook.Source. Tests push events with Send.
type MockSource struct {
	events   chan hook.Event
	StartErr error

	mu     sync.Mutex
	starts int
	closes int
}

func CreateMockSource(t *testing.T) *MockSource {
	t.Helper()
	return &MockSource{events: make(chan hook.Event, 64)}
}

func (m *MockSource) Start(context.Context) (<-chan hook.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.starts++
	if m.StartErr != nil {
		return nil, m.StartErr
	}
	return m.events, nil
}

func (m *MockSource) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closes++
	return nil
}

// Send queues events without waiting for them to be dispatched.
func (m *MockSource) Send(evs ...hook.Event) {
	for _, ev := range evs {
		m.events <- ev
	}
}

func (m *MockSource) Starts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.starts
}

func (m *MockSource) Closes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closes
}

// CreateTestTable returns a small code table covering the Code* constants,
// except CodeUnknown.
func CreateTestTable(t *testing.T) *hook.CodeTable {
	t.Helper()
	return &hook.CodeTable{
		Name: "test",
		Keys: map[uint16]keyboard.Key{
			CodeA:     keyboard.KeyA,
			CodeShift: keyboard.KeyLeftShift,
		},
		Buttons: map[uint16]mouse.Button{
			CodeLeft:  mouse.ButtonLeft,
			CodeRight: mouse.ButtonRight,
		},
	}
}

// WaitDispatched blocks until stats reports want dispatched events.
func WaitDispatched(t *testing.T, stats func() hook.Stats, want uint64) {
	t.Helper()
	require.Eventually(t, func() bool {
		return stats().Dispatched >= want
	}, 2*time.Second, time.Millisecond)
}

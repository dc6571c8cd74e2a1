package systems

import (
	"sync"
	"time"
)

// Clock reports monotonic milliseconds. Every timer in the simulation is
// compared against one reading per tick.
type Clock interface {
	Millis() int64
}

// MonotonicClock counts milliseconds since its creation using the
// monotonic reading of time.Now
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock creates a clock starting at zero
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Millis returns the milliseconds elapsed since the clock was created
func (c *MonotonicClock) Millis() int64 {
	return time.Since(c.start).Milliseconds()
}

// MockClock provides a controllable time source for testing
type MockClock struct {
	mu     sync.RWMutex
	millis int64
}

// NewMockClock creates a mock clock at the given reading
func NewMockClock(start int64) *MockClock {
	return &MockClock{millis: start}
}

// Millis returns the current mocked reading
func (m *MockClock) Millis() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.millis
}

// Set sets the current reading
func (m *MockClock) Set(millis int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.millis = millis
}

// Advance moves the reading forward by d milliseconds
func (m *MockClock) Advance(d int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.millis += d
}

package clock

import (
	"sort"
	"sync"
	"time"
)

// Manual is a Clock for tests whose time only moves when Advance is called.
// Timer callbacks run synchronously inside Advance, in deadline order, with
// no internal lock held, so callbacks may schedule further timers.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	timers []*manualTimer
}

// NewManual creates a manual clock starting at the given time
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the manual clock's current time
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc registers f to run once the clock has advanced past d
func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &manualTimer{
		clock:    m,
		deadline: m.now.Add(d),
		f:        f,
	}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every due timer in deadline
// order before settling on the final time.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)

	for {
		t := m.nextDueLocked(target)
		if t == nil {
			break
		}
		if t.deadline.After(m.now) {
			m.now = t.deadline
		}
		t.fired = true
		f := t.f

		m.mu.Unlock()
		f()
		m.mu.Lock()
	}

	m.now = target
	m.mu.Unlock()
}

// nextDueLocked returns the earliest pending timer due at or before target
func (m *Manual) nextDueLocked(target time.Time) *manualTimer {
	pending := m.timers[:0]
	for _, t := range m.timers {
		if !t.fired && !t.stopped {
			pending = append(pending, t)
		}
	}
	m.timers = pending

	sort.SliceStable(m.timers, func(i, j int) bool {
		return m.timers[i].deadline.Before(m.timers[j].deadline)
	})

	if len(m.timers) == 0 || m.timers[0].deadline.After(target) {
		return nil
	}
	return m.timers[0]
}

type manualTimer struct {
	clock    *Manual
	deadline time.Time
	f        func()
	fired    bool
	stopped  bool
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

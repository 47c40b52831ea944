package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Eliolocin/GengoTavern-sub001/internal/pkg/clock"
)

func TestManual_AdvanceFiresInDeadlineOrder(t *testing.T) {
	m := clock.NewManual(time.Unix(0, 0))

	var fired []string
	m.AfterFunc(200*time.Millisecond, func() { fired = append(fired, "second") })
	m.AfterFunc(100*time.Millisecond, func() { fired = append(fired, "first") })

	m.Advance(300 * time.Millisecond)

	assert.Equal(t, []string{"first", "second"}, fired)
	assert.Equal(t, time.Unix(0, 0).Add(300*time.Millisecond), m.Now())
}

func TestManual_AdvanceDoesNotFireFutureTimers(t *testing.T) {
	m := clock.NewManual(time.Unix(0, 0))

	fired := false
	m.AfterFunc(300*time.Millisecond, func() { fired = true })

	m.Advance(299 * time.Millisecond)
	assert.False(t, fired)

	m.Advance(1 * time.Millisecond)
	assert.True(t, fired)
}

func TestManual_StopPreventsCallback(t *testing.T) {
	m := clock.NewManual(time.Unix(0, 0))

	fired := false
	timer := m.AfterFunc(100*time.Millisecond, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	m.Advance(time.Second)
	assert.False(t, fired)
}

func TestManual_CallbackMaySchedule(t *testing.T) {
	m := clock.NewManual(time.Unix(0, 0))

	var fired []string
	m.AfterFunc(100*time.Millisecond, func() {
		fired = append(fired, "fade-out")
		m.AfterFunc(100*time.Millisecond, func() { fired = append(fired, "fade-in") })
	})

	m.Advance(250 * time.Millisecond)
	assert.Equal(t, []string{"fade-out", "fade-in"}, fired)
}

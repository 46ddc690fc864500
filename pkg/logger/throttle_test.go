package logger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestThrottle_SuprimeDentroDeLaVentana(t *testing.T) {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	now := base
	th := NewThrottle(time.Minute).WithClock(func() time.Time { return now })

	ok, suppressed := th.Allow()
	assert.True(t, ok)
	assert.Zero(t, suppressed)

	now = base.Add(10 * time.Second)
	ok, _ = th.Allow()
	assert.False(t, ok)
	now = base.Add(59 * time.Second)
	ok, _ = th.Allow()
	assert.False(t, ok)

	now = base.Add(61 * time.Second)
	ok, suppressed = th.Allow()
	assert.True(t, ok)
	assert.Equal(t, 2, suppressed)
	assert.Equal(t, now, th.LastLoggedAt())
}

func TestThrottle_VentanaCeroDejaPasarTodo(t *testing.T) {
	th := NewThrottle(0)
	for i := 0; i < 3; i++ {
		ok, suppressed := th.Allow()
		assert.True(t, ok)
		assert.Zero(t, suppressed)
	}
}

package infra

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errSink = errors.New("sink down")

func newTestBreaker(now *time.Time) *Breaker {
	b := NewBreaker(BreakerConfig{Name: "test", MaxFailures: 3, ProbeSuccesses: 2, Cooldown: time.Minute})
	b.now = func() time.Time { return *now }
	return b
}

func TestBreaker_TripsAfterConsecutiveFailures(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	b := newTestBreaker(&now)

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, b.Call(func() error { return errSink }), errSink)
	}
	assert.Equal(t, BreakerOpen, b.State())

	called := false
	err := b.Call(func() error { called = true; return nil })
	assert.ErrorIs(t, err, ErrBreakerOpen)
	assert.False(t, called)
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	now := time.Now()
	b := newTestBreaker(&now)

	_ = b.Call(func() error { return errSink })
	_ = b.Call(func() error { return errSink })
	assert.NoError(t, b.Call(func() error { return nil }))
	_ = b.Call(func() error { return errSink })
	assert.Equal(t, BreakerClosed, b.State())
}

func TestBreaker_HalfOpenProbeCycle(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	b := newTestBreaker(&now)
	for i := 0; i < 3; i++ {
		_ = b.Call(func() error { return errSink })
	}

	now = now.Add(time.Minute)
	assert.Equal(t, BreakerHalfOpen, b.State())

	// failed probe reopens
	_ = b.Call(func() error { return errSink })
	assert.Equal(t, BreakerOpen, b.State())

	now = now.Add(time.Minute)
	assert.NoError(t, b.Call(func() error { return nil }))
	assert.Equal(t, BreakerHalfOpen, b.State())
	assert.NoError(t, b.Call(func() error { return nil }))
	assert.Equal(t, BreakerClosed, b.State())
}

func TestBreakerStateString(t *testing.T) {
	assert.Equal(t, "closed", BreakerClosed.String())
	assert.Equal(t, "open", BreakerOpen.String())
	assert.Equal(t, "half-open", BreakerHalfOpen.String())
	assert.Equal(t, "unknown", BreakerState(9).String())
}

package infra

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func newTestCB() *CircuitBreaker {
	return NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: 3,
		SuccessThreshold: 2,
		OpenTimeout:      50 * time.Millisecond,
	})
}

func TestCB_StaysClosedOnSuccess(t *testing.T) {
	cb := newTestCB()
	for i := 0; i < 10; i++ {
		require.NoError(t, cb.Execute(func() error { return nil }))
	}
	assert.Equal(t, CBClosed, cb.State())
}

func TestCB_TripsAfterThreshold(t *testing.T) {
	cb := newTestCB()
	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, cb.Execute(func() error { return errBoom }), errBoom)
	}
	assert.Equal(t, CBOpen, cb.State())

	// fast-fail while open — fn must not run
	called := false
	err := cb.Execute(func() error { called = true; return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestCB_FailureCountResetsOnSuccess(t *testing.T) {
	cb := newTestCB()
	cb.Execute(func() error { return errBoom }) //nolint
	cb.Execute(func() error { return errBoom }) //nolint
	require.NoError(t, cb.Execute(func() error { return nil }))
	cb.Execute(func() error { return errBoom }) //nolint
	cb.Execute(func() error { return errBoom }) //nolint
	assert.Equal(t, CBClosed, cb.State(), "non-consecutive failures must not trip the breaker")
}

func TestCB_HalfOpenProbeAndClose(t *testing.T) {
	cb := newTestCB()
	for i := 0; i < 3; i++ {
		cb.Execute(func() error { return errBoom }) //nolint
	}
	require.Equal(t, CBOpen, cb.State())

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, CBHalfOpen, cb.State())

	// two successes close the breaker
	require.NoError(t, cb.Execute(func() error { return nil }))
	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, CBClosed, cb.State())
}

func TestCB_HalfOpenFailureReopens(t *testing.T) {
	cb := newTestCB()
	for i := 0; i < 3; i++ {
		cb.Execute(func() error { return errBoom }) //nolint
	}
	time.Sleep(60 * time.Millisecond)
	require.Equal(t, CBHalfOpen, cb.State())

	assert.ErrorIs(t, cb.Execute(func() error { return errBoom }), errBoom)
	assert.Equal(t, CBOpen, cb.State())
}

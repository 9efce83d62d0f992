package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetry_FirstAttemptSucceeds(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), 3, func(int) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_EventualSuccess(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), 3, func(int) error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestWithRetry_ExhaustsAttempts(t *testing.T) {
	wanted := errors.New("permanent")
	calls := 0
	err := withRetry(context.Background(), 3, func(int) error {
		calls++
		return wanted
	})
	assert.ErrorIs(t, err, wanted)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_ContextCancelStopsBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()
	start := time.Now()
	err := withRetry(ctx, 5, func(int) error {
		calls++
		return errors.New("always fails")
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls, "cancel during first backoff must stop further attempts")
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestWithRetry_AttemptIndexPassed(t *testing.T) {
	var seen []int
	_ = withRetry(context.Background(), 3, func(attempt int) error {
		seen = append(seen, attempt)
		return errors.New("fail")
	})
	assert.Equal(t, []int{0, 1, 2}, seen)
}

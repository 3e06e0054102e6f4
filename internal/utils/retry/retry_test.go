package retry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errTransient = errors.New("transient")
	errFatal     = errors.New("fatal")
)

func TestRetrier_Do(t *testing.T) {
	isRetryable := func(err error) bool {
		return errors.Is(err, errTransient)
	}

	t.Run("succeeds first try", func(t *testing.T) {
		r := New(isRetryable)
		r.initialDelay = 0

		calls := 0
		err := r.Do(context.Background(), func(ctx context.Context) error {
			calls++
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries transient errors", func(t *testing.T) {
		r := New(isRetryable)
		r.initialDelay = 0

		calls := 0
		err := r.Do(context.Background(), func(ctx context.Context) error {
			calls++
			if calls < 3 {
				return errTransient
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after attempts", func(t *testing.T) {
		r := New(isRetryable)
		r.initialDelay = 0

		calls := 0
		err := r.Do(context.Background(), func(ctx context.Context) error {
			calls++
			return errTransient
		})

		assert.ErrorIs(t, err, errTransient)
		assert.Equal(t, defaultAttempts, calls)
	})

	t.Run("fatal error returned immediately", func(t *testing.T) {
		r := New(isRetryable)
		r.initialDelay = 0

		calls := 0
		err := r.Do(context.Background(), func(ctx context.Context) error {
			calls++
			return errFatal
		})

		assert.ErrorIs(t, err, errFatal)
		assert.Equal(t, 1, calls)
	})

	t.Run("cancelled context stops retries", func(t *testing.T) {
		r := New(isRetryable)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := r.Do(ctx, func(ctx context.Context) error {
			return errTransient
		})

		assert.ErrorIs(t, err, context.Canceled)
	})
}

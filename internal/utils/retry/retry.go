package retry

import (
	"context"
	"fmt"
	"time"
)

const (
	defaultAttempts     = 3
	defaultInitialDelay = 100 * time.Millisecond
	defaultMaxDelay     = 2 * time.Second
)

type Retrier struct {
	attempts     int
	initialDelay time.Duration
	maxDelay     time.Duration
	isRetryable  func(error) bool
}

// New returns a Retrier that re-runs an operation while isRetryable reports
// true for its error. Non-retryable errors are returned immediately.
func New(isRetryable func(error) bool) *Retrier {
	return &Retrier{
		attempts:     defaultAttempts,
		initialDelay: defaultInitialDelay,
		maxDelay:     defaultMaxDelay,
		isRetryable:  isRetryable,
	}
}

func (r *Retrier) Do(
	ctx context.Context,
	op func(ctx context.Context) error,
) error {
	var lastErr error

	delay := r.initialDelay
	for attempt := 0; attempt < r.attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}

			delay *= 2
			if delay > r.maxDelay {
				delay = r.maxDelay
			}
		}

		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}

		if !r.isRetryable(lastErr) {
			return lastErr
		}
	}

	return fmt.Errorf("retry attempts exhausted: %w", lastErr)
}

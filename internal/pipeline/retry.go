package pipeline

import (
	"context"
	"time"

	"github.com/avast/retry-go"
)

// BackoffFunc returns the delay after the failed attempt n, counted from 0.
type BackoffFunc func(n uint) time.Duration

// ExponentialBackoff waits base * 2^n after the attempt n.
func ExponentialBackoff(base time.Duration) BackoffFunc {
	return func(n uint) time.Duration {
		return base << n
	}
}

// WithRetry calls operation up to maxAttempts times and returns the first success.
// After the last attempt the last error is returned. onRetry may be nil.
func WithRetry[T any](
	ctx context.Context,
	operation func(ctx context.Context) (T, error),
	maxAttempts uint,
	backoff BackoffFunc,
	onRetry func(n uint, err error),
) (T, error) {
	if maxAttempts == 0 {
		maxAttempts = 1
	}
	if onRetry == nil {
		onRetry = func(uint, error) {}
	}

	var result T
	err := retry.Do(
		func() error {
			value, err := operation(ctx)
			if err != nil {
				return err
			}
			result = value
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(maxAttempts),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return backoff(n)
		}),
		retry.OnRetry(onRetry),
	)
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

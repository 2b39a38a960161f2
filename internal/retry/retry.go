package retry

import (
	"context"
	"time"
)

// Predicate determines whether an error should be retried.
type Predicate func(error) bool

// Config controls retry behavior. Retries use a fixed interval: the
// provider serializes mutations per zone, so waiting out the in-flight
// change is the point, not spreading load.
type Config struct {
	MaxAttempts int
	Interval    time.Duration
}

// Do executes fn up to MaxAttempts times, sleeping Interval between
// attempts whose error satisfies shouldRetry. The first non-retryable
// error, or the error of the final attempt, is returned as-is.
func Do(ctx context.Context, config Config, shouldRetry Predicate, fn func() error) error {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 1
	}

	var err error
	for attempt := 1; attempt <= config.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err = fn()
		if err == nil {
			return nil
		}
		if attempt == config.MaxAttempts || shouldRetry == nil || !shouldRetry(err) {
			return err
		}

		if config.Interval <= 0 {
			continue
		}
		if !sleep(ctx, config.Interval) {
			return ctx.Err()
		}
	}

	return err
}

func sleep(ctx context.Context, delay time.Duration) bool {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

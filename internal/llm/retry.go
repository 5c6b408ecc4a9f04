package llm

import (
	"context"
	"errors"
	"time"
)

// terminalError marks an error that must not be retried.
type terminalError struct {
	err error
}

func (e terminalError) Error() string { return e.err.Error() }
func (e terminalError) Unwrap() error { return e.err }

// Terminal wraps an error so Retry stops immediately instead of burning
// attempts on something that cannot succeed.
func Terminal(err error) error {
	return terminalError{err: err}
}

// Retry runs fn up to attempts times with a fixed delay between attempts.
// There is no backoff growth: malformed model output is equally likely to
// resolve on the second attempt as the fifth. The last attempt's error is
// returned after exhaustion; context cancellation cuts the wait short.
func Retry[T any](ctx context.Context, attempts int, delay time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		var term terminalError
		if errors.As(err, &term) {
			return zero, term.err
		}
		if attempt == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}
	return zero, lastErr
}

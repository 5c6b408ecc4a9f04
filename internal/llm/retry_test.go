package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestRetrySucceedsAfterFailures(t *testing.T) {
	calls := 0
	got, err := Retry(context.Background(), 3, 0, func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", fmt.Errorf("attempt %d failed", calls)
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("Retry() error = %v", err)
	}
	if got != "ok" {
		t.Errorf("Retry() = %q, want %q", got, "ok")
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestRetryExhaustionReturnsLastError(t *testing.T) {
	calls := 0
	_, err := Retry(context.Background(), 3, 0, func(ctx context.Context) (int, error) {
		calls++
		return 0, fmt.Errorf("failure %d", calls)
	})
	if err == nil {
		t.Fatal("Retry() should fail after exhaustion")
	}
	if err.Error() != "failure 3" {
		t.Errorf("Retry() error = %v, want the last attempt's error", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestRetryTerminalStopsImmediately(t *testing.T) {
	sentinel := errors.New("bad credentials")
	calls := 0
	_, err := Retry(context.Background(), 5, 0, func(ctx context.Context) (int, error) {
		calls++
		return 0, Terminal(sentinel)
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("Retry() error = %v, want %v", err, sentinel)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (terminal error must not be retried)", calls)
	}
}

func TestRetryHonorsContextDuringWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Retry(ctx, 3, time.Minute, func(ctx context.Context) (int, error) {
		return 0, errors.New("transient")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Retry() error = %v, want context.Canceled", err)
	}
}

func TestRetryZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0
	_, err := Retry(context.Background(), 0, 0, func(ctx context.Context) (int, error) {
		calls++
		return 42, nil
	})
	if err != nil {
		t.Fatalf("Retry() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

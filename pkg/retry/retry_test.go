package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"agamOrganics/pkg/retry"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestRetrySucceedsAfterTimeouts(t *testing.T) {
	t.Parallel()

	calls := 0
	p := retry.Policy{MaxRetries: 3, BaseDelay: time.Millisecond}

	err := p.Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return timeoutErr{}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestRetryExhausted(t *testing.T) {
	t.Parallel()

	calls := 0
	p := retry.Policy{MaxRetries: 3, BaseDelay: time.Millisecond}

	err := p.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return context.DeadlineExceeded
	})
	if !errors.Is(err, retry.ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if calls != 4 {
		t.Fatalf("expected 1 attempt + 3 retries, got %d", calls)
	}
}

func TestRetryStopsOnOtherErrors(t *testing.T) {
	t.Parallel()

	calls := 0
	boom := errors.New("constraint violated")
	p := retry.Policy{MaxRetries: 3, BaseDelay: time.Millisecond}

	err := p.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected original error, got %v", err)
	}
	if errors.Is(err, retry.ErrExhausted) {
		t.Fatal("non-timeout error must not be reported as exhausted")
	}
	if calls != 1 {
		t.Fatalf("expected a single attempt, got %d", calls)
	}
}

func TestRetryAttemptTimeout(t *testing.T) {
	t.Parallel()

	p := retry.Policy{MaxRetries: 1, BaseDelay: time.Millisecond, AttemptTimeout: 5 * time.Millisecond}

	err := p.Do(context.Background(), func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	if !errors.Is(err, retry.ErrExhausted) {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

func TestIsTimeout(t *testing.T) {
	t.Parallel()

	if retry.IsTimeout(errors.New("plain")) {
		t.Fatal("plain error is not a timeout")
	}
	if !retry.IsTimeout(timeoutErr{}) {
		t.Fatal("net timeout should be detected")
	}
}

func TestPolicyBudget(t *testing.T) {
	t.Parallel()

	p := retry.Policy{MaxRetries: 3, BaseDelay: time.Second, AttemptTimeout: 5 * time.Second}
	if got := p.Budget(); got != 27*time.Second {
		t.Fatalf("expected 27s, got %v", got)
	}

	if got := (retry.Policy{}).Budget(); got != 0 {
		t.Fatalf("expected 0 for an empty policy, got %v", got)
	}
}

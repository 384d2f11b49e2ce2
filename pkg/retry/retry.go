package retry

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrExhausted is returned when every attempt timed out.
var ErrExhausted = errors.New("retries exhausted")

type Policy struct {
	// MaxRetries is the number of attempts after the first one.
	MaxRetries int
	// BaseDelay doubles after every retry: 1s, 2s, 4s for a 1s base.
	BaseDelay time.Duration
	// AttemptTimeout bounds each individual attempt. Zero means no per-attempt deadline.
	AttemptTimeout time.Duration
}

// Budget is the longest Do can take when every attempt runs to its deadline.
func (p Policy) Budget() time.Duration {
	total := time.Duration(p.MaxRetries+1) * p.AttemptTimeout
	delay := p.BaseDelay
	for range p.MaxRetries {
		total += delay
		delay *= 2
	}
	return total
}

// IsTimeout reports whether err is a transport level timeout.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Do runs fn until it succeeds, fails with a non-timeout error, or the retries run out.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	delay := p.BaseDelay
	var lastErr error

	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return errors.Join(ErrExhausted, lastErr)
			case <-timer.C:
			}
			delay *= 2
		}

		lastErr = p.attempt(ctx, fn)
		if lastErr == nil {
			return nil
		}
		if !IsTimeout(lastErr) {
			return lastErr
		}
		if ctx.Err() != nil {
			break
		}
	}

	return errors.Join(ErrExhausted, lastErr)
}

func (p Policy) attempt(ctx context.Context, fn func(ctx context.Context) error) error {
	if p.AttemptTimeout <= 0 {
		return fn(ctx)
	}

	attemptCtx, cancel := context.WithTimeout(ctx, p.AttemptTimeout)
	defer cancel()

	return fn(attemptCtx)
}

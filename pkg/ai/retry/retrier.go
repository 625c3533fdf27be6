package retry

import (
	"context"
	"time"
)

const (
	DefaultMaxAttempts = 3

	// ceilingBackoff applies to any attempt past the fixed schedule.
	ceilingBackoff = 1500 * time.Millisecond
)

// DefaultBackoffs is the fixed schedule between attempts. Deterministic on
// purpose: no jitter, so retry timing is assertable in tests.
var DefaultBackoffs = []time.Duration{
	400 * time.Millisecond,
	900 * time.Millisecond,
	1800 * time.Millisecond,
}

// Retrier retries a single model invocation with a fixed backoff schedule
// and a bounded attempt count. Only transient errors (see IsTransient) are
// retried; fatal errors propagate immediately.
type Retrier struct {
	MaxAttempts int
	Backoffs    []time.Duration

	// sleep is swappable so tests can observe the schedule without waiting.
	sleep func(ctx context.Context, d time.Duration) error
}

func NewRetrier(maxAttempts int, backoffs []time.Duration) *Retrier {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if len(backoffs) == 0 {
		backoffs = DefaultBackoffs
	}
	return &Retrier{
		MaxAttempts: maxAttempts,
		Backoffs:    backoffs,
		sleep:       sleepCtx,
	}
}

// Do invokes fn up to MaxAttempts times. Each attempt is a clean
// invocation; no state carries over between attempts beyond the delay.
func (r *Retrier) Do(ctx context.Context, fn func() (string, error)) (string, error) {
	var lastErr error
	for attempt := 0; attempt < r.MaxAttempts; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt < r.MaxAttempts-1 && IsTransient(err) {
			if serr := r.sleep(ctx, r.delay(attempt)); serr != nil {
				return "", serr
			}
			continue
		}
		return "", err
	}
	return "", lastErr
}

func (r *Retrier) delay(attempt int) time.Duration {
	if attempt < len(r.Backoffs) {
		return r.Backoffs[attempt]
	}
	return ceilingBackoff
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

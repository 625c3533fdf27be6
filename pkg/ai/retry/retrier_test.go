package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

// stubSleep records requested delays without waiting.
func stubSleep(delays *[]time.Duration) func(context.Context, time.Duration) error {
	return func(_ context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	}
}

func TestRetrierTransientRetriedThenSucceeds(t *testing.T) {
	var delays []time.Duration
	r := NewRetrier(3, nil)
	r.sleep = stubSleep(&delays)

	calls := 0
	result, err := r.Do(context.Background(), func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("model overloaded")
		}
		return "ok", nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "ok" {
		t.Errorf("result = %q, want %q", result, "ok")
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}

	wantDelays := []time.Duration{400 * time.Millisecond, 900 * time.Millisecond}
	if len(delays) != len(wantDelays) {
		t.Fatalf("delays = %v, want %v", delays, wantDelays)
	}
	for i, d := range wantDelays {
		if delays[i] != d {
			t.Errorf("delay[%d] = %v, want %v", i, delays[i], d)
		}
	}
}

func TestRetrierFatalErrorNotRetried(t *testing.T) {
	var delays []time.Duration
	r := NewRetrier(3, nil)
	r.sleep = stubSleep(&delays)

	calls := 0
	fatal := errors.New("401 invalid API key")
	_, err := r.Do(context.Background(), func() (string, error) {
		calls++
		return "", fatal
	})

	if !errors.Is(err, fatal) {
		t.Errorf("err = %v, want %v", err, fatal)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (fatal must not be retried)", calls)
	}
	if len(delays) != 0 {
		t.Errorf("delays = %v, want none", delays)
	}
}

func TestRetrierTransientExhausted(t *testing.T) {
	var delays []time.Duration
	r := NewRetrier(3, nil)
	r.sleep = stubSleep(&delays)

	calls := 0
	transient := errors.New("quota exhausted")
	_, err := r.Do(context.Background(), func() (string, error) {
		calls++
		return "", transient
	})

	if !errors.Is(err, transient) {
		t.Errorf("err = %v, want last transient error", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if len(delays) != 2 {
		t.Errorf("slept %d times, want 2", len(delays))
	}
}

func TestRetrierCeilingBeyondSchedule(t *testing.T) {
	var delays []time.Duration
	r := NewRetrier(5, nil)
	r.sleep = stubSleep(&delays)

	transient := errors.New("rate limited")
	_, _ = r.Do(context.Background(), func() (string, error) {
		return "", transient
	})

	want := []time.Duration{
		400 * time.Millisecond,
		900 * time.Millisecond,
		1800 * time.Millisecond,
		ceilingBackoff,
	}
	if len(delays) != len(want) {
		t.Fatalf("delays = %v, want %v", delays, want)
	}
	for i := range want {
		if delays[i] != want[i] {
			t.Errorf("delay[%d] = %v, want %v", i, delays[i], want[i])
		}
	}
}

func TestRetrierContextCancelledDuringBackoff(t *testing.T) {
	r := NewRetrier(3, nil)

	ctx, cancel := context.WithCancel(context.Background())
	r.sleep = func(ctx context.Context, _ time.Duration) error {
		cancel()
		return ctx.Err()
	}

	_, err := r.Do(ctx, func() (string, error) {
		return "", errors.New("overloaded")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

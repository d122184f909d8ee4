package linkedin

import (
	"context"
	"time"
)

// Timing holds the pauses and waits used while driving the site. The zero
// value never sleeps, which is what tests use.
type Timing struct {
	NavSettle       time.Duration
	ResultsTimeout  time.Duration
	ListSettle      time.Duration
	CardSettle      time.Duration
	ApplyButtonWait time.Duration
	ActionSettle    time.Duration
	StepSettle      time.Duration
	EscapeGap       time.Duration
	BetweenCards    time.Duration
	LoginTimeout    time.Duration
	ManualLoginWait time.Duration
	PollInterval    time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		NavSettle:       3 * time.Second,
		ResultsTimeout:  30 * time.Second,
		ListSettle:      2 * time.Second,
		CardSettle:      2 * time.Second,
		ApplyButtonWait: 3 * time.Second,
		ActionSettle:    time.Second,
		StepSettle:      time.Second,
		EscapeGap:       500 * time.Millisecond,
		BetweenCards:    3 * time.Second,
		LoginTimeout:    60 * time.Second,
		ManualLoginWait: 30 * time.Second,
		PollInterval:    time.Second,
	}
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// waitUntil polls cond until it holds or timeout elapses. cond is always
// checked at least once.
func waitUntil(ctx context.Context, timeout, interval time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	for {
		if cond() {
			return true
		}
		if time.Now().After(deadline) || ctx.Err() != nil {
			return false
		}
		if interval <= 0 {
			interval = 100 * time.Millisecond
		}
		if pause(ctx, interval) != nil {
			return false
		}
	}
}

// Package latency abstracts the simulated network delay used by the mock
// stores. The demo binary installs a fixed delay; tests install the no-op
// variant so they run instantly.
package latency

import (
	"context"
	"time"
)

// Delayer suspends the caller for one simulated round trip.
type Delayer interface {
	// Wait blocks for the configured delay or until ctx is done,
	// returning ctx.Err() in the latter case.
	Wait(ctx context.Context) error
}

type fixed struct {
	d time.Duration
}

// Fixed returns a Delayer that sleeps for d on every call.
func Fixed(d time.Duration) Delayer {
	return &fixed{d: d}
}

func (f *fixed) Wait(ctx context.Context) error {
	if f.d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(f.d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type nop struct{}

// Nop returns a Delayer that never waits.
func Nop() Delayer {
	return nop{}
}

func (nop) Wait(ctx context.Context) error {
	return ctx.Err()
}

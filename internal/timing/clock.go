package timing

import (
	"context"
	"time"
)

// Clock is the time source of the controller.
type Clock interface {
	Now() time.Time
	// SleepUntil blocks until the deadline or until the context is done.
	SleepUntil(ctx context.Context, deadline time.Time) error
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) SleepUntil(ctx context.Context, deadline time.Time) error {
	d := time.Until(deadline)
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

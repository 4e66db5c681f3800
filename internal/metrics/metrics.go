package metrics

import (
	"context"
	"time"
)

// NapMetric is the single consolidated record emitted per completed nap,
// tagged with the actor who closed it. The point time is the stop time.
type NapMetric struct {
	Actor           string
	ActorID         int64
	Start           time.Time
	Stop            time.Time
	DurationSeconds int64
}

// EventPoint is a count sample for a non-nap event.
type EventPoint struct {
	Kind    string
	Actor   string
	ActorID int64
	At      time.Time
}

// Writer is best-effort: callers log failures and never let them block a
// state transition.
type Writer interface {
	WriteNap(ctx context.Context, m NapMetric) error
	WriteEvent(ctx context.Context, p EventPoint) error
	Close()
}

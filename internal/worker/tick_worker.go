package worker

import (
	"context"
	"time"
)

// Ticker advances simulation state by one frame delta
type Ticker interface {
	Tick(ctx context.Context, dt time.Duration)
}

// TickJob drives a Ticker at a fixed frame delta. The scheduler enqueues
// one of these per tick interval, so the delta passed to the simulation
// matches the scheduling cadence.
type TickJob struct {
	ticker Ticker
	dt     time.Duration
}

// NewTickJob creates a tick job with the given frame delta
func NewTickJob(ticker Ticker, dt time.Duration) *TickJob {
	return &TickJob{ticker: ticker, dt: dt}
}

// Process implements Job
func (j *TickJob) Process(ctx context.Context) error {
	j.ticker.Tick(ctx, j.dt)
	return nil
}

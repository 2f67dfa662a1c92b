package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// signalTicker reports each frame tick on a channel so tests can wait
// without sleeping.
type signalTicker struct {
	ticked chan time.Duration
}

func (s *signalTicker) Tick(ctx context.Context, dt time.Duration) {
	s.ticked <- dt
}

type failingJob struct{}

func (failingJob) Process(ctx context.Context) error {
	return errors.New("job blew up")
}

func TestPoolProcessesTickJobs(t *testing.T) {
	pool := NewPool(2, 10)
	pool.Start()
	defer pool.Stop()

	ticker := &signalTicker{ticked: make(chan time.Duration, 4)}
	job := NewTickJob(ticker, 100*time.Millisecond)
	for i := 0; i < 4; i++ {
		pool.Enqueue(job)
	}

	timeout := time.After(time.Second)
	for i := 0; i < 4; i++ {
		select {
		case dt := <-ticker.ticked:
			assert.Equal(t, 100*time.Millisecond, dt)
		case <-timeout:
			t.Fatal("timeout waiting for tick jobs to run")
		}
	}
}

func TestPoolSurvivesFailingJob(t *testing.T) {
	pool := NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	ticker := &signalTicker{ticked: make(chan time.Duration, 1)}
	pool.Enqueue(failingJob{})
	pool.Enqueue(NewTickJob(ticker, 100*time.Millisecond))

	// The worker logs the failure and keeps going
	select {
	case <-ticker.ticked:
	case <-time.After(time.Second):
		t.Fatal("worker did not recover after a failing job")
	}
}

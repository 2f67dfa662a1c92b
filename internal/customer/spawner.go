package customer

import (
	"context"
	"errors"

	"github.com/osse101/CafeRush_Go/internal/domain"
	"github.com/osse101/CafeRush_Go/internal/logger"
)

// SpawnJob attempts one customer spawn per scheduler interval.
// Attempts over capacity are skipped silently, never queued.
type SpawnJob struct {
	manager *Manager
}

// NewSpawnJob creates a spawn job for the scheduler
func NewSpawnJob(manager *Manager) *SpawnJob {
	return &SpawnJob{manager: manager}
}

// Process implements worker.Job
func (j *SpawnJob) Process(ctx context.Context) error {
	_, err := j.manager.Spawn(ctx)
	if errors.Is(err, domain.ErrCustomerCap) {
		logger.FromContext(ctx).Debug("Spawn skipped, cafe at capacity")
		return nil
	}
	return err
}

// SpawnIntervalMS returns the spawn interval for a game mode
func SpawnIntervalMS(mode string) int {
	if interval, ok := SpawnIntervalsMS[mode]; ok {
		return interval
	}
	return DefaultSpawnIntervalMS
}

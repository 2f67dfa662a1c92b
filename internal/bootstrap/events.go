package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/CafeRush_Go/internal/config"
	"github.com/osse101/CafeRush_Go/internal/event"
)

// InitializeEventSystem creates and configures the event bus and resilient
// publisher. The dead-letter directory is created up front; failed deliveries
// are journaled there after retries are exhausted.
// Returns the in-memory bus, the resilient publisher wrapping it, and any
// error encountered.
func InitializeEventSystem(cfg *config.Config) (*event.MemoryBus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	if err := os.MkdirAll(filepath.Dir(cfg.DeadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	dlw, err := event.NewDeadLetterWriter(cfg.DeadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterWriter, err)
	}

	publisher := event.NewResilientPublisher(eventBus, event.DefaultResilientConfig(dlw))

	slog.Info(LogMsgEventSystemInitialized, "deadletter_path", cfg.DeadLetterPath)
	return eventBus, publisher, nil
}

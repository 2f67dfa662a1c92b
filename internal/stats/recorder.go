package stats

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CafeRush_Go/internal/event"
)

const (
	// DefaultRecentSize bounds the recent-interaction cache
	DefaultRecentSize = 128
	// DefaultRecentTTL expires entries that are no longer interesting
	DefaultRecentTTL = 10 * time.Minute
)

// Interaction is one recorded player interaction outcome
type Interaction struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Outcome   string    `json:"outcome"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Recorder keeps a bounded, expiring window of recent interaction results
// for the ops surface. Entries age out on their own; a session reset drops
// the window entirely.
type Recorder struct {
	cache *expirable.LRU[string, Interaction]
}

// NewRecorder creates a recorder with the given cache bounds
func NewRecorder(size int, ttl time.Duration) *Recorder {
	return &Recorder{
		cache: expirable.NewLRU[string, Interaction](size, nil, ttl),
	}
}

// Attach subscribes the recorder to interaction results and session resets
func (r *Recorder) Attach(bus event.Bus) {
	bus.Subscribe(event.InteractionResult, r.onInteractionResult)
	bus.Subscribe(event.SessionReset, func(ctx context.Context, e event.Event) error {
		r.cache.Purge()
		return nil
	})
}

func (r *Recorder) onInteractionResult(ctx context.Context, e event.Event) error {
	p, err := event.DecodePayload[event.InteractionResultPayloadV1](e.Payload)
	if err != nil {
		return err
	}
	r.cache.Add(p.InteractionID, Interaction{
		ID:        p.InteractionID,
		Kind:      p.Kind,
		Outcome:   p.Outcome,
		Message:   p.Message,
		Timestamp: time.Unix(p.Timestamp, 0),
	})
	return nil
}

// Recent returns the recorded interactions, oldest first
func (r *Recorder) Recent() []Interaction {
	return r.cache.Values()
}

// Len returns the number of live entries
func (r *Recorder) Len() int {
	return r.cache.Len()
}

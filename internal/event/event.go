package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CafeRush_Go/internal/domain"
	"github.com/osse101/CafeRush_Go/internal/metrics"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// Core notification event types consumed by presentation collaborators
const (
	CustomerStateChanged Type = "customer.state_changed"
	CustomerRemoved      Type = "customer.removed"
	OrderRegistered      Type = "order.registered"
	OrderRemoved         Type = "order.removed"
	MiniGameStarted      Type = "minigame.started"
	MiniGameProgress     Type = "minigame.progress"
	MiniGameEnded        Type = "minigame.ended"
	EconomyChanged       Type = "economy.changed"
	InteractionResult    Type = "interaction.result"
	SessionReset         Type = "session.reset"
)

// Typed event payloads for type safety

// CustomerStateChangedPayloadV1 carries a customer lifecycle transition
type CustomerStateChangedPayloadV1 struct {
	CustomerID   string `json:"customer_id"`
	CustomerType string `json:"customer_type"`
	OldState     string `json:"old_state,omitempty"`
	NewState     string `json:"new_state"`
	Slot         int    `json:"slot"`
}

// CustomerRemovedPayloadV1 signals a customer has fully left the cafe
type CustomerRemovedPayloadV1 struct {
	CustomerID string `json:"customer_id"`
}

// OrderPayloadV1 carries an order for registration/removal notifications
type OrderPayloadV1 struct {
	Order domain.Order `json:"order"`
}

// MiniGameStartedPayloadV1 describes a newly started mini-game for overlays
type MiniGameStartedPayloadV1 struct {
	Kind        string  `json:"kind"`
	TargetStart float64 `json:"target_start,omitempty"`
	TargetEnd   float64 `json:"target_end,omitempty"`
	Threshold   float64 `json:"threshold,omitempty"`
}

// MiniGameProgressPayloadV1 carries per-tick mini-game state for rendering
type MiniGameProgressPayloadV1 struct {
	Kind    string  `json:"kind"`
	Marker  float64 `json:"marker,omitempty"`
	Counter float64 `json:"counter,omitempty"`
}

// MiniGameEndedPayloadV1 carries the final quality of a mini-game
type MiniGameEndedPayloadV1 struct {
	Kind      string `json:"kind"`
	Quality   int    `json:"quality"`
	Cancelled bool   `json:"cancelled"`
}

// EconomyChangedPayloadV1 carries session totals for HUD updates
type EconomyChangedPayloadV1 struct {
	Money           int     `json:"money"`
	Rating          float64 `json:"rating"`
	CustomersServed int     `json:"customers_served"`
}

// InteractionResultPayloadV1 carries a success/failure notification
type InteractionResultPayloadV1 struct {
	InteractionID string `json:"interaction_id"`
	Kind          string `json:"kind"`
	Outcome       string `json:"outcome"` // "success" or "rejected"
	Message       string `json:"message"`
	Timestamp     int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewCustomerStateChangedEvent creates a customer state transition event
func NewCustomerStateChangedEvent(c domain.Customer, oldState domain.CustomerState) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CustomerStateChanged,
		Payload: CustomerStateChangedPayloadV1{
			CustomerID:   c.ID.String(),
			CustomerType: c.Type,
			OldState:     string(oldState),
			NewState:     string(c.State),
			Slot:         c.Slot,
		},
		Metadata: nil,
	}
}

// NewCustomerRemovedEvent creates a customer removal event
func NewCustomerRemovedEvent(customerID string) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     CustomerRemoved,
		Payload:  CustomerRemovedPayloadV1{CustomerID: customerID},
		Metadata: nil,
	}
}

// NewOrderRegisteredEvent creates an order registration event
func NewOrderRegisteredEvent(order domain.Order) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     OrderRegistered,
		Payload:  OrderPayloadV1{Order: order},
		Metadata: nil,
	}
}

// NewOrderRemovedEvent creates an order removal event
func NewOrderRemovedEvent(order domain.Order) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     OrderRemoved,
		Payload:  OrderPayloadV1{Order: order},
		Metadata: nil,
	}
}

// NewMiniGameStartedEvent creates a mini-game start event
func NewMiniGameStartedEvent(kind string, targetStart, targetEnd, threshold float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MiniGameStarted,
		Payload: MiniGameStartedPayloadV1{
			Kind:        kind,
			TargetStart: targetStart,
			TargetEnd:   targetEnd,
			Threshold:   threshold,
		},
		Metadata: nil,
	}
}

// NewMiniGameProgressEvent creates a mini-game progress event
func NewMiniGameProgressEvent(kind string, marker, counter float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MiniGameProgress,
		Payload: MiniGameProgressPayloadV1{
			Kind:    kind,
			Marker:  marker,
			Counter: counter,
		},
		Metadata: nil,
	}
}

// NewMiniGameEndedEvent creates a mini-game completion/cancellation event
func NewMiniGameEndedEvent(kind string, quality int, cancelled bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MiniGameEnded,
		Payload: MiniGameEndedPayloadV1{
			Kind:      kind,
			Quality:   quality,
			Cancelled: cancelled,
		},
		Metadata: nil,
	}
}

// NewEconomyChangedEvent creates an economy totals event
func NewEconomyChangedEvent(money int, rating float64, customersServed int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EconomyChanged,
		Payload: EconomyChangedPayloadV1{
			Money:           money,
			Rating:          rating,
			CustomersServed: customersServed,
		},
		Metadata: nil,
	}
}

// NewInteractionResultEvent creates an interaction outcome event
func NewInteractionResultEvent(interactionID, kind, outcome, message string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    InteractionResult,
		Payload: InteractionResultPayloadV1{
			InteractionID: interactionID,
			Kind:          kind,
			Outcome:       outcome,
			Message:       message,
			Timestamp:     time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewSessionResetEvent creates a session reset event
func NewSessionResetEvent() Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     SessionReset,
		Payload:  nil,
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously.
// The core is single-mutation-at-a-time, so handlers run inline within
// the originating tick or input callback.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	metrics.EventsPublished.WithLabelValues(string(event.Type)).Inc()

	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

package order

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/CafeRush_Go/internal/domain"
	"github.com/osse101/CafeRush_Go/internal/event"
	"github.com/osse101/CafeRush_Go/internal/logger"
	"github.com/osse101/CafeRush_Go/internal/metrics"
)

// Book holds the active orders in registration order.
// It is the single owner of the customer-to-order mapping: customers carry
// only an order ID, and every lookup goes through the book. This removes
// the desynchronization class where a customer record and the active list
// disagree about order ownership.
type Book struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]domain.Order
	byCustomer map[uuid.UUID]uuid.UUID
	sequence   []uuid.UUID
	bus        event.Bus
}

// NewBook creates an empty order book
func NewBook(bus event.Bus) *Book {
	return &Book{
		byID:       make(map[uuid.UUID]domain.Order),
		byCustomer: make(map[uuid.UUID]uuid.UUID),
		bus:        bus,
	}
}

// Register adds an order to the book and notifies subscribers.
// A customer can hold at most one active order.
func (b *Book) Register(ctx context.Context, order domain.Order) error {
	b.mu.Lock()
	if _, exists := b.byCustomer[order.CustomerID]; exists {
		b.mu.Unlock()
		return fmt.Errorf("%w: customer %s", domain.ErrDuplicateOrder, order.CustomerID)
	}
	b.byID[order.ID] = order
	b.byCustomer[order.CustomerID] = order.ID
	b.sequence = append(b.sequence, order.ID)
	active := len(b.byID)
	b.mu.Unlock()

	metrics.OrdersRegistered.Inc()
	metrics.OrdersActive.Set(float64(active))

	if err := b.bus.Publish(ctx, event.NewOrderRegisteredEvent(order)); err != nil {
		logger.FromContext(ctx).Error("Failed to publish order registered event", "error", err)
	}
	return nil
}

// Get looks up an order by its ID
func (b *Book) Get(orderID uuid.UUID) (domain.Order, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	order, ok := b.byID[orderID]
	return order, ok
}

// ByCustomer looks up a customer's active order
func (b *Book) ByCustomer(customerID uuid.UUID) (domain.Order, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	orderID, ok := b.byCustomer[customerID]
	if !ok {
		return domain.Order{}, false
	}
	order, ok := b.byID[orderID]
	return order, ok
}

// Remove deletes an order from the book and notifies subscribers.
// Returns the removed order, or false if it was not present.
func (b *Book) Remove(ctx context.Context, orderID uuid.UUID) (domain.Order, bool) {
	b.mu.Lock()
	order, ok := b.byID[orderID]
	if !ok {
		b.mu.Unlock()
		return domain.Order{}, false
	}
	delete(b.byID, orderID)
	delete(b.byCustomer, order.CustomerID)
	b.dropFromSequence(orderID)
	active := len(b.byID)
	b.mu.Unlock()

	metrics.OrdersActive.Set(float64(active))

	if err := b.bus.Publish(ctx, event.NewOrderRemovedEvent(order)); err != nil {
		logger.FromContext(ctx).Error("Failed to publish order removed event", "error", err)
	}
	return order, true
}

// RemoveByCustomer deletes a customer's order, if any.
// Used when a customer is force-removed so both records drop in one step.
func (b *Book) RemoveByCustomer(ctx context.Context, customerID uuid.UUID) (domain.Order, bool) {
	b.mu.RLock()
	orderID, ok := b.byCustomer[customerID]
	b.mu.RUnlock()
	if !ok {
		return domain.Order{}, false
	}
	return b.Remove(ctx, orderID)
}

// Active returns the active orders in registration order
func (b *Book) Active() []domain.Order {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]domain.Order, 0, len(b.sequence))
	for _, id := range b.sequence {
		if order, ok := b.byID[id]; ok {
			out = append(out, order)
		}
	}
	return out
}

// Len returns the number of active orders
func (b *Book) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.byID)
}

// Clear drops every order without publishing removal events.
// Only used on session reset, which publishes its own reset event.
func (b *Book) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.byID = make(map[uuid.UUID]domain.Order)
	b.byCustomer = make(map[uuid.UUID]uuid.UUID)
	b.sequence = nil
	metrics.OrdersActive.Set(0)
}

// dropFromSequence removes the ID from the ordered slice; caller holds the lock
func (b *Book) dropFromSequence(orderID uuid.UUID) {
	for i, id := range b.sequence {
		if id == orderID {
			b.sequence = append(b.sequence[:i], b.sequence[i+1:]...)
			return
		}
	}
}

package serve

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/CafeRush_Go/internal/domain"
	"github.com/osse101/CafeRush_Go/internal/economy"
	"github.com/osse101/CafeRush_Go/internal/logger"
	"github.com/osse101/CafeRush_Go/internal/menu"
)

// CustomerManager is the slice of the customer manager the resolver needs
type CustomerManager interface {
	Get(id uuid.UUID) (domain.Customer, bool)
	BeginLeaving(ctx context.Context, id uuid.UUID) error
}

// OrderBook is the slice of the order book the resolver needs
type OrderBook interface {
	ByCustomer(customerID uuid.UUID) (domain.Order, bool)
	Remove(ctx context.Context, orderID uuid.UUID) (domain.Order, bool)
}

// Ledger commits the economic outcome of a resolved order
type Ledger interface {
	CompleteOrder(ctx context.Context, order domain.Order, quality int) economy.Receipt
}

// Result is a successful resolution: the fulfilled order and its receipt
type Result struct {
	Order   domain.Order
	Receipt economy.Receipt
}

// Resolver matches the held item against a customer's order and, on a
// match, commits the outcome in one step: order removed from the book,
// payment committed, customer sent on its exit walk. On a mismatch
// nothing changes and the held item is retained.
type Resolver struct {
	registry  *menu.Registry
	book      OrderBook
	customers CustomerManager
	ledger    Ledger
}

// NewResolver creates an order resolver
func NewResolver(registry *menu.Registry, book OrderBook, customers CustomerManager, ledger Ledger) *Resolver {
	return &Resolver{
		registry:  registry,
		book:      book,
		customers: customers,
		ledger:    ledger,
	}
}

// Serve attempts to fulfil the given customer's order with the held item.
// Preconditions are checked in a fixed sequence so the player always gets
// the most specific rejection.
func (r *Resolver) Serve(ctx context.Context, held *domain.HeldItem, customerID uuid.UUID) (Result, error) {
	if held == nil {
		return Result{}, domain.ErrNothingToServe
	}

	c, ok := r.customers.Get(customerID)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", domain.ErrCustomerNotFound, customerID)
	}
	if c.State == domain.CustomerStateEntering {
		return Result{}, domain.ErrCustomerEntering
	}

	o, ok := r.book.ByCustomer(customerID)
	if !ok {
		// A Waiting customer with no book entry means registration has not
		// landed yet; anything else simply has no order.
		if c.State == domain.CustomerStateWaiting {
			return Result{}, domain.ErrOrderPending
		}
		return Result{}, domain.ErrNoOrder
	}

	if !r.matches(held, o) {
		return Result{}, domain.ErrWrongItem
	}

	// Match: commit in one step. The order leaves the book before the
	// customer starts its exit walk so no second resolution can race it.
	removed, ok := r.book.Remove(ctx, o.ID)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", domain.ErrNoOrder, o.ID)
	}
	receipt := r.ledger.CompleteOrder(ctx, removed, held.Quality)

	if err := r.customers.BeginLeaving(ctx, customerID); err != nil {
		logger.FromContext(ctx).Error("Served customer failed to start leaving",
			"customer_id", customerID, "error", err)
	}

	logger.FromContext(ctx).Info("Order served",
		"customer_id", customerID, "order_id", removed.ID,
		"quality", held.Quality, "total", receipt.Total)
	return Result{Order: removed, Receipt: receipt}, nil
}

// matches applies the fulfilment rules: a pastry satisfies any order with
// a pastry line; a cup satisfies an order when some ordered drink's recipe
// is fully covered by the cup contents, extra ingredients never disqualify.
func (r *Resolver) matches(held *domain.HeldItem, o domain.Order) bool {
	if held.IsPastry() {
		return o.HasPastry()
	}
	for _, drink := range o.Drinks() {
		if r.registry.Satisfies(drink.ID, held.Contents) {
			return true
		}
	}
	return false
}

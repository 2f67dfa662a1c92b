package order

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CafeRush_Go/internal/domain"
	"github.com/osse101/CafeRush_Go/internal/event"
)

func testOrder(customerID uuid.UUID) domain.Order {
	return domain.Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		Items: []domain.MenuItem{
			{ID: "latte", Category: domain.CategoryDrink, BasePrice: 5},
		},
		CreatedAt: time.Now(),
	}
}

func TestBookRegisterAndLookup(t *testing.T) {
	bus := event.NewMemoryBus()
	book := NewBook(bus)
	ctx := context.Background()

	var registered []event.Event
	bus.Subscribe(event.OrderRegistered, func(ctx context.Context, e event.Event) error {
		registered = append(registered, e)
		return nil
	})

	customerID := uuid.New()
	order := testOrder(customerID)

	require.NoError(t, book.Register(ctx, order))
	assert.Equal(t, 1, book.Len())
	assert.Len(t, registered, 1)

	got, ok := book.ByCustomer(customerID)
	require.True(t, ok)
	assert.Equal(t, order.ID, got.ID)

	got, ok = book.Get(order.ID)
	require.True(t, ok)
	assert.Equal(t, customerID, got.CustomerID)
}

func TestBookRejectsSecondOrderForCustomer(t *testing.T) {
	book := NewBook(event.NewMemoryBus())
	ctx := context.Background()

	customerID := uuid.New()
	require.NoError(t, book.Register(ctx, testOrder(customerID)))

	err := book.Register(ctx, testOrder(customerID))
	require.ErrorIs(t, err, domain.ErrDuplicateOrder)
	assert.Equal(t, 1, book.Len(), "failed registration must not change the book")
}

func TestBookRemovePublishesAndPreservesOrder(t *testing.T) {
	bus := event.NewMemoryBus()
	book := NewBook(bus)
	ctx := context.Background()

	var removed []event.Event
	bus.Subscribe(event.OrderRemoved, func(ctx context.Context, e event.Event) error {
		removed = append(removed, e)
		return nil
	})

	first := testOrder(uuid.New())
	second := testOrder(uuid.New())
	third := testOrder(uuid.New())
	require.NoError(t, book.Register(ctx, first))
	require.NoError(t, book.Register(ctx, second))
	require.NoError(t, book.Register(ctx, third))

	gone, ok := book.Remove(ctx, second.ID)
	require.True(t, ok)
	assert.Equal(t, second.ID, gone.ID)
	assert.Len(t, removed, 1)

	// Registration order survives removal from the middle
	active := book.Active()
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, third.ID, active[1].ID)

	// Removing twice is a no-op
	_, ok = book.Remove(ctx, second.ID)
	assert.False(t, ok)
}

func TestBookRemoveByCustomer(t *testing.T) {
	book := NewBook(event.NewMemoryBus())
	ctx := context.Background()

	customerID := uuid.New()
	order := testOrder(customerID)
	require.NoError(t, book.Register(ctx, order))

	gone, ok := book.RemoveByCustomer(ctx, customerID)
	require.True(t, ok)
	assert.Equal(t, order.ID, gone.ID)
	assert.Equal(t, 0, book.Len())

	_, ok = book.ByCustomer(customerID)
	assert.False(t, ok)

	_, ok = book.RemoveByCustomer(ctx, customerID)
	assert.False(t, ok)
}

func TestBookClear(t *testing.T) {
	book := NewBook(event.NewMemoryBus())
	ctx := context.Background()

	require.NoError(t, book.Register(ctx, testOrder(uuid.New())))
	require.NoError(t, book.Register(ctx, testOrder(uuid.New())))

	book.Clear()
	assert.Equal(t, 0, book.Len())
	assert.Empty(t, book.Active())
}

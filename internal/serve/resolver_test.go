package serve

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CafeRush_Go/internal/customer"
	"github.com/osse101/CafeRush_Go/internal/domain"
	"github.com/osse101/CafeRush_Go/internal/economy"
	"github.com/osse101/CafeRush_Go/internal/event"
	"github.com/osse101/CafeRush_Go/internal/menu"
	"github.com/osse101/CafeRush_Go/internal/order"
)

type fixture struct {
	resolver *Resolver
	manager  *customer.Manager
	book     *order.Book
	ledger   *economy.Ledger
	registry *menu.Registry
}

// newFixture wires real components with deterministic randomness.
// Drink index 0 is espresso; pastryRoll below 0.3 appends a croissant.
func newFixture(t *testing.T, pastryRoll float64) *fixture {
	t.Helper()
	bus := event.NewMemoryBus()
	reg := menu.NewRegistry()
	gen := order.NewGenerator(reg).WithRandom(
		func(n int) int { return 0 },
		func() float64 { return pastryRoll },
	)
	book := order.NewBook(bus)
	mgr := customer.NewManager(customer.DefaultConfig(), gen, book, bus).
		WithRandom(func(n int) int { return 0 })
	ledger := economy.NewLedger(reg, bus, 0)
	return &fixture{
		resolver: NewResolver(reg, book, mgr, ledger),
		manager:  mgr,
		book:     book,
		ledger:   ledger,
		registry: reg,
	}
}

// waitingCustomer spawns a customer and ticks it to the Waiting state
func (f *fixture) waitingCustomer(t *testing.T) domain.Customer {
	t.Helper()
	ctx := context.Background()
	c, err := f.manager.Spawn(ctx)
	require.NoError(t, err)
	for i := 0; i < 40; i++ {
		f.manager.Tick(ctx, 100*time.Millisecond)
	}
	got, ok := f.manager.Get(c.ID)
	require.True(t, ok)
	require.Equal(t, domain.CustomerStateWaiting, got.State)
	return got
}

func espressoCup(quality int) *domain.HeldItem {
	cup := domain.NewCup()
	cup.Contents.Add(domain.IngredientEspresso)
	cup.Quality = quality
	return cup
}

func TestServeNothingHeld(t *testing.T) {
	f := newFixture(t, 1)
	c := f.waitingCustomer(t)

	_, err := f.resolver.Serve(context.Background(), nil, c.ID)
	assert.ErrorIs(t, err, domain.ErrNothingToServe)
}

func TestServeUnknownCustomer(t *testing.T) {
	f := newFixture(t, 1)

	_, err := f.resolver.Serve(context.Background(), espressoCup(100), uuid.New())
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestServeEnteringCustomerRejected(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()
	c, err := f.manager.Spawn(ctx)
	require.NoError(t, err)

	_, err = f.resolver.Serve(ctx, espressoCup(100), c.ID)
	assert.ErrorIs(t, err, domain.ErrCustomerEntering)
	assert.Equal(t, 0, f.book.Len())
}

func TestServeWrongItemKeepsState(t *testing.T) {
	f := newFixture(t, 1) // espresso order, no pastry
	c := f.waitingCustomer(t)
	ctx := context.Background()

	// Empty cup satisfies no recipe
	_, err := f.resolver.Serve(ctx, domain.NewCup(), c.ID)
	assert.ErrorIs(t, err, domain.ErrWrongItem)

	// Pastry against a drink-only order
	_, err = f.resolver.Serve(ctx, domain.NewPastry(menu.ItemDonut), c.ID)
	assert.ErrorIs(t, err, domain.ErrWrongItem)

	got, ok := f.manager.Get(c.ID)
	require.True(t, ok)
	assert.Equal(t, domain.CustomerStateWaiting, got.State, "mismatch leaves customer waiting")
	assert.Equal(t, 1, f.book.Len(), "mismatch leaves order active")
}

func TestServeMatchingCupCommits(t *testing.T) {
	f := newFixture(t, 1)
	c := f.waitingCustomer(t)
	ctx := context.Background()

	res, err := f.resolver.Serve(ctx, espressoCup(90), c.ID)
	require.NoError(t, err)
	assert.Equal(t, menu.ItemEspresso, res.Order.Items[0].ID)
	assert.Equal(t, 4, res.Receipt.Payment)
	assert.Equal(t, 1, res.Receipt.Tip)

	got, ok := f.manager.Get(c.ID)
	require.True(t, ok)
	assert.Equal(t, domain.CustomerStateLeaving, got.State)
	assert.Equal(t, 0, f.book.Len())

	money, _, served := f.ledger.Totals()
	assert.Equal(t, 5, money)
	assert.Equal(t, 1, served)
}

func TestServeExtraIngredientsStillMatch(t *testing.T) {
	f := newFixture(t, 1)
	c := f.waitingCustomer(t)

	cup := espressoCup(100)
	cup.Contents.Add(domain.IngredientMilk)
	cup.Contents.Add(domain.IngredientCaramel)

	_, err := f.resolver.Serve(context.Background(), cup, c.ID)
	assert.NoError(t, err, "extra ingredients never disqualify")
}

func TestServePastryFulfilsPastryLine(t *testing.T) {
	f := newFixture(t, 0) // order carries a croissant
	c := f.waitingCustomer(t)
	ctx := context.Background()

	o, ok := f.book.ByCustomer(c.ID)
	require.True(t, ok)
	require.True(t, o.HasPastry())

	// Any pastry satisfies the pastry line
	res, err := f.resolver.Serve(ctx, domain.NewPastry(menu.ItemMuffin), c.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, res.Receipt.Payment, "espresso plus croissant")
}

func TestServeTwiceRejectsSecond(t *testing.T) {
	f := newFixture(t, 1)
	c := f.waitingCustomer(t)
	ctx := context.Background()

	_, err := f.resolver.Serve(ctx, espressoCup(100), c.ID)
	require.NoError(t, err)

	_, err = f.resolver.Serve(ctx, espressoCup(100), c.ID)
	assert.ErrorIs(t, err, domain.ErrNoOrder, "leaving customer has no order")

	_, _, served := f.ledger.Totals()
	assert.Equal(t, 1, served, "payment committed exactly once")
}

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CafeRush_Go/internal/customer"
	"github.com/osse101/CafeRush_Go/internal/domain"
	"github.com/osse101/CafeRush_Go/internal/economy"
	"github.com/osse101/CafeRush_Go/internal/event"
	"github.com/osse101/CafeRush_Go/internal/interact"
	"github.com/osse101/CafeRush_Go/internal/menu"
	"github.com/osse101/CafeRush_Go/internal/minigame"
	"github.com/osse101/CafeRush_Go/internal/order"
	"github.com/osse101/CafeRush_Go/internal/serve"
	"github.com/osse101/CafeRush_Go/internal/session"
	"github.com/osse101/CafeRush_Go/internal/stats"
)

func newTestDeps(t *testing.T) Deps {
	t.Helper()
	bus := event.NewMemoryBus()
	reg := menu.NewRegistry()
	gen := order.NewGenerator(reg).WithRandom(
		func(n int) int { return 0 },
		func() float64 { return 1 },
	)
	book := order.NewBook(bus)
	mgr := customer.NewManager(customer.DefaultConfig(), gen, book, bus)
	ledger := economy.NewLedger(reg, bus, 0)
	runner := minigame.NewRunner(bus)
	entities := interact.NewRegistry()
	resolver := serve.NewResolver(reg, book, mgr, ledger)

	sess := session.New(session.Deps{
		Registry:  reg,
		Entities:  entities,
		Book:      book,
		Customers: mgr,
		Ledger:    ledger,
		Runner:    runner,
		Resolver:  resolver,
		Bus:       bus,
	})

	rec := stats.NewRecorder(stats.DefaultRecentSize, stats.DefaultRecentTTL)
	rec.Attach(bus)

	return Deps{Session: sess, Registry: reg, Recorder: rec}
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoints(t *testing.T) {
	router := newRouter(newTestDeps(t))

	w := get(t, router, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(t, router, "/readyz")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsEndpointServes(t *testing.T) {
	router := newRouter(newTestDeps(t))
	w := get(t, router, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStateEndpointReflectsSession(t *testing.T) {
	deps := newTestDeps(t)
	router := newRouter(deps)
	ctx := context.Background()

	_, err := deps.Session.SpawnCustomer(ctx)
	require.NoError(t, err)
	for i := 0; i < 40; i++ {
		deps.Session.Tick(ctx, 100*time.Millisecond)
	}

	w := get(t, router, "/api/v1/state")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var state domain.GameState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Len(t, state.Customers, 1)
	assert.Len(t, state.ActiveOrders, 1)
	assert.Equal(t, 0, state.Money)
	assert.False(t, state.MiniGameActive)
}

func TestMenuEndpointListsItemsAndUpgrades(t *testing.T) {
	router := newRouter(newTestDeps(t))

	w := get(t, router, "/api/v1/menu")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Items    []domain.MenuItem `json:"items"`
		Upgrades []domain.Upgrade  `json:"upgrades"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Items)
	assert.NotEmpty(t, body.Upgrades)
}

func TestOrdersEndpointEmptyByDefault(t *testing.T) {
	router := newRouter(newTestDeps(t))

	w := get(t, router, "/api/v1/orders")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Orders []domain.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Orders)
}

func TestRecentEndpointCapturesRejections(t *testing.T) {
	deps := newTestDeps(t)
	router := newRouter(deps)

	// An unknown target produces a rejected interaction
	_ = deps.Session.Interact(context.Background(), "jukebox")

	w := get(t, router, "/api/v1/recent")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Interactions []stats.Interaction `json:"interactions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Interactions, 1)
	assert.Equal(t, "rejected", body.Interactions[0].Outcome)
}

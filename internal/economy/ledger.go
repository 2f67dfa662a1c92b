package economy

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/osse101/CafeRush_Go/internal/domain"
	"github.com/osse101/CafeRush_Go/internal/event"
	"github.com/osse101/CafeRush_Go/internal/logger"
	"github.com/osse101/CafeRush_Go/internal/menu"
	"github.com/osse101/CafeRush_Go/internal/metrics"
	"github.com/osse101/CafeRush_Go/internal/utils"
)

// Receipt is the outcome of a completed order
type Receipt struct {
	Payment     int     `json:"payment"`
	Tip         int     `json:"tip"`
	Total       int     `json:"total"`
	RatingDelta float64 `json:"rating_delta"`
}

// Ledger accumulates the session's money, rating and served count.
// It is the sole mutator of those totals: order resolution and upgrade
// purchases are the only entry points, and each publishes an economy
// change notification after committing.
type Ledger struct {
	mu       sync.Mutex
	money    int
	rating   float64
	served   int
	upgrades map[string]bool
	registry *menu.Registry
	bus      event.Bus
}

// NewLedger creates a ledger with the session's opening totals
func NewLedger(registry *menu.Registry, bus event.Bus, startingMoney int) *Ledger {
	return &Ledger{
		money:    startingMoney,
		rating:   DefaultStartingRating,
		upgrades: make(map[string]bool),
		registry: registry,
		bus:      bus,
	}
}

// CompleteOrder commits the payment, tip and rating delta for one resolved
// order. Invoked exactly once per successful resolution.
func (l *Ledger) CompleteOrder(ctx context.Context, order domain.Order, quality int) Receipt {
	payment := 0
	for _, item := range order.Items {
		payment += l.registry.Price(item.ID)
	}

	multiplier := LowTipMultiplier
	ratingDelta := -RatingStep
	switch {
	case quality >= HighQualityThreshold:
		multiplier = HighTipMultiplier
		ratingDelta = RatingStep
	case quality >= MidQualityThreshold:
		multiplier = MidTipMultiplier
		ratingDelta = 0
	}

	tip := int(math.Floor(float64(payment) * TipRate * multiplier))
	total := payment + tip

	l.mu.Lock()
	l.money += total
	l.served++
	l.rating = utils.Clamp(l.rating+ratingDelta, domain.MinRating, domain.MaxRating)
	money, rating, served := l.money, l.rating, l.served
	l.mu.Unlock()

	metrics.CustomersServed.Inc()
	metrics.MoneyEarned.Add(float64(total))
	metrics.CafeRating.Set(rating)

	l.publishChanged(ctx, money, rating, served)
	logger.FromContext(ctx).Info("Order completed",
		"order_id", order.ID, "quality", quality,
		"payment", payment, "tip", tip, "total", total)

	return Receipt{Payment: payment, Tip: tip, Total: total, RatingDelta: ratingDelta}
}

// BuyUpgrade purchases an upgrade. The purchase is rejected entirely when
// funds are insufficient; money never goes negative.
func (l *Ledger) BuyUpgrade(ctx context.Context, id string) (domain.Upgrade, error) {
	upgrade, ok := l.registry.Upgrade(id)
	if !ok {
		return domain.Upgrade{}, fmt.Errorf("%w: %s", domain.ErrUpgradeNotFound, id)
	}

	l.mu.Lock()
	if l.upgrades[id] {
		l.mu.Unlock()
		return domain.Upgrade{}, fmt.Errorf("%w: %s", domain.ErrUpgradeOwned, id)
	}
	if l.money < upgrade.Price {
		l.mu.Unlock()
		return domain.Upgrade{}, fmt.Errorf("%w: %s costs %d", domain.ErrInsufficientFunds, id, upgrade.Price)
	}
	l.money -= upgrade.Price
	l.upgrades[id] = true
	money, rating, served := l.money, l.rating, l.served
	l.mu.Unlock()

	metrics.MoneySpent.Add(float64(upgrade.Price))

	l.publishChanged(ctx, money, rating, served)
	logger.FromContext(ctx).Info("Upgrade purchased", "upgrade", id, "price", upgrade.Price)
	return upgrade, nil
}

// HasUpgrade reports whether the upgrade is owned this session
func (l *Ledger) HasUpgrade(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.upgrades[id]
}

// OwnedUpgrades returns the owned upgrade IDs
func (l *Ledger) OwnedUpgrades() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, 0, len(l.upgrades))
	for _, u := range l.registry.Upgrades() {
		if l.upgrades[u.ID] {
			out = append(out, u.ID)
		}
	}
	return out
}

// Totals returns the current session totals
func (l *Ledger) Totals() (money int, rating float64, served int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.money, l.rating, l.served
}

// Reset restores the opening totals for a fresh session
func (l *Ledger) Reset(ctx context.Context, startingMoney int) {
	l.mu.Lock()
	l.money = startingMoney
	l.rating = DefaultStartingRating
	l.served = 0
	l.upgrades = make(map[string]bool)
	money, rating, served := l.money, l.rating, l.served
	l.mu.Unlock()

	metrics.CafeRating.Set(rating)
	l.publishChanged(ctx, money, rating, served)
}

func (l *Ledger) publishChanged(ctx context.Context, money int, rating float64, served int) {
	if err := l.bus.Publish(ctx, event.NewEconomyChangedEvent(money, rating, served)); err != nil {
		logger.FromContext(ctx).Error("Failed to publish economy change", "error", err)
	}
}

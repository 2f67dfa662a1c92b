package order

import (
	"github.com/osse101/CafeRush_Go/internal/domain"
	"github.com/osse101/CafeRush_Go/internal/menu"
	"github.com/osse101/CafeRush_Go/internal/utils"
)

// PastryChance is the probability that an order includes a pastry
const PastryChance = 0.3

// Generator produces randomized order contents.
// Pure given the registry and the injected random sources; no side effects.
type Generator struct {
	registry *menu.Registry
	index    func(int) int  // uniform index into a slice, injectable for testing
	roll     func() float64 // uniform [0,1), injectable for testing
}

// NewGenerator creates a generator backed by the default RNG
func NewGenerator(registry *menu.Registry) *Generator {
	return &Generator{
		registry: registry,
		index:    utils.RandomIndex,
		roll:     utils.RandomFloat,
	}
}

// WithRandom overrides the random sources. Used by tests and by callers
// that need reproducible orders.
func (g *Generator) WithRandom(index func(int) int, roll func() float64) *Generator {
	g.index = index
	g.roll = roll
	return g
}

// Generate returns the items of a new order: always exactly one drink
// chosen uniformly from the drink menu, plus one uniformly chosen pastry
// with probability PastryChance.
func (g *Generator) Generate() []domain.MenuItem {
	drinks := g.registry.Drinks()
	items := []domain.MenuItem{drinks[g.index(len(drinks))]}

	if g.roll() < PastryChance {
		pastries := g.registry.Pastries()
		items = append(items, pastries[g.index(len(pastries))])
	}

	return items
}

package menu

import (
	"github.com/osse101/CafeRush_Go/internal/domain"
)

// Registry is the immutable menu/recipe/upgrade catalog.
// Built once at startup; safe for concurrent reads.
type Registry struct {
	items    map[string]domain.MenuItem
	recipes  map[string]domain.Recipe
	upgrades map[string]domain.Upgrade
	ordered  []domain.MenuItem
	drinks   []domain.MenuItem
	pastries []domain.MenuItem
}

// NewRegistry builds the registry from the static menu tables
func NewRegistry() *Registry {
	r := &Registry{
		items:    make(map[string]domain.MenuItem, len(menuItems)),
		recipes:  make(map[string]domain.Recipe, len(recipes)),
		upgrades: make(map[string]domain.Upgrade, len(upgrades)),
	}

	for _, item := range menuItems {
		r.items[item.ID] = item
		r.ordered = append(r.ordered, item)
		switch item.Category {
		case domain.CategoryDrink:
			r.drinks = append(r.drinks, item)
		case domain.CategoryPastry:
			r.pastries = append(r.pastries, item)
		}
	}
	for _, recipe := range recipes {
		r.recipes[recipe.DrinkID] = recipe
	}
	for _, upgrade := range upgrades {
		r.upgrades[upgrade.ID] = upgrade
	}

	return r
}

// Item looks up a menu item by ID
func (r *Registry) Item(id string) (domain.MenuItem, bool) {
	item, ok := r.items[id]
	return item, ok
}

// Items returns all menu items in definition order
func (r *Registry) Items() []domain.MenuItem {
	out := make([]domain.MenuItem, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Drinks returns all drink-category items in definition order
func (r *Registry) Drinks() []domain.MenuItem {
	out := make([]domain.MenuItem, len(r.drinks))
	copy(out, r.drinks)
	return out
}

// Pastries returns all pastry-category items in definition order
func (r *Registry) Pastries() []domain.MenuItem {
	out := make([]domain.MenuItem, len(r.pastries))
	copy(out, r.pastries)
	return out
}

// Recipe looks up the recipe for a drink ID
func (r *Registry) Recipe(drinkID string) (domain.Recipe, bool) {
	recipe, ok := r.recipes[drinkID]
	return recipe, ok
}

// Upgrade looks up an upgrade by ID
func (r *Registry) Upgrade(id string) (domain.Upgrade, bool) {
	upgrade, ok := r.upgrades[id]
	return upgrade, ok
}

// Upgrades returns all upgrade definitions
func (r *Registry) Upgrades() []domain.Upgrade {
	out := make([]domain.Upgrade, 0, len(upgrades))
	out = append(out, upgrades...)
	return out
}

// Price returns the menu price for an item ID, falling back to the
// default price for unlisted items.
func (r *Registry) Price(id string) int {
	if item, ok := r.items[id]; ok {
		return item.BasePrice
	}
	return domain.DefaultItemPrice
}

// Satisfies reports whether the cup contents fulfill the recipe of the
// given drink. Unknown drinks never match.
func (r *Registry) Satisfies(drinkID string, contents domain.CupContents) bool {
	recipe, ok := r.recipes[drinkID]
	if !ok {
		return false
	}
	return recipe.MatchedBy(contents)
}

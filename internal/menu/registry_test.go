package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CafeRush_Go/internal/domain"
)

func TestRegistrySplitsCategories(t *testing.T) {
	reg := NewRegistry()

	drinks := reg.Drinks()
	pastries := reg.Pastries()

	require.NotEmpty(t, drinks)
	require.NotEmpty(t, pastries)

	for _, d := range drinks {
		assert.Equal(t, domain.CategoryDrink, d.Category)
	}
	for _, p := range pastries {
		assert.Equal(t, domain.CategoryPastry, p.Category)
	}
	assert.Len(t, reg.Items(), len(drinks)+len(pastries))
}

func TestEveryDrinkHasRecipe(t *testing.T) {
	reg := NewRegistry()

	for _, drink := range reg.Drinks() {
		recipe, ok := reg.Recipe(drink.ID)
		require.True(t, ok, "drink %s has no recipe", drink.ID)
		assert.NotEmpty(t, recipe.Required, "recipe for %s requires nothing", drink.ID)
	}
}

func TestPriceFallback(t *testing.T) {
	reg := NewRegistry()

	latte, ok := reg.Item(ItemLatte)
	require.True(t, ok)
	assert.Equal(t, latte.BasePrice, reg.Price(ItemLatte))

	assert.Equal(t, domain.DefaultItemPrice, reg.Price("off_menu_special"))
}

func TestSatisfiesExactMatch(t *testing.T) {
	reg := NewRegistry()

	var cup domain.CupContents
	cup.Add(domain.IngredientEspresso)
	cup.Add(domain.IngredientMilk)

	assert.True(t, reg.Satisfies(ItemLatte, cup))
	assert.True(t, reg.Satisfies(ItemCappuccino, cup))
	assert.False(t, reg.Satisfies(ItemMocha, cup), "mocha needs chocolate")
	assert.False(t, reg.Satisfies("off_menu_special", cup), "unknown drink never matches")
}

// Adding ingredients to a cup never turns a match into a non-match
func TestSatisfiesMonotonic(t *testing.T) {
	reg := NewRegistry()

	var cup domain.CupContents
	cup.Add(domain.IngredientEspresso)
	require.True(t, reg.Satisfies(ItemEspresso, cup))

	// Pile on every remaining ingredient; the espresso match must survive
	for _, ing := range domain.Ingredients {
		cup.Add(ing)
		assert.True(t, reg.Satisfies(ItemEspresso, cup),
			"adding %s broke the espresso match", ing)
	}

	// A fully loaded cup matches every recipe
	for _, drink := range reg.Drinks() {
		assert.True(t, reg.Satisfies(drink.ID, cup))
	}
}

func TestUpgradeLookup(t *testing.T) {
	reg := NewRegistry()

	upgrade, ok := reg.Upgrade(UpgradeBurrGrinder)
	require.True(t, ok)
	assert.Positive(t, upgrade.Price)

	_, ok = reg.Upgrade("espresso_robot")
	assert.False(t, ok)

	assert.Len(t, reg.Upgrades(), 3)
}

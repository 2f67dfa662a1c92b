package menu

import "github.com/osse101/CafeRush_Go/internal/domain"

// Menu item IDs
const (
	ItemEspresso     = "espresso"
	ItemLatte        = "latte"
	ItemCappuccino   = "cappuccino"
	ItemVanillaLatte = "vanilla_latte"
	ItemCaramelLatte = "caramel_latte"
	ItemMocha        = "mocha"

	ItemCroissant = "croissant"
	ItemMuffin    = "muffin"
	ItemCookie    = "cookie"
	ItemDonut     = "donut"
)

// Upgrade IDs
const (
	UpgradeBurrGrinder     = "burr_grinder"
	UpgradePressureSteamer = "pressure_steamer"
	UpgradePastryDisplay   = "pastry_display"
)

// menuItems is the static menu, defined at startup and never mutated
var menuItems = []domain.MenuItem{
	{ID: ItemEspresso, DisplayName: "Espresso", Icon: "☕", Category: domain.CategoryDrink, BasePrice: 4},
	{ID: ItemLatte, DisplayName: "Latte", Icon: "🥛", Category: domain.CategoryDrink, BasePrice: 5},
	{ID: ItemCappuccino, DisplayName: "Cappuccino", Icon: "☕", Category: domain.CategoryDrink, BasePrice: 5},
	{ID: ItemVanillaLatte, DisplayName: "Vanilla Latte", Icon: "🌼", Category: domain.CategoryDrink, BasePrice: 6},
	{ID: ItemCaramelLatte, DisplayName: "Caramel Latte", Icon: "🍯", Category: domain.CategoryDrink, BasePrice: 6},
	{ID: ItemMocha, DisplayName: "Mocha", Icon: "🍫", Category: domain.CategoryDrink, BasePrice: 6},

	{ID: ItemCroissant, DisplayName: "Croissant", Icon: "🥐", Category: domain.CategoryPastry, BasePrice: 3},
	{ID: ItemMuffin, DisplayName: "Muffin", Icon: "🧁", Category: domain.CategoryPastry, BasePrice: 3},
	{ID: ItemCookie, DisplayName: "Cookie", Icon: "🍪", Category: domain.CategoryPastry, BasePrice: 2},
	{ID: ItemDonut, DisplayName: "Donut", Icon: "🍩", Category: domain.CategoryPastry, BasePrice: 2},
}

// recipes maps each drink to its required ingredient flags
var recipes = []domain.Recipe{
	{DrinkID: ItemEspresso, Required: []domain.Ingredient{domain.IngredientEspresso}},
	{DrinkID: ItemLatte, Required: []domain.Ingredient{domain.IngredientEspresso, domain.IngredientMilk}},
	{DrinkID: ItemCappuccino, Required: []domain.Ingredient{domain.IngredientEspresso, domain.IngredientMilk}},
	{DrinkID: ItemVanillaLatte, Required: []domain.Ingredient{domain.IngredientEspresso, domain.IngredientMilk, domain.IngredientVanilla}},
	{DrinkID: ItemCaramelLatte, Required: []domain.Ingredient{domain.IngredientEspresso, domain.IngredientMilk, domain.IngredientCaramel}},
	{DrinkID: ItemMocha, Required: []domain.Ingredient{domain.IngredientEspresso, domain.IngredientMilk, domain.IngredientChocolate}},
}

// upgrades are the purchasable cafe improvements
var upgrades = []domain.Upgrade{
	{ID: UpgradeBurrGrinder, DisplayName: "Burr Grinder", Description: "A forgiving grind widens the espresso pull window", Price: 40},
	{ID: UpgradePressureSteamer, DisplayName: "Pressure Steamer", Description: "Froths milk with fewer pumps", Price: 35},
	{ID: UpgradePastryDisplay, DisplayName: "Pastry Display", Description: "Draws one more customer into the cafe", Price: 50},
}

package domain

// Category classifies a menu item
type Category string

const (
	CategoryDrink  Category = "drink"
	CategoryPastry Category = "pastry"
)

// MenuItem represents a sellable item on the cafe menu.
// Items are immutable and defined at startup in the menu registry.
type MenuItem struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Icon        string   `json:"icon"`
	Category    Category `json:"category"`
	BasePrice   int      `json:"base_price"`
}

// IsDrink returns true for drink-category items
func (m MenuItem) IsDrink() bool {
	return m.Category == CategoryDrink
}

// IsPastry returns true for pastry-category items
func (m MenuItem) IsPastry() bool {
	return m.Category == CategoryPastry
}

// Ingredient is a flag a cup can accumulate via station interactions
type Ingredient string

const (
	IngredientEspresso  Ingredient = "espresso"
	IngredientMilk      Ingredient = "milk"
	IngredientVanilla   Ingredient = "vanilla"
	IngredientCaramel   Ingredient = "caramel"
	IngredientChocolate Ingredient = "chocolate"
)

// Ingredients lists every ingredient flag in a stable order
var Ingredients = []Ingredient{
	IngredientEspresso,
	IngredientMilk,
	IngredientVanilla,
	IngredientCaramel,
	IngredientChocolate,
}

// CupContents records which ingredients have been added to a cup.
// All flags default to false on a fresh cup.
type CupContents struct {
	Espresso  bool `json:"espresso"`
	Milk      bool `json:"milk"`
	Vanilla   bool `json:"vanilla"`
	Caramel   bool `json:"caramel"`
	Chocolate bool `json:"chocolate"`
}

// Has reports whether the given ingredient flag is set
func (c CupContents) Has(ing Ingredient) bool {
	switch ing {
	case IngredientEspresso:
		return c.Espresso
	case IngredientMilk:
		return c.Milk
	case IngredientVanilla:
		return c.Vanilla
	case IngredientCaramel:
		return c.Caramel
	case IngredientChocolate:
		return c.Chocolate
	}
	return false
}

// Add sets the given ingredient flag. Unknown ingredients are ignored.
func (c *CupContents) Add(ing Ingredient) {
	switch ing {
	case IngredientEspresso:
		c.Espresso = true
	case IngredientMilk:
		c.Milk = true
	case IngredientVanilla:
		c.Vanilla = true
	case IngredientCaramel:
		c.Caramel = true
	case IngredientChocolate:
		c.Chocolate = true
	}
}

// Recipe maps a drink to its required ingredient flags.
// A recipe matches a cup iff every required flag is present;
// extra flags in the cup never disqualify a match.
type Recipe struct {
	DrinkID  string       `json:"drink_id"`
	Required []Ingredient `json:"required"`
}

// MatchedBy reports whether the cup contents satisfy the recipe
func (r Recipe) MatchedBy(c CupContents) bool {
	for _, ing := range r.Required {
		if !c.Has(ing) {
			return false
		}
	}
	return true
}

// Upgrade is a purchasable cafe improvement
type Upgrade struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
}

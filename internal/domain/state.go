package domain

// GameState is a read-only snapshot of one play session, consumed by
// presentation collaborators (HUD, order panel). Presentation never
// mutates core state; all mutation flows through the session operations.
type GameState struct {
	Money           int        `json:"money"`
	Rating          float64    `json:"rating"`
	CustomersServed int        `json:"customers_served"`
	ActiveOrders    []Order    `json:"active_orders"`
	Customers       []Customer `json:"customers"`
	OwnedUpgrades   []string   `json:"owned_upgrades"`
	HeldItem        *HeldItem  `json:"held_item,omitempty"`
	MiniGameActive  bool       `json:"minigame_active"`
}

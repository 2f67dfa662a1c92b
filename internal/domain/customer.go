package domain

import (
	"time"

	"github.com/google/uuid"
)

// CustomerState represents the current lifecycle state of a customer
type CustomerState string

const (
	CustomerStateEntering CustomerState = "Entering"
	CustomerStateWaiting  CustomerState = "Waiting"
	CustomerStateLeaving  CustomerState = "Leaving"
)

// CustomerTypes is the cosmetic palette a spawned customer is drawn from
var CustomerTypes = []string{
	"regular",
	"student",
	"commuter",
	"tourist",
	"critic",
}

// Customer represents a visitor moving through the cafe.
// The customer record only carries the ID of its order; the order book is
// the single owner of the customer-to-order mapping.
type Customer struct {
	ID             uuid.UUID     `json:"id"`
	Type           string        `json:"type"`
	State          CustomerState `json:"state"`
	Slot           int           `json:"slot"`
	OrderID        uuid.UUID     `json:"order_id,omitempty"`
	DistanceToSlot float64       `json:"distance_to_slot"`
	ExitRemaining  float64       `json:"exit_remaining"`
	SpawnedAt      time.Time     `json:"spawned_at"`
}

// Order is a customer's pending request: one drink plus an optional pastry.
// Created atomically with the Waiting transition, destroyed at resolution.
type Order struct {
	ID         uuid.UUID  `json:"id"`
	CustomerID uuid.UUID  `json:"customer_id"`
	Items      []MenuItem `json:"items"`
	CreatedAt  time.Time  `json:"created_at"`
}

// HasPastry reports whether any order line is a pastry
func (o Order) HasPastry() bool {
	for _, item := range o.Items {
		if item.IsPastry() {
			return true
		}
	}
	return false
}

// Drinks returns the drink lines of the order
func (o Order) Drinks() []MenuItem {
	var drinks []MenuItem
	for _, item := range o.Items {
		if item.IsDrink() {
			drinks = append(drinks, item)
		}
	}
	return drinks
}

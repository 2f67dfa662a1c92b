package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Serve errors
	ErrMsgNothingToServe   = "nothing to serve"
	ErrMsgCustomerEntering = "customer is still walking"
	ErrMsgNoOrder          = "no order for customer"
	ErrMsgOrderPending     = "order not yet registered"
	ErrMsgWrongItem        = "wrong item"

	// Held item errors
	ErrMsgHandsFull   = "hands are full"
	ErrMsgNothingHeld = "nothing is held"
	ErrMsgCupRequired = "a cup is required"

	// Customer errors
	ErrMsgCustomerNotFound = "customer not found"
	ErrMsgCustomerCap      = "customer capacity reached"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgUpgradeNotFound   = "upgrade not found"
	ErrMsgUpgradeOwned      = "upgrade already owned"

	// Menu errors
	ErrMsgItemNotFound = "item not found"

	// Mini-game errors
	ErrMsgMiniGameActive   = "a mini-game is already active"
	ErrMsgNoActiveMiniGame = "no active mini-game"

	// Entity errors
	ErrMsgUnknownEntity = "unknown entity"

	// Order errors
	ErrMsgDuplicateOrder = "customer already has an order"
)

// Common domain errors.
// These errors should be used consistently across all layers of the core.
// Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Serve errors
	ErrNothingToServe   = errors.New(ErrMsgNothingToServe)
	ErrCustomerEntering = errors.New(ErrMsgCustomerEntering)
	ErrNoOrder          = errors.New(ErrMsgNoOrder)
	ErrOrderPending     = errors.New(ErrMsgOrderPending)
	ErrWrongItem        = errors.New(ErrMsgWrongItem)

	// Held item errors
	ErrHandsFull   = errors.New(ErrMsgHandsFull)
	ErrNothingHeld = errors.New(ErrMsgNothingHeld)
	ErrCupRequired = errors.New(ErrMsgCupRequired)

	// Customer errors
	ErrCustomerNotFound = errors.New(ErrMsgCustomerNotFound)
	ErrCustomerCap      = errors.New(ErrMsgCustomerCap)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrUpgradeNotFound   = errors.New(ErrMsgUpgradeNotFound)
	ErrUpgradeOwned      = errors.New(ErrMsgUpgradeOwned)

	// Menu errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Mini-game errors
	ErrMiniGameActive   = errors.New(ErrMsgMiniGameActive)
	ErrNoActiveMiniGame = errors.New(ErrMsgNoActiveMiniGame)

	// Entity errors
	ErrUnknownEntity = errors.New(ErrMsgUnknownEntity)

	// Order errors
	ErrDuplicateOrder = errors.New(ErrMsgDuplicateOrder)
)

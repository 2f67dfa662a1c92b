package session

// Upgrade effects applied by the session when wiring interactions
const (
	// BurrGrinderClosePad replaces the timing game's close padding once
	// the burr grinder is owned, making near misses more forgiving.
	BurrGrinderClosePad = 14.0

	// PressureSteamerThreshold replaces the tap threshold once the
	// pressure steamer is owned.
	PressureSteamerThreshold = 10.0

	// PastryDisplayExtraSeats is added to the customer cap when the
	// pastry display is purchased.
	PastryDisplayExtraSeats = 1
)

// Interaction kind labels for result events and metrics
const (
	InteractionStation  = "station"
	InteractionCustomer = "customer"
	InteractionTrash    = "trash"
	InteractionMiniGame = "minigame"
	InteractionUpgrade  = "upgrade"
)

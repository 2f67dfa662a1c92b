package economy

// Tip math
const (
	// TipRate is the base tip fraction of the order payment
	TipRate = 0.2

	// HighTipMultiplier applies when quality >= HighQualityThreshold
	HighTipMultiplier = 1.3
	// MidTipMultiplier applies when quality >= MidQualityThreshold
	MidTipMultiplier = 1.1
	// LowTipMultiplier applies below MidQualityThreshold
	LowTipMultiplier = 0.8

	HighQualityThreshold = 80
	MidQualityThreshold  = 50
)

// RatingStep is the rating delta applied per completed order
const RatingStep = 0.1

// DefaultStartingMoney is the session's opening balance
const DefaultStartingMoney = 0

// DefaultStartingRating is the session's opening rating
const DefaultStartingRating = 3.0

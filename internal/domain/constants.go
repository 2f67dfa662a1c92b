package domain

// Quality bounds and the discrete scores mini-games produce
const (
	MinQuality = 0
	MaxQuality = 100

	QualityPerfect = 100
	QualityGood    = 70
	QualityClose   = 40
	QualityMiss    = 10
)

// Rating bounds
const (
	MinRating = 1.0
	MaxRating = 5.0
)

// DefaultItemPrice is charged for order items missing from the menu registry
const DefaultItemPrice = 4

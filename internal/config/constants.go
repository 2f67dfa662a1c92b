package config

// Configuration defaults
const (
	DefaultPort           = 8080
	DefaultMode           = "standard"
	DefaultTickRateMS     = 100
	DefaultMaxCustomers   = 4
	DefaultQueueSlots     = 4
	DefaultStartingMoney  = 0
	DefaultDeadLetterPath = "logs/dead_letter_events.jsonl"
	DefaultLogDir         = "logs"
)

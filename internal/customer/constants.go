package customer

// Default cafe layout tuning
const (
	DefaultMaxCustomers    = 4
	DefaultQueueSlots      = 4
	DefaultWalkSpeed       = 2.0 // distance units per second
	DefaultEntryDistance   = 6.0
	DefaultArriveThreshold = 0.2
	DefaultExitDuration    = 2.5 // seconds
)

// Spawn interval table per game mode, in milliseconds
var SpawnIntervalsMS = map[string]int{
	"relaxed":  9000,
	"standard": 6000,
	"rush":     3500,
}

// DefaultSpawnIntervalMS is used when the mode is missing from the table
const DefaultSpawnIntervalMS = 6000

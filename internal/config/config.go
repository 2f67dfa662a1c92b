package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=DEBUG INFO WARN ERROR"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"oneof=development staging production"`

	// Mode selects the spawn pacing table
	Mode string `validate:"oneof=relaxed standard rush"`

	// TickRateMS is the frame interval driving walks, decay and markers
	TickRateMS int `validate:"min=10,max=1000"`

	// SpawnIntervalMS overrides the mode's spawn pacing when positive
	SpawnIntervalMS int `validate:"min=0"`

	MaxCustomers  int `validate:"min=1,max=16"`
	QueueSlots    int `validate:"min=1,max=16"`
	StartingMoney int `validate:"min=0"`

	// DeadLetterPath is where failed event deliveries are journaled
	DeadLetterPath string `validate:"required"`

	// LogDir is where session log files are written
	LogDir string `validate:"required"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		Mode:           getEnv("GAME_MODE", DefaultMode),
		DeadLetterPath: getEnv("DEAD_LETTER_PATH", DefaultDeadLetterPath),
		LogDir:         getEnv("LOG_DIR", DefaultLogDir),
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", DefaultPort); err != nil {
		return nil, err
	}
	if cfg.TickRateMS, err = getEnvInt("TICK_RATE_MS", DefaultTickRateMS); err != nil {
		return nil, err
	}
	if cfg.SpawnIntervalMS, err = getEnvInt("SPAWN_INTERVAL_MS", 0); err != nil {
		return nil, err
	}
	if cfg.MaxCustomers, err = getEnvInt("MAX_CUSTOMERS", DefaultMaxCustomers); err != nil {
		return nil, err
	}
	if cfg.QueueSlots, err = getEnvInt("QUEUE_SLOTS", DefaultQueueSlots); err != nil {
		return nil, err
	}
	if cfg.StartingMoney, err = getEnvInt("STARTING_MONEY", DefaultStartingMoney); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return parsed, nil
}

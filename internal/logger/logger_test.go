package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInteractionID(t *testing.T) {
	id1 := GenerateInteractionID()
	id2 := GenerateInteractionID()

	assert.NotEmpty(t, id1)
	assert.NotEmpty(t, id2)
	assert.NotEqual(t, id1, id2, "interaction IDs should be unique")
}

func TestInteractionIDRoundTrip(t *testing.T) {
	ctx := context.Background()

	_, ok := InteractionIDFromContext(ctx)
	assert.False(t, ok, "empty context should have no interaction ID")

	id := GenerateInteractionID()
	ctx = WithInteractionID(ctx, id)

	got, ok := InteractionIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestFromContextWithoutID(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
}

func TestConfigLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected string
	}{
		{"debug", "DEBUG"},
		{"info", "INFO"},
		{"warn", "WARN"},
		{"warning", "WARN"},
		{"error", "ERROR"},
		{"unknown", "INFO"},
		{"", "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := Config{Level: tt.level}
			assert.Equal(t, tt.expected, cfg.LogLevel().String())
		})
	}
}

func TestConfigIsJSON(t *testing.T) {
	assert.True(t, Config{Format: "json"}.IsJSON())
	assert.True(t, Config{Format: "JSON"}.IsJSON())
	assert.False(t, Config{Format: "text"}.IsJSON())
	assert.False(t, Config{}.IsJSON())
}

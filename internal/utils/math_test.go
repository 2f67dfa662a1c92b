package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomIndex(t *testing.T) {
	assert.Equal(t, 0, RandomIndex(0))
	assert.Equal(t, 0, RandomIndex(1))

	for i := 0; i < 100; i++ {
		v := RandomIndex(4)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 4)
	}
}

func TestRandomFloat(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := RandomFloat()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		min      float64
		max      float64
		expected float64
	}{
		{"within bounds", 3.5, 1, 5, 3.5},
		{"below min", 0.5, 1, 5, 1},
		{"above max", 6.2, 1, 5, 5},
		{"at min", 1, 1, 5, 1},
		{"at max", 5, 1, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clamp(tt.v, tt.min, tt.max))
		})
	}
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 0, ClampInt(-3, 0, 100))
	assert.Equal(t, 100, ClampInt(150, 0, 100))
	assert.Equal(t, 42, ClampInt(42, 0, 100))
}

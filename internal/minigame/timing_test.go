package minigame

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CafeRush_Go/internal/domain"
)

// rollFor returns a random source producing a window starting at start
func rollFor(start float64) func() float64 {
	return func() float64 {
		return (start - TimingTargetMin) / (TimingTargetMax - TimingTargetMin)
	}
}

func TestTimingGameScoreTiers(t *testing.T) {
	// Window [35,55], perfect zone [40,50], close zone [25,65]
	tests := []struct {
		name     string
		marker   float64
		expected int
	}{
		{"perfect center", 47, domain.QualityPerfect},
		{"perfect lower edge", 40, domain.QualityPerfect},
		{"perfect upper edge", 50, domain.QualityPerfect},
		{"good below perfect", 38, domain.QualityGood},
		{"good at window start", 35, domain.QualityGood},
		{"good at window end", 55, domain.QualityGood},
		{"close below window", 28, domain.QualityClose},
		{"close at pad edge", 25, domain.QualityClose},
		{"close above window", 63, domain.QualityClose},
		{"miss far left", 5, domain.QualityMiss},
		{"miss far right", 90, domain.QualityMiss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := NewTimingGame(DefaultTimingConfig(), rollFor(35))
			game.marker = tt.marker

			quality, done := game.Input(time.Now())
			require.True(t, done, "one input must end the game")
			assert.Equal(t, tt.expected, quality)
			assert.Equal(t, StateCompleted, game.State())
		})
	}
}

func TestTimingGameWindowBounds(t *testing.T) {
	// Roll 0 and roll just under 1 pin the window to its configured range
	game := NewTimingGame(DefaultTimingConfig(), func() float64 { return 0 })
	start, end := game.Target()
	assert.Equal(t, TimingTargetMin, start)
	assert.Equal(t, TimingTargetMin+TimingWindowSize, end)

	game = NewTimingGame(DefaultTimingConfig(), func() float64 { return 0.999 })
	start, _ = game.Target()
	assert.Less(t, start, TimingTargetMax)
	assert.GreaterOrEqual(t, start, TimingTargetMin)
}

func TestTimingGameMarkerOscillates(t *testing.T) {
	game := NewTimingGame(DefaultTimingConfig(), rollFor(35))

	// Walk exactly to the top: the tick that overshoots clamps to the maximum
	ticksToTop := int(math.Ceil((MarkerMax - MarkerMin) / TimingStep))
	for i := 0; i < ticksToTop; i++ {
		game.Tick()
		assert.LessOrEqual(t, game.Marker(), MarkerMax)
		assert.GreaterOrEqual(t, game.Marker(), MarkerMin)
	}
	require.Equal(t, MarkerMax, game.Marker())

	game.Tick()
	assert.Less(t, game.Marker(), MarkerMax, "marker should reverse at the top")

	// Keep descending until it bounces off the floor again
	for game.Marker() > MarkerMin {
		game.Tick()
	}
	game.Tick()
	assert.Greater(t, game.Marker(), MarkerMin, "marker should reverse at the bottom")
}

func TestTimingGameSingleInput(t *testing.T) {
	game := NewTimingGame(DefaultTimingConfig(), rollFor(35))
	game.marker = 47

	quality, done := game.Input(time.Now())
	require.True(t, done)
	require.Equal(t, domain.QualityPerfect, quality)

	// A second input is not consumed
	quality, done = game.Input(time.Now())
	assert.False(t, done)
	assert.Zero(t, quality)

	// Ticking a finished game is a no-op
	before := game.Marker()
	game.Tick()
	assert.Equal(t, before, game.Marker())
}

func TestTimingGameCancel(t *testing.T) {
	game := NewTimingGame(DefaultTimingConfig(), rollFor(35))
	game.Cancel()

	assert.Equal(t, StateCancelled, game.State())
	assert.Zero(t, game.Result())

	_, done := game.Input(time.Now())
	assert.False(t, done, "cancelled game accepts no input")
}

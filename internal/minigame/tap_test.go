package minigame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CafeRush_Go/internal/domain"
)

// finishTapGame taps until the threshold, asserting no early completion
func finishTapGame(t *testing.T, game *TapGame, at time.Time) int {
	t.Helper()
	for i := 0; i < int(TapThreshold)-1; i++ {
		quality, done := game.Input(at)
		require.False(t, done, "tap %d should not complete the game", i+1)
		require.Zero(t, quality)
	}
	quality, done := game.Input(at)
	require.True(t, done, "threshold tap must complete the game")
	return quality
}

func TestTapGameElapsedTiers(t *testing.T) {
	start := time.Now()

	tests := []struct {
		name     string
		elapsed  time.Duration
		expected int
	}{
		{"fast finish", 1500 * time.Millisecond, domain.QualityPerfect},
		{"medium finish", 3000 * time.Millisecond, domain.QualityGood},
		{"slow finish", 5000 * time.Millisecond, domain.QualityClose},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := NewTapGame(DefaultTapConfig(), start)
			quality := finishTapGame(t, game, start.Add(tt.elapsed))
			assert.Equal(t, tt.expected, quality)
			assert.Equal(t, StateCompleted, game.State())
		})
	}
}

func TestTapGameDecayFloorsAtZero(t *testing.T) {
	game := NewTapGame(DefaultTapConfig(), time.Now())

	// Decay with no taps must never go negative or complete the game
	for i := 0; i < 1000; i++ {
		game.Tick()
	}
	assert.Equal(t, 0.0, game.Counter())
	assert.Equal(t, StateActive, game.State())
}

func TestTapGameDecayErodesProgress(t *testing.T) {
	start := time.Now()
	game := NewTapGame(DefaultTapConfig(), start)

	_, done := game.Input(start)
	require.False(t, done)
	require.Equal(t, 1.0, game.Counter())

	game.Tick()
	assert.InDelta(t, 1.0-TapDecay, game.Counter(), 1e-9)
}

func TestTapGameDecayCostsExtraTaps(t *testing.T) {
	start := time.Now()
	game := NewTapGame(DefaultTapConfig(), start)

	// With a decay tick after every tap, the counter reaches the threshold
	// on tap n when n - (n-1)*decay >= threshold, i.e. tap 13 instead of 12
	taps := 0
	for {
		taps++
		_, done := game.Input(start.Add(time.Second))
		if done {
			break
		}
		game.Tick()
		require.Less(t, taps, 50, "game never completed")
	}
	assert.Equal(t, 13, taps)
	assert.Equal(t, domain.QualityPerfect, game.Result())
}

func TestTapGameCancel(t *testing.T) {
	game := NewTapGame(DefaultTapConfig(), time.Now())
	game.Input(time.Now())

	game.Cancel()
	assert.Equal(t, StateCancelled, game.State())
	assert.Zero(t, game.Result())

	_, done := game.Input(time.Now())
	assert.False(t, done)
}

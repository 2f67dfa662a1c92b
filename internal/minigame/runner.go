package minigame

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/CafeRush_Go/internal/domain"
	"github.com/osse101/CafeRush_Go/internal/event"
	"github.com/osse101/CafeRush_Go/internal/logger"
	"github.com/osse101/CafeRush_Go/internal/metrics"
	"github.com/osse101/CafeRush_Go/internal/utils"
)

// Runner owns the single modal mini-game slot. Interactions are modal:
// at most one game exists at a time, and starting a second is rejected.
type Runner struct {
	mu   sync.Mutex
	game Game
	bus  event.Bus
	now  func() time.Time
	roll func() float64
}

// NewRunner creates a runner with the default clock and RNG
func NewRunner(bus event.Bus) *Runner {
	return &Runner{
		bus:  bus,
		now:  time.Now,
		roll: utils.RandomFloat,
	}
}

// WithClock overrides the time source. Used by tests.
func (r *Runner) WithClock(now func() time.Time) *Runner {
	r.now = now
	return r
}

// WithRandom overrides the random source. Used by tests.
func (r *Runner) WithRandom(roll func() float64) *Runner {
	r.roll = roll
	return r
}

// StartTiming begins an espresso-pull timing game
func (r *Runner) StartTiming(ctx context.Context, cfg TimingConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.game != nil {
		return domain.ErrMiniGameActive
	}

	game := NewTimingGame(cfg, r.roll)
	r.game = game

	start, end := game.Target()
	r.publish(ctx, event.NewMiniGameStartedEvent(string(KindTiming), start, end, 0))
	return nil
}

// StartTap begins a milk-frothing tap game
func (r *Runner) StartTap(ctx context.Context, cfg TapConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.game != nil {
		return domain.ErrMiniGameActive
	}

	r.game = NewTapGame(cfg, r.now())

	r.publish(ctx, event.NewMiniGameStartedEvent(string(KindTap), 0, 0, cfg.Threshold))
	return nil
}

// Active reports whether a game is in progress
func (r *Runner) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.game != nil
}

// Kind returns the kind of the active game, if any
func (r *Runner) Kind() (Kind, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.game == nil {
		return "", false
	}
	return r.game.Kind(), true
}

// Tick advances the active game one frame and publishes progress
func (r *Runner) Tick(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.game == nil {
		return
	}
	r.game.Tick()
	marker, counter := r.game.Progress()
	r.publish(ctx, event.NewMiniGameProgressEvent(string(r.game.Kind()), marker, counter))
}

// Input feeds one player input to the active game. When the game completes,
// the slot is cleared and the final quality is returned with done=true.
func (r *Runner) Input(ctx context.Context) (int, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.game == nil {
		return 0, false, domain.ErrNoActiveMiniGame
	}

	quality, done := r.game.Input(r.now())
	if !done {
		marker, counter := r.game.Progress()
		r.publish(ctx, event.NewMiniGameProgressEvent(string(r.game.Kind()), marker, counter))
		return 0, false, nil
	}

	kind := r.game.Kind()
	r.game = nil

	metrics.MiniGameQuality.WithLabelValues(string(kind)).Observe(float64(quality))
	r.publish(ctx, event.NewMiniGameEndedEvent(string(kind), quality, false))
	return quality, true, nil
}

// Cancel aborts the active game. The caller applies no contents or result;
// the pre-game state is restored aside from UI reset.
func (r *Runner) Cancel(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.game == nil {
		return domain.ErrNoActiveMiniGame
	}

	kind := r.game.Kind()
	r.game.Cancel()
	r.game = nil

	r.publish(ctx, event.NewMiniGameEndedEvent(string(kind), 0, true))
	return nil
}

func (r *Runner) publish(ctx context.Context, e event.Event) {
	if err := r.bus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Error("Failed to publish mini-game event", "type", e.Type, "error", err)
	}
}

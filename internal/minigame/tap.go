package minigame

import (
	"time"

	"github.com/osse101/CafeRush_Go/internal/domain"
)

// TapConfig tunes the milk-frothing tap game
type TapConfig struct {
	Threshold     float64       // taps required to complete
	Decay         float64       // counter decay per frame tick
	PerfectWithin time.Duration // completion under this elapsed scores perfect
	GoodWithin    time.Duration // completion under this elapsed scores good
}

// DefaultTapConfig returns the standard milk-frothing tuning
func DefaultTapConfig() TapConfig {
	return TapConfig{
		Threshold:     TapThreshold,
		Decay:         TapDecay,
		PerfectWithin: TapPerfectWithin,
		GoodWithin:    TapGoodWithin,
	}
}

// TapGame counts rapid inputs against a decaying counter.
// Completion fires only from an input reaching the threshold; decay alone
// can never finish the game.
type TapGame struct {
	cfg       TapConfig
	state     State
	counter   float64
	startedAt time.Time
	result    int
}

// NewTapGame starts a tap game; startedAt anchors the elapsed-time scoring
func NewTapGame(cfg TapConfig, startedAt time.Time) *TapGame {
	return &TapGame{
		cfg:       cfg,
		state:     StateActive,
		startedAt: startedAt,
	}
}

// Kind returns KindTap
func (g *TapGame) Kind() Kind { return KindTap }

// State returns the current lifecycle state
func (g *TapGame) State() State { return g.state }

// Counter returns the current tap counter
func (g *TapGame) Counter() float64 { return g.counter }

// Tick decays the counter one frame, floored at zero
func (g *TapGame) Tick() {
	if g.state != StateActive {
		return
	}
	g.counter -= g.cfg.Decay
	if g.counter < 0 {
		g.counter = 0
	}
}

// Input registers one tap. When the counter reaches the threshold the game
// completes with a quality based on elapsed time since start.
func (g *TapGame) Input(now time.Time) (int, bool) {
	if g.state != StateActive {
		return 0, false
	}
	g.counter++
	if g.counter < g.cfg.Threshold {
		return 0, false
	}

	elapsed := now.Sub(g.startedAt)
	switch {
	case elapsed < g.cfg.PerfectWithin:
		g.result = domain.QualityPerfect
	case elapsed < g.cfg.GoodWithin:
		g.result = domain.QualityGood
	default:
		g.result = domain.QualityClose
	}
	g.state = StateCompleted
	return g.result, true
}

// Cancel aborts the game with quality zero
func (g *TapGame) Cancel() {
	if g.state != StateActive {
		return
	}
	g.state = StateCancelled
	g.result = 0
}

// Result returns the final quality (zero until completed)
func (g *TapGame) Result() int { return g.result }

// Progress returns the tap counter for overlay rendering
func (g *TapGame) Progress() (float64, float64) { return 0, g.counter }

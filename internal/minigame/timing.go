package minigame

import (
	"time"

	"github.com/osse101/CafeRush_Go/internal/domain"
)

// TimingConfig tunes the espresso-pull timing game
type TimingConfig struct {
	Step         float64 // marker movement per frame tick
	WindowSize   float64 // width of the target window
	PerfectInset float64 // inset from the window edges for a perfect score
	ClosePad     float64 // padding outside the window that still scores close
	TargetMin    float64 // lower bound for the randomized window start
	TargetMax    float64 // upper bound (exclusive) for the randomized window start
}

// DefaultTimingConfig returns the standard espresso-pull tuning
func DefaultTimingConfig() TimingConfig {
	return TimingConfig{
		Step:         TimingStep,
		WindowSize:   TimingWindowSize,
		PerfectInset: TimingPerfectInset,
		ClosePad:     TimingClosePad,
		TargetMin:    TimingTargetMin,
		TargetMax:    TimingTargetMax,
	}
}

// TimingGame oscillates a marker across 0..100 and scores a single input
// against a randomized target window chosen at start.
type TimingGame struct {
	cfg         TimingConfig
	state       State
	marker      float64
	direction   float64
	targetStart float64
	result      int
}

// NewTimingGame starts a timing game with its window start drawn uniformly
// from [TargetMin, TargetMax) using the supplied random source.
func NewTimingGame(cfg TimingConfig, roll func() float64) *TimingGame {
	return &TimingGame{
		cfg:         cfg,
		state:       StateActive,
		direction:   1,
		targetStart: cfg.TargetMin + roll()*(cfg.TargetMax-cfg.TargetMin),
	}
}

// Kind returns KindTiming
func (g *TimingGame) Kind() Kind { return KindTiming }

// State returns the current lifecycle state
func (g *TimingGame) State() State { return g.state }

// Target returns the scoring window [start, end]
func (g *TimingGame) Target() (start, end float64) {
	return g.targetStart, g.targetStart + g.cfg.WindowSize
}

// Marker returns the current marker position
func (g *TimingGame) Marker() float64 { return g.marker }

// Tick advances the marker one frame, bouncing at 0 and 100
func (g *TimingGame) Tick() {
	if g.state != StateActive {
		return
	}
	g.marker += g.cfg.Step * g.direction
	if g.marker >= MarkerMax {
		g.marker = MarkerMax
		g.direction = -1
	} else if g.marker <= MarkerMin {
		g.marker = MarkerMin
		g.direction = 1
	}
}

// Input consumes the single input sample: the marker position is evaluated
// once and the game ends immediately with the resulting quality.
func (g *TimingGame) Input(now time.Time) (int, bool) {
	if g.state != StateActive {
		return 0, false
	}
	g.result = g.score(g.marker)
	g.state = StateCompleted
	return g.result, true
}

// score maps a marker position to a quality tier
func (g *TimingGame) score(pos float64) int {
	start, end := g.Target()
	switch {
	case pos >= start+g.cfg.PerfectInset && pos <= end-g.cfg.PerfectInset:
		return domain.QualityPerfect
	case pos >= start && pos <= end:
		return domain.QualityGood
	case pos >= start-g.cfg.ClosePad && pos <= end+g.cfg.ClosePad:
		return domain.QualityClose
	default:
		return domain.QualityMiss
	}
}

// Cancel aborts the game with quality zero
func (g *TimingGame) Cancel() {
	if g.state != StateActive {
		return
	}
	g.state = StateCancelled
	g.result = 0
}

// Result returns the final quality (zero until completed)
func (g *TimingGame) Result() int { return g.result }

// Progress returns the marker position for overlay rendering
func (g *TimingGame) Progress() (float64, float64) { return g.marker, 0 }

package minigame

import "time"

// Marker bounds for the timing game
const (
	MarkerMin = 0.0
	MarkerMax = 100.0
)

// Timing game tuning
const (
	TimingStep         = 1.2
	TimingWindowSize   = 20.0
	TimingPerfectInset = 5.0
	TimingClosePad     = 10.0
	TimingTargetMin    = 30.0
	TimingTargetMax    = 50.0
)

// Tap game tuning
const (
	TapThreshold     = 12.0
	TapDecay         = 0.03
	TapPerfectWithin = 2000 * time.Millisecond
	TapGoodWithin    = 3500 * time.Millisecond
)

// Package minigame implements the two timing mini-games as explicit state
// machines. A game moves Idle -> Active -> Completed/Cancelled and hands its
// quality score back to the caller as a return value; nothing is applied to
// the held item until the caller decides to.
package minigame

import "time"

// Kind identifies a mini-game variant
type Kind string

const (
	KindTiming Kind = "timing"
	KindTap    Kind = "tap"
)

// State is the lifecycle state of a mini-game
type State string

const (
	StateIdle      State = "Idle"
	StateActive    State = "Active"
	StateCompleted State = "Completed"
	StateCancelled State = "Cancelled"
)

// Game is a single modal scoring state machine.
// Tick advances one frame; Input consumes one player input and reports the
// final quality once the game completes.
type Game interface {
	Kind() Kind
	State() State
	Tick()
	Input(now time.Time) (quality int, done bool)
	Cancel()
	Result() int
	Progress() (marker, counter float64)
}

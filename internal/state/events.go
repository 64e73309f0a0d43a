package state

import (
	"time"

	"go-pairs/internal/deck"
)

const (
	// RevealDelay is how long two face-up cards stay visible before they are
	// evaluated, and again before a mismatch is turned back over.
	RevealDelay = 500 * time.Millisecond
	// TickInterval drives the elapsed-time display.
	TickInterval = time.Second
)

// Presenter receives every change the display needs to reflect.
type Presenter interface {
	Render(d deck.Deck, m deck.Mode)
	LivesChanged(lives int)
	TimeChanged(elapsed string)
}

// Scheduler delivers msg back to the owner of the State after the delay.
// Delivery must happen on the same goroutine that drives the State.
type Scheduler interface {
	Schedule(after time.Duration, msg any)
}

// EvaluateMsg asks the session that scheduled it to compare its two face-up cards.
type EvaluateMsg struct {
	Generation uint64
}

// UnflipMsg asks the session that scheduled it to turn a mismatch face down.
type UnflipMsg struct {
	Generation uint64
}

// TickMsg advances the timer of a given session and timer run by one second.
type TickMsg struct {
	Generation uint64
	Run        uint64
}

// GenerationOf extracts the session generation a scheduled message belongs to.
func GenerationOf(msg any) (uint64, bool) {
	switch m := msg.(type) {
	case EvaluateMsg:
		return m.Generation, true
	case UnflipMsg:
		return m.Generation, true
	case TickMsg:
		return m.Generation, true
	}
	return 0, false
}

package state

import (
	"go-pairs/internal/deck"
)

// Card returns the card with the given id, or nil.
func (s *State) Card(id int) *deck.Card {
	i := s.Deck.Index(id)
	if i < 0 {
		return nil
	}
	return &s.Deck[i]
}

// Pending returns copies of the face-up, unresolved cards in flip order.
func (s *State) Pending() []deck.Card {
	out := make([]deck.Card, 0, len(s.Flipped))
	for _, id := range s.Flipped {
		if c := s.Card(id); c != nil {
			out = append(out, *c)
		}
	}
	return out
}

func (s State) AllPairsFound() bool {
	return s.Matches >= s.Config.PairCount
}

func (s State) PairsLeft() int {
	return s.Config.PairCount - s.Matches
}

// IsActive reports whether the session is started and not yet decided.
func (s State) IsActive() bool {
	return s.Started && !s.IsOver()
}

func (s State) IsOver() bool {
	return s.Win || s.Loss
}

// Phase is the current step of the turn, mostly useful in logs and tests.
func (s State) Phase() string {
	return s.FSM.Current()
}

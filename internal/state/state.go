package state

import (
	"context"

	"go-pairs/internal/deck"

	"github.com/looplab/fsm"
	"github.com/rs/zerolog"
)

// StartingLives is the number of mismatches a player can afford.
const StartingLives = 5

// FSM states.
const (
	phaseIdle       = "idle"
	phaseReady      = "ready"
	phaseOneUp      = "oneUp"
	phaseEvaluating = "evaluating"
	phaseResetting  = "resetting"
	phaseWon        = "won"
	phaseLost       = "lost"
)

// State is one session: the board plus everything the flip, match and timer
// handlers read and write. A new session gets a new State.
type State struct {
	Mode       deck.Mode
	Config     deck.Config
	Deck       deck.Deck
	Flipped    []int // ids of face-up, unresolved cards
	Matches    int
	Lives      int
	Started    bool
	Win        bool
	Loss       bool
	Timer      Timer
	Generation uint64
	FSM        *fsm.FSM

	// OnEnd runs once, when the session reaches won or lost.
	OnEnd func(win bool)

	presenter Presenter
	scheduler Scheduler
	log       zerolog.Logger
}

func NewState(
	mode deck.Mode,
	d deck.Deck,
	generation uint64,
	presenter Presenter,
	scheduler Scheduler,
	log zerolog.Logger,
) *State {
	s := &State{
		Mode:       mode,
		Config:     deck.ConfigFor(mode),
		Deck:       d,
		Flipped:    make([]int, 0, 2),
		Lives:      StartingLives,
		Generation: generation,
		presenter:  presenter,
		scheduler:  scheduler,
		log:        log,
	}

	s.FSM = fsm.NewFSM(
		phaseIdle,
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s
}

// Begin marks the session as started and opens the board for flips.
func (s *State) Begin() {
	s.Started = true
	_ = s.FSM.Event(context.Background(), "begin")
}

// Flip turns card id face up. Requests for unknown, face-up or matched
// cards, or while two cards are pending, are ignored.
func (s *State) Flip(id int) {
	if !s.FSM.Can("flip") {
		s.log.Debug().Int("card_id", id).Str("phase", s.FSM.Current()).Msg("flip ignored")
		return
	}
	card := s.Card(id)
	if card == nil || card.Flipped || card.Matched {
		s.log.Debug().Int("card_id", id).Msg("flip ignored: card not flippable")
		return
	}

	card.Flipped = true
	s.Flipped = append(s.Flipped, id)
	s.presenter.Render(s.Deck, s.Mode)

	_ = s.FSM.Event(context.Background(), "flip")
}

// Evaluate resolves the two pending cards into a match, a mismatch, a win
// or a loss.
func (s *State) Evaluate() {
	if !s.FSM.Is(phaseEvaluating) || len(s.Flipped) != 2 {
		return
	}
	ctx := context.Background()
	first, second := s.Card(s.Flipped[0]), s.Card(s.Flipped[1])

	if first.Value == second.Value {
		first.Matched = true
		second.Matched = true
		s.Matches++
		s.Flipped = s.Flipped[:0]
		s.log.Info().Str("value", first.Value).Int("matches", s.Matches).Msg("pair matched")
		s.presenter.Render(s.Deck, s.Mode)

		if s.AllPairsFound() {
			_ = s.FSM.Event(ctx, "win")
			return
		}
		_ = s.FSM.Event(ctx, "matched")
		return
	}

	s.Lives--
	s.log.Info().Str("first", first.Value).Str("second", second.Value).Int("lives", s.Lives).Msg("mismatch")
	s.presenter.LivesChanged(s.Lives)

	if s.Lives <= 0 {
		s.Lives = 0
		s.Flipped = s.Flipped[:0]
		_ = s.FSM.Event(ctx, "lose")
		return
	}
	_ = s.FSM.Event(ctx, "mismatched")
}

// Unflip turns a mismatched pair face down again.
func (s *State) Unflip() {
	if !s.FSM.Is(phaseResetting) {
		return
	}
	for _, id := range s.Flipped {
		if c := s.Card(id); c != nil {
			c.Flipped = false
		}
	}
	s.Flipped = s.Flipped[:0]
	s.presenter.Render(s.Deck, s.Mode)
	_ = s.FSM.Event(context.Background(), "unflipped")
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "begin", Src: []string{phaseIdle}, Dst: phaseReady},

		// Flipping
		{Name: "flip", Src: []string{phaseReady}, Dst: phaseOneUp},
		{Name: "flip", Src: []string{phaseOneUp}, Dst: phaseEvaluating},

		// Resolution
		{Name: "matched", Src: []string{phaseEvaluating}, Dst: phaseReady},
		{Name: "mismatched", Src: []string{phaseEvaluating}, Dst: phaseResetting},
		{Name: "unflipped", Src: []string{phaseResetting}, Dst: phaseReady},

		// End of session
		{Name: "win", Src: []string{phaseEvaluating}, Dst: phaseWon},
		{Name: "lose", Src: []string{phaseEvaluating}, Dst: phaseLost},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_" + phaseEvaluating: func(ctx context.Context, e *fsm.Event) {
			s.scheduler.Schedule(RevealDelay, EvaluateMsg{Generation: s.Generation})
		},
		"enter_" + phaseResetting: func(ctx context.Context, e *fsm.Event) {
			s.scheduler.Schedule(RevealDelay, UnflipMsg{Generation: s.Generation})
		},
		"enter_" + phaseWon: func(ctx context.Context, e *fsm.Event) {
			s.Win = true
			s.finish(true)
		},
		"enter_" + phaseLost: func(ctx context.Context, e *fsm.Event) {
			s.Loss = true
			s.finish(false)
		},
	}
}

func (s *State) finish(win bool) {
	s.StopTimer()
	s.log.Info().Bool("win", win).Int("elapsed", s.Timer.Elapsed).Int("lives", s.Lives).Msg("session over")
	if s.OnEnd != nil {
		s.OnEnd(win)
	}
}

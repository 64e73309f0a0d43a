package game

import (
	"math/rand"

	"go-pairs/internal/deck"
	"go-pairs/internal/history"
	"go-pairs/internal/state"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// View is everything the game reports to the presentation layer.
type View interface {
	state.Presenter
	SessionEnded(r history.Result)
}

// Recorder persists finished sessions.
type Recorder interface {
	Append(r history.Result) error
}

// Game orchestrates sessions, independent of the UI. It is not safe for
// concurrent use: every call, including Handle for scheduled messages,
// must come from the same goroutine.
type Game struct {
	State     *state.State
	SessionID string

	generation uint64
	view       View
	scheduler  state.Scheduler
	recorder   Recorder
	rng        *rand.Rand
	log        zerolog.Logger
}

// NewGame wires a controller. No session runs until NewSession.
func NewGame(view View, scheduler state.Scheduler, recorder Recorder, rng *rand.Rand, log zerolog.Logger) *Game {
	return &Game{
		view:      view,
		scheduler: scheduler,
		recorder:  recorder,
		rng:       rng,
		log:       log,
	}
}

// NewSession discards whatever session was running and starts a fresh one
// in mode m.
func (g *Game) NewSession(m deck.Mode) {
	if g.State != nil {
		g.State.StopTimer()
	}
	g.generation++
	g.SessionID = uuid.NewString()

	sessionLog := g.log.With().
		Str("session_id", g.SessionID).
		Uint64("generation", g.generation).
		Str("mode", m.String()).
		Logger()

	s := state.NewState(m, deck.Build(m, g.rng), g.generation, g.view, g.scheduler, sessionLog)
	s.OnEnd = func(win bool) { g.endSession(s, win) }
	g.State = s

	s.Begin()
	g.view.Render(s.Deck, s.Mode)
	g.view.LivesChanged(s.Lives)
	g.view.TimeChanged(state.FormatElapsed(0))
	s.StartTimer()

	sessionLog.Info().Int("pairs", s.Config.PairCount).Msg("session started")
}

// Restart starts a new session in the current mode. It does nothing before
// the first session.
func (g *Game) Restart() {
	if g.State == nil {
		return
	}
	g.NewSession(g.State.Mode)
}

// Flip forwards a user flip to the running session.
func (g *Game) Flip(id int) {
	if g.State == nil {
		return
	}
	g.State.Flip(id)
}

// Handle delivers a message previously passed to the scheduler. Messages
// from an earlier session are dropped. It reports whether msg was one of
// the game's own messages.
func (g *Game) Handle(msg any) bool {
	gen, ok := state.GenerationOf(msg)
	if !ok {
		return false
	}
	if g.State == nil || gen != g.generation {
		g.log.Debug().Uint64("stale_generation", gen).Uint64("generation", g.generation).Msgf("dropped %T", msg)
		return true
	}

	switch msg := msg.(type) {
	case state.EvaluateMsg:
		g.State.Evaluate()
	case state.UnflipMsg:
		g.State.Unflip()
	case state.TickMsg:
		g.State.Tick(msg)
	}
	return true
}

// Generation identifies the current session; it grows with every NewSession.
func (g *Game) Generation() uint64 {
	return g.generation
}

func (g *Game) endSession(s *state.State, win bool) {
	s.StopTimer()

	r := history.Result{
		Win:   win,
		Time:  s.Timer.Elapsed,
		Lives: s.Lives,
		Mode:  s.Mode.String(),
	}
	if g.recorder != nil {
		if err := g.recorder.Append(r); err != nil {
			g.log.Error().Err(err).Str("session_id", g.SessionID).Msg("could not save result")
		}
	}
	g.view.SessionEnded(r)
}

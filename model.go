package main

import (
	"fmt"
	"math/rand"
	"time"

	"go-pairs/internal/deck"
	"go-pairs/internal/game"
	"go-pairs/internal/history"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

type screen int

const (
	screenMenu screen = iota
	screenPlay
)

// LocalState is the Bubble Tea model. It is also the game's View and
// Scheduler, so every game callback runs inside Update.
type LocalState struct {
	Game    *game.Game
	History *history.Store

	screen    screen
	startMode *deck.Mode
	plain     bool // no persistent history: plain end message, no panel

	// Snapshot of what the game last reported.
	board   deck.Deck
	mode    deck.Mode
	lives   int
	elapsed string
	message string
	won     bool

	cursor        int
	entries       []history.Result
	historyCursor int

	keys    keyMap
	help    help.Model
	pending []tea.Cmd
	log     zerolog.Logger
}

func initialModel(store *history.Store, rng *rand.Rand, startMode *deck.Mode, plain bool, log zerolog.Logger) *LocalState {
	s := &LocalState{
		History:   store,
		startMode: startMode,
		plain:     plain,
		elapsed:   "0:00",
		keys:      newKeyMap(),
		help:      help.New(),
		log:       log,
	}
	s.Game = game.NewGame(s, s, store, rng, log)
	s.entries = store.List()
	return s
}

// Schedule turns a delayed game message into a Tea command.
func (s *LocalState) Schedule(after time.Duration, msg any) {
	s.pending = append(s.pending, tea.Tick(after, func(time.Time) tea.Msg {
		return msg
	}))
}

func (s *LocalState) Render(d deck.Deck, m deck.Mode) {
	s.board = d.Clone()
	s.mode = m
	if s.cursor >= len(s.board) {
		s.cursor = 0
	}
}

func (s *LocalState) LivesChanged(lives int)     { s.lives = lives }
func (s *LocalState) TimeChanged(elapsed string) { s.elapsed = elapsed }

func (s *LocalState) SessionEnded(r history.Result) {
	s.won = r.Win
	s.message = endMessage(r, s.plain)
	s.entries = s.History.List()
	s.historyCursor = max(len(s.entries)-1, 0)
	s.screen = screenMenu
}

func endMessage(r history.Result, plain bool) string {
	m, err := deck.ParseMode(r.Mode)
	if err != nil {
		m = deck.Letters
	}
	if plain {
		if r.Win {
			return "You won!"
		}
		return "You lost!"
	}
	if r.Win {
		return fmt.Sprintf("Congratulations! You completed the %s %s game in %d seconds with %d lives left.",
			m.Difficulty(), m, r.Time, r.Lives)
	}
	return fmt.Sprintf("Sorry, you lost. Try again in %s %s mode!", m.Difficulty(), m)
}

func (s *LocalState) startSession(m deck.Mode) {
	s.message = ""
	s.cursor = 0
	s.screen = screenPlay
	s.Game.NewSession(m)
}

func (s *LocalState) flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

func (s *LocalState) Init() tea.Cmd {
	if s.startMode != nil {
		s.startSession(*s.startMode)
	}
	return s.flush()
}

func (s *LocalState) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.help.Width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, s.keys.Quit) {
			return s, tea.Quit
		}
		if key.Matches(msg, s.keys.Help) {
			s.help.ShowAll = !s.help.ShowAll
			break
		}
		if s.screen == screenPlay {
			s.updatePlay(msg)
		} else {
			s.updateMenu(msg)
		}
	default:
		s.Game.Handle(msg)
	}
	return s, s.flush()
}

func (s *LocalState) updatePlay(msg tea.KeyMsg) {
	n := len(s.board)
	switch {
	case key.Matches(msg, s.keys.Left):
		if s.cursor%deck.GridSize > 0 {
			s.cursor--
		}
	case key.Matches(msg, s.keys.Right):
		if s.cursor%deck.GridSize < deck.GridSize-1 && s.cursor+1 < n {
			s.cursor++
		}
	case key.Matches(msg, s.keys.Up):
		if s.cursor-deck.GridSize >= 0 {
			s.cursor -= deck.GridSize
		}
	case key.Matches(msg, s.keys.Down):
		if s.cursor+deck.GridSize < n {
			s.cursor += deck.GridSize
		}
	case key.Matches(msg, s.keys.Flip):
		if s.cursor < n {
			s.Game.Flip(s.board[s.cursor].ID)
		}
	case key.Matches(msg, s.keys.Restart):
		s.cursor = 0
		s.Game.Restart()
	}
}

func (s *LocalState) updateMenu(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, s.keys.Letters):
		s.startSession(deck.Letters)
	case key.Matches(msg, s.keys.Shapes):
		s.startSession(deck.Shapes)
	case key.Matches(msg, s.keys.Up):
		if s.historyCursor > 0 {
			s.historyCursor--
		}
	case key.Matches(msg, s.keys.Down):
		if s.historyCursor < len(s.entries)-1 {
			s.historyCursor++
		}
	case key.Matches(msg, s.keys.Delete):
		if s.plain || len(s.entries) == 0 {
			return
		}
		if err := s.History.RemoveAt(s.historyCursor); err != nil {
			s.log.Error().Err(err).Int("index", s.historyCursor).Msg("could not delete result")
		}
		s.entries = s.History.List()
		if s.historyCursor >= len(s.entries) {
			s.historyCursor = max(len(s.entries)-1, 0)
		}
	}
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Flip    key.Binding
	Restart key.Binding
	Letters key.Binding
	Shapes  key.Binding
	Delete  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Flip:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "flip")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Letters: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "letters")),
		Shapes:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "shapes")),
		Delete:  key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete result")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flip, k.Restart, k.Letters, k.Shapes, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Flip, k.Restart},
		{k.Letters, k.Shapes, k.Delete},
		{k.Help, k.Quit},
	}
}

package main

import (
	"fmt"
	"strings"

	"go-pairs/internal/deck"

	"github.com/charmbracelet/lipgloss"
)

var (
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Lost games, hearts
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Won games, matched cards
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	boldStyle   = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Width(9).
			Align(lipgloss.Center)
)

var shapeGlyphs = map[string]string{
	"circle":   "●",
	"square":   "■",
	"triangle": "▲",
	"stars":    "★",
}

func (s *LocalState) View() string {
	var b strings.Builder

	title := fmt.Sprintf("┃ MEMORY | MODE: %s (%s)", strings.ToUpper(s.mode.String()), s.mode.Difficulty())
	b.WriteString(boldStyle.Render(title) + "\n")

	if len(s.board) > 0 {
		b.WriteString(s.renderBoard() + "\n")
		b.WriteString(s.renderStatus() + "\n")
	}

	if s.screen == screenMenu {
		b.WriteString(s.renderMenu())
	}

	b.WriteString("\n" + s.help.View(s.keys))
	return b.String()
}

func (s *LocalState) renderBoard() string {
	var rows []string
	for start := 0; start < len(s.board); start += deck.GridSize {
		end := min(start+deck.GridSize, len(s.board))
		cells := make([]string, 0, deck.GridSize)
		for i := start; i < end; i++ {
			cells = append(cells, s.renderCard(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (s *LocalState) renderCard(i int) string {
	c := s.board[i]
	style := cardStyle

	face := "?"
	if c.Flipped || c.Matched {
		face = cardFace(c.Value, s.mode)
	}
	if c.Matched {
		style = style.BorderForeground(lipgloss.Color("10")).Foreground(lipgloss.Color("10"))
	}
	if s.screen == screenPlay && i == s.cursor {
		style = style.Reverse(true)
	}
	return style.Render(face)
}

func cardFace(value string, m deck.Mode) string {
	if m == deck.Shapes {
		if g, ok := shapeGlyphs[value]; ok {
			return g + " " + value
		}
	}
	return value
}

func (s *LocalState) renderStatus() string {
	hearts := redStyle.Render(strings.Repeat("♥ ", s.lives))
	status := statusStyle.Render(fmt.Sprintf("TIME: %s | PAIRS: %d/%d | LIVES: ",
		s.elapsed, s.matches(), deck.ConfigFor(s.mode).PairCount))
	return status + hearts
}

func (s *LocalState) matches() int {
	n := 0
	for _, c := range s.board {
		if c.Matched {
			n++
		}
	}
	return n / 2
}

func (s *LocalState) renderMenu() string {
	var b strings.Builder

	if s.message != "" {
		if s.won {
			b.WriteString("\n" + greenStyle.Render(s.message) + "\n")
		} else {
			b.WriteString("\n" + redStyle.Render(s.message) + "\n")
		}
	}

	b.WriteString("\nChoose a mode: [1] letters (hard)  [2] shapes (easy)\n")

	if s.plain {
		return b.String()
	}
	if len(s.entries) == 0 {
		b.WriteString(faintStyle.Render("\nNo games played yet.") + "\n")
		return b.String()
	}

	b.WriteString("\n" + boldStyle.Render("History") + "\n")
	for i, r := range s.entries {
		line := r.Label()
		if r.Win {
			line = greenStyle.Render(line)
		} else {
			line = redStyle.Render(line)
		}
		marker := "  "
		if i == s.historyCursor {
			marker = "> "
		}
		b.WriteString(marker + line + "\n")
	}
	return b.String()
}

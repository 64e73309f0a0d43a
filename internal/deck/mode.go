package deck

import (
	"fmt"
	"strings"
)

// GridSize is the side of the square board.
const GridSize = 4

// Mode selects the card vocabulary for a session.
type Mode int

const (
	Letters Mode = iota
	Shapes
)

func (m Mode) String() string {
	switch m {
	case Letters:
		return "letters"
	case Shapes:
		return "shapes"
	default:
		return "unknown"
	}
}

// Difficulty is the label the end-of-game messages use for a mode.
func (m Mode) Difficulty() string {
	if m == Letters {
		return "hard"
	}
	return "easy"
}

// ParseMode accepts "letters" or "shapes" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "letters", "l":
		return Letters, nil
	case "shapes", "s":
		return Shapes, nil
	}
	return Letters, fmt.Errorf("unknown mode %q (use letters or shapes)", s)
}

// Config is the per-mode record chosen once at session start.
type Config struct {
	Vocabulary []string
	PairCount  int
}

var (
	letterValues = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O", "P"}
	shapeValues  = []string{"circle", "square", "triangle", "stars"}
)

// ConfigFor returns the configuration for m.
//
// Shapes uses GridSize²/4 pairs, so its deck holds half as many cards as a
// letters deck.
func ConfigFor(m Mode) Config {
	if m == Shapes {
		return Config{Vocabulary: shapeValues, PairCount: GridSize * GridSize / 4}
	}
	return Config{Vocabulary: letterValues, PairCount: GridSize * GridSize / 2}
}

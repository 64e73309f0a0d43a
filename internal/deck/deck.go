package deck

import (
	"math/rand"
)

// Card is a single face of the board. Two cards with the same Value form a pair.
type Card struct {
	ID      int
	Value   string
	Flipped bool
	Matched bool
}

// Deck is the ordered board, left to right and top to bottom.
type Deck []Card

// Build creates the shuffled deck for mode m.
func Build(m Mode, rng *rand.Rand) Deck {
	return Shuffle(Generate(ConfigFor(m)), rng)
}

// Generate lays out cfg.PairCount pairs in order, cycling through the
// vocabulary when there are more pairs than values.
func Generate(cfg Config) Deck {
	d := make(Deck, 0, cfg.PairCount*2)
	if len(cfg.Vocabulary) == 0 {
		return d
	}

	id := 0
	for i := 0; i < cfg.PairCount; i++ {
		value := cfg.Vocabulary[i%len(cfg.Vocabulary)]
		d = append(d, Card{ID: id, Value: value})
		id++
		d = append(d, Card{ID: id, Value: value})
		id++
	}
	return d
}

// Shuffle permutes d in place with Fisher-Yates and returns it.
func Shuffle(d Deck, rng *rand.Rand) Deck {
	for i := len(d) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
	return d
}

// Index returns the position of the card with the given id, or -1.
func (d Deck) Index(id int) int {
	for i := range d {
		if d[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a copy that shares nothing with d.
func (d Deck) Clone() Deck {
	out := make(Deck, len(d))
	copy(out, d)
	return out
}

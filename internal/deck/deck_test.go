package deck

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_PairsAndIDs(t *testing.T) {
	tests := []struct {
		mode      Mode
		wantCards int
		wantPairs int
	}{
		{Letters, 16, 8},
		{Shapes, 8, 4},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			d := Build(tt.mode, rand.New(rand.NewSource(1)))
			require.Len(t, d, tt.wantCards)

			counts := map[string]int{}
			ids := map[int]bool{}
			for _, c := range d {
				counts[c.Value]++
				assert.False(t, c.Flipped, "card %d starts flipped", c.ID)
				assert.False(t, c.Matched, "card %d starts matched", c.ID)
				assert.False(t, ids[c.ID], "duplicate id %d", c.ID)
				ids[c.ID] = true
			}
			assert.Len(t, counts, tt.wantPairs)
			for v, n := range counts {
				assert.Equal(t, 2, n, "value %s", v)
			}
			for id := 0; id < tt.wantCards; id++ {
				assert.True(t, ids[id], "missing id %d", id)
			}
		})
	}
}

func TestGenerate_WrapsVocabulary(t *testing.T) {
	d := Generate(Config{Vocabulary: []string{"x", "y"}, PairCount: 3})
	require.Len(t, d, 6)

	got := make([]string, len(d))
	for i, c := range d {
		got[i] = c.Value
		assert.Equal(t, i, c.ID)
	}
	assert.Equal(t, []string{"x", "x", "y", "y", "x", "x"}, got)
}

func TestGenerate_EmptyVocabulary(t *testing.T) {
	assert.Empty(t, Generate(Config{PairCount: 4}))
}

func TestShuffle_IsPermutation(t *testing.T) {
	before := Generate(ConfigFor(Letters))
	after := Shuffle(before.Clone(), rand.New(rand.NewSource(42)))

	key := func(d Deck) []string {
		out := make([]string, len(d))
		for i, c := range d {
			out[i] = fmt.Sprintf("%d:%s", c.ID, c.Value)
		}
		sort.Strings(out)
		return out
	}
	assert.Equal(t, key(before), key(after))
}

func TestShuffle_Uniform(t *testing.T) {
	const trials = 60000
	rng := rand.New(rand.NewSource(7))
	seen := map[string]int{}

	for i := 0; i < trials; i++ {
		d := Shuffle(Deck{{ID: 0}, {ID: 1}, {ID: 2}}, rng)
		seen[fmt.Sprintf("%d%d%d", d[0].ID, d[1].ID, d[2].ID)]++
	}

	require.Len(t, seen, 6, "every permutation of three cards should appear")
	expected := trials / 6
	for perm, n := range seen {
		assert.InDelta(t, expected, n, float64(expected)/10, "permutation %s", perm)
	}
}

func TestBuild_DifferentSeedsDifferentOrders(t *testing.T) {
	a := Build(Letters, rand.New(rand.NewSource(1)))
	b := Build(Letters, rand.New(rand.NewSource(2)))
	assert.NotEqual(t, a, b)
}

func TestDeck_Index(t *testing.T) {
	d := Deck{{ID: 5}, {ID: 2}, {ID: 9}}
	assert.Equal(t, 1, d.Index(2))
	assert.Equal(t, -1, d.Index(3))
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"letters", Letters, false},
		{"Shapes", Shapes, false},
		{" s ", Shapes, false},
		{"numbers", Letters, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestMode_Difficulty(t *testing.T) {
	assert.Equal(t, "hard", Letters.Difficulty())
	assert.Equal(t, "easy", Shapes.Difficulty())
}

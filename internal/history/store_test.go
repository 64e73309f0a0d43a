package history

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockBackend is an in-memory Backend that can simulate failures.
type MockBackend struct {
	Value    []byte
	getErr   error
	setErr   error
	SetCalls int
}

func (m *MockBackend) Get(key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.Value == nil {
		return nil, ErrNotFound
	}
	return m.Value, nil
}

func (m *MockBackend) Set(key string, value []byte) error {
	m.SetCalls++
	if m.setErr != nil {
		return m.setErr
	}
	m.Value = value
	return nil
}

func newStore(b Backend) *Store {
	return NewStore(b, zerolog.Nop())
}

func TestStore_AppendThenList(t *testing.T) {
	s := newStore(NewMemoryBackend())
	assert.Empty(t, s.List())

	first := Result{Win: true, Time: 42, Lives: 3, Mode: "letters"}
	second := Result{Win: false, Time: 10, Lives: 0, Mode: "shapes"}
	require.NoError(t, s.Append(first))
	require.NoError(t, s.Append(second))

	assert.Equal(t, []Result{first, second}, s.List())
}

func TestStore_SerializedFormat(t *testing.T) {
	b := &MockBackend{}
	s := newStore(b)
	require.NoError(t, s.Append(Result{Win: true, Time: 7, Lives: 5, Mode: "letters"}))

	assert.JSONEq(t, `[{"win":true,"time":7,"lives":5,"mode":"letters"}]`, string(b.Value))
}

func TestStore_RemoveAtMiddle(t *testing.T) {
	s := newStore(NewMemoryBackend())
	entries := []Result{
		{Win: true, Time: 1, Lives: 5, Mode: "letters"},
		{Win: false, Time: 2, Lives: 0, Mode: "shapes"},
		{Win: true, Time: 3, Lives: 1, Mode: "shapes"},
	}
	for _, e := range entries {
		require.NoError(t, s.Append(e))
	}

	require.NoError(t, s.RemoveAt(1))
	assert.Equal(t, []Result{entries[0], entries[2]}, s.List())
}

func TestStore_RemoveAtOutOfRange(t *testing.T) {
	b := &MockBackend{}
	s := newStore(b)
	require.NoError(t, s.Append(Result{Mode: "letters"}))
	calls := b.SetCalls

	for _, i := range []int{-1, 1, 100} {
		assert.NoError(t, s.RemoveAt(i))
	}
	assert.Equal(t, calls, b.SetCalls, "out-of-range removals must not write")
	assert.Len(t, s.List(), 1)
}

func TestStore_CorruptDataReadsEmpty(t *testing.T) {
	for _, raw := range []string{"{ not valid json }", `{"win":true}`, "", "null"} {
		b := &MockBackend{Value: []byte(raw)}
		s := newStore(b)
		assert.Empty(t, s.List(), "raw %q", raw)

		// Appending on top of corrupt data starts a fresh log.
		require.NoError(t, s.Append(Result{Win: true, Mode: "shapes"}))
		assert.Len(t, s.List(), 1, "raw %q", raw)
	}
}

func TestStore_BackendErrors(t *testing.T) {
	b := &MockBackend{getErr: errors.New("disk on fire")}
	s := newStore(b)
	assert.Empty(t, s.List())

	boom := errors.New("read-only")
	b = &MockBackend{setErr: boom}
	s = newStore(b)
	err := s.Append(Result{})
	assert.ErrorIs(t, err, boom)

	b.setErr = nil
	require.NoError(t, s.Append(Result{}))
	b.setErr = boom
	assert.ErrorIs(t, s.RemoveAt(0), boom)
}

func TestResult_Label(t *testing.T) {
	tests := []struct {
		r    Result
		want string
	}{
		{Result{Win: true, Time: 30, Lives: 4, Mode: "letters"}, "Game Hard: Win - Time: 30 seconds - Remaining lives: 4"},
		{Result{Win: false, Time: 12, Lives: 0, Mode: "shapes"}, "Game Easy: Lost - Time: 12 seconds - Remaining lives: 0"},
	}
	for _, tt := range tests {
		if got := tt.r.Label(); got != tt.want {
			t.Errorf("Label() = %q, expected %q", got, tt.want)
		}
	}
}

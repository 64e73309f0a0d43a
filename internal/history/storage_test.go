package history

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackend_SetAndGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "go-pairs")
	fb := NewFileBackend(dir)

	// 1. Get on a key that was never written
	_, err := fb.Get(Key)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	// 2. Set creates the directory and the file
	if err := fb.Set(Key, []byte(`[{"win":true}]`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, Key+".json")); err != nil {
		t.Errorf("File was not created: %v", err)
	}

	// 3. Get returns what was written, and overwrites replace it
	got, err := fb.Get(Key)
	require.NoError(t, err)
	assert.Equal(t, `[{"win":true}]`, string(got))

	require.NoError(t, fb.Set(Key, []byte(`[]`)))
	got, err = fb.Get(Key)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	// No temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestMemoryBackend_CopiesValues(t *testing.T) {
	m := NewMemoryBackend()
	_, err := m.Get(Key)
	assert.ErrorIs(t, err, ErrNotFound)

	v := []byte("abc")
	require.NoError(t, m.Set(Key, v))
	v[0] = 'z'

	got, err := m.Get(Key)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestSQLiteBackend_SetAndGet(t *testing.T) {
	b, err := OpenSQLite(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	defer b.Close()

	_, err = b.Get(Key)
	if err != nil && !errors.Is(err, ErrNotFound) {
		t.Skipf("sqlite unavailable: %v", err)
	}
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, b.Set(Key, []byte(`[1]`)))
	require.NoError(t, b.Set(Key, []byte(`[1,2]`)))

	got, err := b.Get(Key)
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(got))
}

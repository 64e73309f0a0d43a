package history

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Key is the well-known key the log is stored under.
const Key = "gameHistory"

// Store owns the ordered log of finished sessions, oldest first.
// It is not safe for concurrent writers.
type Store struct {
	backend Backend
	log     zerolog.Logger
}

func NewStore(backend Backend, log zerolog.Logger) *Store {
	return &Store{backend: backend, log: log}
}

// List returns the log. Missing or unreadable data reads as an empty log.
func (s *Store) List() []Result {
	return s.readAll()
}

// Append adds r to the end of the log.
func (s *Store) Append(r Result) error {
	results := append(s.readAll(), r)
	if err := s.writeAll(results); err != nil {
		return fmt.Errorf("could not append result: %w", err)
	}
	return nil
}

// RemoveAt deletes the i-th entry. Out-of-range indexes are ignored.
func (s *Store) RemoveAt(i int) error {
	results := s.readAll()
	if i < 0 || i >= len(results) {
		return nil
	}
	results = append(results[:i], results[i+1:]...)
	if err := s.writeAll(results); err != nil {
		return fmt.Errorf("could not remove result %d: %w", i, err)
	}
	return nil
}

func (s *Store) readAll() []Result {
	b, err := s.backend.Get(Key)
	if errors.Is(err, ErrNotFound) {
		return []Result{}
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("history unreadable, treating as empty")
		return []Result{}
	}
	if len(b) == 0 {
		return []Result{}
	}

	var results []Result
	if err := json.Unmarshal(b, &results); err != nil {
		s.log.Warn().Err(err).Msg("history corrupt, treating as empty")
		return []Result{}
	}
	if results == nil {
		results = []Result{}
	}
	return results
}

func (s *Store) writeAll(results []Result) error {
	b, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("error encoding history: %w", err)
	}
	return s.backend.Set(Key, b)
}

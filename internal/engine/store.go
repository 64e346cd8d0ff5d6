package engine

import (
	"errors"
	"fmt"

	"carsales/internal/models"
)

// ErrNoRows is wrapped by a LoadError when the source has no parseable rows.
var ErrNoRows = errors.New("no parseable rows")

// LoadError is fatal for the session: the table could not be loaded.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Store holds the loaded sales table. It is never mutated after loading,
// so any number of requests may read it concurrently.
type Store struct {
	Source  string
	Records []models.SalesRecord

	// Dropped counts source rows excluded at load time (bad date or malformed line).
	Dropped int
}

func (s *Store) Len() int { return len(s.Records) }

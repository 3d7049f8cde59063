package engine

import (
	"encoding/csv"
	"io"
	"sync"
)

// SubsetStore holds at most one saved subset for reuse by follow-up
// distribution queries. Saving replaces the previous subset; there is
// no history. The mutex only matters when the HTTP surface shares the
// store across requests.
type SubsetStore struct {
	mu     sync.Mutex
	active *Subset
}

func NewSubsetStore() *SubsetStore { return &SubsetStore{} }

// Save replaces the active subset.
func (s *SubsetStore) Save(sub *Subset) {
	s.mu.Lock()
	s.active = sub
	s.mu.Unlock()
}

// Get returns the active subset, or ErrNoActiveSubset if none is saved.
func (s *SubsetStore) Get() (*Subset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, ErrNoActiveSubset
	}
	return s.active, nil
}

// Clear removes the active subset. Subsequent subset-scoped queries
// fail until a new one is saved.
func (s *SubsetStore) Clear() {
	s.mu.Lock()
	s.active = nil
	s.mu.Unlock()
}

// ExportCSV writes the subset's rows to w as CSV, with the table's
// header row first. This is a one-way export, not a reload path.
func ExportCSV(w io.Writer, t *Table, sub *Subset) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Columns()); err != nil {
		return err
	}
	for _, row := range sub.RowIndices() {
		if err := writer.Write(t.Row(row)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

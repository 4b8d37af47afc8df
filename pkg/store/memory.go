package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/matzehuels/cliquechain/pkg/series"
)

// MemoryStore keeps reports in a process-local map. It is safe for
// concurrent use and intended for development and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	reports map[string]*series.Report
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reports: make(map[string]*series.Report)}
}

// Save stores a copy of the report.
func (s *MemoryStore) Save(ctx context.Context, report *series.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *report
	clone.Rows = append([]series.Row(nil), report.Rows...)
	s.reports[report.ID] = &clone
	return nil
}

// Get returns the report with the given ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*series.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[id]
	if !ok {
		return nil, notFound("id " + id)
	}
	clone := *report
	return &clone, nil
}

// Latest returns the most recently generated report covering max.
func (s *MemoryStore) Latest(ctx context.Context, max int) (*series.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *series.Report
	for _, report := range s.reports {
		if report.Max != max {
			continue
		}
		if latest == nil || report.GeneratedAt.After(latest.GeneratedAt) {
			latest = report
		}
	}
	if latest == nil {
		return nil, notFound(fmt.Sprintf("max %d", max))
	}
	clone := *latest
	return &clone, nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

var _ Store = (*MemoryStore)(nil)

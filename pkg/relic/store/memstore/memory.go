package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/cognicore/relic/pkg/relic/corpus"
	"github.com/cognicore/relic/pkg/relic/internalerr"
	"github.com/cognicore/relic/pkg/relic/run"
)

// Store is an in-memory implementation of store.Store. It is the default
// sink when no database path is configured, and the implementation tests
// run against.
type Store struct {
	mu       sync.RWMutex
	records  map[string][]corpus.SentenceRecord
	sources  []string
	runs     map[string]run.Run
	appended int64
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		records: make(map[string][]corpus.SentenceRecord),
		runs:    make(map[string]run.Run),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// AppendRecord adds a record under its source document.
func (s *Store) AppendRecord(ctx context.Context, rec corpus.SentenceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[rec.Source]; !ok {
		s.sources = append(s.sources, rec.Source)
	}
	s.records[rec.Source] = append(s.records[rec.Source], rec)
	s.appended++
	return nil
}

// RecordsBySource returns the records of one source document in append order.
func (s *Store) RecordsBySource(ctx context.Context, source string) ([]corpus.SentenceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := s.records[source]
	out := make([]corpus.SentenceRecord, len(recs))
	copy(out, recs)
	return out, nil
}

// Sources returns the distinct sources in first-seen order.
func (s *Store) Sources(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.sources))
	copy(out, s.sources)
	return out, nil
}

// CountRecords returns the total number of appended records.
func (s *Store) CountRecords(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appended, nil
}

// CreateRun stores a run summary.
func (s *Store) CreateRun(ctx context.Context, r run.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[r.ID] = r
	return nil
}

// GetRun returns a run summary by id.
func (s *Store) GetRun(ctx context.Context, id string) (run.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.runs[id]
	if !ok {
		return run.Run{}, fmt.Errorf("run %s: %w", id, internalerr.ErrNotFound)
	}
	return r, nil
}

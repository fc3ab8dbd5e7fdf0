package store

import (
	"context"

	"github.com/cognicore/relic/pkg/relic/corpus"
	"github.com/cognicore/relic/pkg/relic/run"
)

// Store persists extracted sentence records and run summaries. The pipeline
// appends records during the scan and reads them back grouped by source to
// build the split exports.
type Store interface {
	Close() error

	// Records
	AppendRecord(ctx context.Context, rec corpus.SentenceRecord) error
	RecordsBySource(ctx context.Context, source string) ([]corpus.SentenceRecord, error)
	// Sources returns the distinct source documents in first-seen order,
	// which is the order the split arithmetic partitions by.
	Sources(ctx context.Context) ([]string, error)
	CountRecords(ctx context.Context) (int64, error)

	// Runs
	CreateRun(ctx context.Context, r run.Run) error
	GetRun(ctx context.Context, id string) (run.Run, error)
}

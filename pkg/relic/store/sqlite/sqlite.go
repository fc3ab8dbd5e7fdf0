package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/relic/pkg/relic/corpus"
	"github.com/cognicore/relic/pkg/relic/internalerr"
	"github.com/cognicore/relic/pkg/relic/run"
	"github.com/cognicore/relic/pkg/relic/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled and the schema
// initialized.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS sentences (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	source TEXT NOT NULL,
	title INTEGER,
	book TEXT NOT NULL DEFAULT '',
	review_id INTEGER,
	score REAL,
	sentence_id INTEGER NOT NULL,
	unique_review_id TEXT NOT NULL DEFAULT '',
	sentence TEXT NOT NULL,
	label TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sentences_source ON sentences(source);

CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	finished_at TEXT NOT NULL DEFAULT '',
	files INTEGER NOT NULL,
	records INTEGER NOT NULL,
	train_rows INTEGER NOT NULL,
	dev_rows INTEGER NOT NULL,
	test_rows INTEGER NOT NULL
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// AppendRecord inserts one sentence record.
func (s *sqliteStore) AppendRecord(ctx context.Context, rec corpus.SentenceRecord) error {
	var title sql.NullBool
	if rec.Title != nil {
		title = sql.NullBool{Bool: *rec.Title, Valid: true}
	}
	var reviewID sql.NullInt64
	if rec.ReviewID != nil {
		reviewID = sql.NullInt64{Int64: *rec.ReviewID, Valid: true}
	}
	var score sql.NullFloat64
	if rec.Score != nil {
		score = sql.NullFloat64{Float64: *rec.Score, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sentences (source, title, book, review_id, score, sentence_id, unique_review_id, sentence, label)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Source, title, rec.Book, reviewID, score,
		rec.SentenceID, rec.UniqueReviewID, rec.Sentence, string(rec.Label),
	)
	if err != nil {
		return fmt.Errorf("insert sentence: %w", err)
	}
	return nil
}

// RecordsBySource returns the records of one source document in append order.
func (s *sqliteStore) RecordsBySource(ctx context.Context, source string) ([]corpus.SentenceRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT source, title, book, review_id, score, sentence_id, unique_review_id, sentence, label
		FROM sentences WHERE source = ? ORDER BY id`, source)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []corpus.SentenceRecord
	for rows.Next() {
		var (
			rec      corpus.SentenceRecord
			title    sql.NullBool
			reviewID sql.NullInt64
			score    sql.NullFloat64
			label    string
		)
		if err := rows.Scan(&rec.Source, &title, &rec.Book, &reviewID, &score,
			&rec.SentenceID, &rec.UniqueReviewID, &rec.Sentence, &label); err != nil {
			return nil, err
		}
		if title.Valid {
			v := title.Bool
			rec.Title = &v
		}
		if reviewID.Valid {
			v := reviewID.Int64
			rec.ReviewID = &v
		}
		if score.Valid {
			v := score.Float64
			rec.Score = &v
		}
		rec.Label = corpus.Label(label)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Sources returns distinct sources ordered by first insertion.
func (s *sqliteStore) Sources(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT source FROM sentences GROUP BY source ORDER BY MIN(id)`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []string
	for rows.Next() {
		var src string
		if err := rows.Scan(&src); err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, rows.Err()
}

// CountRecords returns the total number of stored records.
func (s *sqliteStore) CountRecords(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sentences`).Scan(&count)
	return count, err
}

// CreateRun stores a run summary.
func (s *sqliteStore) CreateRun(ctx context.Context, r run.Run) error {
	finished := ""
	if !r.FinishedAt.IsZero() {
		finished = r.FinishedAt.UTC().Format(time.RFC3339Nano)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, finished_at, files, records, train_rows, dev_rows, test_rows)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.StartedAt.UTC().Format(time.RFC3339Nano), finished,
		r.Files, r.Records, r.TrainRows, r.DevRows, r.TestRows,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// GetRun returns a run summary by id.
func (s *sqliteStore) GetRun(ctx context.Context, id string) (run.Run, error) {
	var (
		r        run.Run
		started  string
		finished string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, started_at, finished_at, files, records, train_rows, dev_rows, test_rows
		FROM runs WHERE id = ?`, id).
		Scan(&r.ID, &started, &finished, &r.Files, &r.Records, &r.TrainRows, &r.DevRows, &r.TestRows)
	if err == sql.ErrNoRows {
		return run.Run{}, fmt.Errorf("run %s: %w", id, internalerr.ErrNotFound)
	}
	if err != nil {
		return run.Run{}, err
	}

	if r.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return run.Run{}, fmt.Errorf("parse started_at: %w", err)
	}
	if finished != "" {
		if r.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
			return run.Run{}, fmt.Errorf("parse finished_at: %w", err)
		}
	}
	return r, nil
}

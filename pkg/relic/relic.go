// Package relic converts annotated book-review corpora into labeled sentence
// datasets: it scans directive-structured token+label files into sentence
// records, partitions the records by source document into train/dev/test
// subsets, and serializes each subset to CSV.
package relic

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cognicore/relic/pkg/relic/config"
	"github.com/cognicore/relic/pkg/relic/corpus"
	"github.com/cognicore/relic/pkg/relic/discover"
	"github.com/cognicore/relic/pkg/relic/export"
	"github.com/cognicore/relic/pkg/relic/run"
	"github.com/cognicore/relic/pkg/relic/split"
	"github.com/cognicore/relic/pkg/relic/store"
	"github.com/cognicore/relic/pkg/relic/store/memstore"
)

// Options configures an Extractor.
type Options struct {
	Config config.Config
	// Store receives the extracted records; defaults to an in-memory store
	// scoped to this extractor.
	Store store.Store
}

// Extractor is the pipeline facade: discover → scan → store → split → export.
type Extractor struct {
	cfg    config.Config
	st     store.Store
	minter *run.Minter
}

// New creates an Extractor with the given dependencies.
func New(opts Options) *Extractor {
	st := opts.Store
	if st == nil {
		st = memstore.New()
	}
	return &Extractor{
		cfg:    opts.Config,
		st:     st,
		minter: run.NewMinter(),
	}
}

// Close releases the underlying store.
func (e *Extractor) Close() error {
	return e.st.Close()
}

// Run executes one full extraction and returns its summary. An empty input
// set is not an error: it yields header-only subset files and a zero-record
// run. A scan failure aborts before any subset file or run summary is
// written.
func (e *Extractor) Run(ctx context.Context) (run.Run, error) {
	if err := e.cfg.Validate(); err != nil {
		return run.Run{}, err
	}

	files, err := discover.Files(e.cfg.InputDir, e.cfg.FilePrefix, e.cfg.FileExt)
	if err != nil {
		return run.Run{}, fmt.Errorf("discover input: %w", err)
	}

	summary := e.minter.Start(len(files))

	lines := corpus.NewFileLineReader(files)
	defer lines.Close()

	recs, err := corpus.ReadAll(corpus.NewScanner(lines, corpus.ScannerOptions{
		StrictBoundaries: e.cfg.StrictBoundaries,
	}))
	if err != nil {
		return run.Run{}, fmt.Errorf("scan corpus: %w", err)
	}

	for _, rec := range recs {
		if err := e.st.AppendRecord(ctx, rec); err != nil {
			return run.Run{}, fmt.Errorf("store record: %w", err)
		}
	}

	sources, err := e.st.Sources(ctx)
	if err != nil {
		return run.Run{}, fmt.Errorf("list sources: %w", err)
	}
	groups := split.ByDocument(sources, split.Fractions{
		Dev:  e.cfg.DevFraction,
		Test: e.cfg.TestFraction,
	})

	if err := os.MkdirAll(e.cfg.OutputDir, 0o755); err != nil {
		return run.Run{}, err
	}

	subsets := []struct {
		file    string
		sources []string
		rows    *int
	}{
		{"train.csv", groups.Train, &summary.TrainRows},
		{"dev.csv", groups.Dev, &summary.DevRows},
		{"test.csv", groups.Test, &summary.TestRows},
	}
	for _, sub := range subsets {
		var rows []corpus.SentenceRecord
		for _, src := range sub.sources {
			srcRecs, err := e.st.RecordsBySource(ctx, src)
			if err != nil {
				return run.Run{}, fmt.Errorf("read %s records: %w", src, err)
			}
			rows = append(rows, srcRecs...)
		}
		if err := export.WriteCSV(filepath.Join(e.cfg.OutputDir, sub.file), rows); err != nil {
			return run.Run{}, fmt.Errorf("write %s: %w", sub.file, err)
		}
		*sub.rows = len(rows)
	}

	summary.Records = len(recs)
	summary.FinishedAt = time.Now().UTC()
	if err := e.st.CreateRun(ctx, summary); err != nil {
		return run.Run{}, fmt.Errorf("record run: %w", err)
	}
	return summary, nil
}

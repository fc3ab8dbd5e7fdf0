package relic

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/relic/pkg/relic/config"
	"github.com/cognicore/relic/pkg/relic/internalerr"
	"github.com/cognicore/relic/pkg/relic/store/memstore"
)

func writeCorpusFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

const reviewBody = `#Livro_Ensaio_
#Resenha_1_
#Nota_4_
#Título
Bom	B-POS+

#Corpo
Gostei	B-POS+
muito	I-POS+

Chato	B-NEG-
`

func TestExtractorEndToEnd(t *testing.T) {
	ctx := context.Background()
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	// Four documents; with 25% dev and 25% test each subset gets at least
	// one document.
	for _, name := range []string{"reli_a.txt", "reli_b.txt", "reli_c.txt", "reli_d.txt"} {
		writeCorpusFile(t, inputDir, name, reviewBody)
	}

	cfg := config.Default()
	cfg.InputDir = inputDir
	cfg.OutputDir = outputDir
	cfg.DevFraction = 0.25
	cfg.TestFraction = 0.25

	st := memstore.New()
	ex := New(Options{Config: cfg, Store: st})
	defer ex.Close()

	summary, err := ex.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// 3 sentences per document.
	if summary.Files != 4 || summary.Records != 12 {
		t.Errorf("summary files/records = %d/%d, want 4/12", summary.Files, summary.Records)
	}
	if summary.TrainRows != 6 || summary.DevRows != 3 || summary.TestRows != 3 {
		t.Errorf("train/dev/test rows = %d/%d/%d, want 6/3/3",
			summary.TrainRows, summary.DevRows, summary.TestRows)
	}
	if summary.ID == "" || summary.FinishedAt.IsZero() {
		t.Errorf("summary identity incomplete: %+v", summary)
	}

	dev := readRows(t, filepath.Join(outputDir, "dev.csv"))
	if len(dev) != 4 {
		t.Fatalf("dev.csv has %d rows, want header+3", len(dev))
	}
	// First listed document lands in dev.
	for _, row := range dev[1:] {
		if row[0] != "reli_a.txt" {
			t.Errorf("dev row source = %q, want reli_a.txt", row[0])
		}
	}
	if dev[1][8] != "positive" || dev[3][8] != "negative" {
		t.Errorf("labels = %q/%q", dev[1][8], dev[3][8])
	}
	if dev[1][2] != "Ensaio" || dev[1][3] != "1" || dev[1][4] != "4" {
		t.Errorf("metadata row = %v", dev[1])
	}

	train := readRows(t, filepath.Join(outputDir, "train.csv"))
	if len(train) != 7 {
		t.Errorf("train.csv has %d rows, want header+6", len(train))
	}

	// The run summary is persisted in the store.
	if _, err := st.GetRun(ctx, summary.ID); err != nil {
		t.Errorf("GetRun: %v", err)
	}
}

func TestExtractorEmptyInputSet(t *testing.T) {
	ctx := context.Background()
	outputDir := t.TempDir()

	cfg := config.Default()
	cfg.InputDir = t.TempDir()
	cfg.OutputDir = outputDir

	ex := New(Options{Config: cfg})
	defer ex.Close()

	summary, err := ex.Run(ctx)
	if err != nil {
		t.Fatalf("empty input must not fail: %v", err)
	}
	if summary.Files != 0 || summary.Records != 0 {
		t.Errorf("summary = %+v, want zero files and records", summary)
	}

	for _, name := range []string{"train.csv", "dev.csv", "test.csv"} {
		rows := readRows(t, filepath.Join(outputDir, name))
		if len(rows) != 1 {
			t.Errorf("%s has %d rows, want header only", name, len(rows))
		}
	}
}

func TestExtractorMalformedDirectiveAborts(t *testing.T) {
	ctx := context.Background()
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")

	writeCorpusFile(t, inputDir, "reli_bad.txt", "#Nota_péssima_\ntok\tO\n")

	cfg := config.Default()
	cfg.InputDir = inputDir
	cfg.OutputDir = outputDir

	ex := New(Options{Config: cfg})
	defer ex.Close()

	if _, err := ex.Run(ctx); !errors.Is(err, internalerr.ErrMalformedDirective) {
		t.Fatalf("err = %v, want ErrMalformedDirective", err)
	}
	// Nothing was exported.
	if _, err := os.Stat(filepath.Join(outputDir, "train.csv")); !os.IsNotExist(err) {
		t.Error("train.csv should not exist after an aborted scan")
	}
}

func TestExtractorInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.DevFraction = 0.9
	cfg.TestFraction = 0.9

	ex := New(Options{Config: cfg})
	defer ex.Close()

	if _, err := ex.Run(context.Background()); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

package main

import (
	"context"
	"flag"
	"log"

	"github.com/cognicore/relic/pkg/relic"
	"github.com/cognicore/relic/pkg/relic/config"
	"github.com/cognicore/relic/pkg/relic/store"
	"github.com/cognicore/relic/pkg/relic/store/memstore"
	"github.com/cognicore/relic/pkg/relic/store/sqlite"
)

func main() {
	var (
		cfgPath   = flag.String("config", "", "Optional YAML config file")
		input     = flag.String("input", "", "Input directory (overrides config)")
		output    = flag.String("output", "", "Output directory (overrides config)")
		storePath = flag.String("store", "", "SQLite database path (overrides config)")
		strict    = flag.Bool("strict", false, "Reset sticky metadata at document boundaries")
	)
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatal("Failed to load config:", err)
		}
		cfg = loaded
	}
	if *input != "" {
		cfg.InputDir = *input
	}
	if *output != "" {
		cfg.OutputDir = *output
	}
	if *storePath != "" {
		cfg.StorePath = *storePath
	}
	if *strict {
		cfg.StrictBoundaries = true
	}

	ctx := context.Background()

	var st store.Store
	if cfg.StorePath != "" {
		var err error
		st, err = sqlite.OpenSQLite(ctx, cfg.StorePath)
		if err != nil {
			log.Fatal("Failed to open store:", err)
		}
	} else {
		st = memstore.New()
	}

	ex := relic.New(relic.Options{Config: cfg, Store: st})
	defer ex.Close()

	summary, err := ex.Run(ctx)
	if err != nil {
		log.Fatal("Extraction failed: ", err)
	}

	log.Printf("Run %s: %d files, %d sentences", summary.ID, summary.Files, summary.Records)
	log.Printf("Train: %d", summary.TrainRows)
	log.Printf("Dev: %d", summary.DevRows)
	log.Printf("Test: %d", summary.TestRows)
	log.Printf("✓ Wrote train.csv, dev.csv, test.csv to %s", cfg.OutputDir)
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/relic/pkg/relic/internalerr"
)

// Config describes one extraction run.
type Config struct {
	// InputDir is the directory searched for corpus files.
	InputDir string `yaml:"input_dir"`
	// FilePrefix is matched case-insensitively against file names.
	FilePrefix string `yaml:"file_prefix"`
	// FileExt is the required file extension, including the dot.
	FileExt string `yaml:"file_ext"`
	// OutputDir receives train.csv, dev.csv and test.csv.
	OutputDir string `yaml:"output_dir"`
	// DevFraction and TestFraction are the shares of source documents that
	// go to the dev and test subsets; the remainder is training data.
	DevFraction  float64 `yaml:"dev_fraction"`
	TestFraction float64 `yaml:"test_fraction"`
	// StorePath, when set, persists records and run summaries to a SQLite
	// database instead of keeping them in memory for the run only.
	StorePath string `yaml:"store_path"`
	// StrictBoundaries resets sticky metadata at document boundaries.
	StrictBoundaries bool `yaml:"strict_boundaries"`
}

// Default returns the configuration matching the original ReLi tooling.
func Default() Config {
	return Config{
		InputDir:     ".",
		FilePrefix:   "reli",
		FileExt:      ".txt",
		OutputDir:    ".",
		DevFraction:  0.16,
		TestFraction: 0.20,
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input_dir is required: %w", internalerr.ErrInvalidConfig)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required: %w", internalerr.ErrInvalidConfig)
	}
	if c.FileExt == "" {
		return fmt.Errorf("file_ext is required: %w", internalerr.ErrInvalidConfig)
	}
	if c.DevFraction < 0 || c.DevFraction > 1 {
		return fmt.Errorf("dev_fraction %v out of range: %w", c.DevFraction, internalerr.ErrInvalidConfig)
	}
	if c.TestFraction < 0 || c.TestFraction > 1 {
		return fmt.Errorf("test_fraction %v out of range: %w", c.TestFraction, internalerr.ErrInvalidConfig)
	}
	if c.DevFraction+c.TestFraction >= 1 {
		return fmt.Errorf("dev_fraction+test_fraction must leave room for training data: %w", internalerr.ErrInvalidConfig)
	}
	return nil
}

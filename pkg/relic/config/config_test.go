package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/relic/pkg/relic/internalerr"
)

func TestDefaultMatchesOriginalTooling(t *testing.T) {
	cfg := Default()

	if cfg.FilePrefix != "reli" || cfg.FileExt != ".txt" {
		t.Errorf("discovery defaults = %q/%q", cfg.FilePrefix, cfg.FileExt)
	}
	if cfg.DevFraction != 0.16 || cfg.TestFraction != 0.20 {
		t.Errorf("split defaults = %v/%v", cfg.DevFraction, cfg.TestFraction)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relic.yaml")
	body := "input_dir: /corpus\noutput_dir: /out\ndev_fraction: 0.1\nstrict_boundaries: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.InputDir != "/corpus" || cfg.OutputDir != "/out" {
		t.Errorf("dirs = %q/%q", cfg.InputDir, cfg.OutputDir)
	}
	if cfg.DevFraction != 0.1 {
		t.Errorf("dev_fraction = %v, want 0.1", cfg.DevFraction)
	}
	if !cfg.StrictBoundaries {
		t.Error("strict_boundaries should be true")
	}
	// Untouched keys keep their defaults.
	if cfg.FilePrefix != "reli" || cfg.TestFraction != 0.20 {
		t.Errorf("unset keys lost defaults: %q/%v", cfg.FilePrefix, cfg.TestFraction)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidateRejectsBadFractions(t *testing.T) {
	cfg := Default()
	cfg.DevFraction = 0.6
	cfg.TestFraction = 0.5
	if err := cfg.Validate(); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}

	cfg = Default()
	cfg.TestFraction = -0.1
	if err := cfg.Validate(); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestValidateRequiresDirsAndExt(t *testing.T) {
	cfg := Default()
	cfg.FileExt = ""
	if err := cfg.Validate(); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

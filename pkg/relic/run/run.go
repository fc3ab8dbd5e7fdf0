// Package run identifies and summarizes extraction runs.
package run

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// Run summarizes one extraction over an input set.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Files      int
	Records    int
	TrainRows  int
	DevRows    int
	TestRows   int
}

// Minter issues run identifiers. IDs from one minter are strictly
// monotonically ordered.
type Minter struct {
	entropy *ulid.MonotonicEntropy
}

// NewMinter creates a run minter.
func NewMinter() *Minter {
	return &Minter{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Start opens a new run over the given number of input files.
func (m *Minter) Start(files int) Run {
	return Run{
		ID:        ulid.MustNew(ulid.Now(), m.entropy).String(),
		StartedAt: time.Now().UTC(),
		Files:     files,
	}
}

package collector

import (
	"context"
	"io"
	"urlstats/pkg/domain"
)

// State is the lifecycle of a Collector.
type State int

const (
	// NotScanned means the current input has not been read yet.
	NotScanned State = iota
	// Scanned means the tables hold the complete statistics of the current input.
	Scanned
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == Scanned {
		return "scanned"
	}

	return "not_scanned"
}

// Collector scans a corpus for URLs and reports domain and path frequencies.
// The input is read at most once; later reports reuse the collected tables.
type Collector interface {
	// SetInput points the collector at a named input. A name different from the
	// current one discards collected statistics and returns to NotScanned.
	SetInput(name string, r io.Reader)
	// Scan reads the whole input unless it was already scanned.
	Scan(ctx context.Context) error
	// Report returns totals and the top k domains and paths, scanning first if needed.
	Report(ctx context.Context, k int) (domain.Report, error)
	// WriteReport renders Report to w.
	WriteReport(ctx context.Context, w io.Writer, k int) error
	// State returns the lifecycle state.
	State() State
}

package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/paystubs-tracker/constants"
	"github.com/joseph-ayodele/paystubs-tracker/internal/pipeline"
)

// PageFailure describes a page that ended up in the failed bucket.
type PageFailure struct {
	Page     int                   `json:"page"`
	Filename string                `json:"filename,omitempty"`
	Outcome  constants.PageOutcome `json:"outcome"`
	Reason   string                `json:"reason"`
}

// RunReport is the result of ingesting one source document. After a
// successful run every page is in exactly one of Inserted, Skipped, Failed.
type RunReport struct {
	RunID      uuid.UUID             `json:"run_id"`
	Source     string                `json:"source,omitempty"`
	Inserted   []string              `json:"inserted"`
	Skipped    []string              `json:"skipped"`
	Failed     []PageFailure         `json:"failed"`
	TotalPages int                   `json:"total_pages"`
	Pages      []pipeline.PageResult `json:"-"`
	StartedAt  time.Time             `json:"started_at"`
	FinishedAt time.Time             `json:"finished_at"`
}

func newRunReport(runID uuid.UUID, started time.Time) *RunReport {
	return &RunReport{
		RunID:     runID,
		Inserted:  []string{},
		Skipped:   []string{},
		Failed:    []PageFailure{},
		StartedAt: started,
	}
}

func (r *RunReport) add(res pipeline.PageResult) {
	r.Pages = append(r.Pages, res)
	switch {
	case res.Outcome == constants.PageInserted:
		r.Inserted = append(r.Inserted, res.Filename)
	case res.Outcome == constants.PageSkipped:
		r.Skipped = append(r.Skipped, res.Filename)
	case res.Outcome.Failed():
		f := PageFailure{Page: res.Page, Filename: res.Filename, Outcome: res.Outcome}
		if res.Err != nil {
			f.Reason = res.Err.Error()
		}
		r.Failed = append(r.Failed, f)
	}
}

// Summary is a one-line human form of the report.
func (r *RunReport) Summary() string {
	return fmt.Sprintf("%d pages: %d inserted, %d skipped, %d failed",
		r.TotalPages, len(r.Inserted), len(r.Skipped), len(r.Failed))
}

// FileResult is the per-file outcome of a directory ingest.
type FileResult struct {
	Path   string
	Report *RunReport
	Err    string
}

// DirStats summarizes a directory ingest.
type DirStats struct {
	Scanned   uint32
	Matched   uint32
	Succeeded uint32
	Failed    uint32
	Pages     uint32
	Inserted  uint32
	Skipped   uint32
	PageFails uint32
}

func (s *DirStats) addReport(r *RunReport) {
	s.Pages += uint32(r.TotalPages)
	s.Inserted += uint32(len(r.Inserted))
	s.Skipped += uint32(len(r.Skipped))
	s.PageFails += uint32(len(r.Failed))
}

// Ingestor is the behavior the commands depend on.
type Ingestor interface {
	// IngestPath ingests a single pdf file.
	IngestPath(ctx context.Context, path string) (*RunReport, error)
	// IngestDirectory ingests all pdf files under root.
	IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]FileResult, DirStats, error)
}

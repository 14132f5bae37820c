// Package pipeline turns one isolated page into a stored document and a
// recorded pay statement.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/joseph-ayodele/paystubs-tracker/constants"
	"github.com/joseph-ayodele/paystubs-tracker/internal/common"
	"github.com/joseph-ayodele/paystubs-tracker/internal/entity"
	"github.com/joseph-ayodele/paystubs-tracker/internal/extract"
	"github.com/joseph-ayodele/paystubs-tracker/internal/pdfsplit"
	"github.com/joseph-ayodele/paystubs-tracker/internal/repository"
	"github.com/joseph-ayodele/paystubs-tracker/internal/storage"
)

// PageResult is what happened to one page.
type PageResult struct {
	Page     int
	Filename string // empty for SPLIT_FAILED
	Outcome  constants.PageOutcome
	Record   extract.Record
	Err      error // cause of a failed outcome
}

// Processor runs extract, derive, write and record for a single page.
type Processor struct {
	extractor extract.FieldExtractor
	docs      storage.Store
	store     repository.StatementRecorder
	logger    *slog.Logger
}

func NewProcessor(extractor extract.FieldExtractor, docs storage.Store, store repository.StatementRecorder, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{extractor: extractor, docs: docs, store: store, logger: logger}
}

// ProcessPage handles one page. Page-level problems come back as a failed
// outcome with a nil error; a non-nil error means the store itself failed
// and the run should stop.
func (p *Processor) ProcessPage(ctx context.Context, page pdfsplit.Page, runDate string) (PageResult, error) {
	res := PageResult{Page: page.Number}
	logger := common.LoggerFromContext(ctx, p.logger)
	if page.Err != nil {
		res.Outcome = constants.PageSplitFailed
		res.Err = page.Err
		logger.Warn("pipeline.page.split_failed", "page", page.Number, "error", page.Err)
		return res, nil
	}

	rec := p.extractor.Extract(page.Text)
	res.Record = rec
	res.Filename = DeriveFilename(rec.Name, rec.Date)

	if err := p.docs.Write(ctx, res.Filename, page.Data); err != nil {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		res.Outcome = constants.PageWriteFailed
		res.Err = err
		logger.Warn("pipeline.page.write_failed", "page", page.Number, "filename", res.Filename, "error", err)
		return res, nil
	}

	out, err := p.store.RecordStatement(ctx, entity.NewPayStatement{
		IndividualName: rec.Name,
		Date:           rec.Date,
		Filename:       res.Filename,
		ExtractionDate: runDate,
		Amount:         rec.Amount,
		Company:        rec.Company,
	})
	if err != nil {
		logger.Error("pipeline.page.record_failed", "page", page.Number, "filename", res.Filename, "error", err)
		return res, err
	}

	if out.Inserted {
		res.Outcome = constants.PageInserted
	} else {
		res.Outcome = constants.PageSkipped
	}
	logger.Debug("pipeline.page.ok",
		"page", page.Number,
		"filename", res.Filename,
		"outcome", res.Outcome,
		"individual_id", out.IndividualID,
	)
	return res, nil
}

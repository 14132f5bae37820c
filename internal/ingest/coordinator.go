// Package ingest runs pay statement sources through split, extract, store
// and record, and reports what happened to every page.
package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/joseph-ayodele/paystubs-tracker/constants"
	"github.com/joseph-ayodele/paystubs-tracker/internal/common"
	"github.com/joseph-ayodele/paystubs-tracker/internal/extract"
	"github.com/joseph-ayodele/paystubs-tracker/internal/metrics"
	"github.com/joseph-ayodele/paystubs-tracker/internal/pdfsplit"
	"github.com/joseph-ayodele/paystubs-tracker/internal/pipeline"
	"github.com/joseph-ayodele/paystubs-tracker/internal/repository"
	"github.com/joseph-ayodele/paystubs-tracker/internal/storage"
)

const tracerName = "github.com/joseph-ayodele/paystubs-tracker/internal/ingest"

// Config is everything a run needs. Nothing is taken from the process
// environment or working directory.
type Config struct {
	Delimiter string
	Docs      storage.Store
	Store     repository.StatementRecorder
	Metrics   *metrics.Ingest
	Tracer    trace.Tracer
	Now       func() time.Time
}

// Coordinator drives ingestion runs. Runs against the same store should be
// serialized by the caller (see async.Queue).
type Coordinator struct {
	splitter  *pdfsplit.Splitter
	processor *pipeline.Processor
	metrics   *metrics.Ingest
	tracer    trace.Tracer
	now       func() time.Time
	location  string
	logger    *slog.Logger
}

func NewCoordinator(cfg Config, logger *slog.Logger) (*Coordinator, error) {
	if cfg.Docs == nil {
		return nil, common.InvalidArgumentError("document store is required")
	}
	if cfg.Store == nil {
		return nil, common.InvalidArgumentError("statement store is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tracer == nil {
		cfg.Tracer = otel.Tracer(tracerName)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Coordinator{
		splitter:  pdfsplit.NewSplitter(logger),
		processor: pipeline.NewProcessor(extract.NewExtractor(cfg.Delimiter, logger), cfg.Docs, cfg.Store, logger),
		metrics:   cfg.Metrics,
		tracer:    cfg.Tracer,
		now:       cfg.Now,
		location:  cfg.Docs.Location(),
		logger:    logger,
	}, nil
}

// Ingest splits src and processes its pages in order. Page-level problems
// land in the report; a malformed source or a failing store aborts the run
// with an error and no report.
func (c *Coordinator) Ingest(ctx context.Context, src io.Reader) (*RunReport, error) {
	runID := uuid.New()
	ctx = common.WithRunID(ctx, runID)
	logger := c.logger.With("run_id", runID)
	ctx = common.WithLogger(ctx, logger)

	ctx, span := c.tracer.Start(ctx, "ingest.run", trace.WithAttributes(attribute.String("run.id", runID.String())))
	defer span.End()

	started := c.now()
	report := newRunReport(runID, started)
	fail := func(err error) (*RunReport, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.metrics.ObserveRun(metrics.RunFailed, c.now().Sub(started))
		logger.Error("ingest.run.failed", "pages_done", len(report.Pages), "error", err)
		return nil, err
	}

	pages, err := c.splitter.Open(ctx, src)
	if err != nil {
		return fail(err)
	}
	report.TotalPages = pages.Total()
	span.SetAttributes(attribute.Int("run.pages", report.TotalPages))
	logger.Info("ingest.run.start", "pages", report.TotalPages, "store", c.location)

	runDate := started.Format(constants.DateLayout)
	for pages.Next() {
		page := pages.Page()
		res, err := c.processPage(ctx, page, runDate)
		if err != nil {
			return fail(fmt.Errorf("page %d: %w", page.Number, err))
		}
		report.add(res)
		c.metrics.ObservePage(string(res.Outcome))
	}
	if err := pages.Err(); err != nil {
		return fail(err)
	}

	report.FinishedAt = c.now()
	c.metrics.ObserveRun(metrics.RunOK, report.FinishedAt.Sub(started))
	span.SetAttributes(
		attribute.Int("run.inserted", len(report.Inserted)),
		attribute.Int("run.skipped", len(report.Skipped)),
		attribute.Int("run.failed", len(report.Failed)),
	)
	logger.Info("ingest.run.ok",
		"pages", report.TotalPages,
		"inserted", len(report.Inserted),
		"skipped", len(report.Skipped),
		"failed", len(report.Failed),
		"duration", report.FinishedAt.Sub(started),
	)
	return report, nil
}

func (c *Coordinator) processPage(ctx context.Context, page pdfsplit.Page, runDate string) (pipeline.PageResult, error) {
	ctx, span := c.tracer.Start(ctx, "ingest.page", trace.WithAttributes(attribute.Int("page.number", page.Number)))
	defer span.End()

	res, err := c.processor.ProcessPage(ctx, page, runDate)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return res, err
	}
	span.SetAttributes(
		attribute.String("page.outcome", string(res.Outcome)),
		attribute.String("page.filename", res.Filename),
	)
	if res.Err != nil {
		span.RecordError(res.Err)
	}
	return res, nil
}

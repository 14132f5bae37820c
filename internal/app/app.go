// Package app wires configuration into the stores and services shared by the
// command-line tool and the daemon.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/joseph-ayodele/paystubs-tracker/internal/common"
	"github.com/joseph-ayodele/paystubs-tracker/internal/export"
	"github.com/joseph-ayodele/paystubs-tracker/internal/individuals"
	"github.com/joseph-ayodele/paystubs-tracker/internal/ingest"
	"github.com/joseph-ayodele/paystubs-tracker/internal/metrics"
	"github.com/joseph-ayodele/paystubs-tracker/internal/repository"
	"github.com/joseph-ayodele/paystubs-tracker/internal/statements"
	"github.com/joseph-ayodele/paystubs-tracker/internal/storage"
)

// InMemoryDSN is the sqlite DSN used by --inmem runs.
const InMemoryDSN = "file::memory:?_pragma=foreign_keys(1)"

// Options adjust Build beyond what the config file says.
type Options struct {
	InMemory bool // sqlite in memory, documents in memory
	Migrate  bool // apply pending migrations after connecting
}

// App holds the opened stores and the services built on them.
type App struct {
	Config   *common.Config
	DB       *repository.DB
	Docs     storage.Store
	Registry *prometheus.Registry
	Metrics  *metrics.Ingest

	People     repository.IndividualRepository
	Statements repository.PayStatementRepository

	Coordinator *ingest.Coordinator
	Ingestor    *ingest.FSIngestor
	Individuals *individuals.Service
	Records     *statements.Service
	Export      *export.Service

	logger *slog.Logger
}

// Build opens the database and document store and wires every service.
// Call Close when done.
func Build(ctx context.Context, cfg *common.Config, opts Options, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	dbCfg := repository.ConfigFrom(cfg.Database)
	stCfg := storage.Config{
		Backend:         cfg.Storage.Backend,
		Root:            cfg.Storage.Root,
		Bucket:          cfg.Storage.Bucket,
		Prefix:          cfg.Storage.Prefix,
		CredentialsFile: cfg.Storage.CredentialsFile,
	}
	if opts.InMemory {
		dbCfg.Driver = common.DriverSQLite
		dbCfg.DSN = InMemoryDSN
		stCfg.Backend = common.StorageMemory
		opts.Migrate = true
	}

	db, err := repository.Open(ctx, dbCfg, logger)
	if err != nil {
		return nil, err
	}
	if opts.Migrate {
		if _, err := repository.Migrate(ctx, db, logger); err != nil {
			repository.Close(db, logger)
			return nil, err
		}
	}

	docs, err := storage.New(ctx, stCfg)
	if err != nil {
		repository.Close(db, logger)
		return nil, fmt.Errorf("open document store: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewIngest(reg)

	a := &App{
		Config:     cfg,
		DB:         db,
		Docs:       docs,
		Registry:   reg,
		Metrics:    m,
		People:     repository.NewIndividualRepository(db, logger),
		Statements: repository.NewPayStatementRepository(db, logger),
		logger:     logger,
	}

	a.Coordinator, err = ingest.NewCoordinator(ingest.Config{
		Delimiter: cfg.Ingest.Delimiter,
		Docs:      docs,
		Store:     a.Statements,
		Metrics:   m,
	}, logger)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Ingestor = ingest.NewFSIngestor(a.Coordinator, logger)
	a.Individuals = individuals.NewService(a.People, logger)
	a.Records = statements.NewService(a.Statements, docs, logger)
	a.Export = export.NewService(a.Statements, cfg.Export.Currency, logger)

	logger.Info("app.ready",
		"driver", db.Dialect(),
		"documents", docs.Location(),
		"inmem", opts.InMemory,
	)
	return a, nil
}

// Close releases the document store (if it holds resources) and the database.
func (a *App) Close() {
	if c, ok := a.Docs.(io.Closer); ok {
		if err := c.Close(); err != nil {
			a.logger.Warn("close document store", "error", err)
		}
	}
	repository.Close(a.DB, a.logger)
}

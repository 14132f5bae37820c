package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/paystubs-tracker/constants"
	"github.com/joseph-ayodele/paystubs-tracker/internal/common"
)

// FSIngestor feeds pdf files from the local filesystem to a Coordinator.
type FSIngestor struct {
	coord  *Coordinator
	logger *slog.Logger
}

var _ Ingestor = (*FSIngestor)(nil)

func NewFSIngestor(coord *Coordinator, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{coord: coord, logger: logger}
}

func (i *FSIngestor) IngestPath(ctx context.Context, path string) (*RunReport, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if !isSourceDocument(abs) {
		i.logger.Warn("ingest.path.unsupported", "path", abs, "ext", ext)
		return nil, common.InvalidArgumentErrorf("unsupported or missing extension: %q", ext)
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func(f *os.File) {
		if err := f.Close(); err != nil {
			i.logger.Warn("close file error", "path", abs, "error", err)
		}
	}(f)

	report, err := i.coord.Ingest(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("ingest %s: %w", filepath.Base(abs), err)
	}
	report.Source = abs
	return report, nil
}

// IngestDirectory walks root, skips hidden entries if requested and ingests
// every pdf in walk order. A malformed file is recorded and the walk goes on;
// a store failure stops the walk.
func (i *FSIngestor) IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, common.InvalidArgumentError("root path is required")
	}

	var results []FileResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, FileResult{Path: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && path != root && hiddenEntry(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !isSourceDocument(path) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, path)
		if err != nil {
			results = append(results, FileResult{Path: path, Err: err.Error()})
			stats.Failed++
			if errors.Is(err, common.ErrDatabase) || ctx.Err() != nil {
				return err
			}
			return nil
		}

		results = append(results, FileResult{Path: path, Report: r})
		stats.Succeeded++
		stats.addReport(r)
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	i.logger.Info("ingest.dir.ok",
		"root", root,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"pages", stats.Pages,
	)
	return results, stats, nil
}

// isSourceDocument reports whether path names a multi-page statement source,
// matched on its extension in any case.
func isSourceDocument(path string) bool {
	_, ok := constants.AllowedExtensions[constants.NormalizeExt(filepath.Ext(path))]
	return ok
}

// hiddenEntry reports dot-prefixed names, which includes the partial files
// some scanners and sync clients leave beside a finished export.
func hiddenEntry(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}

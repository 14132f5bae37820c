// Package storage holds the split single-page statements, one object per filename.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/joseph-ayodele/paystubs-tracker/internal/common"
)

// ErrNotFound is returned by Read and Delete when no document has the name.
var ErrNotFound = fmt.Errorf("document %w", common.ErrNotFound)

// ErrInvalidName is returned for names that would escape the store root.
var ErrInvalidName = errors.New("invalid document name")

// Store is a flat namespace of documents addressed by filename. Write always
// overwrites an existing document of the same name.
type Store interface {
	Write(ctx context.Context, name string, data []byte) error
	Read(ctx context.Context, name string) ([]byte, error)
	Delete(ctx context.Context, name string) error
	Exists(ctx context.Context, name string) (bool, error)
	// Location describes where documents live, for logs and reports.
	Location() string
}

// Config selects and configures a backend.
type Config struct {
	Backend         string // common.StorageLocal | common.StorageGCS | common.StorageMemory
	Root            string
	Bucket          string
	Prefix          string
	CredentialsFile string
}

// New creates a Store for cfg.Backend.
func New(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case common.StorageGCS:
		return NewGCSStore(ctx, cfg.Bucket, cfg.Prefix, cfg.CredentialsFile)
	case common.StorageMemory:
		return NewMemoryStore(), nil
	case common.StorageLocal, "":
		return NewLocalStore(cfg.Root)
	default:
		return nil, common.NewAppError(common.CodeConfig, fmt.Sprintf("unknown storage backend %q", cfg.Backend), common.ErrInvalidInput)
	}
}

// ValidateName rejects empty names, path separators and dot segments.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	if name == "." || name == ".." || path.Clean(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Package backend builds the storage.Storage selected in the config.
// It is the one place that knows every concrete backend; the rest of the
// program only sees the interface.
package backend

import (
	"fmt"
	"io"

	"github.com/aanand-mishra/class-roster/internal/config"
	"github.com/aanand-mishra/class-roster/internal/storage"
	"github.com/aanand-mishra/class-roster/internal/storage/file"
	"github.com/aanand-mishra/class-roster/internal/storage/memory"
	"github.com/aanand-mishra/class-roster/internal/storage/sqlite"
)

// New returns the backend named by cfg.Backend ("" means file) together
// with a closer that releases it. The closer is never nil.
func New(cfg *config.Config) (storage.Storage, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendFile, "":
		return file.New(cfg.StoragePath), nopCloser{}, nil
	case config.BackendMemory:
		return memory.New(), nopCloser{}, nil
	case config.BackendSQLite:
		s, err := sqlite.New(cfg.StoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("backend.New: %w", err)
		}
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("backend.New: unknown storage backend %q", cfg.Backend)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

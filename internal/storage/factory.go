package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Backend names accepted by NewStore (and the -s flag).
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// NewStore builds the configured backend. dataDir is the root for the file
// backend and for relative SQLite paths; dsn names the SQLite database
// file.
func NewStore(ctx context.Context, backend, dataDir, dsn string) (Store, error) {
	switch backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendFile:
		return NewFile(dataDir)
	case BackendSQLite:
		if dsn != ":memory:" && !filepath.IsAbs(dsn) {
			if err := os.MkdirAll(dataDir, 0o700); err != nil {
				return nil, fmt.Errorf("failed to create data dir %s: %w", dataDir, err)
			}
			dsn = filepath.Join(dataDir, dsn)
		}
		return OpenSQLite(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// Shared helpers for libraryd commands.
package main

import (
	"fmt"

	"github.com/sweta-r4/library-api/internal/flatfile"
	"github.com/sweta-r4/library-api/internal/sqlite"
	"github.com/sweta-r4/library-api/pkg/types"
)

// newStore returns an unattached store for the given backend name.
func newStore(backend string) (types.Store, error) {
	switch backend {
	case types.BackendSQLite:
		return sqlite.NewBackend(), nil
	case types.BackendFlatFile:
		return flatfile.NewBackend(), nil
	default:
		return nil, fmt.Errorf("%w: %q (valid: %s, %s)",
			types.ErrBackendUnknown, backend, types.BackendSQLite, types.BackendFlatFile)
	}
}

// attachStore resolves the data directory and backend, creates the store,
// and attaches it. The caller must defer store.Detach().
func attachStore() (types.Store, types.Config, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend:    resolveBackend(),
		DataDir:    dataDir,
		ListenAddr: configListenAddr,
	}

	store, err := newStore(cfg.Backend)
	if err != nil {
		return nil, types.Config{}, err
	}
	if err := store.Attach(cfg); err != nil {
		return nil, types.Config{}, fmt.Errorf("attach store: %w", err)
	}

	return store, cfg, nil
}

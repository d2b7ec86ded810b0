// Package flatfile implements the text-file storage backend for the library
// catalog. Each table is one line-delimited text file with comma-space
// separated fields. Record IDs are derived from 1-based line position and
// are reassigned when earlier lines are deleted; every mutation rewrites
// the whole file atomically.
package flatfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sweta-r4/library-api/pkg/types"
)

// File names created inside DataDir, one per table.
const (
	BooksFileName   = "books.txt"
	StaffFileName   = "staff.txt"
	ReadersFileName = "readers.txt"
)

// Backend implements types.Store using flat text files.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	dataDir  string
	tables   map[string]types.Table
}

// NewBackend creates a new flat-file backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{
		tables: make(map[string]types.Table),
	}
}

// tableFiles maps table names to their backing files.
var tableFiles = map[string]string{
	types.BooksTable:   BooksFileName,
	types.StaffTable:   StaffFileName,
	types.ReadersTable: ReadersFileName,
}

// GetTable returns a Table accessor for the specified table name.
// Returns ErrTableNotFound if the table name is not recognized.
// Returns ErrStoreDetached if the backend is not attached.
func (b *Backend) GetTable(name string) (types.Table, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	table, ok := b.tables[name]
	if !ok {
		return nil, types.ErrTableNotFound
	}
	return table, nil
}

// Attach initializes the backend with the given configuration.
// Creates DataDir and any missing table files. Existing files are preserved.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	if err := ensureFiles(dataDir); err != nil {
		return err
	}

	b.config = config
	b.dataDir = dataDir
	b.attached = true

	b.tables[types.BooksTable] = &booksTable{backend: b}
	b.tables[types.StaffTable] = &staffTable{backend: b}
	b.tables[types.ReadersTable] = &readersTable{backend: b}

	return nil
}

// Detach releases the backend. Idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.attached = false
	b.tables = make(map[string]types.Table)
	return nil
}

// Init creates any missing table files. Existing files are preserved.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	return ensureFiles(b.dataDir)
}

// Clear truncates every table file.
func (b *Backend) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	for _, name := range tableFiles {
		if err := writeLines(filepath.Join(b.dataDir, name), nil); err != nil {
			return fmt.Errorf("clearing %s: %w", name, err)
		}
	}
	return nil
}

// checkAttached returns ErrStoreDetached when the backend is not attached.
// Callers must hold at least a read lock.
func (b *Backend) checkAttached() error {
	if !b.attached {
		return types.ErrStoreDetached
	}
	return nil
}

// filePath returns the absolute path of a table file.
func (b *Backend) filePath(name string) string {
	return filepath.Join(b.dataDir, name)
}

// ensureFiles creates empty table files for any that do not exist.
func ensureFiles(dataDir string) error {
	for _, name := range tableFiles {
		path := filepath.Join(dataDir, name)
		_, err := os.Stat(path)
		if err == nil {
			continue
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("stat %s: %w", name, err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			return fmt.Errorf("creating %s: %w", name, err)
		}
	}
	return nil
}

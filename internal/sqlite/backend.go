// Package sqlite implements the SQLite storage backend for the library
// catalog. Records live in three tables (books, staff, readers) with
// AUTOINCREMENT integer IDs; readers.borrowed_books is stored as a JSON
// text column.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/sweta-r4/library-api/pkg/types"
)

// DBFileName is the SQLite database file created inside DataDir.
const DBFileName = "library.db"

// Backend implements types.Store using a SQLite database.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	tables   map[string]types.Table
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{
		tables: make(map[string]types.Table),
	}
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
// Creates DataDir if it does not exist, applies the schema, and creates
// table accessors. Existing data is preserved.
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

	db, err := sql.Open("sqlite", filepath.Join(dataDir, DBFileName))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return fmt.Errorf("applying schema: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true

	b.tables[types.BooksTable] = &booksTable{backend: b}
	b.tables[types.StaffTable] = &staffTable{backend: b}
	b.tables[types.ReadersTable] = &readersTable{backend: b}

	return nil
}

// Detach closes the database and releases resources. Idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	err := b.db.Close()
	b.db = nil
	b.attached = false
	b.tables = make(map[string]types.Table)
	if err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}

// Init re-applies the schema. The DDL uses IF NOT EXISTS, so existing
// tables and their rows are preserved.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	if err := applySchema(b.db); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	return nil
}

// Clear deletes every row from every table while keeping the schema.
func (b *Backend) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	for _, name := range types.StandardTableNames {
		if _, err := b.db.Exec("DELETE FROM " + name); err != nil {
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

// rowExists reports whether a row with the given ID exists in the table.
func (b *Backend) rowExists(table, idColumn string, id int64) (bool, error) {
	var one int
	err := b.db.QueryRow(
		"SELECT 1 FROM "+table+" WHERE "+idColumn+" = ?", id,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking %s existence: %w", table, err)
	}
	return true, nil
}

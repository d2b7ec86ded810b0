package types

import "errors"

// Store defines the interface for backend-agnostic catalog storage.
// Callers attach to a backend, access tables by name, and detach when done.
type Store interface {
	// GetTable returns the Table for the given name.
	// Returns ErrTableNotFound if the name is not a standard table.
	GetTable(name string) (Table, error)

	// Attach connects the Store to the backend described by config.
	// Creates the DataDir and the backing schema or files if they do not
	// exist. Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, operations on tables return ErrStoreDetached.
	Detach() error

	// Init re-creates the backing schema or files. Idempotent; existing
	// records are preserved.
	Init() error

	// Clear removes every record from every table while keeping the schema
	// or files in place.
	Clear() error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrTableNotFound   = errors.New("table not found")
)

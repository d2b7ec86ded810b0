package types

import "errors"

// Table provides uniform CRUD operations for a single entity type.
// Get and List return any; callers type-assert to the concrete entity struct.
type Table interface {
	// Get retrieves the record with the given ID.
	// Returns ErrNotFound if no record exists with that ID.
	Get(id int64) (any, error)

	// List returns every record in the table in storage order.
	List() ([]any, error)

	// Insert stores a new record and returns the ID assigned to it.
	Insert(data any) (int64, error)

	// Update applies a partial update to the record with the given ID.
	// Fields left nil in the update struct are preserved.
	// Returns ErrNotFound if no record exists with that ID.
	Update(id int64, data any) error

	// Delete removes the record with the given ID.
	// Returns ErrNotFound if no record exists with that ID.
	Delete(id int64) error
}

// Table operation errors.
var (
	ErrNotFound    = errors.New("record not found")
	ErrInvalidID   = errors.New("invalid record ID")
	ErrInvalidData = errors.New("invalid record data")
)

// Entity validation errors.
var (
	ErrTitleEmpty  = errors.New("title must not be empty")
	ErrAuthorEmpty = errors.New("author must not be empty")
	ErrNameEmpty   = errors.New("name must not be empty")
	ErrRoleEmpty   = errors.New("role must not be empty")
)

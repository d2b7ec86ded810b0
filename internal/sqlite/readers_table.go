package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sweta-r4/library-api/pkg/types"
)

var _ types.Table = (*readersTable)(nil)

// readersTable implements the Table interface for readers. The
// borrowed_books column holds a JSON array of book IDs.
type readersTable struct {
	backend *Backend
}

// decodeBorrowed parses the borrowed_books column. Malformed JSON yields an
// empty list rather than an error.
func decodeBorrowed(raw sql.NullString) []int64 {
	if !raw.Valid || raw.String == "" {
		return []int64{}
	}
	var ids []int64
	if err := json.Unmarshal([]byte(raw.String), &ids); err != nil {
		return []int64{}
	}
	if ids == nil {
		return []int64{}
	}
	return ids
}

// encodeBorrowed serializes borrowed book IDs for the borrowed_books column.
func encodeBorrowed(ids []int64) (string, error) {
	if ids == nil {
		ids = []int64{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("encoding borrowed_books: %w", err)
	}
	return string(raw), nil
}

// Get retrieves a reader by ID.
func (t *readersTable) Get(id int64) (any, error) {
	if id < 1 {
		return nil, types.ErrInvalidID
	}
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if err := t.backend.checkAttached(); err != nil {
		return nil, err
	}

	var r types.Reader
	var contact, borrowed sql.NullString
	err := t.backend.db.QueryRow(
		"SELECT reader_id, name, contact, borrowed_books FROM readers WHERE reader_id = ?", id,
	).Scan(&r.ID, &r.Name, &contact, &borrowed)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting reader %d: %w", id, err)
	}
	r.Contact = contact.String
	r.BorrowedBooks = decodeBorrowed(borrowed)
	return &r, nil
}

// List returns all readers in row order.
func (t *readersTable) List() ([]any, error) {
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if err := t.backend.checkAttached(); err != nil {
		return nil, err
	}

	rows, err := t.backend.db.Query(
		"SELECT reader_id, name, contact, borrowed_books FROM readers",
	)
	if err != nil {
		return nil, fmt.Errorf("listing readers: %w", err)
	}
	defer rows.Close()

	var readers []any
	for rows.Next() {
		var r types.Reader
		var contact, borrowed sql.NullString
		if err := rows.Scan(&r.ID, &r.Name, &contact, &borrowed); err != nil {
			return nil, fmt.Errorf("scanning reader row: %w", err)
		}
		r.Contact = contact.String
		r.BorrowedBooks = decodeBorrowed(borrowed)
		readers = append(readers, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reader rows: %w", err)
	}
	return readers, nil
}

// Insert stores a new reader and returns its AUTOINCREMENT ID.
func (t *readersTable) Insert(data any) (int64, error) {
	reader, ok := data.(*types.Reader)
	if !ok {
		return 0, types.ErrInvalidData
	}
	if err := reader.Validate(); err != nil {
		return 0, err
	}
	borrowed, err := encodeBorrowed(reader.BorrowedBooks)
	if err != nil {
		return 0, err
	}

	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if err := t.backend.checkAttached(); err != nil {
		return 0, err
	}

	res, err := t.backend.db.Exec(
		"INSERT INTO readers (name, contact, borrowed_books) VALUES (?, ?, ?)",
		reader.Name, reader.Contact, borrowed,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting reader: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading reader insert ID: %w", err)
	}
	reader.ID = id
	return id, nil
}

// Update applies the non-nil fields of a ReaderUpdate. The borrowed_books
// column is never touched by partial updates.
func (t *readersTable) Update(id int64, data any) error {
	if id < 1 {
		return types.ErrInvalidID
	}
	upd, ok := data.(*types.ReaderUpdate)
	if !ok {
		return types.ErrInvalidData
	}

	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if err := t.backend.checkAttached(); err != nil {
		return err
	}

	exists, err := t.backend.rowExists("readers", "reader_id", id)
	if err != nil {
		return err
	}
	if !exists {
		return types.ErrNotFound
	}

	var sets []string
	var params []any
	if upd.Name != nil {
		sets = append(sets, "name = ?")
		params = append(params, *upd.Name)
	}
	if upd.Contact != nil {
		sets = append(sets, "contact = ?")
		params = append(params, *upd.Contact)
	}
	if len(sets) == 0 {
		return nil
	}

	params = append(params, id)
	query := "UPDATE readers SET " + strings.Join(sets, ", ") + " WHERE reader_id = ?"
	if _, err := t.backend.db.Exec(query, params...); err != nil {
		return fmt.Errorf("updating reader %d: %w", id, err)
	}
	return nil
}

// Delete removes a reader by ID.
func (t *readersTable) Delete(id int64) error {
	if id < 1 {
		return types.ErrInvalidID
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if err := t.backend.checkAttached(); err != nil {
		return err
	}

	exists, err := t.backend.rowExists("readers", "reader_id", id)
	if err != nil {
		return err
	}
	if !exists {
		return types.ErrNotFound
	}

	if _, err := t.backend.db.Exec("DELETE FROM readers WHERE reader_id = ?", id); err != nil {
		return fmt.Errorf("deleting reader %d: %w", id, err)
	}
	return nil
}

package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/sweta-r4/library-api/pkg/types"
)

var _ types.Table = (*staffTable)(nil)

// staffTable implements the Table interface for staff members.
type staffTable struct {
	backend *Backend
}

// Get retrieves a staff member by ID.
func (t *staffTable) Get(id int64) (any, error) {
	if id < 1 {
		return nil, types.ErrInvalidID
	}
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if err := t.backend.checkAttached(); err != nil {
		return nil, err
	}

	var s types.Staff
	var contact sql.NullString
	err := t.backend.db.QueryRow(
		"SELECT staff_id, name, role, contact FROM staff WHERE staff_id = ?", id,
	).Scan(&s.ID, &s.Name, &s.Role, &contact)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting staff %d: %w", id, err)
	}
	s.Contact = contact.String
	return &s, nil
}

// List returns all staff members in row order.
func (t *staffTable) List() ([]any, error) {
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if err := t.backend.checkAttached(); err != nil {
		return nil, err
	}

	rows, err := t.backend.db.Query("SELECT staff_id, name, role, contact FROM staff")
	if err != nil {
		return nil, fmt.Errorf("listing staff: %w", err)
	}
	defer rows.Close()

	var members []any
	for rows.Next() {
		var s types.Staff
		var contact sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &s.Role, &contact); err != nil {
			return nil, fmt.Errorf("scanning staff row: %w", err)
		}
		s.Contact = contact.String
		members = append(members, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating staff rows: %w", err)
	}
	return members, nil
}

// Insert stores a new staff member and returns its AUTOINCREMENT ID.
func (t *staffTable) Insert(data any) (int64, error) {
	staff, ok := data.(*types.Staff)
	if !ok {
		return 0, types.ErrInvalidData
	}
	if err := staff.Validate(); err != nil {
		return 0, err
	}

	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if err := t.backend.checkAttached(); err != nil {
		return 0, err
	}

	res, err := t.backend.db.Exec(
		"INSERT INTO staff (name, role, contact) VALUES (?, ?, ?)",
		staff.Name, staff.Role, staff.Contact,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting staff: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading staff insert ID: %w", err)
	}
	staff.ID = id
	return id, nil
}

// Update applies the non-nil fields of a StaffUpdate.
func (t *staffTable) Update(id int64, data any) error {
	if id < 1 {
		return types.ErrInvalidID
	}
	upd, ok := data.(*types.StaffUpdate)
	if !ok {
		return types.ErrInvalidData
	}

	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if err := t.backend.checkAttached(); err != nil {
		return err
	}

	exists, err := t.backend.rowExists("staff", "staff_id", id)
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
	if upd.Role != nil {
		sets = append(sets, "role = ?")
		params = append(params, *upd.Role)
	}
	if upd.Contact != nil {
		sets = append(sets, "contact = ?")
		params = append(params, *upd.Contact)
	}
	if len(sets) == 0 {
		return nil
	}

	params = append(params, id)
	query := "UPDATE staff SET " + strings.Join(sets, ", ") + " WHERE staff_id = ?"
	if _, err := t.backend.db.Exec(query, params...); err != nil {
		return fmt.Errorf("updating staff %d: %w", id, err)
	}
	return nil
}

// Delete removes a staff member by ID.
func (t *staffTable) Delete(id int64) error {
	if id < 1 {
		return types.ErrInvalidID
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if err := t.backend.checkAttached(); err != nil {
		return err
	}

	exists, err := t.backend.rowExists("staff", "staff_id", id)
	if err != nil {
		return err
	}
	if !exists {
		return types.ErrNotFound
	}

	if _, err := t.backend.db.Exec("DELETE FROM staff WHERE staff_id = ?", id); err != nil {
		return fmt.Errorf("deleting staff %d: %w", id, err)
	}
	return nil
}

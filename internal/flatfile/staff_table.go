package flatfile

import "github.com/sweta-r4/library-api/pkg/types"

var _ types.Table = (*staffTable)(nil)

// staffTable implements the Table interface for staff members.
// Line format: Name, Role, Contact. Contact may be blank.
type staffTable struct {
	backend *Backend
}

// parseStaff decodes one line into a Staff. Returns false for lines with
// fewer than two fields.
func parseStaff(id int64, line string) (*types.Staff, bool) {
	parts := splitFields(line)
	if len(parts) < 2 {
		return nil, false
	}
	s := &types.Staff{
		ID:   id,
		Name: parts[0],
		Role: parts[1],
	}
	if len(parts) > 2 {
		s.Contact = parts[2]
	}
	return s, true
}

// formatStaff encodes a Staff as one line.
func formatStaff(s *types.Staff) string {
	return joinFields(s.Name, s.Role, s.Contact)
}

func (t *staffTable) load() ([]*types.Staff, error) {
	lines, err := readLines(t.backend.filePath(StaffFileName))
	if err != nil {
		return nil, err
	}
	var members []*types.Staff
	for _, line := range lines {
		if s, ok := parseStaff(int64(len(members)+1), line); ok {
			members = append(members, s)
		}
	}
	return members, nil
}

func (t *staffTable) save(members []*types.Staff) error {
	lines := make([]string, len(members))
	for i, s := range members {
		lines[i] = formatStaff(s)
	}
	return writeLines(t.backend.filePath(StaffFileName), lines)
}

// Get retrieves a staff member by its positional ID.
func (t *staffTable) Get(id int64) (any, error) {
	if id < 1 {
		return nil, types.ErrInvalidID
	}
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if err := t.backend.checkAttached(); err != nil {
		return nil, err
	}

	members, err := t.load()
	if err != nil {
		return nil, err
	}
	if id > int64(len(members)) {
		return nil, types.ErrNotFound
	}
	return members[id-1], nil
}

// List returns all staff members in file order.
func (t *staffTable) List() ([]any, error) {
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if err := t.backend.checkAttached(); err != nil {
		return nil, err
	}

	members, err := t.load()
	if err != nil {
		return nil, err
	}
	out := make([]any, len(members))
	for i, s := range members {
		out[i] = s
	}
	return out, nil
}

// Insert appends a staff line and returns the new positional ID.
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

	members, err := t.load()
	if err != nil {
		return 0, err
	}
	staff.ID = int64(len(members) + 1)
	members = append(members, staff)
	if err := t.save(members); err != nil {
		return 0, err
	}
	return staff.ID, nil
}

// Update applies a partial update and rewrites the whole file.
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

	members, err := t.load()
	if err != nil {
		return err
	}
	if id > int64(len(members)) {
		return types.ErrNotFound
	}
	upd.Apply(members[id-1])
	return t.save(members)
}

// Delete removes a staff line and rewrites the whole file.
func (t *staffTable) Delete(id int64) error {
	if id < 1 {
		return types.ErrInvalidID
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if err := t.backend.checkAttached(); err != nil {
		return err
	}

	members, err := t.load()
	if err != nil {
		return err
	}
	if id > int64(len(members)) {
		return types.ErrNotFound
	}
	members = append(members[:id-1], members[id:]...)
	return t.save(members)
}

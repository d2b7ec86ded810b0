package flatfile

import "github.com/sweta-r4/library-api/pkg/types"

var _ types.Table = (*readersTable)(nil)

// readersTable implements the Table interface for readers.
// Line format: Name, Contact. The format has no field for borrowed books,
// so this backend always reports an empty borrowed list.
type readersTable struct {
	backend *Backend
}

// parseReader decodes one line into a Reader. Returns false for lines with
// fewer than two fields.
func parseReader(id int64, line string) (*types.Reader, bool) {
	parts := splitFields(line)
	if len(parts) < 2 {
		return nil, false
	}
	return &types.Reader{
		ID:            id,
		Name:          parts[0],
		Contact:       parts[1],
		BorrowedBooks: []int64{},
	}, true
}

// formatReader encodes a Reader as one line. Borrowed books are dropped.
func formatReader(r *types.Reader) string {
	return joinFields(r.Name, r.Contact)
}

func (t *readersTable) load() ([]*types.Reader, error) {
	lines, err := readLines(t.backend.filePath(ReadersFileName))
	if err != nil {
		return nil, err
	}
	var readers []*types.Reader
	for _, line := range lines {
		if r, ok := parseReader(int64(len(readers)+1), line); ok {
			readers = append(readers, r)
		}
	}
	return readers, nil
}

func (t *readersTable) save(readers []*types.Reader) error {
	lines := make([]string, len(readers))
	for i, r := range readers {
		lines[i] = formatReader(r)
	}
	return writeLines(t.backend.filePath(ReadersFileName), lines)
}

// Get retrieves a reader by its positional ID.
func (t *readersTable) Get(id int64) (any, error) {
	if id < 1 {
		return nil, types.ErrInvalidID
	}
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if err := t.backend.checkAttached(); err != nil {
		return nil, err
	}

	readers, err := t.load()
	if err != nil {
		return nil, err
	}
	if id > int64(len(readers)) {
		return nil, types.ErrNotFound
	}
	return readers[id-1], nil
}

// List returns all readers in file order.
func (t *readersTable) List() ([]any, error) {
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if err := t.backend.checkAttached(); err != nil {
		return nil, err
	}

	readers, err := t.load()
	if err != nil {
		return nil, err
	}
	out := make([]any, len(readers))
	for i, r := range readers {
		out[i] = r
	}
	return out, nil
}

// Insert appends a reader line and returns the new positional ID.
func (t *readersTable) Insert(data any) (int64, error) {
	reader, ok := data.(*types.Reader)
	if !ok {
		return 0, types.ErrInvalidData
	}
	if err := reader.Validate(); err != nil {
		return 0, err
	}

	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if err := t.backend.checkAttached(); err != nil {
		return 0, err
	}

	readers, err := t.load()
	if err != nil {
		return 0, err
	}
	reader.ID = int64(len(readers) + 1)
	reader.BorrowedBooks = []int64{}
	readers = append(readers, reader)
	if err := t.save(readers); err != nil {
		return 0, err
	}
	return reader.ID, nil
}

// Update applies a partial update and rewrites the whole file.
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

	readers, err := t.load()
	if err != nil {
		return err
	}
	if id > int64(len(readers)) {
		return types.ErrNotFound
	}
	upd.Apply(readers[id-1])
	return t.save(readers)
}

// Delete removes a reader line and rewrites the whole file.
func (t *readersTable) Delete(id int64) error {
	if id < 1 {
		return types.ErrInvalidID
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if err := t.backend.checkAttached(); err != nil {
		return err
	}

	readers, err := t.load()
	if err != nil {
		return err
	}
	if id > int64(len(readers)) {
		return types.ErrNotFound
	}
	readers = append(readers[:id-1], readers[id:]...)
	return t.save(readers)
}

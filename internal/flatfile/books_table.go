package flatfile

import (
	"strconv"

	"github.com/sweta-r4/library-api/pkg/types"
)

// Compile-time interface check: booksTable must implement Table.
var _ types.Table = (*booksTable)(nil)

// booksTable implements the Table interface for books.
// Line format: Title, Author, Genre, Stock. Genre may be blank; a missing
// or unparseable stock field falls back to DefaultStock.
type booksTable struct {
	backend *Backend
}

// parseBook decodes one line into a Book. Returns false for lines with
// fewer than two fields.
func parseBook(id int64, line string) (*types.Book, bool) {
	parts := splitFields(line)
	if len(parts) < 2 {
		return nil, false
	}
	b := &types.Book{
		ID:     id,
		Title:  parts[0],
		Author: parts[1],
		Stock:  types.DefaultStock,
	}
	if len(parts) > 2 {
		b.Genre = parts[2]
	}
	if len(parts) > 3 {
		if stock, err := strconv.ParseInt(parts[3], 10, 64); err == nil {
			b.Stock = stock
		}
	}
	return b, true
}

// formatBook encodes a Book as one line. The ID is positional and is not
// written.
func formatBook(b *types.Book) string {
	return joinFields(b.Title, b.Author, b.Genre, strconv.FormatInt(b.Stock, 10))
}

// load reads every parseable book record. IDs are assigned from 1-based
// position among parseable lines.
func (t *booksTable) load() ([]*types.Book, error) {
	lines, err := readLines(t.backend.filePath(BooksFileName))
	if err != nil {
		return nil, err
	}
	var books []*types.Book
	for _, line := range lines {
		if b, ok := parseBook(int64(len(books)+1), line); ok {
			books = append(books, b)
		}
	}
	return books, nil
}

// save rewrites the whole books file.
func (t *booksTable) save(books []*types.Book) error {
	lines := make([]string, len(books))
	for i, b := range books {
		lines[i] = formatBook(b)
	}
	return writeLines(t.backend.filePath(BooksFileName), lines)
}

// Get retrieves a book by its positional ID.
func (t *booksTable) Get(id int64) (any, error) {
	if id < 1 {
		return nil, types.ErrInvalidID
	}
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if err := t.backend.checkAttached(); err != nil {
		return nil, err
	}

	books, err := t.load()
	if err != nil {
		return nil, err
	}
	if id > int64(len(books)) {
		return nil, types.ErrNotFound
	}
	return books[id-1], nil
}

// List returns all books in file order.
func (t *booksTable) List() ([]any, error) {
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if err := t.backend.checkAttached(); err != nil {
		return nil, err
	}

	books, err := t.load()
	if err != nil {
		return nil, err
	}
	out := make([]any, len(books))
	for i, b := range books {
		out[i] = b
	}
	return out, nil
}

// Insert appends a book line and returns the new positional ID.
func (t *booksTable) Insert(data any) (int64, error) {
	book, ok := data.(*types.Book)
	if !ok {
		return 0, types.ErrInvalidData
	}
	if err := book.Validate(); err != nil {
		return 0, err
	}

	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if err := t.backend.checkAttached(); err != nil {
		return 0, err
	}

	books, err := t.load()
	if err != nil {
		return 0, err
	}
	book.ID = int64(len(books) + 1)
	books = append(books, book)
	if err := t.save(books); err != nil {
		return 0, err
	}
	return book.ID, nil
}

// Update applies a partial update and rewrites the whole file.
func (t *booksTable) Update(id int64, data any) error {
	if id < 1 {
		return types.ErrInvalidID
	}
	upd, ok := data.(*types.BookUpdate)
	if !ok {
		return types.ErrInvalidData
	}

	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if err := t.backend.checkAttached(); err != nil {
		return err
	}

	books, err := t.load()
	if err != nil {
		return err
	}
	if id > int64(len(books)) {
		return types.ErrNotFound
	}
	upd.Apply(books[id-1])
	return t.save(books)
}

// Delete removes a book line and rewrites the whole file. Records after the
// deleted line take over the vacated IDs.
func (t *booksTable) Delete(id int64) error {
	if id < 1 {
		return types.ErrInvalidID
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if err := t.backend.checkAttached(); err != nil {
		return err
	}

	books, err := t.load()
	if err != nil {
		return err
	}
	if id > int64(len(books)) {
		return types.ErrNotFound
	}
	books = append(books[:id-1], books[id:]...)
	return t.save(books)
}

package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/sweta-r4/library-api/pkg/types"
)

// Compile-time interface check: booksTable must implement Table.
var _ types.Table = (*booksTable)(nil)

// booksTable implements the Table interface for books. Each operation
// hydrates between SQLite rows and *types.Book structs.
type booksTable struct {
	backend *Backend
}

// scanBook hydrates a single row into a Book.
func scanBook(row *sql.Row) (*types.Book, error) {
	var b types.Book
	var genre sql.NullString
	if err := row.Scan(&b.ID, &b.Title, &b.Author, &genre, &b.Stock); err != nil {
		return nil, err
	}
	b.Genre = genre.String
	return &b, nil
}

// Get retrieves a book by ID.
func (t *booksTable) Get(id int64) (any, error) {
	if id < 1 {
		return nil, types.ErrInvalidID
	}
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if err := t.backend.checkAttached(); err != nil {
		return nil, err
	}

	row := t.backend.db.QueryRow(
		"SELECT book_id, title, author, genre, stock FROM books WHERE book_id = ?", id,
	)
	book, err := scanBook(row)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting book %d: %w", id, err)
	}
	return book, nil
}

// List returns all books in row order.
func (t *booksTable) List() ([]any, error) {
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if err := t.backend.checkAttached(); err != nil {
		return nil, err
	}

	rows, err := t.backend.db.Query(
		"SELECT book_id, title, author, genre, stock FROM books",
	)
	if err != nil {
		return nil, fmt.Errorf("listing books: %w", err)
	}
	defer rows.Close()

	var books []any
	for rows.Next() {
		var b types.Book
		var genre sql.NullString
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &genre, &b.Stock); err != nil {
			return nil, fmt.Errorf("scanning book row: %w", err)
		}
		b.Genre = genre.String
		books = append(books, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating book rows: %w", err)
	}
	return books, nil
}

// Insert stores a new book and returns its AUTOINCREMENT ID.
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

	res, err := t.backend.db.Exec(
		"INSERT INTO books (title, author, genre, stock) VALUES (?, ?, ?, ?)",
		book.Title, book.Author, book.Genre, book.Stock,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting book: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading book insert ID: %w", err)
	}
	book.ID = id
	return id, nil
}

// Update applies the non-nil fields of a BookUpdate with a dynamically
// built SET clause.
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

	exists, err := t.backend.rowExists("books", "book_id", id)
	if err != nil {
		return err
	}
	if !exists {
		return types.ErrNotFound
	}

	var sets []string
	var params []any
	if upd.Title != nil {
		sets = append(sets, "title = ?")
		params = append(params, *upd.Title)
	}
	if upd.Author != nil {
		sets = append(sets, "author = ?")
		params = append(params, *upd.Author)
	}
	if upd.Genre != nil {
		sets = append(sets, "genre = ?")
		params = append(params, *upd.Genre)
	}
	if upd.Stock != nil {
		sets = append(sets, "stock = ?")
		params = append(params, *upd.Stock)
	}
	if len(sets) == 0 {
		return nil
	}

	params = append(params, id)
	query := "UPDATE books SET " + strings.Join(sets, ", ") + " WHERE book_id = ?"
	if _, err := t.backend.db.Exec(query, params...); err != nil {
		return fmt.Errorf("updating book %d: %w", id, err)
	}
	return nil
}

// Delete removes a book by ID.
func (t *booksTable) Delete(id int64) error {
	if id < 1 {
		return types.ErrInvalidID
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if err := t.backend.checkAttached(); err != nil {
		return err
	}

	exists, err := t.backend.rowExists("books", "book_id", id)
	if err != nil {
		return err
	}
	if !exists {
		return types.ErrNotFound
	}

	if _, err := t.backend.db.Exec("DELETE FROM books WHERE book_id = ?", id); err != nil {
		return fmt.Errorf("deleting book %d: %w", id, err)
	}
	return nil
}

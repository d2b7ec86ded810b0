package sqlite

import "database/sql"

// Schema DDL for all tables. IF NOT EXISTS keeps Attach and Init idempotent.
const (
	createBooks = `CREATE TABLE IF NOT EXISTS books (
    book_id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    author TEXT NOT NULL,
    genre TEXT,
    stock INTEGER DEFAULT 1
);`

	createStaff = `CREATE TABLE IF NOT EXISTS staff (
    staff_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    role TEXT NOT NULL,
    contact TEXT
);`

	createReaders = `CREATE TABLE IF NOT EXISTS readers (
    reader_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    contact TEXT,
    borrowed_books TEXT DEFAULT '[]'
);`
)

// applySchema executes the DDL for every table.
func applySchema(db *sql.DB) error {
	for _, ddl := range []string{createBooks, createStaff, createReaders} {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}

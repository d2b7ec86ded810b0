package types

import "strings"

// DefaultStock is the stock assigned to a book when the caller does not
// provide one.
const DefaultStock = 1

// Book represents a catalog entry.
type Book struct {
	ID     int64  `json:"book_id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
	Stock  int64  `json:"stock"`
}

// Validate checks required fields. Title and author must be non-blank.
func (b *Book) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return ErrTitleEmpty
	}
	if strings.TrimSpace(b.Author) == "" {
		return ErrAuthorEmpty
	}
	return nil
}

// BookUpdate carries a partial update for a book. Nil fields are preserved.
type BookUpdate struct {
	Title  *string `json:"title,omitempty"`
	Author *string `json:"author,omitempty"`
	Genre  *string `json:"genre,omitempty"`
	Stock  *int64  `json:"stock,omitempty"`
}

// Apply copies the non-nil fields of the update onto the book.
func (u BookUpdate) Apply(b *Book) {
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Author != nil {
		b.Author = *u.Author
	}
	if u.Genre != nil {
		b.Genre = *u.Genre
	}
	if u.Stock != nil {
		b.Stock = *u.Stock
	}
}

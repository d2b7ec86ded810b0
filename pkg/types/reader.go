package types

import "strings"

// Reader represents a library member.
// BorrowedBooks holds book IDs; no relational integrity is enforced against
// the books table.
type Reader struct {
	ID            int64   `json:"reader_id"`
	Name          string  `json:"name"`
	Contact       string  `json:"contact"`
	BorrowedBooks []int64 `json:"borrowed_books"`
}

// Validate checks required fields. Name must be non-blank.
func (r *Reader) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameEmpty
	}
	return nil
}

// Borrowed returns the borrowed book IDs, never nil.
func (r *Reader) Borrowed() []int64 {
	if r.BorrowedBooks == nil {
		return []int64{}
	}
	return r.BorrowedBooks
}

// ReaderUpdate carries a partial update for a reader. Nil fields are preserved.
type ReaderUpdate struct {
	Name    *string `json:"name,omitempty"`
	Contact *string `json:"contact,omitempty"`
}

// Apply copies the non-nil fields of the update onto the reader.
func (u ReaderUpdate) Apply(r *Reader) {
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.Contact != nil {
		r.Contact = *u.Contact
	}
}

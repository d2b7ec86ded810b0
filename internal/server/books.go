package server

import (
	"net/http"

	"github.com/sweta-r4/library-api/pkg/types"
)

// bookCreateRequest is the basic create payload. A nil stock falls back to
// DefaultStock, matching the column default.
type bookCreateRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
	Stock  *int64 `json:"stock"`
}

func (req bookCreateRequest) toBook() *types.Book {
	stock := int64(types.DefaultStock)
	if req.Stock != nil {
		stock = *req.Stock
	}
	return &types.Book{
		Title:  req.Title,
		Author: req.Author,
		Genre:  req.Genre,
		Stock:  stock,
	}
}

// handleListBooks returns every book.
func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	table, ok := s.table(w, r, types.BooksTable)
	if !ok {
		return
	}
	books, err := table.List()
	if err != nil {
		s.entityError(w, r, "Book", 0, err)
		return
	}
	if books == nil {
		books = []any{}
	}
	writeJSON(w, http.StatusOK, books)
}

// handleGetBook returns one book by ID.
func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	table, ok := s.table(w, r, types.BooksTable)
	if !ok {
		return
	}
	book, err := table.Get(id)
	if err != nil {
		s.entityError(w, r, "Book", id, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

// handleCreateBook stores a new book and returns it wrapped in a message
// envelope.
func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	var req bookCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	table, ok := s.table(w, r, types.BooksTable)
	if !ok {
		return
	}
	book := req.toBook()
	id, err := table.Insert(book)
	if err != nil {
		s.entityError(w, r, "Book", 0, err)
		return
	}
	created, err := table.Get(id)
	if err != nil {
		s.entityError(w, r, "Book", id, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Book created successfully",
		"book":    created,
	})
}

// handleUpdateBook applies a partial update and returns the updated book.
func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var upd types.BookUpdate
	if !decodeJSON(w, r, &upd) {
		return
	}
	table, ok := s.table(w, r, types.BooksTable)
	if !ok {
		return
	}
	if err := table.Update(id, &upd); err != nil {
		s.entityError(w, r, "Book", id, err)
		return
	}
	updated, err := table.Get(id)
	if err != nil {
		s.entityError(w, r, "Book", id, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Book updated successfully",
		"book":    updated,
	})
}

// handleDeleteBook removes a book.
func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	table, ok := s.table(w, r, types.BooksTable)
	if !ok {
		return
	}
	if err := table.Delete(id); err != nil {
		s.entityError(w, r, "Book", id, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": deletedMessage("Book", id),
	})
}

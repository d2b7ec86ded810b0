// Nested-JSON payload variants for books and readers.
package server

import (
	"net/http"
	"strings"

	"github.com/sweta-r4/library-api/pkg/types"
)

// bookDetails is the nested portion of the advanced book payload.
type bookDetails struct {
	Genre string `json:"genre"`
	Stock *int64 `json:"stock"`
}

// bookAdvancedRequest is the advanced book create payload.
type bookAdvancedRequest struct {
	Title   string      `json:"title"`
	Author  string      `json:"author"`
	Details bookDetails `json:"details"`
}

// Validate trims title and author and rejects blank values.
func (req *bookAdvancedRequest) Validate() error {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return types.ErrTitleEmpty
	}
	req.Author = strings.TrimSpace(req.Author)
	if req.Author == "" {
		return types.ErrAuthorEmpty
	}
	return nil
}

func (req bookAdvancedRequest) toBook() *types.Book {
	stock := int64(types.DefaultStock)
	if req.Details.Stock != nil {
		stock = *req.Details.Stock
	}
	return &types.Book{
		Title:  req.Title,
		Author: req.Author,
		Genre:  req.Details.Genre,
		Stock:  stock,
	}
}

// bookAdvancedResponse is the nested book response shape.
type bookAdvancedResponse struct {
	BookID  int64          `json:"book_id"`
	Title   string         `json:"title"`
	Author  string         `json:"author"`
	Details bookDetailsOut `json:"details"`
}

type bookDetailsOut struct {
	Genre string `json:"genre"`
	Stock int64  `json:"stock"`
}

func toBookAdvanced(b *types.Book) bookAdvancedResponse {
	return bookAdvancedResponse{
		BookID: b.ID,
		Title:  b.Title,
		Author: b.Author,
		Details: bookDetailsOut{
			Genre: b.Genre,
			Stock: b.Stock,
		},
	}
}

// readerDetails is the nested portion of the advanced reader payload.
type readerDetails struct {
	Contact       string  `json:"contact"`
	BorrowedBooks []int64 `json:"borrowed_books"`
}

// readerAdvancedRequest is the advanced reader create payload.
type readerAdvancedRequest struct {
	Name    string        `json:"name"`
	Details readerDetails `json:"details"`
}

// Validate trims the name and rejects blank values.
func (req *readerAdvancedRequest) Validate() error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return types.ErrNameEmpty
	}
	return nil
}

// readerAdvancedResponse is the nested reader response shape.
type readerAdvancedResponse struct {
	ReaderID int64         `json:"reader_id"`
	Name     string        `json:"name"`
	Details  readerDetails `json:"details"`
}

func toReaderAdvanced(r *types.Reader) readerAdvancedResponse {
	return readerAdvancedResponse{
		ReaderID: r.ID,
		Name:     r.Name,
		Details: readerDetails{
			Contact:       r.Contact,
			BorrowedBooks: r.Borrowed(),
		},
	}
}

// handleCreateBookAdvanced validates the nested payload, stores the book,
// and echoes it back in nested form.
func (s *Server) handleCreateBookAdvanced(w http.ResponseWriter, r *http.Request) {
	var req bookAdvancedRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
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
	writeJSON(w, http.StatusOK, toBookAdvanced(created.(*types.Book)))
}

// handleGetBookAdvanced returns one book in nested form.
func (s *Server) handleGetBookAdvanced(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, toBookAdvanced(book.(*types.Book)))
}

// handleCreateReaderAdvanced validates the nested payload, stores the
// reader, and echoes it back in nested form. The borrowed list in the
// request is ignored; new readers always start empty.
func (s *Server) handleCreateReaderAdvanced(w http.ResponseWriter, r *http.Request) {
	var req readerAdvancedRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	table, ok := s.table(w, r, types.ReadersTable)
	if !ok {
		return
	}
	reader := &types.Reader{
		Name:          req.Name,
		Contact:       req.Details.Contact,
		BorrowedBooks: []int64{},
	}
	id, err := table.Insert(reader)
	if err != nil {
		s.entityError(w, r, "Reader", 0, err)
		return
	}
	created, err := table.Get(id)
	if err != nil {
		s.entityError(w, r, "Reader", id, err)
		return
	}
	writeJSON(w, http.StatusOK, toReaderAdvanced(created.(*types.Reader)))
}

// handleGetReaderAdvanced returns one reader in nested form.
func (s *Server) handleGetReaderAdvanced(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	table, ok := s.table(w, r, types.ReadersTable)
	if !ok {
		return
	}
	reader, err := table.Get(id)
	if err != nil {
		s.entityError(w, r, "Reader", id, err)
		return
	}
	writeJSON(w, http.StatusOK, toReaderAdvanced(reader.(*types.Reader)))
}

package server

import (
	"net/http"

	"github.com/sweta-r4/library-api/pkg/types"
)

// readerCreateRequest is the reader create payload. New readers start with
// an empty borrowed list.
type readerCreateRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// handleListReaders returns every reader.
func (s *Server) handleListReaders(w http.ResponseWriter, r *http.Request) {
	table, ok := s.table(w, r, types.ReadersTable)
	if !ok {
		return
	}
	readers, err := table.List()
	if err != nil {
		s.entityError(w, r, "Reader", 0, err)
		return
	}
	if readers == nil {
		readers = []any{}
	}
	writeJSON(w, http.StatusOK, readers)
}

// handleGetReader returns one reader by ID.
func (s *Server) handleGetReader(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, reader)
}

// handleCreateReader stores a new reader.
func (s *Server) handleCreateReader(w http.ResponseWriter, r *http.Request) {
	var req readerCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	table, ok := s.table(w, r, types.ReadersTable)
	if !ok {
		return
	}
	reader := &types.Reader{
		Name:          req.Name,
		Contact:       req.Contact,
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
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Reader created successfully",
		"reader":  created,
	})
}

// handleUpdateReader applies a partial update. The borrowed list is not
// touched by updates.
func (s *Server) handleUpdateReader(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var upd types.ReaderUpdate
	if !decodeJSON(w, r, &upd) {
		return
	}
	table, ok := s.table(w, r, types.ReadersTable)
	if !ok {
		return
	}
	if err := table.Update(id, &upd); err != nil {
		s.entityError(w, r, "Reader", id, err)
		return
	}
	updated, err := table.Get(id)
	if err != nil {
		s.entityError(w, r, "Reader", id, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Reader updated successfully",
		"reader":  updated,
	})
}

// handleDeleteReader removes a reader.
func (s *Server) handleDeleteReader(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	table, ok := s.table(w, r, types.ReadersTable)
	if !ok {
		return
	}
	if err := table.Delete(id); err != nil {
		s.entityError(w, r, "Reader", id, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": deletedMessage("Reader", id),
	})
}

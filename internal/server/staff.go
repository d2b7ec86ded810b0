package server

import (
	"net/http"

	"github.com/sweta-r4/library-api/pkg/types"
)

// staffCreateRequest is the staff create payload.
type staffCreateRequest struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Contact string `json:"contact"`
}

// handleListStaff returns every staff member.
func (s *Server) handleListStaff(w http.ResponseWriter, r *http.Request) {
	table, ok := s.table(w, r, types.StaffTable)
	if !ok {
		return
	}
	members, err := table.List()
	if err != nil {
		s.entityError(w, r, "Staff member", 0, err)
		return
	}
	if members == nil {
		members = []any{}
	}
	writeJSON(w, http.StatusOK, members)
}

// handleGetStaff returns one staff member by ID.
func (s *Server) handleGetStaff(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	table, ok := s.table(w, r, types.StaffTable)
	if !ok {
		return
	}
	member, err := table.Get(id)
	if err != nil {
		s.entityError(w, r, "Staff member", id, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

// handleCreateStaff stores a new staff member.
func (s *Server) handleCreateStaff(w http.ResponseWriter, r *http.Request) {
	var req staffCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	table, ok := s.table(w, r, types.StaffTable)
	if !ok {
		return
	}
	member := &types.Staff{Name: req.Name, Role: req.Role, Contact: req.Contact}
	id, err := table.Insert(member)
	if err != nil {
		s.entityError(w, r, "Staff member", 0, err)
		return
	}
	created, err := table.Get(id)
	if err != nil {
		s.entityError(w, r, "Staff member", id, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Staff member created successfully",
		"staff":   created,
	})
}

// handleUpdateStaff applies a partial update.
func (s *Server) handleUpdateStaff(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var upd types.StaffUpdate
	if !decodeJSON(w, r, &upd) {
		return
	}
	table, ok := s.table(w, r, types.StaffTable)
	if !ok {
		return
	}
	if err := table.Update(id, &upd); err != nil {
		s.entityError(w, r, "Staff member", id, err)
		return
	}
	updated, err := table.Get(id)
	if err != nil {
		s.entityError(w, r, "Staff member", id, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Staff member updated successfully",
		"staff":   updated,
	})
}

// handleDeleteStaff removes a staff member.
func (s *Server) handleDeleteStaff(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	table, ok := s.table(w, r, types.StaffTable)
	if !ok {
		return
	}
	if err := table.Delete(id); err != nil {
		s.entityError(w, r, "Staff member", id, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": deletedMessage("Staff member", id),
	})
}

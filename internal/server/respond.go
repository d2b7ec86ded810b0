// JSON request decoding and response writing helpers.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sweta-r4/library-api/pkg/types"
)

// errorBody is the error response shape: {"detail": "..."}.
type errorBody struct {
	Detail string `json:"detail"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "err", err)
	}
}

// writeError writes an error response with the given status and detail.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorBody{Detail: detail})
}

// decodeJSON decodes the request body into dst. Returns false after writing
// a 400 when the body is missing or malformed.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// pathID parses the {id} path segment. Returns false after writing a 400
// when the segment is not a positive integer.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, "ID must be a positive integer")
		return 0, false
	}
	return id, true
}

// entityError maps a storage error to the right HTTP response. entity is the
// display name used in 404 details ("Book", "Reader", "Staff member").
func (s *Server) entityError(w http.ResponseWriter, r *http.Request, entity string, id int64, err error) {
	switch {
	case errors.Is(err, types.ErrNotFound):
		writeError(w, http.StatusNotFound, fmt.Sprintf("%s with ID %d not found", entity, id))
	case errors.Is(err, types.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "ID must be a positive integer")
	case isValidationError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.log.ErrorContext(r.Context(), "storage operation failed", "entity", entity, "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "internal storage error")
	}
}

// deletedMessage formats the delete confirmation message.
func deletedMessage(entity string, id int64) string {
	return fmt.Sprintf("%s with ID %d deleted successfully", entity, id)
}

// isValidationError reports whether err is a required-field violation.
func isValidationError(err error) bool {
	return errors.Is(err, types.ErrTitleEmpty) ||
		errors.Is(err, types.ErrAuthorEmpty) ||
		errors.Is(err, types.ErrNameEmpty) ||
		errors.Is(err, types.ErrRoleEmpty) ||
		errors.Is(err, types.ErrInvalidData)
}

// Payload validation endpoints: check advanced payloads without persisting.
package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// decodeStrict decodes JSON rejecting unknown fields, so validation catches
// misspelled keys rather than silently dropping them.
func decodeStrict(r *http.Request, dst any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("reading body: %w", err)
	}
	d := json.NewDecoder(bytes.NewReader(body))
	d.DisallowUnknownFields()
	return d.Decode(dst)
}

// handleValidateBook validates an advanced book payload.
func (s *Server) handleValidateBook(w http.ResponseWriter, r *http.Request) {
	var req bookAdvancedRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"valid":   true,
		"message": "JSON payload is valid",
		"data":    req,
	})
}

// handleValidateReader validates an advanced reader payload.
func (s *Server) handleValidateReader(w http.ResponseWriter, r *http.Request) {
	var req readerAdvancedRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"valid":   true,
		"message": "JSON payload is valid",
		"data":    req,
	})
}

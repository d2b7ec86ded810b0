package server

import (
	"net/http"
	"time"

	"github.com/sweta-r4/library-api/pkg/types"
)

// handleRoot reports service information.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Library Management System API",
		"version":   s.version,
		"backend":   s.backend,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// handleHealth reports liveness. The store is probed with a table lookup so
// a detached store shows up as unhealthy.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if _, err := s.store.GetTable(types.BooksTable); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status":    "unhealthy",
			"database":  "disconnected",
			"timestamp": time.Now().Format(time.RFC3339),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// handleInitDB re-creates the backing schema or files.
func (s *Server) handleInitDB(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Init(); err != nil {
		s.log.ErrorContext(r.Context(), "init failed", "err", err)
		writeError(w, http.StatusInternalServerError, "database initialization failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Database initialized successfully"})
}

// handleClearDB removes every record. Intended for tests.
func (s *Server) handleClearDB(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Clear(); err != nil {
		s.log.ErrorContext(r.Context(), "clear failed", "err", err)
		writeError(w, http.StatusInternalServerError, "database clear failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Database cleared successfully"})
}

// Package server exposes the library catalog over a plain net/http REST
// surface: CRUD for books, staff, and readers, the nested advanced payload
// variants, payload validation endpoints, and store maintenance.
package server

import (
	"log/slog"
	"net/http"

	"github.com/sweta-r4/library-api/pkg/types"
)

// Server routes REST requests to an attached store.
type Server struct {
	store   types.Store
	backend string
	version string
	log     *slog.Logger
}

// New creates a Server for an attached store. backend names the configured
// backend for the info endpoints.
func New(store types.Store, backend, version string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		store:   store,
		backend: backend,
		version: version,
		log:     log,
	}
}

// Handler returns the full route table wrapped in request-ID and logging
// middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /init-db", s.handleInitDB)
	mux.HandleFunc("POST /clear-db", s.handleClearDB)

	mux.HandleFunc("GET /books", s.handleListBooks)
	mux.HandleFunc("POST /books", s.handleCreateBook)
	mux.HandleFunc("GET /books/{id}", s.handleGetBook)
	mux.HandleFunc("PUT /books/{id}", s.handleUpdateBook)
	mux.HandleFunc("DELETE /books/{id}", s.handleDeleteBook)
	mux.HandleFunc("POST /books/advanced", s.handleCreateBookAdvanced)
	mux.HandleFunc("GET /books/advanced/{id}", s.handleGetBookAdvanced)

	mux.HandleFunc("GET /staff", s.handleListStaff)
	mux.HandleFunc("POST /staff", s.handleCreateStaff)
	mux.HandleFunc("GET /staff/{id}", s.handleGetStaff)
	mux.HandleFunc("PUT /staff/{id}", s.handleUpdateStaff)
	mux.HandleFunc("DELETE /staff/{id}", s.handleDeleteStaff)

	mux.HandleFunc("GET /readers", s.handleListReaders)
	mux.HandleFunc("POST /readers", s.handleCreateReader)
	mux.HandleFunc("GET /readers/{id}", s.handleGetReader)
	mux.HandleFunc("PUT /readers/{id}", s.handleUpdateReader)
	mux.HandleFunc("DELETE /readers/{id}", s.handleDeleteReader)
	mux.HandleFunc("POST /readers/advanced", s.handleCreateReaderAdvanced)
	mux.HandleFunc("GET /readers/advanced/{id}", s.handleGetReaderAdvanced)

	mux.HandleFunc("POST /validate/book", s.handleValidateBook)
	mux.HandleFunc("POST /validate/reader", s.handleValidateReader)

	return s.withRequestID(s.withLogging(mux))
}

// table returns a store table or writes a 500 to the client.
func (s *Server) table(w http.ResponseWriter, r *http.Request, name string) (types.Table, bool) {
	table, err := s.store.GetTable(name)
	if err != nil {
		s.log.ErrorContext(r.Context(), "table lookup failed", "table", name, "err", err)
		writeError(w, http.StatusInternalServerError, "storage unavailable")
		return nil, false
	}
	return table, true
}

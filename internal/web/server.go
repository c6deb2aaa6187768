package web

import (
	"net/http"
	"time"

	"github.com/avgate/avgate/internal/scanner"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP server exposing the scan verdict API.
type Server struct {
	router   chi.Router
	addr     string
	registry *scanner.DefaultRegistry
}

// NewServer builds a new Server with middleware and routes configured.
// Scans resolve their strategy from reg, so operators can swap or gate the
// backing scanner at runtime without restarting the server.
func NewServer(addr string, reg *scanner.DefaultRegistry) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		addr:     addr,
		registry: reg,
	}

	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Timeout(5 * time.Minute))

	s.registerRoutes()

	return s
}

// Start begins listening on the configured address.
func (s *Server) Start() error {
	return http.ListenAndServe(s.addr, s.router)
}

// Router exposes the chi.Router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/sushil-thakur/enviro-segment/internal/engine"
)

// Server wraps the segmentation engine with an HTTP surface.
type Server struct {
	engine *engine.Engine
}

// New creates a Server around an existing engine.
func New(eng *engine.Engine) *Server {
	return &Server{engine: eng}
}

// Router builds the HTTP route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/segment", s.handleSegment).Methods(http.MethodPost)
	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	return r
}

// ListenAndServe runs the HTTP server on addr until it fails.
// Timeouts are generous; a large frame can take a while to segment.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Handler:      s.Router(),
		Addr:         addr,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
	}
	log.Printf("listening on %s", addr)
	return srv.ListenAndServe()
}

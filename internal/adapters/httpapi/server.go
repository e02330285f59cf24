package httpapi

import (
	"io"
	"net/http"

	"github.com/vosbek/openhands/internal/app/timestamp"
)

// Server is the HTTP adapter over the timestamp service.
//
// It is intentionally thin: request decoding is trivial (the root route takes
// no input) and rendering is owned by the domain layer.
type Server struct {
	Timestamps *timestamp.Service
}

func NewServer(svc *timestamp.Service) *Server {
	return &Server{Timestamps: svc}
}

// handleRoot serves GET /: the current timestamp as plain text.
// Query parameters and request body are ignored.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	ts := s.Timestamps.Now(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, ts.String())
}

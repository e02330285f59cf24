package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// RouterOptions carries optional wiring for the router.
type RouterOptions struct {
	// Logger enables per-request logging when set.
	Logger *logrus.Logger

	// InstanceID, when set, is stamped on every response as X-Instance-Id.
	// It distinguishes replicas behind a load balancer.
	InstanceID string
}

func NewRouter(api *Server) http.Handler {
	return NewRouterWithOptions(api, RouterOptions{})
}

// NewRouterWithOptions constructs the API HTTP router.
//
// This is intentionally a thin adapter: it wires routes/middleware and
// delegates to the Server handlers.
func NewRouterWithOptions(api *Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	// Baseline production-safe middleware (minimal but useful).
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	if opts.InstanceID != "" {
		r.Use(stampInstanceID(opts.InstanceID))
	}
	if opts.Logger != nil {
		r.Use(requestLogger(opts.Logger))
	}

	// Keep fallback responses plain text so the content type stays
	// consistent with the root route.
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeTextError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeTextError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	// Health endpoint is deliberately out-of-spec (used for infra checks).
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/", api.handleRoot)
	return r
}

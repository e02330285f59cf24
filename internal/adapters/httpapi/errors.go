package httpapi

import (
	"io"
	"net/http"
)

// writeTextError writes a plain-text error response.
//
// The service has no structured error payloads: the only routes serve plain
// text, and fallback responses match that.
func writeTextError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, message)
}

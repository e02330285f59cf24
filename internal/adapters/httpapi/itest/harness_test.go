package itest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vosbek/openhands/internal/adapters/httpapi"
	memclock "github.com/vosbek/openhands/internal/adapters/memory/clock"
	"github.com/vosbek/openhands/internal/app/timestamp"
)

type testServer struct {
	baseURL string
	client  *http.Client
	clk     *memclock.ManualClock
}

// newTestServer boots the full HTTP stack (router, middleware, service) over
// httptest with a manual clock so responses are deterministic.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	clk := memclock.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	svc := timestamp.NewService(clk, time.UTC)

	log := logrus.New()
	log.SetOutput(io.Discard)

	handler := httpapi.NewRouterWithOptions(
		httpapi.NewServer(svc),
		httpapi.RouterOptions{Logger: log, InstanceID: uuid.NewString()},
	)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		baseURL: srv.URL,
		client:  srv.Client(),
		clk:     clk,
	}
}

func (s *testServer) url(path string) string {
	if strings.HasPrefix(path, "/") {
		return s.baseURL + path
	}
	return s.baseURL + "/" + path
}

func (s *testServer) do(t *testing.T, method, path string) (int, string, http.Header) {
	t.Helper()

	req, err := http.NewRequest(method, s.url(path), nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body), resp.Header
}

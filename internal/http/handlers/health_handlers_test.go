package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type stubPinger struct{ err error }

func (s stubPinger) PingContext(context.Context) error { return s.err }

// brokenWriter accepts headers but fails every body write, like a client
// that hung up.
type brokenWriter struct{ *httptest.ResponseRecorder }

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestHealthHandler_LogsWriteFailures(t *testing.T) {
	tests := []struct {
		name       string
		pinger     Pinger
		expectCode int
	}{
		{"healthy", stubPinger{}, http.StatusOK},
		{"unhealthy", stubPinger{err: errors.New("bad connection")}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			log := zerolog.New(&logs)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req = req.WithContext(log.WithContext(req.Context()))
			w := brokenWriter{httptest.NewRecorder()}

			HealthHandler(tt.pinger)(w, req)

			if w.Code != tt.expectCode {
				t.Errorf("expected %d, got %d", tt.expectCode, w.Code)
			}
			if !strings.Contains(logs.String(), "failed to write response") || !strings.Contains(logs.String(), "broken pipe") {
				t.Errorf("expected the write failure to be logged, got %q", logs.String())
			}
		})
	}
}

func TestHealthHandler_NilPingerIsHealthy(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	HealthHandler(nil)(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"status":"ok"}` {
		t.Errorf("unexpected body %s", got)
	}
}

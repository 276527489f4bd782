package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestHTMX(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{"htmx request", "true", true},
		{"plain request", "", false},
		{"other value", "false", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got bool
			h := HTMX(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = IsHTMX(r)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("HX-Request", tt.header)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			if got != tt.want {
				t.Errorf("IsHTMX = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsHTMX_WithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	if IsHTMX(req) {
		t.Error("expected false when middleware did not run")
	}
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	h := chimw.RequestID(Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pot", nil))

	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
	fields := logs.All()[0].ContextMap()
	if fields["path"] != "/pot" {
		t.Errorf("path = %v", fields["path"])
	}
	if fields["status"] != int64(http.StatusTeapot) {
		t.Errorf("status = %v (%T)", fields["status"], fields["status"])
	}
	if fields["bytes"] != int64(len("short and stout")) {
		t.Errorf("bytes = %v", fields["bytes"])
	}
	if fields["request_id"] == "" {
		t.Error("expected request id")
	}
}

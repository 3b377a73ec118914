package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"
)

func TestLoggingMiddlewareSetsRequestID(t *testing.T) {
	var seenID string
	inner := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		seenID = RequestIDFromContext(r.Context())
		w.WriteHeader(nethttp.StatusNoContent)
	})

	handler := LoggingMiddleware(nil, nil)(inner)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/api/state", nil)
	handler.ServeHTTP(rr, req)

	if seenID == "" {
		t.Fatal("request ID not stored in context")
	}
	if got := rr.Header().Get("X-Request-ID"); got != seenID {
		t.Errorf("response header id %q != context id %q", got, seenID)
	}
}

func TestLoggingMiddlewarePreservesValidIncomingID(t *testing.T) {
	inner := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {})
	handler := LoggingMiddleware(nil, nil)(inner)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "op-console-42")
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got != "op-console-42" {
		t.Errorf("request id = %q, want op-console-42", got)
	}
}

func TestLoggingMiddlewareRejectsMalformedID(t *testing.T) {
	inner := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {})
	handler := LoggingMiddleware(nil, nil)(inner)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "bad id with spaces")
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got == "bad id with spaces" || got == "" {
		t.Errorf("malformed id not replaced: %q", got)
	}
}

func TestSanitizeRequestID(t *testing.T) {
	if got := sanitizeRequestID("valid_id-123"); got != "valid_id-123" {
		t.Errorf("valid id replaced: %q", got)
	}
	if got := sanitizeRequestID(""); got == "" {
		t.Error("empty id not generated")
	}
}

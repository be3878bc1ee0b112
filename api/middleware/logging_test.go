package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// recordingLogger captures log calls for assertions
type recordingLogger struct {
	infos  []string
	errors []string
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {}
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  {}
func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {
	l.infos = append(l.infos, msg)
}
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.errors = append(l.errors, msg)
}

func TestRequestLoggingMiddleware_LogsStartAndCompletion(t *testing.T) {
	logger := &recordingLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/blog", nil))

	if len(logger.infos) != 2 {
		t.Fatalf("info logs = %v", logger.infos)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response should carry a request ID")
	}
}

func TestRequestLoggingMiddleware_PropagatesRequestID(t *testing.T) {
	var seen string
	handler := RequestLoggingMiddleware(&recordingLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if seen == "" {
		t.Error("handler should see the request ID in its context")
	}
	if seen != rec.Header().Get("X-Request-ID") {
		t.Error("context and header request IDs should match")
	}
}

func TestRequestLoggingMiddleware_LogsServerErrors(t *testing.T) {
	logger := &recordingLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	if len(logger.errors) != 1 {
		t.Errorf("error logs = %v, want server error logged", logger.errors)
	}
}

func TestGetRequestID_MissingMiddleware(t *testing.T) {
	if GetRequestID(context.Background()) != "" {
		t.Error("missing request ID should yield empty string")
	}
}

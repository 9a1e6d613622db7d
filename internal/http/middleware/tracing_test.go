package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opencensus.io/trace"
)

func TestTracingMiddleware(t *testing.T) {
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		span := trace.FromContext(r.Context())
		if span == nil {
			t.Error("Expected trace span to be in context")
		}

		w.WriteHeader(http.StatusOK)
	})

	handler := TracingMiddleware(testHandler)

	req := httptest.NewRequest("GET", "/test-path?param=value", nil)
	req.Header.Set("User-Agent", "test-agent")
	req.Host = "test-host"

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if status := recorder.Code; status != http.StatusOK {
		t.Errorf("Handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}
}

func TestTracingMiddleware_ErrorStatus(t *testing.T) {
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	handler := TracingMiddleware(testHandler)

	req := httptest.NewRequest("GET", "/failing-path", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if status := recorder.Code; status != http.StatusInternalServerError {
		t.Errorf("Handler returned wrong status code: got %v want %v", status, http.StatusInternalServerError)
	}
}

func TestTraceResponseWriter_WriteHeader(t *testing.T) {
	ctx, span := trace.StartSpan(context.Background(), "test-span")
	defer span.End()

	recorder := httptest.NewRecorder()
	rw := &traceResponseWriter{
		ResponseWriter: recorder,
		ctx:            ctx,
	}

	rw.WriteHeader(http.StatusNotFound)

	if rw.statusCode != http.StatusNotFound {
		t.Errorf("Expected captured status code %d, got %d", http.StatusNotFound, rw.statusCode)
	}
	if recorder.Code != http.StatusNotFound {
		t.Errorf("Expected recorded status code %d, got %d", http.StatusNotFound, recorder.Code)
	}
}

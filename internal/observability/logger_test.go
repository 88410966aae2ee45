package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestWithFields_Accumulates(t *testing.T) {
	ctx := context.Background()

	ctx = WithFields(ctx, Field{Key: "request_id", Value: "req-1"})
	ctx = WithFields(ctx, Field{Key: "vendor_id", Value: "v-1"}, Field{Key: "window", Value: "week"})

	fields := getObservabilityFields(ctx)
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}
	if fields[0].Key != "request_id" || fields[0].Value != "req-1" {
		t.Errorf("expected first field request_id=req-1, got %s=%v", fields[0].Key, fields[0].Value)
	}
	if fields[2].Key != "window" || fields[2].Value != "week" {
		t.Errorf("expected last field window=week, got %s=%v", fields[2].Key, fields[2].Value)
	}
}

func TestGetObservabilityFields_EmptyContext(t *testing.T) {
	if fields := getObservabilityFields(context.Background()); fields != nil {
		t.Errorf("expected nil fields on empty context, got %v", fields)
	}
}

func TestMiddleware_GeneratesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Middleware(NewLogger()))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	requestID := w.Header().Get("X-Request-ID")
	if !strings.HasPrefix(requestID, "req-") {
		t.Errorf("expected generated request id with req- prefix, got %q", requestID)
	}
}

func TestMiddleware_PreservesProvidedRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Middleware(NewLogger()))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-from-upstream")
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "req-from-upstream" {
		t.Errorf("expected upstream request id to be kept, got %q", got)
	}
}

func TestMiddleware_RecoversFromPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Middleware(NewLogger()))
	router.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500 after panic, got %d", w.Code)
	}
}

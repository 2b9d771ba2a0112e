package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sadumina/CarbonXinsight/internal/domain/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID_HeaderAndContext(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())

	var inContext string
	router.GET("/", func(c *gin.Context) {
		v, _ := c.Get(RequestIDKey)
		inContext, _ = v.(string)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	header := rec.Header().Get("X-Request-ID")
	if header == "" {
		t.Fatalf("X-Request-ID header not set")
	}
	if inContext != header {
		t.Fatalf("context id %q != header id %q", inContext, header)
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		id := rec.Header().Get("X-Request-ID")
		if seen[id] {
			t.Fatalf("duplicate request id %q", id)
		}
		seen[id] = true
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RecoveryMiddleware())
	router.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: want 500 got %d", rec.Code)
	}
	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Internal server error" {
		t.Fatalf("message: %q", resp.Message)
	}
}

func TestErrorHandler_ConvertsContextErrors(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler)
	router.GET("/", func(c *gin.Context) {
		_ = c.Error(errors.New("downstream failed"))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: want 500 got %d", rec.Code)
	}
	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ErrorDetails != "downstream failed" {
		t.Fatalf("details: %q", resp.ErrorDetails)
	}
}

func TestErrorHandler_LeavesWrittenResponsesAlone(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler)
	router.GET("/", func(c *gin.Context) {
		_ = c.Error(errors.New("logged only"))
		c.JSON(http.StatusBadRequest, gin.H{"message": "handled"})
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: want 400 got %d", rec.Code)
	}
}

func TestRateLimiter(t *testing.T) {
	router := gin.New()
	router.Use(RateLimiter())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	// distinct IP so other tests sharing the global store don't interfere
	const addr = "198.51.100.7:1234"

	for i := 0; i < limit; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i+1, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = addr
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status: want 429 got %d", rec.Code)
	}
}

func TestRateLimiter_PerClient(t *testing.T) {
	router := gin.New()
	router.Use(RateLimiter())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	// exhaust one client
	for i := 0; i <= limit; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "203.0.113.9:1234"
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	// a different client is unaffected
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.10:1234"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: want 200 got %d", rec.Code)
	}
}

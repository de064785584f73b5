package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestIPRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("rejects after burst", func(t *testing.T) {
		r := gin.New()
		r.POST("/v1/quotes", NewIPRateLimiter(2).Middleware(), func(c *gin.Context) { c.Status(http.StatusCreated) })

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodPost, "/v1/quotes", nil)
			req.RemoteAddr = "10.0.0.1:4000"
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}
		if codes[0] != http.StatusCreated || codes[1] != http.StatusCreated || codes[2] != http.StatusTooManyRequests {
			t.Fatalf("unexpected status sequence %v", codes)
		}
	})

	t.Run("buckets are per ip", func(t *testing.T) {
		l := NewIPRateLimiter(1)
		if !l.Allow("10.0.0.1") || l.Allow("10.0.0.1") {
			t.Fatalf("expected one request for the first ip")
		}
		if !l.Allow("10.0.0.2") {
			t.Fatalf("expected a fresh bucket for another ip")
		}
	})

	t.Run("disabled", func(t *testing.T) {
		l := NewIPRateLimiter(0)
		for i := 0; i < 100; i++ {
			if !l.Allow("10.0.0.1") {
				t.Fatalf("limiter should be disabled")
			}
		}
	})
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CORS([]string{"https://vitrine.example.com"}))
	r.GET("/v1/products", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("preflight short-circuits", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/products", nil)
		req.Header.Set("Origin", "https://vitrine.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://vitrine.example.com" {
			t.Fatalf("unexpected allow origin %q", got)
		}
	})

	t.Run("unknown origin gets no header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		req.Header.Set("Origin", "https://other.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Fatalf("expected no allow origin, got %q", got)
		}
	})
}

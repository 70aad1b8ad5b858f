package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return r
}

func do(r http.Handler, remoteAddr string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	for k, vv := range header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	// 4 per minute gives a burst of 2
	r := newEngine(RateLimit(4))

	for i := 0; i < 2; i++ {
		if w := do(r, "10.0.0.1:1234", nil); w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, w.Code)
		}
	}
	if w := do(r, "10.0.0.1:1234", nil); w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	if w := do(r, "10.0.0.2:1234", nil); w.Code != http.StatusOK {
		t.Fatalf("other client status = %d", w.Code)
	}
}

func TestRateLimitNonPositive(t *testing.T) {
	r := newEngine(RateLimit(0))
	if w := do(r, "10.0.0.1:1234", nil); w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())

	w := do(r, "10.0.0.1:1234", nil)
	id := w.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("generated id %q: %v", id, err)
	}

	// literal, non-canonical header key as a client would send it
	incoming := uuid.NewString()
	w = do(r, "10.0.0.1:1234", http.Header{RequestIDHeader: {incoming}})
	if got := w.Header().Get(RequestIDHeader); got != incoming {
		t.Fatalf("id = %q, want %q", got, incoming)
	}

	w = do(r, "10.0.0.1:1234", http.Header{RequestIDHeader: {"<script>"}})
	if got := w.Header().Get(RequestIDHeader); got == "<script>" {
		t.Fatal("non-uuid id echoed back")
	}
}

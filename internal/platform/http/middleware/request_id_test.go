package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})
	return r
}

// TestRequestID_Generated はヘッダーがない場合に新しいUUIDが発番されることを検証します。
func TestRequestID_Generated(t *testing.T) {
	t.Parallel()

	router := setupRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	router.ServeHTTP(w, req)

	got := w.Header().Get(RequestIDHeader)
	if got == "" {
		t.Fatal("expected X-Request-ID header to be set")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("expected a valid UUID, got %q: %v", got, err)
	}
	if w.Body.String() != got {
		t.Errorf("expected context request ID %q to match header %q", w.Body.String(), got)
	}
}

// TestRequestID_Propagated はクライアント指定のX-Request-IDがそのまま使われることを検証します。
func TestRequestID_Propagated(t *testing.T) {
	t.Parallel()

	router := setupRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-supplied-id")

	router.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "client-supplied-id" {
		t.Errorf("expected propagated request ID, got %q", got)
	}
	if w.Body.String() != "client-supplied-id" {
		t.Errorf("expected context request ID to match, got %q", w.Body.String())
	}
}

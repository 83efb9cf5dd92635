package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockPinger is a mock implementation of the Pinger interface.
type mockPinger struct {
	PingFunc func(ctx context.Context) error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil // Default: healthy
}

func setupHealthRouter(p Pinger) *gin.Engine {
	r := gin.New()
	h := NewHealthHandler(p, "v1.2.3", "test")
	r.GET("/api/health", h.Check)
	r.GET("/", Root)
	return r
}

// TestHealthCheck_Healthy はDB疎通OK時に200とhealthyステータスが返ることを検証します。
func TestHealthCheck_Healthy(t *testing.T) {
	t.Parallel()

	router := setupHealthRouter(&mockPinger{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response["status"] != "healthy" {
		t.Errorf("expected status 'healthy', got %q", response["status"])
	}
	if response["database"] != "connected" {
		t.Errorf("expected database 'connected', got %q", response["database"])
	}
	if response["release_id"] != "v1.2.3" {
		t.Errorf("expected release_id 'v1.2.3', got %q", response["release_id"])
	}

	// Check Cache-Control header
	if w.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("expected Cache-Control 'no-store', got %q", w.Header().Get("Cache-Control"))
	}
}

// TestHealthCheck_Unhealthy はDB障害時に503とunhealthyステータスが返ることを検証します。
func TestHealthCheck_Unhealthy(t *testing.T) {
	t.Parallel()

	down := &mockPinger{
		PingFunc: func(ctx context.Context) error {
			return errors.New("connection refused")
		},
	}
	router := setupHealthRouter(down)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)

	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, w.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response["status"] != "unhealthy" {
		t.Errorf("expected status 'unhealthy', got %q", response["status"])
	}
	if response["database"] != "disconnected" {
		t.Errorf("expected database 'disconnected', got %q", response["database"])
	}
}

// TestRoot はルートエンドポイントがウェルカムメッセージを返すことを検証します。
func TestRoot(t *testing.T) {
	t.Parallel()

	router := setupHealthRouter(&mockPinger{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if response["message"] == "" {
		t.Error("expected a welcome message")
	}
}

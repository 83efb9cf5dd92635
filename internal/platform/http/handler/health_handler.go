// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// pingTimeout はヘルスチェック時のDB疎通確認のタイムアウトです。
const pingTimeout = 5 * time.Second

// Pinger defines an interface for checking store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler は /api/health エンドポイントを処理します。
type HealthHandler struct {
	db        Pinger
	releaseID string
	env       string
}

// NewHealthHandler はHealthHandlerの新しいインスタンスを生成します。
func NewHealthHandler(db Pinger, releaseID, env string) *HealthHandler {
	return &HealthHandler{db: db, releaseID: releaseID, env: env}
}

// Check はデータベース接続を検証するヘルスチェックです。
// 疎通OKなら200、ストア障害時は503を返します。プロセスは落としません。
func (h *HealthHandler) Check(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":      "unhealthy",
			"database":    "disconnected",
			"release_id":  h.releaseID,
			"environment": h.env,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"database":    "connected",
		"release_id":  h.releaseID,
		"environment": h.env,
	})
}

// Root はルートパスのウェルカムレスポンスを返します。
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the ToDo List API!",
	})
}

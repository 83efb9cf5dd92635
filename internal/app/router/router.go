// Package router assembles the HTTP routes of the service.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "todo_backend/internal/feature/auth/transport/handler"
	taskhandler "todo_backend/internal/feature/tasks/transport/handler"
	"todo_backend/internal/platform/http/handler"
	"todo_backend/internal/platform/http/middleware"
	jwtmw "todo_backend/internal/platform/jwt"
)

// NewRouter はすべてのエンドポイントを登録したginエンジンを生成します。
func NewRouter(authHandler *authhandler.AuthHandler, taskHandler *taskhandler.TaskHandler,
	healthHandler *handler.HealthHandler, verifier jwtmw.Verifier, resolver jwtmw.SubjectResolver) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/", handler.Root)
	r.GET("/api/health", healthHandler.Check)
	// 新規ユーザー登録
	r.POST("/auth/register", authHandler.Register)
	// ログイン（アクセストークン発行）
	r.POST("/auth/login", authHandler.Login)

	// 認証必須のルート
	// リクエストヘッダーにBearerトークンが必要になる
	tasks := r.Group("/tasks")
	tasks.Use(jwtmw.AuthRequired(verifier, resolver))
	{
		tasks.POST("", taskHandler.Create)
		tasks.GET("", taskHandler.List)
		tasks.GET("/:id", taskHandler.Get)
		tasks.PUT("/:id", taskHandler.Update)
		tasks.DELETE("/:id", taskHandler.Delete)
	}

	return r
}

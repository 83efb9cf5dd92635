// Package di wires repositories, usecases and handlers into a runnable app.
package di

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"todo_backend/internal/app/router"
	"todo_backend/internal/config"
	authadapters "todo_backend/internal/feature/auth/adapters"
	authhandler "todo_backend/internal/feature/auth/transport/handler"
	authusecase "todo_backend/internal/feature/auth/usecase"
	tasksadapters "todo_backend/internal/feature/tasks/adapters"
	taskhandler "todo_backend/internal/feature/tasks/transport/handler"
	tasksusecase "todo_backend/internal/feature/tasks/usecase"
	platformdb "todo_backend/internal/platform/db"
	platformhandler "todo_backend/internal/platform/http/handler"
	jwtmw "todo_backend/internal/platform/jwt"
)

// NewApp builds the full request-handling stack on top of an open database
// handle. The handle is injected so its lifecycle stays with the caller.
func NewApp(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Token service
	tokens := jwtmw.NewGenerator(cfg.JWTSecret, cfg.AccessTokenTTL)

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	taskRepo := tasksadapters.NewTaskGorm(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	taskUC := tasksusecase.NewTaskUsecase(taskRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	taskH := taskhandler.NewTaskHandler(taskUC)
	healthH := platformhandler.NewHealthHandler(platformdb.NewPinger(db), cfg.ReleaseID, cfg.AppEnv)

	return router.NewRouter(authH, taskH, healthH, tokens, authUC)
}

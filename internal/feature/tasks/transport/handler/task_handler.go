// Package handler はtasksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/feature/tasks/domain/entity"
	"todo_backend/internal/feature/tasks/transport/http/dto"
	"todo_backend/internal/feature/tasks/usecase"
	jwtmw "todo_backend/internal/platform/jwt"
)

// TaskUsecase はタスク操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type TaskUsecase interface {
	Create(ctx context.Context, ownerID uint, in usecase.CreateTaskInput) (*entity.Task, error)
	List(ctx context.Context, ownerID uint, offset, limit int) ([]entity.Task, error)
	Get(ctx context.Context, ownerID, taskID uint) (*entity.Task, error)
	Update(ctx context.Context, ownerID, taskID uint, patch usecase.UpdateTaskInput) (*entity.Task, error)
	Delete(ctx context.Context, ownerID, taskID uint) error
}

// TaskHandler はタスクCRUDのHTTPリクエストを処理します。
// すべての操作は認証ミドルウェアが解決したユーザーIDでスコープされます。
type TaskHandler struct {
	tasks TaskUsecase
}

// NewTaskHandler はTaskHandlerの新しいインスタンスを生成します。
func NewTaskHandler(tasks TaskUsecase) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// ownerID は認証ミドルウェアが設定したユーザーIDを取得します。
// 取得できない場合は401を返してリクエストを中断します。
func ownerID(c *gin.Context) (uint, bool) {
	id, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return 0, false
	}
	return id, true
}

// taskID はパスパラメータ:idを解析します。
// 数値でないIDはどのタスクにも一致しないため404を返します。
func taskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": usecase.ErrTaskNotFound.Error()})
		return 0, false
	}
	return uint(id), true
}

// Create はタスク作成APIエンドポイントを処理します。
// - バリデーションエラー時は422を返却
// - 成功時は201で作成されたタスクを返却
func (h *TaskHandler) Create(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	var req dto.CreateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	task, err := h.tasks.Create(c.Request.Context(), owner, usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyTitle) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		slog.Error("task create failed", "error", err, "user_id", owner)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}
	c.JSON(http.StatusCreated, dto.NewTaskResponse(task))
}

// List はタスク一覧APIエンドポイントを処理します。
// skip/limitクエリパラメータでページングします（デフォルト: 0/100）。
func (h *TaskHandler) List(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "skip must be an integer"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "limit must be an integer"})
		return
	}
	tasks, err := h.tasks.List(c.Request.Context(), owner, skip, limit)
	if err != nil {
		slog.Error("task list failed", "error", err, "user_id", owner)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tasks"})
		return
	}
	out := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, dto.NewTaskResponse(&tasks[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get はタスク1件取得APIエンドポイントを処理します。
// 存在しない場合も他ユーザーの所有の場合も同一の404を返します。
func (h *TaskHandler) Get(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}
	task, err := h.tasks.Get(c.Request.Context(), owner, id)
	if err != nil {
		h.renderTaskError(c, err, owner)
		return
	}
	c.JSON(http.StatusOK, dto.NewTaskResponse(task))
}

// Update はタスク部分更新APIエンドポイントを処理します。
// パッチに含まれるフィールドのみ更新し、更新後のタスクを返します。
func (h *TaskHandler) Update(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}
	var req dto.UpdateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	task, err := h.tasks.Update(c.Request.Context(), owner, id, usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyTitle) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.renderTaskError(c, err, owner)
		return
	}
	c.JSON(http.StatusOK, dto.NewTaskResponse(task))
}

// Delete はタスク削除APIエンドポイントを処理します。成功時は204を返します。
func (h *TaskHandler) Delete(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	id, ok := taskID(c)
	if !ok {
		return
	}
	if err := h.tasks.Delete(c.Request.Context(), owner, id); err != nil {
		h.renderTaskError(c, err, owner)
		return
	}
	c.Status(http.StatusNoContent)
}

// renderTaskError はユースケースのエラーをHTTPステータスへ変換します。
func (h *TaskHandler) renderTaskError(c *gin.Context, err error, owner uint) {
	if errors.Is(err, usecase.ErrTaskNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": usecase.ErrTaskNotFound.Error()})
		return
	}
	slog.Error("task operation failed", "error", err, "user_id", owner)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// Package usecase はtasksフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"todo_backend/internal/feature/tasks/domain/entity"
)

const (
	// defaultLimit は一覧取得時のデフォルト件数です。
	defaultLimit = 100
)

// TaskRepository はタスクエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
// 検索系の操作はすべてオーナーIDでスコープされ、他ユーザーのタスクは存在しないものとして扱います。
type TaskRepository interface {
	// Create は新しいタスクをストレージに永続化します。
	Create(ctx context.Context, task *entity.Task) error

	// FindByOwner は指定オーナーのタスクをID昇順でoffset/limit付きで取得します。
	FindByOwner(ctx context.Context, ownerID uint, offset, limit int) ([]entity.Task, error)

	// FindByIDAndOwner は指定オーナーが所有するタスクを1件取得します。
	// タスクが存在しない場合も他ユーザーの所有の場合も、同一のErrTaskNotFoundを返します。
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*entity.Task, error)

	// Save は既存タスクの変更を1回のUPDATEで永続化します。
	Save(ctx context.Context, task *entity.Task) error

	// DeleteByIDAndOwner は指定オーナーが所有するタスクを削除します。
	// 削除対象が存在しない場合、ErrTaskNotFoundを返します。
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uint) error
}

// CreateTaskInput はタスク作成時の入力値です。
type CreateTaskInput struct {
	Title       string
	Description string
	Completed   bool
}

// UpdateTaskInput は部分更新のパッチです。nilのフィールドは変更されません。
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Completed   *bool
}

// taskUsecase はタスクのビジネスロジックを実装します。
type taskUsecase struct {
	tasks TaskRepository
}

// NewTaskUsecase はtaskUsecaseの新しいインスタンスを生成します。
func NewTaskUsecase(tasks TaskRepository) *taskUsecase {
	return &taskUsecase{tasks: tasks}
}

// Create は認証済みユーザーのタスクを新規作成し、生成されたIDとタイムスタンプ付きで返します。
func (u *taskUsecase) Create(ctx context.Context, ownerID uint, in CreateTaskInput) (*entity.Task, error) {
	if in.Title == "" {
		return nil, ErrEmptyTitle
	}
	task := &entity.Task{
		Title:       in.Title,
		Description: in.Description,
		Completed:   in.Completed,
		UserID:      ownerID,
	}
	if err := u.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// List は認証済みユーザーのタスク一覧を挿入順で返します。
// offsetが負の場合は0、limitが0以下の場合はデフォルト値に補正します。
func (u *taskUsecase) List(ctx context.Context, ownerID uint, offset, limit int) ([]entity.Task, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return u.tasks.FindByOwner(ctx, ownerID, offset, limit)
}

// Get は認証済みユーザーが所有するタスクを1件取得します。
func (u *taskUsecase) Get(ctx context.Context, ownerID, taskID uint) (*entity.Task, error) {
	return u.tasks.FindByIDAndOwner(ctx, taskID, ownerID)
}

// Update はパッチに含まれるフィールドのみを更新し、更新後のタスクを返します。
// 含まれないフィールドは変更されず、UpdatedAtは必ず更新されます。
func (u *taskUsecase) Update(ctx context.Context, ownerID, taskID uint, patch UpdateTaskInput) (*entity.Task, error) {
	task, err := u.tasks.FindByIDAndOwner(ctx, taskID, ownerID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, ErrEmptyTitle
		}
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}

	if err := u.tasks.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete は認証済みユーザーが所有するタスクを削除します。削除は即時かつ不可逆です。
func (u *taskUsecase) Delete(ctx context.Context, ownerID, taskID uint) error {
	return u.tasks.DeleteByIDAndOwner(ctx, taskID, ownerID)
}

// Package dto はtasksフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// CreateTaskReq は POST /tasks のリクエストボディを表します。
// タイトルは必須、説明と完了フラグは省略可能です。
type CreateTaskReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// UpdateTaskReq は PUT /tasks/:id の部分更新パッチを表します。
// nilのフィールドは変更されません。タイトルを指定する場合は空文字列を許可しません。
type UpdateTaskReq struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

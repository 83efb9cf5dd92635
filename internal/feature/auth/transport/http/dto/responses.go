package dto

// UserResponse は登録成功時に返されるユーザー情報です。
// パスワードダイジェストは決して含めません。
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokenResponse はログイン成功時に返されるアクセストークンです。
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

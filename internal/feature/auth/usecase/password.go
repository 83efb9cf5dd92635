package usecase

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword は平文パスワードからbcryptダイジェストを生成します。
// bcryptは呼び出しごとに新しいソルトを生成するため、同じパスワードでも
// 毎回異なるダイジェストになります。
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword はパスワードがダイジェストと一致する場合にtrueを返します。
// ダイジェストが不正な形式の場合もエラーではなくfalseを返します。
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

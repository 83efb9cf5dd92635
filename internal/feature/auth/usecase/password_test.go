package usecase

import "testing"

// TestHashPassword_SaltedDigests は同じパスワードから毎回異なるダイジェストが生成され、
// どちらも検証に成功することを検証します。
func TestHashPassword_SaltedDigests(t *testing.T) {
	t.Parallel()

	password := "testpassword123"

	hash1, err := HashPassword(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hash2, err := HashPassword(password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash1 == password || hash2 == password {
		t.Fatal("digest must not equal the plaintext password")
	}
	if hash1 == hash2 {
		t.Error("two digests of the same password must differ (salt)")
	}
	if !VerifyPassword(password, hash1) {
		t.Error("expected first digest to verify")
	}
	if !VerifyPassword(password, hash2) {
		t.Error("expected second digest to verify")
	}
}

// TestVerifyPassword_WrongPassword は誤ったパスワードの検証が失敗することを検証します。
func TestVerifyPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("testpassword123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if VerifyPassword("wrongpassword", hash) {
		t.Error("expected verification to fail for wrong password")
	}
}

// TestVerifyPassword_MalformedDigest は不正な形式のダイジェストでエラーではなくfalseが返ることを検証します。
func TestVerifyPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		digest string
	}{
		{"empty digest", ""},
		{"garbage digest", "not-a-bcrypt-digest"},
		{"truncated digest", "$2a$10$short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if VerifyPassword("anything", tt.digest) {
				t.Error("expected verification to fail for malformed digest")
			}
		})
	}
}

package jwtmw

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestNewGenerator は各種設定でGeneratorが正しく生成されることを検証します。
func TestNewGenerator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		secret     string
		expiration time.Duration
	}{
		{"standard config", "my-secret-key", time.Hour},
		{"long expiration", "secret", 24 * time.Hour * 30},
		{"short expiration", "s", time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator(tt.secret, tt.expiration)

			if gen == nil {
				t.Fatal("expected generator to be non-nil")
			}
			if string(gen.secret) != tt.secret {
				t.Errorf("expected secret %q, got %q", tt.secret, string(gen.secret))
			}
			if gen.expiration != tt.expiration {
				t.Errorf("expected expiration %v, got %v", tt.expiration, gen.expiration)
			}
		})
	}
}

// TestGenerator_GenerateToken は生成されたトークンが有効で正しいクレームを含むことを検証します。
func TestGenerator_GenerateToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		userID   uint
		username string
	}{
		{"basic user", 1, "alice"},
		{"user with punctuation", 42, "bob.smith"},
		{"large user id", 999999, "carol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator("test-secret", time.Hour)
			tokenStr, err := gen.GenerateToken(tt.userID, tt.username)

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tokenStr == "" {
				t.Fatal("expected non-empty token")
			}

			claims, err := gen.VerifyToken(tokenStr)
			if err != nil {
				t.Fatalf("unexpected error verifying a fresh token: %v", err)
			}
			if claims.UserID != tt.userID {
				t.Errorf("expected subject %d, got %d", tt.userID, claims.UserID)
			}
			if claims.Username != tt.username {
				t.Errorf("expected username %q, got %q", tt.username, claims.Username)
			}
		})
	}
}

// TestGenerator_VerifyToken_NonPositiveTTL はTTLが0以下のトークンが即座に無効になることを検証します。
func TestGenerator_VerifyToken_NonPositiveTTL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ttl  time.Duration
	}{
		{"zero ttl", 0},
		{"negative ttl", -time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator("test-secret", tt.ttl)
			tokenStr, err := gen.GenerateToken(1, "alice")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if _, err := gen.VerifyToken(tokenStr); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

// TestGenerator_VerifyToken_Tampered は改ざんされたトークンが無効になることを検証します。
func TestGenerator_VerifyToken_Tampered(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("test-secret", time.Hour)
	tokenStr, err := gen.GenerateToken(1, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Flip one character in each segment of the token
	for i := 0; i < len(tokenStr); i += len(tokenStr) / 3 {
		tampered := []byte(tokenStr)
		if tampered[i] == 'A' {
			tampered[i] = 'B'
		} else {
			tampered[i] = 'A'
		}
		if string(tampered) == tokenStr {
			continue
		}
		if _, err := gen.VerifyToken(string(tampered)); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken for tampered token at position %d, got %v", i, err)
		}
	}
}

// TestGenerator_VerifyToken_InvalidInputs は不正な入力が常に同一のエラーになることを検証します。
func TestGenerator_VerifyToken_InvalidInputs(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("test-secret", time.Hour)

	otherSecret := NewGenerator("other-secret", time.Hour)
	foreign, err := otherSecret.GenerateToken(1, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Correctly signed token that carries no exp claim
	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": 1}).
		SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty string", ""},
		{"garbage", "not.a.token"},
		{"missing segments", strings.Repeat("a", 40)},
		{"wrong secret", foreign},
		{"no exp claim", noExp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := gen.VerifyToken(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

// TestGenerator_VerifyToken_Expired は期限切れトークンが無効になることを検証します。
func TestGenerator_VerifyToken_Expired(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("test-secret", -time.Second)
	tokenStr, err := gen.GenerateToken(7, "dave")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := gen.VerifyToken(tokenStr); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

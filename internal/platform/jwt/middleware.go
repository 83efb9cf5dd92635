package jwtmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key under which the authenticated user's ID is stored.
const ContextUserID = "userID"

// ContextUsername is the gin context key under which the authenticated user's name is stored.
const ContextUsername = "username"

// SubjectResolver maps a verified token subject to a known user.
// Following Go convention: interfaces are defined by the consumer (middleware),
// not the provider (auth usecase).
type SubjectResolver interface {
	// ResolveSubject returns an error if the subject no longer maps to a live
	// user, e.g. the account was deleted after the token was issued.
	ResolveSubject(ctx context.Context, userID uint) error
}

// AuthRequired returns a Gin middleware function that validates bearer tokens
// and restricts access to authenticated users only.
// Every failure (missing header, malformed/tampered/expired token, unknown
// subject) aborts with the same 401 response so the cause is not observable.
func AuthRequired(verifier Verifier, resolver SubjectResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			abortUnauthorized(c)
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Verify signature and expiry
		claims, err := verifier.VerifyToken(tokenStr)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		// 3. Make sure the subject still maps to an existing user
		if err := resolver.ResolveSubject(c.Request.Context(), claims.UserID); err != nil {
			abortUnauthorized(c)
			return
		}

		// 4. Expose identity to downstream handlers
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)

		// 5. Pass control to the next handler
		c.Next()
	}
}

// abortUnauthorized writes the uniform 401 response.
func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
}

// UserIDFromContext returns the authenticated user's ID set by AuthRequired.
func UserIDFromContext(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

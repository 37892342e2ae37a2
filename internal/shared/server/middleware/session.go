package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/respond"
)

const (
	userIDKey    = "userId"
	userEmailKey = "userEmail"
	reviewerKey  = "isReviewer"

	// SessionCookie is the cookie carrying the server-side session token.
	SessionCookie = "session_token"
)

// Identity is the authenticated identity resolved from a session token.
type Identity struct {
	UserID   string
	Email    string
	Reviewer bool
}

// IdentityResolver resolves a session token into the identity it belongs to.
// An expired or closed session must yield an error.
type IdentityResolver interface {
	ResolveSession(ctx context.Context, token string) (Identity, error)
}

// Session validates the session cookie and stores identity in context.
// Requests without a valid open session are rejected with 401.
func Session(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
			return
		}

		ident, err := resolver.ResolveSession(c.Request.Context(), token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
			return
		}

		c.Set(userIDKey, ident.UserID)
		c.Set(userEmailKey, ident.Email)
		c.Set(reviewerKey, ident.Reviewer)
		c.Next()
	}
}

// RequireReviewer rejects requests whose session lacks the reviewer role.
// It must run after Session.
func RequireReviewer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ReviewerFromContext(c) {
			respond.Error(c, http.StatusForbidden, "forbidden", "reviewer role required", nil)
			return
		}
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	// Header fallback for non-browser clients.
	return strings.TrimSpace(c.GetHeader("X-Session-Token"))
}

// UserIDFromContext fetches the user ID set by the session middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

// UserEmailFromContext fetches the user email set by the session middleware.
func UserEmailFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userEmailKey)
	if email, ok := val.(string); ok {
		return email
	}
	return ""
}

// ReviewerFromContext reports whether the session holds the reviewer role.
func ReviewerFromContext(c *gin.Context) bool {
	if c == nil {
		return false
	}
	val, _ := c.Get(reviewerKey)
	if reviewer, ok := val.(bool); ok {
		return reviewer
	}
	return false
}

package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/majlis-kantho/core/internal/pkg/jwt"
	"github.com/majlis-kantho/core/internal/pkg/kv"
	"github.com/majlis-kantho/core/internal/pkg/response"
	sessionpkg "github.com/majlis-kantho/core/internal/pkg/session"
)

const (
	ContextKeyUserID = "user_id"
	ContextKeySID    = "session_id"
)

// UserExistsFunc reports whether a staff user id is still present. A session
// whose user was deleted is treated as revoked.
type UserExistsFunc func(id string) bool

// Auth returns a middleware that enforces session authentication.
func Auth(kvs kv.Store, userExists UserExistsFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := ValidateToken(c, kvs, userExists, extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeySID, claims.SessionID)
		sessionpkg.Touch(c.Request.Context(), kvs, claims.SessionID)
		c.Next()
	}
}

// OptionalAuth sets the user id if a valid token is present, but never blocks.
func OptionalAuth(kvs kv.Store, userExists UserExistsFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := ValidateToken(c, kvs, userExists, extractToken(c)); err == nil {
			c.Set(ContextKeyUserID, claims.UserID)
			c.Set(ContextKeySID, claims.SessionID)
		}
		c.Next()
	}
}

// ValidateToken checks the JWT, its persisted session record, and that the
// referenced user still exists. A dangling session is cleared on sight.
func ValidateToken(c *gin.Context, kvs kv.Store, userExists UserExistsFunc, rawToken string) (*jwt.Claims, error) {
	token := NormalizeToken(rawToken)
	if token == "" {
		return nil, errors.New("token is required")
	}
	claims, err := jwt.Parse(token)
	if err != nil {
		return nil, err
	}
	sess, err := sessionpkg.Get(c.Request.Context(), kvs, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, errors.New("session expired or revoked")
	}
	if userExists != nil && !userExists(claims.UserID) {
		_ = sessionpkg.Revoke(c.Request.Context(), kvs, claims.SessionID)
		return nil, errors.New("session user no longer exists")
	}
	return claims, nil
}

// CurrentUserID extracts the authenticated user id from context.
func CurrentUserID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(string)
	return id
}

// CurrentSessionID extracts the authenticated session id from context.
func CurrentSessionID(c *gin.Context) string {
	v, _ := c.Get(ContextKeySID)
	id, _ := v.(string)
	return id
}

// IsAuthenticated reports whether the request carries a valid session.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentUserID(c) != ""
}

func extractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		return NormalizeToken(auth)
	}
	return NormalizeToken(c.Query("token"))
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}

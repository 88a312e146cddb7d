package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stitchmate/stitchmate/internal/domain/model"
	pkgAuth "github.com/stitchmate/stitchmate/internal/pkg/auth"
	"github.com/stitchmate/stitchmate/internal/usecase"
)

const (
	// UserIDContextKey is a gin context key for authenticated user identifier.
	UserIDContextKey = "userID"
	authCookieName   = "stitchmate_token"
)

// TokenParser validates bearer tokens.
type TokenParser interface {
	ParseToken(token string) (int64, error)
}

// RoleResolver loads the caller's resolved role and demo-mode flag.
type RoleResolver interface {
	UserData(ctx context.Context, userID int64) (*usecase.UserData, error)
}

// AuthRequired ensures the caller is authenticated before reaching the handler.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userID, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

// RoleRequired gates a route group behind a resolved role. Pending tailor
// applicants browse tailor views in demo mode, which permits read-only
// requests only.
func RoleRequired(resolver RoleResolver, role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(UserIDContextKey)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		userID, _ := val.(int64)

		data, err := resolver.UserData(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		if data.Role == role {
			c.Next()
			return
		}
		if role == model.RoleTailor && data.DemoMode && c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		c.AbortWithStatus(http.StatusForbidden)
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

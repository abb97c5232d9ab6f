package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"driveshare/internal/domain/user"
	"driveshare/internal/handler/httperr"
	"driveshare/internal/pkg/authz"
	"driveshare/internal/pkg/jwt"
	"driveshare/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
	ctxClaimsKey   = "jwt_claims"
)

type AuthMiddleware struct {
	jwtService *jwt.Service
	tokens     commands.TokenStore
}

func NewAuthMiddleware(jwtService *jwt.Service, tokens commands.TokenStore) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService, tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.Abort(c, http.StatusUnauthorized, nil, "Access token required")
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil || claims.TokenType != jwt.TokenTypeAccess {
			httperr.Abort(c, http.StatusUnauthorized, err, "Invalid or expired token")
			return
		}

		revoked, err := m.tokens.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			slog.Warn("token revocation check failed", "error", err.Error())
			httperr.Abort(c, http.StatusUnauthorized, err, "Invalid or expired token")
			return
		}
		if revoked {
			httperr.Abort(c, http.StatusUnauthorized, nil, "Invalid or expired token")
			return
		}

		role, err := user.NewRole(claims.Role)
		if err != nil {
			httperr.Abort(c, http.StatusUnauthorized, err, "Invalid or expired token")
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxUserRoleKey, role)
		c.Set(ctxClaimsKey, claims)
		c.Next()
	}
}

// RequireStaff gates support and admin surfaces. Must run after RequireAuth.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.Abort(c, http.StatusInternalServerError, nil, "Internal server error")
			return
		}
		if !authz.IsStaff(role) {
			httperr.Abort(c, http.StatusForbidden, nil, "Insufficient permissions")
			return
		}
		c.Next()
	}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			httperr.Abort(c, http.StatusInternalServerError, nil, "Internal server error")
			return
		}
		if role != user.RoleAdmin {
			httperr.Abort(c, http.StatusForbidden, nil, "Insufficient permissions")
			return
		}
		c.Next()
	}
}

// OptionalAuth sets the user context when a valid token is present but never
// aborts. Car detail pages use it so owners see their hidden listings.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil || claims.TokenType != jwt.TokenTypeAccess {
			c.Next()
			return
		}
		role, err := user.NewRole(claims.Role)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxUserRoleKey, role)
		c.Set(ctxClaimsKey, claims)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		// Websocket clients cannot set headers from the browser.
		return c.Query("token")
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	v, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(user.Role)
	return role, ok
}

func GetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get(ctxClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok
}

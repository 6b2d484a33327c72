package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ticketd/internal/domain/ticket"
	"ticketd/internal/infrastructure/auth"
	"ticketd/internal/shared/authorization"
	"ticketd/internal/shared/constants"
	"ticketd/internal/shared/logger"
	"ticketd/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and stores the acting user's id and
// role id on the gin context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserRole, claims.RoleID)

		c.Next()
	}
}

// RequireAdmin allows only actors carrying the admin role. It must run after
// RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFromContext(c)
		if !actor.IsAdmin() {
			utils.ErrorResponse(c, http.StatusForbidden, "admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ActorFromContext rebuilds the acting user from the values RequireAuth
// stored on the context.
func ActorFromContext(c *gin.Context) ticket.Actor {
	actor := ticket.Actor{}
	if v, ok := c.Get(constants.ContextKeyUserID); ok {
		if id, ok := v.(uint); ok {
			actor.ID = id
		}
	}
	if v, ok := c.Get(constants.ContextKeyUserRole); ok {
		if roleID, ok := v.(authorization.RoleID); ok {
			actor.RoleID = roleID
		}
	}
	return actor
}

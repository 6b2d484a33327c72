package routes

import (
	"github.com/gin-gonic/gin"

	rolehandlers "ticketd/internal/interfaces/http/handlers/role"
	"ticketd/internal/interfaces/http/middleware"
)

type RoleRouteConfig struct {
	RoleHandler    *rolehandlers.RoleHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRoleRoutes(engine *gin.Engine, config *RoleRouteConfig) {
	// role management is admin-only, reads included
	roles := engine.Group("/roles")
	roles.Use(config.AuthMiddleware.RequireAuth(), middleware.RequireAdmin())
	{
		roles.GET("", config.RoleHandler.ListRoles)
		roles.GET("/:id", config.RoleHandler.GetRole)
		roles.POST("", config.RoleHandler.CreateRole)
		roles.PATCH("/:id", config.RoleHandler.UpdateRole)
		roles.DELETE("/:id", config.RoleHandler.DeleteRole)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "ticketd/internal/interfaces/http/handlers/user"
	"ticketd/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.GET("", config.UserHandler.ListUsers)
		users.GET("/:id", config.UserHandler.GetUser)
		users.PATCH("/:id", config.UserHandler.UpdateUser)
		users.DELETE("/:id", middleware.RequireAdmin(), config.UserHandler.DeleteUser)
	}
}

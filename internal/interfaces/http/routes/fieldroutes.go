package routes

import (
	"github.com/gin-gonic/gin"

	fieldhandlers "ticketd/internal/interfaces/http/handlers/field"
	"ticketd/internal/interfaces/http/middleware"
)

type FieldRouteConfig struct {
	FieldHandler   *fieldhandlers.FieldHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupFieldRoutes(engine *gin.Engine, config *FieldRouteConfig) {
	fields := engine.Group("/fields")
	fields.Use(config.AuthMiddleware.RequireAuth())
	{
		fields.POST("", config.FieldHandler.CreateField)
		fields.GET("", config.FieldHandler.ListFields)
		fields.GET("/:id", config.FieldHandler.GetField)
		fields.PATCH("/:id", config.FieldHandler.UpdateField)
		fields.DELETE("/:id", config.FieldHandler.DeleteField)
	}
}

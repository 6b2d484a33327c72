// Package http assembles the gin engine: repositories, services, use cases,
// handlers, middleware, and routes.
package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	appauth "ticketd/internal/application/auth"
	appfield "ticketd/internal/application/field"
	approle "ticketd/internal/application/role"
	"ticketd/internal/application/ticket/usecases"
	appuser "ticketd/internal/application/user"
	"ticketd/internal/infrastructure/auth"
	"ticketd/internal/infrastructure/config"
	"ticketd/internal/infrastructure/email"
	"ticketd/internal/infrastructure/repository"
	authhandlers "ticketd/internal/interfaces/http/handlers/auth"
	fieldhandlers "ticketd/internal/interfaces/http/handlers/field"
	rolehandlers "ticketd/internal/interfaces/http/handlers/role"
	tickethandlers "ticketd/internal/interfaces/http/handlers/ticket"
	userhandlers "ticketd/internal/interfaces/http/handlers/user"
	"ticketd/internal/interfaces/http/middleware"
	"ticketd/internal/interfaces/http/routes"
	"ticketd/internal/shared/db"
	"ticketd/internal/shared/logger"
)

// Router holds the assembled gin engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter wires every layer and registers the routes.
func NewRouter(cfg *config.Config, gdb *gorm.DB, log logger.Interface) *Router {
	gin.SetMode(cfg.Server.Mode)

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS([]string{"*"}))

	// infrastructure
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	notifier := email.NewSMTPNotifier(cfg.Email)
	txManager := db.NewTransactionManager(gdb)

	// repositories
	userRepo := repository.NewUserRepository(gdb)
	roleRepo := repository.NewRoleRepository(gdb)
	fieldRepo := repository.NewFieldRepository(gdb)
	ticketRepo := repository.NewTicketRepository(gdb)

	// application services and use cases
	authService := appauth.NewService(userRepo, hasher, jwtService, notifier, log.Named("auth"))
	userService := appuser.NewService(userRepo, log.Named("user"))
	roleService := approle.NewService(roleRepo, log.Named("role"))
	fieldService := appfield.NewService(fieldRepo, log.Named("field"))

	ticketLog := log.Named("ticket")
	createTicketUC := usecases.NewCreateTicketUseCase(ticketRepo, fieldRepo, userRepo, txManager, ticketLog)
	getTicketUC := usecases.NewGetTicketUseCase(ticketRepo, ticketLog)
	updateTicketUC := usecases.NewUpdateTicketUseCase(ticketRepo, fieldRepo, userRepo, txManager, notifier, ticketLog)
	deleteTicketUC := usecases.NewDeleteTicketUseCase(ticketRepo, ticketLog)
	listTicketsUC := usecases.NewListTicketsUseCase(ticketRepo, ticketLog)
	assignedTicketsUC := usecases.NewAssignedTicketsUseCase(ticketRepo, ticketLog)

	// handlers
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	authHandler := authhandlers.NewAuthHandler(authService, log)
	userHandler := userhandlers.NewUserHandler(userService, log)
	roleHandler := rolehandlers.NewRoleHandler(roleService, log)
	fieldHandler := fieldhandlers.NewFieldHandler(fieldService, log)
	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC,
		getTicketUC,
		updateTicketUC,
		deleteTicketUC,
		listTicketsUC,
		assignedTicketsUC,
		log,
	)

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{AuthHandler: authHandler})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{UserHandler: userHandler, AuthMiddleware: authMiddleware})
	routes.SetupRoleRoutes(engine, &routes.RoleRouteConfig{RoleHandler: roleHandler, AuthMiddleware: authMiddleware})
	routes.SetupFieldRoutes(engine, &routes.FieldRouteConfig{FieldHandler: fieldHandler, AuthMiddleware: authMiddleware})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{TicketHandler: ticketHandler, AuthMiddleware: authMiddleware})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return &Router{engine: engine}
}

// Engine exposes the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the configured address.
func (r *Router) Run(cfg *config.Config) error {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	return r.engine.Run(addr)
}

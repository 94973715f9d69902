package http

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
)

// SetupRoutes registers middleware and every route group.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery(c.log))

	c.engine.GET("/health", c.hdlrs.health.Health)

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.auth,
		ProfileHandler: c.hdlrs.profile,
		AuthMiddleware: c.authMiddleware,
		RateLimiter:    c.rateLimiter,
	})
	routes.SetupUserRoutes(c.engine, &routes.UserRouteConfig{
		UserHandler:    c.hdlrs.user,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupCatalogRoutes(c.engine, &routes.CatalogRouteConfig{
		CatalogHandler: c.hdlrs.catalog,
		UserHandler:    c.hdlrs.user,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupTicketRoutes(c.engine, &routes.TicketRouteConfig{
		TicketHandler:   c.hdlrs.ticket,
		ActivityHandler: c.hdlrs.activity,
		AuthMiddleware:  c.authMiddleware,
	})
	routes.SetupKnowledgeRoutes(c.engine, &routes.KnowledgeRouteConfig{
		ArticleHandler: c.hdlrs.article,
		ReportHandler:  c.hdlrs.report,
		AuthMiddleware: c.authMiddleware,
	})
}

func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

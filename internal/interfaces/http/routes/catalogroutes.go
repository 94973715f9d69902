package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

type CatalogRouteConfig struct {
	CatalogHandler *handlers.CatalogHandler
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupCatalogRoutes(engine *gin.Engine, cfg *CatalogRouteConfig) {
	catalog := engine.Group("/catalog")
	catalog.Use(cfg.AuthMiddleware.RequireAuth())
	{
		catalog.GET("/categories", cfg.CatalogHandler.ListCategories)
		catalog.GET("/priorities", cfg.CatalogHandler.ListPriorities)
		catalog.GET("/statuses", cfg.CatalogHandler.ListStatuses)
		catalog.GET("/staff", cfg.UserHandler.ListStaff)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

// KnowledgeRouteConfig holds dependencies for articles and reports.
type KnowledgeRouteConfig struct {
	ArticleHandler *handlers.ArticleHandler
	ReportHandler  *handlers.ReportHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupKnowledgeRoutes(engine *gin.Engine, cfg *KnowledgeRouteConfig) {
	articles := engine.Group("/articles")
	articles.Use(cfg.AuthMiddleware.RequireAuth())
	{
		articles.GET("", cfg.ArticleHandler.SearchArticles)
		articles.POST("", cfg.ArticleHandler.CreateArticle)
		articles.GET("/:id", cfg.ArticleHandler.GetArticle)
	}

	engine.GET("/reports", cfg.AuthMiddleware.RequireAuth(), cfg.ReportHandler.GenerateReport)
}

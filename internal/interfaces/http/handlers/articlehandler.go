package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	knowledgeusecases "helpdesk/internal/application/knowledge/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type CreateArticleRequest struct {
	Title      string `json:"title" validate:"required,max=200"`
	Content    string `json:"content" validate:"required"`
	CategoryID *uint  `json:"category_id"`
	Tags       string `json:"tags" validate:"max=500"`
	IsPublic   *bool  `json:"is_public"`
}

type ArticleHandler struct {
	searchUC SearchArticlesExecutor
	getUC    GetArticleExecutor
	createUC CreateArticleExecutor
	logger   logger.Interface
}

func NewArticleHandler(searchUC SearchArticlesExecutor, getUC GetArticleExecutor, createUC CreateArticleExecutor, logger logger.Interface) *ArticleHandler {
	return &ArticleHandler{
		searchUC: searchUC,
		getUC:    getUC,
		createUC: createUC,
		logger:   logger,
	}
}

// SearchArticles handles GET /articles?q=&category_id=
func (h *ArticleHandler) SearchArticles(c *gin.Context) {
	categoryID, err := utils.ParseOptionalUintQuery(c, "category_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.searchUC.Execute(c.Request.Context(), knowledgeusecases.SearchArticlesQuery{
		Query:      c.Query("q"),
		CategoryID: categoryID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetArticle handles GET /articles/:id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseUintParam(c, "id", "article")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), actor, id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateArticle handles POST /articles. Articles are public unless
// is_public is false.
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateArticleRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	result, err := h.createUC.Execute(c.Request.Context(), knowledgeusecases.CreateArticleCommand{
		Actor:      actor,
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		Tags:       req.Tags,
		IsPublic:   isPublic,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Article created successfully")
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type CatalogHandler struct {
	catalog CatalogLister
	logger  logger.Interface
}

func NewCatalogHandler(catalog CatalogLister, logger logger.Interface) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger}
}

// ListCategories handles GET /catalog/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	result, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListPriorities handles GET /catalog/priorities
func (h *CatalogHandler) ListPriorities(c *gin.Context) {
	result, err := h.catalog.ListPriorities(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListStatuses handles GET /catalog/statuses
func (h *CatalogHandler) ListStatuses(c *gin.Context) {
	result, err := h.catalog.ListStatuses(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

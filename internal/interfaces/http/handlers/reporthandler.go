package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reportusecases "helpdesk/internal/application/report/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type ReportHandler struct {
	generateReportUC GenerateReportExecutor
	logger           logger.Interface
}

func NewReportHandler(generateReportUC GenerateReportExecutor, logger logger.Interface) *ReportHandler {
	return &ReportHandler{generateReportUC: generateReportUC, logger: logger}
}

// GenerateReport handles GET /reports?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.generateReportUC.Execute(c.Request.Context(), reportusecases.GenerateReportQuery{
		Actor:     actor,
		StartDate: c.Query("start"),
		EndDate:   c.Query("end"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

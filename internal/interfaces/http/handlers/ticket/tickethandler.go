package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC   CreateTicketExecutor
	getTicketUC      GetTicketExecutor
	listTicketsUC    ListTicketsExecutor
	editTicketUC     EditTicketExecutor
	changeStatusUC   ChangeStatusExecutor
	assignTicketUC   AssignTicketExecutor
	changePriorityUC ChangePriorityExecutor
	deleteTicketUC   DeleteTicketExecutor
	bulkUpdateUC     BulkUpdateExecutor
	dashboardUC      DashboardExecutor
	logger           logger.Interface
}

func NewTicketHandler(
	createTicketUC CreateTicketExecutor,
	getTicketUC GetTicketExecutor,
	listTicketsUC ListTicketsExecutor,
	editTicketUC EditTicketExecutor,
	changeStatusUC ChangeStatusExecutor,
	assignTicketUC AssignTicketExecutor,
	changePriorityUC ChangePriorityExecutor,
	deleteTicketUC DeleteTicketExecutor,
	bulkUpdateUC BulkUpdateExecutor,
	dashboardUC DashboardExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:   createTicketUC,
		getTicketUC:      getTicketUC,
		listTicketsUC:    listTicketsUC,
		editTicketUC:     editTicketUC,
		changeStatusUC:   changeStatusUC,
		assignTicketUC:   assignTicketUC,
		changePriorityUC: changePriorityUC,
		deleteTicketUC:   deleteTicketUC,
		bulkUpdateUC:     bulkUpdateUC,
		dashboardUC:      dashboardUC,
		logger:           logger,
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toCreateTicketResponse(result), "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	actor, ticketID, ok := actorAndTicketID(c)
	if !ok {
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		Actor:    actor,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query, err := parseListTicketsQuery(c, actor)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toTicketListResponse(result))
}

// UpdateTicket handles PUT /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	actor, ticketID, ok := actorAndTicketID(c)
	if !ok {
		return
	}

	var req UpdateTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.editTicketUC.Execute(c.Request.Context(), usecases.EditTicketCommand{
		Actor:       actor,
		TicketID:    ticketID,
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		PriorityID:  req.PriorityID,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// ChangeStatus handles PATCH /tickets/:id/status
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	actor, ticketID, ok := actorAndTicketID(c)
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		Actor:    actor,
		TicketID: ticketID,
		StatusID: req.StatusID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated successfully", result)
}

// AssignTicket handles PATCH /tickets/:id/assignee
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	actor, ticketID, ok := actorAndTicketID(c)
	if !ok {
		return
	}

	var req AssignTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignTicketUC.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		Actor:      actor,
		TicketID:   ticketID,
		AssigneeID: req.AssigneeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assignee updated successfully", result)
}

// ChangePriority handles PATCH /tickets/:id/priority
func (h *TicketHandler) ChangePriority(c *gin.Context) {
	actor, ticketID, ok := actorAndTicketID(c)
	if !ok {
		return
	}

	var req ChangePriorityRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.changePriorityUC.Execute(c.Request.Context(), usecases.ChangePriorityCommand{
		Actor:      actor,
		TicketID:   ticketID,
		PriorityID: req.PriorityID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket priority updated successfully", result)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	actor, ticketID, ok := actorAndTicketID(c)
	if !ok {
		return
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		Actor:    actor,
		TicketID: ticketID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// BulkUpdate handles POST /tickets/bulk
func (h *TicketHandler) BulkUpdate(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req BulkUpdateRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for bulk update", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.bulkUpdateUC.Execute(c.Request.Context(), usecases.BulkUpdateCommand{
		Actor:         actor,
		TicketIDs:     req.TicketIDs,
		StatusID:      req.StatusID,
		PriorityID:    req.PriorityID,
		AssigneeID:    req.AssigneeID,
		ClearAssignee: req.ClearAssignee,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tickets updated successfully", BulkUpdateResponse{Updated: result.Updated})
}

// Dashboard handles GET /dashboard
func (h *TicketHandler) Dashboard(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.dashboardUC.Execute(c.Request.Context(), actor)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

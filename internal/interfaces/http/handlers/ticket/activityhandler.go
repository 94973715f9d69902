package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// ActivityHandler serves comments and time entries.
type ActivityHandler struct {
	addCommentUC        AddCommentExecutor
	listCommentsUC      ListCommentsExecutor
	addTimeEntryUC      AddTimeEntryExecutor
	listTimeEntriesUC   ListTimeEntriesExecutor
	listMyTimeEntriesUC ListMyTimeEntriesExecutor
	logger              logger.Interface
}

func NewActivityHandler(
	addCommentUC AddCommentExecutor,
	listCommentsUC ListCommentsExecutor,
	addTimeEntryUC AddTimeEntryExecutor,
	listTimeEntriesUC ListTimeEntriesExecutor,
	listMyTimeEntriesUC ListMyTimeEntriesExecutor,
	logger logger.Interface,
) *ActivityHandler {
	return &ActivityHandler{
		addCommentUC:        addCommentUC,
		listCommentsUC:      listCommentsUC,
		addTimeEntryUC:      addTimeEntryUC,
		listTimeEntriesUC:   listTimeEntriesUC,
		listMyTimeEntriesUC: listMyTimeEntriesUC,
		logger:              logger,
	}
}

// AddComment handles POST /tickets/:id/comments
func (h *ActivityHandler) AddComment(c *gin.Context) {
	actor, ticketID, ok := actorAndTicketID(c)
	if !ok {
		return
	}

	var req AddCommentRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		Actor:      actor,
		TicketID:   ticketID,
		Content:    req.Content,
		IsInternal: req.IsInternal,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// ListComments handles GET /tickets/:id/comments
func (h *ActivityHandler) ListComments(c *gin.Context) {
	actor, ticketID, ok := actorAndTicketID(c)
	if !ok {
		return
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{
		Actor:    actor,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddTimeEntry handles POST /tickets/:id/time-entries
func (h *ActivityHandler) AddTimeEntry(c *gin.Context) {
	actor, ticketID, ok := actorAndTicketID(c)
	if !ok {
		return
	}

	var req AddTimeEntryRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addTimeEntryUC.Execute(c.Request.Context(), usecases.AddTimeEntryCommand{
		Actor:       actor,
		TicketID:    ticketID,
		Description: req.Description,
		Minutes:     req.Minutes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Time entry logged successfully")
}

// ListTimeEntries handles GET /tickets/:id/time-entries
func (h *ActivityHandler) ListTimeEntries(c *gin.Context) {
	actor, ticketID, ok := actorAndTicketID(c)
	if !ok {
		return
	}

	result, err := h.listTimeEntriesUC.Execute(c.Request.Context(), usecases.ListTimeEntriesQuery{
		Actor:    actor,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", TimeEntriesResponse{
		Entries:      result.Entries,
		TotalMinutes: result.TotalMinutes,
	})
}

// ListMyTimeEntries handles GET /time-entries/mine
func (h *ActivityHandler) ListMyTimeEntries(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listMyTimeEntriesUC.Execute(c.Request.Context(), actor)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

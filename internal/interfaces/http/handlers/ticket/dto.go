package ticket

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/utils"
)

type CreateTicketRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=10000"`
	CategoryID  uint   `json:"category_id" validate:"required,gt=0"`
	PriorityID  uint   `json:"priority_id" validate:"required,gt=0"`
}

func (r *CreateTicketRequest) ToCommand(actor authorization.Actor) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Actor:       actor,
		Title:       r.Title,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		PriorityID:  r.PriorityID,
	}
}

type CreateTicketResponse struct {
	ID               uint       `json:"id"`
	Number           string     `json:"ticket_number"`
	StatusName       string     `json:"status_name"`
	SLAResponseDue   *time.Time `json:"sla_response_due"`
	SLAResolutionDue *time.Time `json:"sla_resolution_due"`
	CreatedAt        time.Time  `json:"created_at"`
}

func toCreateTicketResponse(r *usecases.CreateTicketResult) CreateTicketResponse {
	return CreateTicketResponse{
		ID:               r.TicketID,
		Number:           r.Number,
		StatusName:       r.StatusName,
		SLAResponseDue:   r.SLAResponseDue,
		SLAResolutionDue: r.SLAResolutionDue,
		CreatedAt:        r.CreatedAt,
	}
}

type UpdateTicketRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=10000"`
	CategoryID  uint   `json:"category_id" validate:"required,gt=0"`
	PriorityID  uint   `json:"priority_id" validate:"required,gt=0"`
	AssigneeID  *uint  `json:"assignee_id"`
}

type ChangeStatusRequest struct {
	StatusID uint `json:"status_id" validate:"required,gt=0"`
}

// AssignTicketRequest with a null assignee_id unassigns the ticket.
type AssignTicketRequest struct {
	AssigneeID *uint `json:"assignee_id"`
}

type ChangePriorityRequest struct {
	PriorityID uint `json:"priority_id" validate:"required,gt=0"`
}

type BulkUpdateRequest struct {
	TicketIDs     []uint `json:"ticket_ids" validate:"required,min=1,dive,gt=0"`
	StatusID      *uint  `json:"status_id"`
	PriorityID    *uint  `json:"priority_id"`
	AssigneeID    *uint  `json:"assignee_id"`
	ClearAssignee bool   `json:"clear_assignee"`
}

type BulkUpdateResponse struct {
	Updated int `json:"updated"`
}

type AddCommentRequest struct {
	Content    string `json:"content" validate:"required,max=10000"`
	IsInternal bool   `json:"is_internal"`
}

type AddTimeEntryRequest struct {
	Description string `json:"description" validate:"max=1000"`
	Minutes     int    `json:"minutes_spent"`
}

type TimeEntriesResponse struct {
	Entries      []dto.TimeEntryDTO `json:"entries"`
	TotalMinutes int64              `json:"total_minutes"`
}

// TicketListResponse extends the list envelope with the number of completed
// tickets hidden by the default filter.
type TicketListResponse struct {
	Items           []dto.TicketDTO `json:"items"`
	Total           int64           `json:"total"`
	Page            int             `json:"page"`
	PageSize        int             `json:"page_size"`
	TotalPages      int             `json:"total_pages"`
	HiddenCompleted int64           `json:"hidden_completed"`
}

func toTicketListResponse(r *usecases.ListTicketsResult) TicketListResponse {
	return TicketListResponse{
		Items:           r.Tickets,
		Total:           r.Total,
		Page:            r.Page,
		PageSize:        r.PageSize,
		TotalPages:      utils.TotalPages(r.Total, r.PageSize),
		HiddenCompleted: r.HiddenCompleted,
	}
}

func parseListTicketsQuery(c *gin.Context, actor authorization.Actor) (usecases.ListTicketsQuery, error) {
	pagination := utils.ParsePagination(c)
	query := usecases.ListTicketsQuery{
		Actor:    actor,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	var err error
	if query.StatusID, err = utils.ParseOptionalUintQuery(c, "status_id"); err != nil {
		return query, err
	}
	if query.PriorityID, err = utils.ParseOptionalUintQuery(c, "priority_id"); err != nil {
		return query, err
	}
	if query.CategoryID, err = utils.ParseOptionalUintQuery(c, "category_id"); err != nil {
		return query, err
	}

	if raw := c.Query("show_completed"); raw != "" {
		show, err := strconv.ParseBool(raw)
		if err != nil {
			return query, errors.NewValidationError("invalid show_completed")
		}
		query.ShowCompleted = show
	}

	return query, nil
}

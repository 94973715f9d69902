package mappers

import (
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper converts tickets and their log entries between the domain and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) *ticket.Ticket
	CommentToModel(c *ticket.Comment) *models.CommentModel
	TimeEntryToModel(e *ticket.TimeEntry) *models.TimeEntryModel
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:               t.ID(),
		TicketNumber:     t.Number(),
		Title:            t.Title(),
		Description:      t.Description(),
		StatusID:         t.StatusID(),
		PriorityID:       t.PriorityID(),
		CategoryID:       t.CategoryID(),
		RequesterID:      t.RequesterID(),
		AssigneeID:       t.AssigneeID(),
		CreatedAt:        t.CreatedAt(),
		UpdatedAt:        t.UpdatedAt(),
		ResolvedAt:       t.ResolvedAt(),
		SLAResponseDue:   t.SLAResponseDue(),
		SLAResolutionDue: t.SLAResolutionDue(),
		FirstResponseAt:  t.FirstResponseAt(),
		EscalatedAt:      t.EscalatedAt(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) *ticket.Ticket {
	if model == nil {
		return nil
	}
	return ticket.ReconstructTicket(
		model.ID,
		model.TicketNumber,
		model.Title,
		model.Description,
		model.StatusID,
		model.PriorityID,
		model.CategoryID,
		model.RequesterID,
		model.AssigneeID,
		model.CreatedAt.UTC(),
		model.UpdatedAt.UTC(),
		utcPtr(model.ResolvedAt),
		utcPtr(model.SLAResponseDue),
		utcPtr(model.SLAResolutionDue),
		utcPtr(model.FirstResponseAt),
		utcPtr(model.EscalatedAt),
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		UserID:     c.UserID(),
		Content:    c.Content(),
		IsInternal: c.IsInternal(),
		CreatedAt:  c.CreatedAt(),
	}
}

func (m *TicketMapperImpl) TimeEntryToModel(e *ticket.TimeEntry) *models.TimeEntryModel {
	return &models.TimeEntryModel{
		ID:           e.ID(),
		TicketID:     e.TicketID(),
		UserID:       e.UserID(),
		Description:  e.Description(),
		MinutesSpent: e.Minutes(),
		CreatedAt:    e.CreatedAt(),
	}
}

package dto

import (
	"time"

	"helpdesk/internal/domain/sla"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/mapper"
)

type TicketDTO struct {
	ID               uint       `json:"id"`
	Number           string     `json:"ticket_number"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	StatusID         uint       `json:"status_id"`
	StatusName       string     `json:"status_name"`
	PriorityID       uint       `json:"priority_id"`
	PriorityName     string     `json:"priority_name"`
	PriorityLevel    int        `json:"priority_level"`
	PriorityColor    string     `json:"priority_color"`
	CategoryID       uint       `json:"category_id"`
	CategoryName     string     `json:"category_name"`
	RequesterID      uint       `json:"requester_id"`
	RequesterName    string     `json:"requester_name"`
	AssigneeID       *uint      `json:"assignee_id"`
	AssigneeName     string     `json:"assignee_name,omitempty"`
	IsCompleted      bool       `json:"is_completed"`
	SLAStatus        sla.Status `json:"sla_status"`
	SLAResponseDue   *time.Time `json:"sla_response_due"`
	SLAResolutionDue *time.Time `json:"sla_resolution_due"`
	FirstResponseAt  *time.Time `json:"first_response_at"`
	ResolvedAt       *time.Time `json:"resolved_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type TicketDetailDTO struct {
	TicketDTO
	TotalMinutes int64 `json:"total_minutes"`
}

type CommentDTO struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticket_id"`
	UserID     uint      `json:"user_id"`
	AuthorName string    `json:"author_name,omitempty"`
	AuthorRole string    `json:"author_role,omitempty"`
	Content    string    `json:"content"`
	IsInternal bool      `json:"is_internal"`
	CreatedAt  time.Time `json:"created_at"`
}

type TimeEntryDTO struct {
	ID           uint      `json:"id"`
	TicketID     uint      `json:"ticket_id"`
	TicketNumber string    `json:"ticket_number,omitempty"`
	TicketTitle  string    `json:"ticket_title,omitempty"`
	UserID       uint      `json:"user_id"`
	AuthorName   string    `json:"author_name,omitempty"`
	Description  string    `json:"description"`
	Minutes      int       `json:"minutes_spent"`
	CreatedAt    time.Time `json:"created_at"`
}

type StatusCountDTO struct {
	StatusID   uint   `json:"status_id"`
	StatusName string `json:"status_name"`
	Count      int64  `json:"count"`
}

type DashboardDTO struct {
	TotalTickets  int64            `json:"total_tickets"`
	StatusCounts  []StatusCountDTO `json:"status_counts"`
	SLAAlerts     []TicketDTO      `json:"sla_alerts,omitempty"`
	RecentTickets []TicketDTO      `json:"recent_tickets"`
}

// ToTicketDTO evaluates the SLA status as of now.
func ToTicketDTO(d *ticket.Details, now time.Time) TicketDTO {
	return TicketDTO{
		ID:               d.ID,
		Number:           d.Number,
		Title:            d.Title,
		Description:      d.Description,
		StatusID:         d.StatusID,
		StatusName:       d.StatusName,
		PriorityID:       d.PriorityID,
		PriorityName:     d.PriorityName,
		PriorityLevel:    d.PriorityLevel,
		PriorityColor:    d.PriorityColor,
		CategoryID:       d.CategoryID,
		CategoryName:     d.CategoryName,
		RequesterID:      d.RequesterID,
		RequesterName:    d.RequesterName,
		AssigneeID:       d.AssigneeID,
		AssigneeName:     d.AssigneeName,
		IsCompleted:      d.IsTerminal(),
		SLAStatus:        d.SLAStatus(now),
		SLAResponseDue:   d.SLAResponseDue,
		SLAResolutionDue: d.SLAResolutionDue,
		FirstResponseAt:  d.FirstResponseAt,
		ResolvedAt:       d.ResolvedAt,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func ToTicketDTOs(items []*ticket.Details, now time.Time) []TicketDTO {
	return mapper.MapSlice(items, func(d *ticket.Details) TicketDTO {
		return ToTicketDTO(d, now)
	})
}

func ToCommentDTO(c *ticket.CommentView) CommentDTO {
	return CommentDTO{
		ID:         c.ID,
		TicketID:   c.TicketID,
		UserID:     c.UserID,
		AuthorName: c.AuthorName,
		AuthorRole: c.AuthorRole,
		Content:    c.Content,
		IsInternal: c.IsInternal,
		CreatedAt:  c.CreatedAt,
	}
}

func FromComment(c *ticket.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		UserID:     c.UserID(),
		Content:    c.Content(),
		IsInternal: c.IsInternal(),
		CreatedAt:  c.CreatedAt(),
	}
}

func ToTimeEntryDTO(e *ticket.TimeEntryView) TimeEntryDTO {
	return TimeEntryDTO{
		ID:           e.ID,
		TicketID:     e.TicketID,
		TicketNumber: e.TicketNumber,
		TicketTitle:  e.TicketTitle,
		UserID:       e.UserID,
		AuthorName:   e.AuthorName,
		Description:  e.Description,
		Minutes:      e.Minutes,
		CreatedAt:    e.CreatedAt,
	}
}

func FromTimeEntry(e *ticket.TimeEntry) TimeEntryDTO {
	return TimeEntryDTO{
		ID:          e.ID(),
		TicketID:    e.TicketID(),
		UserID:      e.UserID(),
		Description: e.Description(),
		Minutes:     e.Minutes(),
		CreatedAt:   e.CreatedAt(),
	}
}

func ToStatusCountDTOs(counts []ticket.StatusCount) []StatusCountDTO {
	return mapper.MapSlice(counts, func(c ticket.StatusCount) StatusCountDTO {
		return StatusCountDTO{StatusID: c.StatusID, StatusName: c.StatusName, Count: c.Count}
	})
}

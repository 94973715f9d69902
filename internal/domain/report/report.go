// Package report defines the read side used for date-range reporting.
package report

import (
	"context"
	"time"

	"helpdesk/internal/domain/sla"
)

// TicketRow is one ticket created inside the reporting window.
type TicketRow struct {
	ID               uint
	Number           string
	Title            string
	StatusID         uint
	StatusName       string
	PriorityID       uint
	PriorityName     string
	PriorityLevel    int
	CategoryName     string
	RequesterName    string
	CreatedAt        time.Time
	ResolvedAt       *time.Time
	FirstResponseAt  *time.Time
	SLAResponseDue   *time.Time
	SLAResolutionDue *time.Time
}

func (r TicketRow) Deadlines() sla.Deadlines {
	return sla.Deadlines{ResponseDue: r.SLAResponseDue, ResolutionDue: r.SLAResolutionDue}
}

// UserTime is time logged by one user inside the window.
type UserTime struct {
	UserID       uint
	Username     string
	FullName     string
	TotalMinutes int64
	TicketCount  int64
}

type Repository interface {
	// TicketsCreatedBetween returns tickets with created_at in [start, end],
	// newest first.
	TicketsCreatedBetween(ctx context.Context, start, end time.Time) ([]TicketRow, error)
	// TimeByUserBetween groups time entries created in [start, end] by
	// author, largest total first.
	TimeByUserBetween(ctx context.Context, start, end time.Time) ([]UserTime, error)
}

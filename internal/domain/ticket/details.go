package ticket

import (
	"time"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/sla"
)

// Details is the read model of a ticket with its reference names joined in.
type Details struct {
	ID            uint
	Number        string
	Title         string
	Description   string
	StatusID      uint
	StatusName    string
	PriorityID    uint
	PriorityName  string
	PriorityLevel int
	PriorityColor string
	CategoryID    uint
	CategoryName  string
	RequesterID   uint
	RequesterName string
	AssigneeID    *uint
	AssigneeName  string

	CreatedAt        time.Time
	UpdatedAt        time.Time
	ResolvedAt       *time.Time
	SLAResponseDue   *time.Time
	SLAResolutionDue *time.Time
	FirstResponseAt  *time.Time
	EscalatedAt      *time.Time
}

func (d *Details) Deadlines() sla.Deadlines {
	return sla.Deadlines{ResponseDue: d.SLAResponseDue, ResolutionDue: d.SLAResolutionDue}
}

func (d *Details) IsTerminal() bool {
	return catalog.IsTerminalStatusName(d.StatusName)
}

func (d *Details) SLAStatus(now time.Time) sla.Status {
	return sla.Evaluate(d.Deadlines(), d.FirstResponseAt, d.IsTerminal(), now)
}

type CommentView struct {
	ID         uint
	TicketID   uint
	UserID     uint
	AuthorName string
	AuthorRole string
	Content    string
	IsInternal bool
	CreatedAt  time.Time
}

type TimeEntryView struct {
	ID           uint
	TicketID     uint
	TicketNumber string
	TicketTitle  string
	UserID       uint
	AuthorName   string
	Description  string
	Minutes      int
	CreatedAt    time.Time
}

type StatusCount struct {
	StatusID   uint
	StatusName string
	Count      int64
}

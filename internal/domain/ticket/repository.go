package ticket

import (
	"context"
	"time"

	"helpdesk/internal/shared/query"
)

// Filter narrows a ticket listing. A nil RequesterID means every requester.
// Completed tickets are left out unless ShowCompleted is set or StatusID
// pins a status explicitly.
type Filter struct {
	query.PageFilter
	RequesterID   *uint
	StatusID      *uint
	PriorityID    *uint
	CategoryID    *uint
	ShowCompleted bool
}

type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	// GetByIDs returns the tickets that exist; callers compare against ids.
	GetByIDs(ctx context.Context, ids []uint) ([]*Ticket, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	// Delete removes the ticket with its comments and time entries.
	Delete(ctx context.Context, id uint) error

	GetDetails(ctx context.Context, id uint) (*Details, error)
	List(ctx context.Context, filter Filter) ([]*Details, int64, error)
	Count(ctx context.Context, requesterID *uint) (int64, error)
	CountCompleted(ctx context.Context, requesterID *uint) (int64, error)
	// CountByStatus includes statuses with no tickets, ordered by status id.
	CountByStatus(ctx context.Context, requesterID *uint) ([]StatusCount, error)
	// ListSLABreaches returns tickets in breach as of now, ordered by
	// response due then resolution due.
	ListSLABreaches(ctx context.Context, now time.Time) ([]*Details, error)
	Recent(ctx context.Context, requesterID *uint, limit int) ([]*Details, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c *Comment) error
	// ListByTicket returns comments oldest first.
	ListByTicket(ctx context.Context, ticketID uint, includeInternal bool) ([]*CommentView, error)
}

type TimeEntryRepository interface {
	Create(ctx context.Context, e *TimeEntry) error
	// ListByTicket and ListByUser return entries newest first.
	ListByTicket(ctx context.Context, ticketID uint) ([]*TimeEntryView, error)
	ListByUser(ctx context.Context, userID uint) ([]*TimeEntryView, error)
	TotalMinutesByTicket(ctx context.Context, ticketID uint) (int64, error)
	// TotalMinutesByUser sums entries created in [start, end].
	TotalMinutesByUser(ctx context.Context, userID uint, start, end time.Time) (int64, error)
}

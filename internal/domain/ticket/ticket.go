package ticket

import (
	"strings"
	"time"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/sla"
	"helpdesk/internal/shared/errors"
)

type Ticket struct {
	id               uint
	number           string
	title            string
	description      string
	statusID         uint
	priorityID       uint
	categoryID       uint
	requesterID      uint
	assigneeID       *uint
	createdAt        time.Time
	updatedAt        time.Time
	resolvedAt       *time.Time
	slaResponseDue   *time.Time
	slaResolutionDue *time.Time
	firstResponseAt  *time.Time
	escalatedAt      *time.Time
}

// NewTicket opens a ticket for requesterID. SLA deadlines are fixed here from
// the priority level and never recomputed.
func NewTicket(
	requesterID uint,
	title string,
	description string,
	category *catalog.Category,
	priority *catalog.Priority,
	open *catalog.Status,
	now time.Time,
) (*Ticket, error) {
	if requesterID == 0 {
		return nil, errors.NewValidationError("requester is required")
	}
	if err := validateText(title, description); err != nil {
		return nil, err
	}
	if category == nil || priority == nil || open == nil {
		return nil, errors.NewValidationError("category, priority and status are required")
	}

	deadlines := sla.Compute(priority.Level(), now)

	return &Ticket{
		title:            strings.TrimSpace(title),
		description:      strings.TrimSpace(description),
		statusID:         open.ID(),
		priorityID:       priority.ID(),
		categoryID:       category.ID(),
		requesterID:      requesterID,
		createdAt:        now,
		updatedAt:        now,
		slaResponseDue:   deadlines.ResponseDue,
		slaResolutionDue: deadlines.ResolutionDue,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence without validation.
func ReconstructTicket(
	id uint,
	number, title, description string,
	statusID, priorityID, categoryID, requesterID uint,
	assigneeID *uint,
	createdAt, updatedAt time.Time,
	resolvedAt, slaResponseDue, slaResolutionDue, firstResponseAt, escalatedAt *time.Time,
) *Ticket {
	return &Ticket{
		id:               id,
		number:           number,
		title:            title,
		description:      description,
		statusID:         statusID,
		priorityID:       priorityID,
		categoryID:       categoryID,
		requesterID:      requesterID,
		assigneeID:       assigneeID,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		resolvedAt:       resolvedAt,
		slaResponseDue:   slaResponseDue,
		slaResolutionDue: slaResolutionDue,
		firstResponseAt:  firstResponseAt,
		escalatedAt:      escalatedAt,
	}
}

func validateText(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return errors.NewValidationError("title is required")
	}
	if strings.TrimSpace(description) == "" {
		return errors.NewValidationError("description is required")
	}
	return nil
}

func (t *Ticket) ID() uint                     { return t.id }
func (t *Ticket) Number() string               { return t.number }
func (t *Ticket) Title() string                { return t.title }
func (t *Ticket) Description() string          { return t.description }
func (t *Ticket) StatusID() uint               { return t.statusID }
func (t *Ticket) PriorityID() uint             { return t.priorityID }
func (t *Ticket) CategoryID() uint             { return t.categoryID }
func (t *Ticket) RequesterID() uint            { return t.requesterID }
func (t *Ticket) AssigneeID() *uint            { return t.assigneeID }
func (t *Ticket) CreatedAt() time.Time         { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time         { return t.updatedAt }
func (t *Ticket) ResolvedAt() *time.Time       { return t.resolvedAt }
func (t *Ticket) SLAResponseDue() *time.Time   { return t.slaResponseDue }
func (t *Ticket) SLAResolutionDue() *time.Time { return t.slaResolutionDue }
func (t *Ticket) FirstResponseAt() *time.Time  { return t.firstResponseAt }
func (t *Ticket) EscalatedAt() *time.Time      { return t.escalatedAt }

func (t *Ticket) Deadlines() sla.Deadlines {
	return sla.Deadlines{ResponseDue: t.slaResponseDue, ResolutionDue: t.slaResolutionDue}
}

func (t *Ticket) SetID(id uint) {
	t.id = id
}

// SetNumber assigns the ticket number once. A number already set is kept.
func (t *Ticket) SetNumber(number string) error {
	if t.number != "" {
		return errors.NewConflictError("ticket number is immutable")
	}
	if !ValidNumber(number) {
		return errors.NewValidationError("malformed ticket number", number)
	}
	t.number = number
	return nil
}

func (t *Ticket) IsOwnedBy(userID uint) bool {
	return t.requesterID == userID
}

// ChangeStatus accepts any target status. Moving into Resolved or Closed
// stamps resolvedAt; leaving those states does not clear it.
func (t *Ticket) ChangeStatus(status *catalog.Status, now time.Time) {
	t.statusID = status.ID()
	if status.IsTerminal() {
		resolved := now
		t.resolvedAt = &resolved
	}
	t.updatedAt = now
}

// ChangePriority keeps the deadlines computed at creation.
func (t *Ticket) ChangePriority(priorityID uint, now time.Time) {
	t.priorityID = priorityID
	t.updatedAt = now
}

// AssignTo sets or clears the assignee. Callers check the assignee's role.
func (t *Ticket) AssignTo(assigneeID *uint, now time.Time) {
	if assigneeID != nil {
		id := *assigneeID
		t.assigneeID = &id
	} else {
		t.assigneeID = nil
	}
	t.updatedAt = now
}

func (t *Ticket) Edit(title, description string, categoryID, priorityID uint, now time.Time) error {
	if err := validateText(title, description); err != nil {
		return err
	}
	t.title = strings.TrimSpace(title)
	t.description = strings.TrimSpace(description)
	t.categoryID = categoryID
	t.priorityID = priorityID
	t.updatedAt = now
	return nil
}

// RecordFirstResponse stamps firstResponseAt if it is still empty and reports
// whether it did.
func (t *Ticket) RecordFirstResponse(now time.Time) bool {
	if t.firstResponseAt != nil {
		return false
	}
	at := now
	t.firstResponseAt = &at
	return true
}

func (t *Ticket) Touch(now time.Time) {
	t.updatedAt = now
}

func (t *Ticket) SLAStatus(terminal bool, now time.Time) sla.Status {
	return sla.Evaluate(t.Deadlines(), t.firstResponseAt, terminal, now)
}

package ticket

import (
	"strings"
	"time"

	"helpdesk/internal/shared/errors"
)

type TimeEntry struct {
	id          uint
	ticketID    uint
	userID      uint
	description string
	minutes     int
	createdAt   time.Time
}

func NewTimeEntry(ticketID, userID uint, description string, minutes int, now time.Time) (*TimeEntry, error) {
	if minutes <= 0 {
		return nil, errors.NewValidationError("minutes must be a positive integer")
	}
	return &TimeEntry{
		ticketID:    ticketID,
		userID:      userID,
		description: strings.TrimSpace(description),
		minutes:     minutes,
		createdAt:   now,
	}, nil
}

func ReconstructTimeEntry(id, ticketID, userID uint, description string, minutes int, createdAt time.Time) *TimeEntry {
	return &TimeEntry{
		id:          id,
		ticketID:    ticketID,
		userID:      userID,
		description: description,
		minutes:     minutes,
		createdAt:   createdAt,
	}
}

func (e *TimeEntry) ID() uint             { return e.id }
func (e *TimeEntry) TicketID() uint       { return e.ticketID }
func (e *TimeEntry) UserID() uint         { return e.userID }
func (e *TimeEntry) Description() string  { return e.description }
func (e *TimeEntry) Minutes() int         { return e.minutes }
func (e *TimeEntry) CreatedAt() time.Time { return e.createdAt }

func (e *TimeEntry) SetID(id uint) {
	e.id = id
}

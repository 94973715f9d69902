package ticket

import (
	"strings"
	"time"

	"helpdesk/internal/shared/errors"
)

// Comment is append-only. Internal comments are hidden from requesters with
// the user role.
type Comment struct {
	id         uint
	ticketID   uint
	userID     uint
	content    string
	isInternal bool
	createdAt  time.Time
}

func NewComment(ticketID, userID uint, content string, isInternal bool, now time.Time) (*Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.NewValidationError("comment content is required")
	}
	return &Comment{
		ticketID:   ticketID,
		userID:     userID,
		content:    content,
		isInternal: isInternal,
		createdAt:  now,
	}, nil
}

func ReconstructComment(id, ticketID, userID uint, content string, isInternal bool, createdAt time.Time) *Comment {
	return &Comment{
		id:         id,
		ticketID:   ticketID,
		userID:     userID,
		content:    content,
		isInternal: isInternal,
		createdAt:  createdAt,
	}
}

func (c *Comment) ID() uint             { return c.id }
func (c *Comment) TicketID() uint       { return c.ticketID }
func (c *Comment) UserID() uint         { return c.userID }
func (c *Comment) Content() string      { return c.content }
func (c *Comment) IsInternal() bool     { return c.isInternal }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

func (c *Comment) SetID(id uint) {
	c.id = id
}

package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/biztime"
)

var _ ticket.NumberGenerator = (*TicketNumberGenerator)(nil)

// TicketNumberGenerator builds TKT-<YYYYMMDD>-<XXXXXXXX> from the business-day
// date and the first eight hex digits of a random UUID. Uniqueness is
// enforced by the store; callers retry on conflict.
type TicketNumberGenerator struct {
	newUUID func() uuid.UUID
}

func NewTicketNumberGenerator() *TicketNumberGenerator {
	return &TicketNumberGenerator{newUUID: uuid.New}
}

func (g *TicketNumberGenerator) Generate(now time.Time) string {
	id := g.newUUID()
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
	return fmt.Sprintf("%s-%s-%s", ticket.NumberPrefix, biztime.ToBizTimezone(now).Format("20060102"), suffix)
}

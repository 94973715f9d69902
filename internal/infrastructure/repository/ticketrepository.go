package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/mapper"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("ticket number already exists", t.Number())
		}
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	t.SetID(model.ID)
	return nil
}

// Update writes every mutable column, including a cleared assignee.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "ticket_number", "requester_id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found", fmt.Sprintf("id=%d", id))
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *TicketRepository) GetByIDs(ctx context.Context, ids []uint) ([]*ticket.Ticket, error) {
	if len(ids) == 0 {
		return []*ticket.Ticket{}, nil
	}
	var rows []*models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", ids).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get tickets: %w", err)
	}
	return mapper.MapSlice(rows, r.mapper.ToDomain), nil
}

func (r *TicketRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.TicketModel{}).Where("ticket_number = ?", number).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check ticket number: %w", err)
	}
	return count > 0, nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_id = ?", id).Delete(&models.CommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket comments: %w", err)
		}
		if err := tx.Where("ticket_id = ?", id).Delete(&models.TimeEntryModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket time entries: %w", err)
		}
		result := tx.Delete(&models.TicketModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete ticket: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("ticket not found", fmt.Sprintf("id=%d", id))
		}
		return nil
	})
}

const ticketDetailsColumns = `tickets.id, tickets.ticket_number, tickets.title, tickets.description,
	tickets.status_id, s.name AS status_name,
	tickets.priority_id, p.name AS priority_name, p.level AS priority_level, p.color AS priority_color,
	tickets.category_id, c.name AS category_name,
	tickets.requester_id, r.full_name AS requester_name,
	tickets.assignee_id, a.full_name AS assignee_name,
	tickets.created_at, tickets.updated_at, tickets.resolved_at,
	tickets.sla_response_due, tickets.sla_resolution_due, tickets.first_response_at, tickets.escalated_at`

type ticketDetailsRow struct {
	ID               uint
	TicketNumber     string
	Title            string
	Description      string
	StatusID         uint
	StatusName       string
	PriorityID       uint
	PriorityName     string
	PriorityLevel    int
	PriorityColor    string
	CategoryID       uint
	CategoryName     string
	RequesterID      uint
	RequesterName    string
	AssigneeID       *uint
	AssigneeName     *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	ResolvedAt       *time.Time `gorm:"column:resolved_at"`
	SLAResponseDue   *time.Time `gorm:"column:sla_response_due"`
	SLAResolutionDue *time.Time `gorm:"column:sla_resolution_due"`
	FirstResponseAt  *time.Time `gorm:"column:first_response_at"`
	EscalatedAt      *time.Time `gorm:"column:escalated_at"`
}

func (row ticketDetailsRow) toDetails() *ticket.Details {
	d := &ticket.Details{
		ID:               row.ID,
		Number:           row.TicketNumber,
		Title:            row.Title,
		Description:      row.Description,
		StatusID:         row.StatusID,
		StatusName:       row.StatusName,
		PriorityID:       row.PriorityID,
		PriorityName:     row.PriorityName,
		PriorityLevel:    row.PriorityLevel,
		PriorityColor:    row.PriorityColor,
		CategoryID:       row.CategoryID,
		CategoryName:     row.CategoryName,
		RequesterID:      row.RequesterID,
		RequesterName:    row.RequesterName,
		AssigneeID:       row.AssigneeID,
		CreatedAt:        row.CreatedAt.UTC(),
		UpdatedAt:        row.UpdatedAt.UTC(),
		ResolvedAt:       utc(row.ResolvedAt),
		SLAResponseDue:   utc(row.SLAResponseDue),
		SLAResolutionDue: utc(row.SLAResolutionDue),
		FirstResponseAt:  utc(row.FirstResponseAt),
		EscalatedAt:      utc(row.EscalatedAt),
	}
	if row.AssigneeName != nil {
		d.AssigneeName = *row.AssigneeName
	}
	return d
}

func (r *TicketRepository) detailsQuery(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Table("tickets").
		Select(ticketDetailsColumns).
		Joins("JOIN statuses s ON s.id = tickets.status_id").
		Joins("JOIN priorities p ON p.id = tickets.priority_id").
		Joins("JOIN categories c ON c.id = tickets.category_id").
		Joins("JOIN users r ON r.id = tickets.requester_id").
		Joins("LEFT JOIN users a ON a.id = tickets.assignee_id")
}

func (r *TicketRepository) scanDetails(q *gorm.DB) ([]*ticket.Details, error) {
	var rows []ticketDetailsRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query tickets: %w", err)
	}
	return mapper.MapSlice(rows, ticketDetailsRow.toDetails), nil
}

func (r *TicketRepository) GetDetails(ctx context.Context, id uint) (*ticket.Details, error) {
	items, err := r.scanDetails(r.detailsQuery(ctx).Where("tickets.id = ?", id).Limit(1))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.NewNotFoundError("ticket not found", fmt.Sprintf("id=%d", id))
	}
	return items[0], nil
}

// applyFilter expects statuses joined as s.
func applyFilter(q *gorm.DB, f ticket.Filter) *gorm.DB {
	if f.RequesterID != nil {
		q = q.Where("tickets.requester_id = ?", *f.RequesterID)
	}
	if f.StatusID != nil {
		q = q.Where("tickets.status_id = ?", *f.StatusID)
	}
	if f.PriorityID != nil {
		q = q.Where("tickets.priority_id = ?", *f.PriorityID)
	}
	if f.CategoryID != nil {
		q = q.Where("tickets.category_id = ?", *f.CategoryID)
	}
	if !f.ShowCompleted && f.StatusID == nil {
		q = q.Where("s.name NOT IN ?", catalog.TerminalStatusNames)
	}
	return q
}

func (r *TicketRepository) List(ctx context.Context, f ticket.Filter) ([]*ticket.Details, int64, error) {
	var total int64
	countQuery := db.GetTxFromContext(ctx, r.db).
		Table("tickets").
		Joins("JOIN statuses s ON s.id = tickets.status_id")
	if err := applyFilter(countQuery, f).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	q := applyFilter(r.detailsQuery(ctx), f).Order("tickets.created_at DESC, tickets.id DESC")
	if !f.Unpaged() {
		q = q.Offset(f.Offset()).Limit(f.Limit())
	}

	items, err := r.scanDetails(q)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *TicketRepository) Count(ctx context.Context, requesterID *uint) (int64, error) {
	var total int64
	q := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{})
	if requesterID != nil {
		q = q.Where("requester_id = ?", *requesterID)
	}
	if err := q.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return total, nil
}

func (r *TicketRepository) CountCompleted(ctx context.Context, requesterID *uint) (int64, error) {
	var total int64
	q := db.GetTxFromContext(ctx, r.db).
		Table("tickets").
		Joins("JOIN statuses s ON s.id = tickets.status_id").
		Where("s.name IN ?", catalog.TerminalStatusNames)
	if requesterID != nil {
		q = q.Where("tickets.requester_id = ?", *requesterID)
	}
	if err := q.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count completed tickets: %w", err)
	}
	return total, nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context, requesterID *uint) ([]ticket.StatusCount, error) {
	q := db.GetTxFromContext(ctx, r.db).
		Table("statuses s").
		Select("s.id AS status_id, s.name AS status_name, COUNT(t.id) AS count")
	if requesterID != nil {
		q = q.Joins("LEFT JOIN tickets t ON t.status_id = s.id AND t.requester_id = ?", *requesterID)
	} else {
		q = q.Joins("LEFT JOIN tickets t ON t.status_id = s.id")
	}

	var rows []ticket.StatusCount
	if err := q.Group("s.id, s.name").Order("s.id ASC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}
	return rows, nil
}

func (r *TicketRepository) ListSLABreaches(ctx context.Context, now time.Time) ([]*ticket.Details, error) {
	q := r.detailsQuery(ctx).
		Where(
			"(tickets.first_response_at IS NULL AND tickets.sla_response_due IS NOT NULL AND tickets.sla_response_due < ?) OR "+
				"(s.name NOT IN ? AND tickets.sla_resolution_due IS NOT NULL AND tickets.sla_resolution_due < ?)",
			now, catalog.TerminalStatusNames, now,
		).
		Order("tickets.sla_response_due ASC, tickets.sla_resolution_due ASC, tickets.id ASC")
	return r.scanDetails(q)
}

func (r *TicketRepository) Recent(ctx context.Context, requesterID *uint, limit int) ([]*ticket.Details, error) {
	q := r.detailsQuery(ctx)
	if requesterID != nil {
		q = q.Where("tickets.requester_id = ?", *requesterID)
	}
	return r.scanDetails(q.Order("tickets.created_at DESC, tickets.id DESC").Limit(limit))
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}

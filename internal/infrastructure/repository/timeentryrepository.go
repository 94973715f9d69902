package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/mapper"
)

type TimeEntryRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTimeEntryRepository(db *gorm.DB) *TimeEntryRepository {
	return &TimeEntryRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TimeEntryRepository) Create(ctx context.Context, e *ticket.TimeEntry) error {
	model := r.mapper.TimeEntryToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create time entry: %w", err)
	}
	e.SetID(model.ID)
	return nil
}

type timeEntryRow struct {
	ID           uint
	TicketID     uint
	TicketNumber string
	TicketTitle  string
	UserID       uint
	AuthorName   string
	Description  string
	MinutesSpent int
	CreatedAt    time.Time
}

func (row timeEntryRow) toView() *ticket.TimeEntryView {
	return &ticket.TimeEntryView{
		ID:           row.ID,
		TicketID:     row.TicketID,
		TicketNumber: row.TicketNumber,
		TicketTitle:  row.TicketTitle,
		UserID:       row.UserID,
		AuthorName:   row.AuthorName,
		Description:  row.Description,
		Minutes:      row.MinutesSpent,
		CreatedAt:    row.CreatedAt.UTC(),
	}
}

func (r *TimeEntryRepository) viewQuery(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Table("time_entries te").
		Select("te.id, te.ticket_id, t.ticket_number, t.title AS ticket_title, te.user_id, " +
			"u.full_name AS author_name, te.description, te.minutes_spent, te.created_at").
		Joins("JOIN tickets t ON t.id = te.ticket_id").
		Joins("JOIN users u ON u.id = te.user_id")
}

func (r *TimeEntryRepository) list(q *gorm.DB) ([]*ticket.TimeEntryView, error) {
	var rows []timeEntryRow
	if err := q.Order("te.created_at DESC, te.id DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	return mapper.MapSlice(rows, timeEntryRow.toView), nil
}

func (r *TimeEntryRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.TimeEntryView, error) {
	return r.list(r.viewQuery(ctx).Where("te.ticket_id = ?", ticketID))
}

func (r *TimeEntryRepository) ListByUser(ctx context.Context, userID uint) ([]*ticket.TimeEntryView, error) {
	return r.list(r.viewQuery(ctx).Where("te.user_id = ?", userID))
}

func (r *TimeEntryRepository) TotalMinutesByTicket(ctx context.Context, ticketID uint) (int64, error) {
	var total int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TimeEntryModel{}).
		Select("COALESCE(SUM(minutes_spent), 0)").
		Where("ticket_id = ?", ticketID).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum ticket minutes: %w", err)
	}
	return total, nil
}

func (r *TimeEntryRepository) TotalMinutesByUser(ctx context.Context, userID uint, start, end time.Time) (int64, error) {
	var total int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TimeEntryModel{}).
		Select("COALESCE(SUM(minutes_spent), 0)").
		Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, start, end).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum user minutes: %w", err)
	}
	return total, nil
}

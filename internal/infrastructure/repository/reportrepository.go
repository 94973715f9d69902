package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/report"
	"helpdesk/internal/shared/db"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

type reportTicketRow struct {
	ID               uint
	TicketNumber     string
	Title            string
	StatusID         uint
	StatusName       string
	PriorityID       uint
	PriorityName     string
	PriorityLevel    int
	CategoryName     string
	RequesterName    string
	CreatedAt        time.Time
	ResolvedAt       *time.Time `gorm:"column:resolved_at"`
	FirstResponseAt  *time.Time `gorm:"column:first_response_at"`
	SLAResponseDue   *time.Time `gorm:"column:sla_response_due"`
	SLAResolutionDue *time.Time `gorm:"column:sla_resolution_due"`
}

func (r *ReportRepository) TicketsCreatedBetween(ctx context.Context, start, end time.Time) ([]report.TicketRow, error) {
	var rows []reportTicketRow
	err := db.GetTxFromContext(ctx, r.db).
		Table("tickets").
		Select("tickets.id, tickets.ticket_number, tickets.title, "+
			"tickets.status_id, s.name AS status_name, "+
			"tickets.priority_id, p.name AS priority_name, p.level AS priority_level, "+
			"c.name AS category_name, u.full_name AS requester_name, "+
			"tickets.created_at, tickets.resolved_at, tickets.first_response_at, "+
			"tickets.sla_response_due, tickets.sla_resolution_due").
		Joins("JOIN statuses s ON s.id = tickets.status_id").
		Joins("JOIN priorities p ON p.id = tickets.priority_id").
		Joins("JOIN categories c ON c.id = tickets.category_id").
		Joins("JOIN users u ON u.id = tickets.requester_id").
		Where("tickets.created_at BETWEEN ? AND ?", start, end).
		Order("tickets.created_at DESC, tickets.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load report tickets: %w", err)
	}

	out := make([]report.TicketRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, report.TicketRow{
			ID:               row.ID,
			Number:           row.TicketNumber,
			Title:            row.Title,
			StatusID:         row.StatusID,
			StatusName:       row.StatusName,
			PriorityID:       row.PriorityID,
			PriorityName:     row.PriorityName,
			PriorityLevel:    row.PriorityLevel,
			CategoryName:     row.CategoryName,
			RequesterName:    row.RequesterName,
			CreatedAt:        row.CreatedAt.UTC(),
			ResolvedAt:       utc(row.ResolvedAt),
			FirstResponseAt:  utc(row.FirstResponseAt),
			SLAResponseDue:   utc(row.SLAResponseDue),
			SLAResolutionDue: utc(row.SLAResolutionDue),
		})
	}
	return out, nil
}

func (r *ReportRepository) TimeByUserBetween(ctx context.Context, start, end time.Time) ([]report.UserTime, error) {
	var rows []report.UserTime
	err := db.GetTxFromContext(ctx, r.db).
		Table("time_entries te").
		Select("u.id AS user_id, u.username, u.full_name, "+
			"SUM(te.minutes_spent) AS total_minutes, COUNT(DISTINCT te.ticket_id) AS ticket_count").
		Joins("JOIN users u ON u.id = te.user_id").
		Where("te.created_at BETWEEN ? AND ?", start, end).
		Group("u.id, u.username, u.full_name").
		Order("total_minutes DESC, u.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load time summary: %w", err)
	}
	return rows, nil
}

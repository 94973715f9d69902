package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/mapper"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	c.SetID(model.ID)
	return nil
}

type commentRow struct {
	ID         uint
	TicketID   uint
	UserID     uint
	AuthorName string
	AuthorRole string
	Content    string
	IsInternal bool
	CreatedAt  time.Time
}

func (r *CommentRepository) ListByTicket(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.CommentView, error) {
	q := db.GetTxFromContext(ctx, r.db).
		Table("comments").
		Select("comments.id, comments.ticket_id, comments.user_id, u.full_name AS author_name, u.role AS author_role, "+
			"comments.content, comments.is_internal, comments.created_at").
		Joins("JOIN users u ON u.id = comments.user_id").
		Where("comments.ticket_id = ?", ticketID)
	if !includeInternal {
		q = q.Where("comments.is_internal = ?", false)
	}

	var rows []commentRow
	if err := q.Order("comments.created_at ASC, comments.id ASC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return mapper.MapSlice(rows, func(row commentRow) *ticket.CommentView {
		return &ticket.CommentView{
			ID:         row.ID,
			TicketID:   row.TicketID,
			UserID:     row.UserID,
			AuthorName: row.AuthorName,
			AuthorRole: row.AuthorRole,
			Content:    row.Content,
			IsInternal: row.IsInternal,
			CreatedAt:  row.CreatedAt.UTC(),
		}
	}), nil
}

package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/knowledge"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/mapper"
)

type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Create(ctx context.Context, a *knowledge.Article) error {
	model := mappers.ArticleToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("article title already exists", a.Title())
		}
		return fmt.Errorf("failed to create article: %w", err)
	}
	a.SetID(model.ID)
	return nil
}

type articleRow struct {
	ID           uint
	Title        string
	Content      string
	CategoryID   *uint
	CategoryName *string
	Tags         string
	IsPublic     bool
	AuthorID     uint
	AuthorName   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (row articleRow) toView() *knowledge.View {
	v := &knowledge.View{
		ID:         row.ID,
		Title:      row.Title,
		Content:    row.Content,
		CategoryID: row.CategoryID,
		Tags:       row.Tags,
		IsPublic:   row.IsPublic,
		AuthorID:   row.AuthorID,
		CreatedAt:  row.CreatedAt.UTC(),
		UpdatedAt:  row.UpdatedAt.UTC(),
	}
	if row.CategoryName != nil {
		v.CategoryName = *row.CategoryName
	}
	if row.AuthorName != nil {
		v.AuthorName = *row.AuthorName
	}
	return v
}

func (r *ArticleRepository) viewQuery(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Table("knowledge_base kb").
		Select("kb.id, kb.title, kb.content, kb.category_id, c.name AS category_name, kb.tags, " +
			"kb.is_public, kb.author_id, u.full_name AS author_name, kb.created_at, kb.updated_at").
		Joins("LEFT JOIN categories c ON c.id = kb.category_id").
		Joins("LEFT JOIN users u ON u.id = kb.author_id")
}

func (r *ArticleRepository) GetView(ctx context.Context, id uint) (*knowledge.View, error) {
	var rows []articleRow
	if err := r.viewQuery(ctx).Where("kb.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.NewNotFoundError("article not found", fmt.Sprintf("id=%d", id))
	}
	return rows[0].toView(), nil
}

func (r *ArticleRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.KnowledgeArticleModel{}).
		Where("title = ?", strings.TrimSpace(title)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check article title: %w", err)
	}
	return count > 0, nil
}

func (r *ArticleRepository) Search(ctx context.Context, f knowledge.SearchFilter) ([]*knowledge.View, error) {
	q := r.viewQuery(ctx).Where("kb.is_public = ?", true)
	if term := strings.TrimSpace(f.Query); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(kb.title) LIKE ? OR LOWER(kb.content) LIKE ? OR LOWER(kb.tags) LIKE ?", like, like, like)
	}
	if f.CategoryID != nil {
		q = q.Where("kb.category_id = ?", *f.CategoryID)
	}

	var rows []articleRow
	if err := q.Order("kb.created_at DESC, kb.id DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}
	return mapper.MapSlice(rows, articleRow.toView), nil
}

// DedupTitles uses a derived table because MySQL rejects a DELETE whose
// subquery reads the same table directly.
func (r *ArticleRepository) DedupTitles(ctx context.Context) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).Exec(
		"DELETE FROM knowledge_base WHERE id NOT IN " +
			"(SELECT id FROM (SELECT MIN(id) AS id FROM knowledge_base GROUP BY title) AS keep_ids)",
	)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to dedup articles: %w", result.Error)
	}
	return result.RowsAffected, nil
}

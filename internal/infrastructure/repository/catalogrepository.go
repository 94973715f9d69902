package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/mapper"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]*catalog.Category, error) {
	var rows []models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Order(gorm.Expr("CASE WHEN name = ? THEN 1 ELSE 0 END", catalog.CategoryNameOther)).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return mapper.MapSlice(rows, mappers.CategoryToDomain), nil
}

func (r *CatalogRepository) ListPriorities(ctx context.Context) ([]*catalog.Priority, error) {
	var rows []models.PriorityModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("level ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list priorities: %w", err)
	}
	return mapper.MapSlice(rows, mappers.PriorityToDomain), nil
}

func (r *CatalogRepository) ListStatuses(ctx context.Context) ([]*catalog.Status, error) {
	var rows []models.StatusModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}
	return mapper.MapSlice(rows, mappers.StatusToDomain), nil
}

func (r *CatalogRepository) GetCategory(ctx context.Context, id uint) (*catalog.Category, error) {
	var row models.CategoryModel
	if err := r.first(ctx, &row, "category", "id = ?", id); err != nil {
		return nil, err
	}
	return mappers.CategoryToDomain(row), nil
}

func (r *CatalogRepository) GetPriority(ctx context.Context, id uint) (*catalog.Priority, error) {
	var row models.PriorityModel
	if err := r.first(ctx, &row, "priority", "id = ?", id); err != nil {
		return nil, err
	}
	return mappers.PriorityToDomain(row), nil
}

func (r *CatalogRepository) GetStatus(ctx context.Context, id uint) (*catalog.Status, error) {
	var row models.StatusModel
	if err := r.first(ctx, &row, "status", "id = ?", id); err != nil {
		return nil, err
	}
	return mappers.StatusToDomain(row), nil
}

func (r *CatalogRepository) GetStatusByName(ctx context.Context, name string) (*catalog.Status, error) {
	var row models.StatusModel
	if err := r.first(ctx, &row, "status", "name = ?", name); err != nil {
		return nil, err
	}
	return mappers.StatusToDomain(row), nil
}

func (r *CatalogRepository) first(ctx context.Context, dest interface{}, entity string, cond string, arg interface{}) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(cond, arg).First(dest).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NewNotFoundError(entity + " not found")
		}
		return fmt.Errorf("failed to get %s: %w", entity, err)
	}
	return nil
}

package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/mapper"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := mappers.UserToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("username or email already exists")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	u.SetID(model.ID)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.UserModel{}).
		Where("id = ?", u.ID()).
		Updates(map[string]interface{}{
			"username":      u.Username(),
			"password_hash": u.PasswordHash(),
			"email":         u.Email(),
			"full_name":     u.FullName(),
			"role":          u.Role().String(),
			"department":    u.Department(),
		})
	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.NewConflictError("username or email already exists")
		}
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.UserModel{}, id)
	if result.Error != nil {
		if errors.IsForeignKeyError(result.Error) {
			return errors.NewConflictError("user is still referenced by tickets, comments or time entries")
		}
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("user not found")
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return mappers.UserToDomain(&model)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("username = ?", username).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return mappers.UserToDomain(&model)
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string, excludeID uint) (bool, error) {
	return r.exists(ctx, "username = ?", strings.TrimSpace(username), excludeID)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	return r.exists(ctx, "email = ?", strings.ToLower(strings.TrimSpace(email)), excludeID)
}

func (r *UserRepository) exists(ctx context.Context, cond string, value string, excludeID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	q := tx.Model(&models.UserModel{}).Where(cond, value)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Order("created_at ASC, id ASC")
	})
}

func (r *UserRepository) ListStaff(ctx context.Context) ([]*user.User, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("role IN ?", []string{
			authorization.RoleAdmin.String(),
			authorization.RoleITStaff.String(),
		}).Order("full_name ASC, id ASC")
	})
}

func (r *UserRepository) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*user.User, error) {
	var rows []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := scope(tx.Model(&models.UserModel{})).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return mapper.MapSliceWithError(rows, func(m models.UserModel) (*user.User, error) {
		return mappers.UserToDomain(&m)
	})
}

func (r *UserRepository) HasReferences(ctx context.Context, id uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	checks := []struct {
		model interface{}
		where string
		args  []interface{}
	}{
		{&models.TicketModel{}, "requester_id = ? OR assignee_id = ?", []interface{}{id, id}},
		{&models.TimeEntryModel{}, "user_id = ?", []interface{}{id}},
		{&models.CommentModel{}, "user_id = ?", []interface{}{id}},
		{&models.KnowledgeArticleModel{}, "author_id = ?", []interface{}{id}},
	}

	for _, c := range checks {
		var count int64
		if err := tx.Model(c.model).Where(c.where, c.args...).Count(&count).Error; err != nil {
			return false, fmt.Errorf("failed to check user references: %w", err)
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}

type userCountRow struct {
	UserID uint
	Count  int64
}

func (r *UserRepository) GetStats(ctx context.Context, ids []uint) (map[uint]user.Stats, error) {
	stats := make(map[uint]user.Stats, len(ids))
	if len(ids) == 0 {
		return stats, nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	count := func(model interface{}, column string) ([]userCountRow, error) {
		var rows []userCountRow
		err := tx.Model(model).
			Select(column+" AS user_id, COUNT(*) AS count").
			Where(column+" IN ?", ids).
			Group(column).
			Scan(&rows).Error
		return rows, err
	}

	created, err := count(&models.TicketModel{}, "requester_id")
	if err != nil {
		return nil, fmt.Errorf("failed to count created tickets: %w", err)
	}
	assigned, err := count(&models.TicketModel{}, "assignee_id")
	if err != nil {
		return nil, fmt.Errorf("failed to count assigned tickets: %w", err)
	}
	entries, err := count(&models.TimeEntryModel{}, "user_id")
	if err != nil {
		return nil, fmt.Errorf("failed to count time entries: %w", err)
	}

	for _, id := range ids {
		stats[id] = user.Stats{}
	}
	for _, row := range created {
		s := stats[row.UserID]
		s.TicketsCreated = row.Count
		stats[row.UserID] = s
	}
	for _, row := range assigned {
		s := stats[row.UserID]
		s.TicketsAssigned = row.Count
		stats[row.UserID] = s
	}
	for _, row := range entries {
		s := stats[row.UserID]
		s.TimeEntries = row.Count
		stats[row.UserID] = s
	}
	return stats, nil
}

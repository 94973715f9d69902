package migration

import (
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/logger"
)

// Models lists every table in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CategoryModel{},
		&models.PriorityModel{},
		&models.StatusModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.TimeEntryModel{},
		&models.KnowledgeArticleModel{},
	}
}

// GormAutoMigrateStrategy builds tables from the gorm models. It does not
// create foreign keys; the SQL scripts do.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{logger: log.With("component", "migration.automigrate")}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	s.logger.Infow("starting gorm auto-migration", "models_count", len(Models()))
	if err := db.AutoMigrate(Models()...); err != nil {
		s.logger.Errorw("auto-migration failed", "error", err)
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_automigrate"
}

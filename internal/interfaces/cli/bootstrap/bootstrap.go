// Package bootstrap holds the startup steps shared by the CLI commands.
package bootstrap

import (
	"context"
	"fmt"
	"os"

	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/permission"
	"helpdesk/internal/infrastructure/persistence/seeds"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/logger"
)

// ResolveEnv lets the ENV variable override the --env flag.
func ResolveEnv(flagValue string) string {
	if envVar := os.Getenv("ENV"); envVar != "" {
		return envVar
	}
	return flagValue
}

// Init loads configuration and sets up logging and the business timezone.
func Init(env string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// Seed stores the default role policies and the reference data. Both steps
// skip rows that already exist.
func Seed(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) error {
	enforcer, err := permission.NewEnforcer(db, log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := enforcer.EnsurePolicies(permission.DefaultPolicies()); err != nil {
		return fmt.Errorf("failed to seed policies: %w", err)
	}

	hasher := auth.NewPasswordHasher(cfg.Auth.Password)
	seeder := seeds.NewSeeder(db, hasher, repository.NewArticleRepository(db), log)
	if err := seeder.Run(ctx); err != nil {
		return fmt.Errorf("failed to seed data: %w", err)
	}
	return nil
}

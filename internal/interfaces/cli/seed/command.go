package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/interfaces/cli/bootstrap"
	"helpdesk/internal/shared/constants"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed role policies, reference data and bootstrap accounts",
		Long:  `Insert categories, priorities, statuses, default accounts and sample articles. Existing rows are left untouched.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Init(bootstrap.ResolveEnv(env))
	if err != nil {
		return err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := bootstrap.Seed(cmd.Context(), database.Get(), cfg, log); err != nil {
		return err
	}

	log.Infow("seeding completed")
	return nil
}

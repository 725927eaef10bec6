package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/deskhub/deskhub/internal/infrastructure/auth"
	"github.com/deskhub/deskhub/internal/infrastructure/config"
	"github.com/deskhub/deskhub/internal/infrastructure/database"
	infrapermission "github.com/deskhub/deskhub/internal/infrastructure/permission"
	"github.com/deskhub/deskhub/internal/infrastructure/persistence/seeds"
	"github.com/deskhub/deskhub/internal/infrastructure/repository"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

var (
	env      string
	seedFile string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data",
		Long: `Create ticket categories and priorities, knowledge base categories and the
bootstrap admin account. Existing rows are left untouched, so the command can
be run repeatedly. DESKHUB_BOOTSTRAP_ADMIN_PASSWORD overrides the admin
password from the seed file.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&seedFile, "file", "f", "", "Seed YAML file (default: built-in seed data)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if seedFile != "" {
		cfg.Seed.File = seedFile
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	db := database.Get()

	enforcer, err := infrapermission.NewEnforcer(db, log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := infrapermission.SeedDefaultPolicies(enforcer, log); err != nil {
		return fmt.Errorf("failed to seed default permissions: %w", err)
	}

	return Apply(cmd.Context(), cfg, db, log)
}

// Apply loads cfg.Seed.File (or the built-in data) and writes it to db.
func Apply(ctx context.Context, cfg *config.Config, db *gorm.DB, log logger.Interface) error {
	data, err := seeds.Load(cfg.Seed.File)
	if err != nil {
		return err
	}

	seeder := seeds.NewSeeder(
		repository.NewTicketLookupRepository(db),
		repository.NewKBCategoryRepository(db),
		repository.NewUserRepository(db, log),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		log,
	)
	if err := seeder.Run(ctx, data); err != nil {
		return fmt.Errorf("failed to apply seeds: %w", err)
	}
	log.Infow("seed data applied", "file", cfg.Seed.File)
	return nil
}

package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/corycamp/support-ticket-backend/internal/infrastructure/database"
	"github.com/corycamp/support-ticket-backend/internal/infrastructure/migration"
	"github.com/corycamp/support-ticket-backend/internal/interfaces/cli"
	"github.com/corycamp/support-ticket-backend/internal/shared/logger"
)

var (
	env        string
	configPath string
	name       string
	steps      int
	scriptsDir string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations. Requires the goose or golang_migrate strategy.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create goose and golang-migrate script files with the given name.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration in snake_case (required)")
	cmd.Flags().StringVar(&scriptsDir, "scripts", "./internal/infrastructure/migration/scripts", "Directory holding the goose/ and migrate/ scripts")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// openDatabase loads config and returns the connection with the migration
// manager for its configured strategy.
func openDatabase() (*gorm.DB, *migration.Manager, logger.Interface, error) {
	cfg, log, err := cli.Bootstrap(env, configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	gdb, err := database.Open(&cfg.Database, log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	mgr, err := migration.NewManager(&cfg.Database, log)
	if err != nil {
		closeDB(gdb)
		return nil, nil, nil, err
	}

	return gdb, mgr, log, nil
}

func closeDB(gdb *gorm.DB) {
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	gdb, mgr, log, err := openDatabase()
	if err != nil {
		return err
	}
	defer closeDB(gdb)

	log.Infow("running up migrations", "strategy", mgr.Strategy().GetName())
	if err := mgr.Migrate(gdb); err != nil {
		return err
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	gdb, mgr, log, err := openDatabase()
	if err != nil {
		return err
	}
	defer closeDB(gdb)

	log.Infow("running down migrations", "strategy", mgr.Strategy().GetName(), "steps", steps)
	if err := mgr.Down(gdb, steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	gdb, mgr, log, err := openDatabase()
	if err != nil {
		return err
	}
	defer closeDB(gdb)

	version, err := mgr.Version(gdb)
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Strategy:        %s\n", mgr.Strategy().GetName())
	if version < 0 {
		fmt.Fprintf(out, "  Current Version: n/a (schema derived from models)\n")
		return nil
	}
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if goose, ok := mgr.Strategy().(*migration.GooseStrategy); ok {
		if err := goose.Status(gdb); err != nil {
			log.Errorw("failed to get detailed status", "error", err)
			return fmt.Errorf("failed to get detailed status: %w", err)
		}
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	dir, err := filepath.Abs(scriptsDir)
	if err != nil {
		return fmt.Errorf("failed to get scripts path: %w", err)
	}

	log := logger.NewLogger()
	log.Infow("creating new migration", "name", name)

	files, err := migration.NewGenerator(dir, log).CreateMigration(name)
	if err != nil {
		log.Errorw("failed to create migration", "error", err)
		return fmt.Errorf("failed to create migration: %w", err)
	}

	for _, f := range files {
		fmt.Fprintln(cmd.OutOrStdout(), f)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created successfully\n", name)
	return nil
}

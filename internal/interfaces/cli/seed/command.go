package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corycamp/support-ticket-backend/internal/application"
	seedapp "github.com/corycamp/support-ticket-backend/internal/application/seed"
	"github.com/corycamp/support-ticket-backend/internal/infrastructure/storage"
	"github.com/corycamp/support-ticket-backend/internal/interfaces/cli"
	sharedConfig "github.com/corycamp/support-ticket-backend/internal/shared/config"
	"github.com/corycamp/support-ticket-backend/internal/shared/db"
)

var (
	env        string
	configPath string
	file       string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load fixture data",
		Long:  `Create the users, tickets and comments listed in a YAML fixture file. Users that already exist are skipped.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&file, "file", "f", "./configs/seeds.yaml", "Fixture file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := cli.Bootstrap(env, configPath)
	if err != nil {
		return err
	}

	if !cfg.Storage.UsesDatabase() {
		return fmt.Errorf("seeding needs storage.backend=%s; in-memory data would be lost on exit", sharedConfig.BackendDatabase)
	}

	fixture, err := seedapp.LoadFile(file)
	if err != nil {
		return err
	}

	// Seeding never falls back to memory.
	storageCfg := cfg.Storage
	storageCfg.FallbackToMemory = false
	backend, err := storage.Open(storageCfg, &cfg.Database, log, storage.Options{AutoMigrate: true})
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer backend.Close()

	services := application.NewServices(application.Stores{
		Tickets:  backend.Tickets,
		Comments: backend.Comments,
		Users:    backend.Users,
	}, log, application.Options{})

	summary, err := seedapp.Apply(cmd.Context(), services, fixture, log,
		seedapp.WithTransactor(db.NewTransactionManager(backend.DB)))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d users (%d skipped), %d tickets, %d comments\n",
		summary.Users, summary.SkippedUsers, summary.Tickets, summary.Comments)
	return nil
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/corycamp/support-ticket-backend/internal/interfaces/cli/hashpassword"
	"github.com/corycamp/support-ticket-backend/internal/interfaces/cli/migrate"
	"github.com/corycamp/support-ticket-backend/internal/interfaces/cli/seed"
	"github.com/corycamp/support-ticket-backend/internal/interfaces/cli/server"
	"github.com/corycamp/support-ticket-backend/internal/shared/version"
)

// @title Support Ticket Backend API
// @version 1.0
// @description Tickets, comments and users of a support desk.
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:     "supportdesk",
		Short:   "Support desk ticket backend",
		Long:    `supportdesk serves the ticket, comment and user API and ships the migration, seeding and account tooling around it.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		hashpassword.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

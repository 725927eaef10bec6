package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/deskhub/deskhub/internal/interfaces/cli/migrate"
	"github.com/deskhub/deskhub/internal/interfaces/cli/seed"
	"github.com/deskhub/deskhub/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "deskhub",
		Short: "DeskHub - IT helpdesk API",
		Long:  `DeskHub serves the helpdesk API (tickets, assets, knowledge base, users) and ships migration and seed tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

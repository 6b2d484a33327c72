package main

import (
	"os"

	"github.com/spf13/cobra"

	"ticketd/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ticketd",
		Short: "Ticketd - ticket tracking backend",
		Long:  `Ticketd is a ticket tracking backend with users, roles, and dynamic ticket fields.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/epic-events/epicrm/internal/monitoring"
)

// Version is set via ldflags at build time
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "epicrm",
	Short: "EpiCRM - CRM command-line tool for Epic Events staff",
	Long: `EpiCRM manages clients, contracts, and events for Epic Events.

Every mutating command requires a logged-in user whose role grants
the matching permission. Sales and support staff can only modify the
records they are the assigned contact for.`,
	Example: `  # First run: create the schema, seed roles, add the first admin
  epicrm init

  # Authenticate, then work with records
  epicrm login
  epicrm client create
  epicrm contract list --unsigned
  epicrm event list --mine`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: "session", Title: "Session Commands:"},
		&cobra.Group{ID: "records", Title: "Record Commands:"},
		&cobra.Group{ID: "admin", Title: "Admin Commands:"},
	)

	loginCmd.GroupID = "session"
	logoutCmd.GroupID = "session"
	whoamiCmd.GroupID = "session"

	clientCmd.GroupID = "records"
	contractCmd.GroupID = "records"
	eventCmd.GroupID = "records"

	initCmd.GroupID = "admin"
	userCmd.GroupID = "admin"
	roleCmd.GroupID = "admin"

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(roleCmd)
	rootCmd.AddCommand(clientCmd)
	rootCmd.AddCommand(contractCmd)
	rootCmd.AddCommand(eventCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		monitoring.CaptureError(err)
	}
	monitoring.Flush()
	if err != nil {
		os.Exit(1)
	}
}

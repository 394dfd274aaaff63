package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/epic-events/epicrm/internal/auth"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	Long: `Deletes the locally stored session credential. Logout is advisory:
an already-issued credential stays valid until it expires, but it is
no longer presented by this machine.`,
	Args: cobra.NoArgs,
	RunE: runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	// Distinguish "nothing to clear" for the message only; clearing
	// an absent slot is not an error.
	_, loadErr := a.sessions.Load()
	if err := a.sessions.Clear(); err != nil {
		return err
	}
	if errors.Is(loadErr, auth.ErrNoSession) {
		fmt.Fprintln(os.Stderr, "No active session.")
		return nil
	}
	fmt.Fprintln(os.Stderr, "Logged out.")
	return nil
}

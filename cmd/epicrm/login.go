package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/epic-events/epicrm/internal/auth"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and start a session",
	Long: `Prompts for email and password, verifies them against the user
store, and saves a signed session credential locally. Subsequent
commands present the credential implicitly until it expires or
'epicrm logout' clears it.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	email, err := readLine("Email")
	if err != nil {
		return err
	}
	password, err := readPassword("Password")
	if err != nil {
		return err
	}

	user, err := a.store.FindUserByEmail(email)
	if err != nil {
		return err
	}
	if user == nil || !auth.VerifyPassword(user.PasswordHash, password) {
		slog.Warn("Failed login attempt", "email", email)
		return auth.ErrInvalidCredentials
	}

	token, err := a.codec.Issue(user.ID, user.RoleName())
	if err != nil {
		return err
	}
	if err := a.sessions.Save(token); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Logged in as %s (%s)\n", user.Name, user.RoleName())
	return nil
}

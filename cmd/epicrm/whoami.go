package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current identity and its permissions",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func runWhoami(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	actor, err := a.requireIdentity()
	if err != nil {
		return err
	}

	perms, err := a.enforcer.PermissionsFor(actor.RoleName())
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "User:        %s <%s> (id %d)\n", actor.Name, actor.Email, actor.ID)
	fmt.Fprintf(os.Stdout, "Role:        %s\n", actor.RoleName())
	fmt.Fprintf(os.Stdout, "Permissions: %s\n", strings.Join(perms, ", "))
	return nil
}

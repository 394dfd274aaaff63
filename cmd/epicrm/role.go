package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var roleCmd = &cobra.Command{
	Use:   "role",
	Short: "Inspect roles and their permissions",
}

var roleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List roles",
	Args:  cobra.NoArgs,
	RunE:  runRoleList,
}

var roleReadCmd = &cobra.Command{
	Use:   "read <name>",
	Short: "Show a role and its permissions",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoleRead,
}

func init() {
	roleCmd.AddCommand(roleListCmd)
	roleCmd.AddCommand(roleReadCmd)
}

func runRoleList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	actor, err := a.requireIdentity()
	if err != nil {
		return err
	}
	if err := a.authorize(actor, "role-list", nil); err != nil {
		return err
	}

	roles, err := a.store.ListRoles()
	if err != nil {
		return err
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tNAME")
	for _, r := range roles {
		fmt.Fprintf(w, "%d\t%s\n", r.ID, r.Name)
	}
	return w.Flush()
}

func runRoleRead(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	actor, err := a.requireIdentity()
	if err != nil {
		return err
	}
	if err := a.authorize(actor, "role-read", nil); err != nil {
		return err
	}

	role, err := a.store.GetRoleByName(args[0])
	if err != nil {
		return fmt.Errorf("role %q does not exist", args[0])
	}

	perms, err := a.enforcer.PermissionsFor(role.Name)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Role:        %s (id %d)\n", role.Name, role.ID)
	fmt.Fprintf(os.Stdout, "Permissions: %s\n", strings.Join(perms, ", "))
	return nil
}

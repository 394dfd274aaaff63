package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/epic-events/epicrm/internal/auth"
	"github.com/epic-events/epicrm/internal/models"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the schema and seed roles and permissions",
	Long: `Creates the database schema, seeds the four roles (admin, sales,
support, super_admin), the permission set, and the role→permission
matrix, then offers to create the first super_admin user.

Safe to re-run: existing rows are left untouched.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.store.Seed(); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "Roles and permissions seeded.")

	users, err := a.store.ListUsers()
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	fmt.Fprintln(os.Stderr, "No users exist yet; create the first super_admin.")
	name, err := readLine("Name")
	if err != nil {
		return err
	}
	email, err := readLine("Email")
	if err != nil {
		return err
	}
	password, err := readPassword("Password")
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	role, err := a.store.GetRoleByName(models.RoleSuperAdmin)
	if err != nil {
		return err
	}
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		RoleID:       role.ID,
	}
	if err := a.store.CreateUser(user); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created %s <%s> with role %s.\n", user.Name, user.Email, models.RoleSuperAdmin)
	return nil
}

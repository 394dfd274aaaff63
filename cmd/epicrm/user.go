package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/epic-events/epicrm/internal/auth"
	"github.com/epic-events/epicrm/internal/models"
	"github.com/epic-events/epicrm/internal/rbac"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage staff users",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	Args:  cobra.NoArgs,
	RunE:  runUserCreate,
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	Args:  cobra.NoArgs,
	RunE:  runUserList,
}

var userReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Show a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserRead,
}

var userUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserUpdate,
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserDelete,
}

var userPasswdCmd = &cobra.Command{
	Use:   "passwd [id]",
	Short: "Change a password (your own without an id)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runUserPasswd,
}

func init() {
	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userReadCmd)
	userCmd.AddCommand(userUpdateCmd)
	userCmd.AddCommand(userDeleteCmd)
	userCmd.AddCommand(userPasswdCmd)
}

func runUserCreate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	actor, err := a.requireIdentity()
	if err != nil {
		return err
	}
	if err := a.authorize(actor, "user-create", nil); err != nil {
		return err
	}

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
	roleName, err := readLine("Role (admin, sales, support, super_admin)")
	if err != nil {
		return err
	}
	role, err := a.store.GetRoleByName(roleName)
	if err != nil {
		return fmt.Errorf("role %q does not exist", roleName)
	}

	hash, err := auth.HashPassword(password)
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
	fmt.Fprintf(os.Stderr, "User %s created (id %d, role %s).\n", user.Name, user.ID, role.Name)
	return nil
}

func runUserList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	actor, err := a.requireIdentity()
	if err != nil {
		return err
	}
	if err := a.authorize(actor, "user-list", nil); err != nil {
		return err
	}

	users, err := a.store.ListUsers()
	if err != nil {
		return err
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role.Name)
	}
	return w.Flush()
}

func runUserRead(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	actor, err := a.requireIdentity()
	if err != nil {
		return err
	}
	if err := a.authorize(actor, "user-read", nil); err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	user, err := a.store.GetUser(id)
	if err != nil {
		return wrapNotFound(err, "user", id)
	}

	fmt.Fprintf(os.Stdout, "User:  %s (id %d)\n", user.Name, user.ID)
	fmt.Fprintf(os.Stdout, "Email: %s\n", user.Email)
	fmt.Fprintf(os.Stdout, "Role:  %s\n", user.RoleName())
	return nil
}

func runUserUpdate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	actor, err := a.requireIdentity()
	if err != nil {
		return err
	}
	if err := a.authorize(actor, "user-update", nil); err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	user, err := a.store.GetUser(id)
	if err != nil {
		return wrapNotFound(err, "user", id)
	}

	if user.Name, err = readLineDefault("Name", user.Name); err != nil {
		return err
	}
	if user.Email, err = readLineDefault("Email", user.Email); err != nil {
		return err
	}
	roleName, err := readLineDefault("Role", user.RoleName())
	if err != nil {
		return err
	}
	if roleName != user.RoleName() {
		role, err := a.store.GetRoleByName(roleName)
		if err != nil {
			return fmt.Errorf("role %q does not exist", roleName)
		}
		user.RoleID = role.ID
		user.Role = *role
	}

	if err := a.store.SaveUser(user); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "User %s updated.\n", user.Name)
	return nil
}

func runUserDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	actor, err := a.requireIdentity()
	if err != nil {
		return err
	}
	if err := a.authorize(actor, "user-delete", nil); err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	user, err := a.store.GetUser(id)
	if err != nil {
		return wrapNotFound(err, "user", id)
	}

	if err := a.store.DeleteUser(id); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "User %s deleted.\n", user.Name)
	return nil
}

func runUserPasswd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	actor, err := a.requireIdentity()
	if err != nil {
		return err
	}

	// Without an id the actor targets themselves; every role holds
	// user-password, but non-privileged actors may only change their
	// own.
	target := actor
	if len(args) == 1 {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if target, err = a.store.GetUser(id); err != nil {
			return wrapNotFound(err, "user", id)
		}
	}

	if err := a.authorize(actor, "user-password", rbac.SelfOrPrivileged(target)); err != nil {
		return err
	}

	password, err := readPassword("New password")
	if err != nil {
		return err
	}
	confirm, err := readPassword("Confirm password")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	target.PasswordHash = hash
	if err := a.store.SaveUser(target); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Password updated for %s.\n", target.Name)
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/epic-events/epicrm/internal/models"
	"github.com/epic-events/epicrm/internal/rbac"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage clients",
}

var clientListMine bool

var clientCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a client",
	Args:  cobra.NoArgs,
	RunE:  runClientCreate,
}

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients",
	Args:  cobra.NoArgs,
	RunE:  runClientList,
}

var clientReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Show a client",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientRead,
}

var clientUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a client",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientUpdate,
}

var clientDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a client",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientDelete,
}

func init() {
	clientListCmd.Flags().BoolVar(&clientListMine, "mine", false, "only clients you are the sales contact for")
	clientCmd.AddCommand(clientCreateCmd)
	clientCmd.AddCommand(clientListCmd)
	clientCmd.AddCommand(clientReadCmd)
	clientCmd.AddCommand(clientUpdateCmd)
	clientCmd.AddCommand(clientDeleteCmd)
}

func runClientCreate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	actor, err := a.requireIdentity()
	if err != nil {
		return err
	}
	if err := a.authorize(actor, "client-create", nil); err != nil {
		return err
	}

	name, err := readLine("Client name")
	if err != nil {
		return err
	}
	email, err := readLine("Client email")
	if err != nil {
		return err
	}
	phone, err := readLine("Client phone")
	if err != nil {
		return err
	}
	company, err := readLine("Client company")
	if err != nil {
		return err
	}

	// Sales staff become the contact themselves; privileged roles
	// may assign any rep.
	salesContactID := actor.ID
	if models.IsPrivileged(actor.RoleName()) {
		salesContactID, err = readUint("Sales contact ID")
		if err != nil {
			return err
		}
		if _, err := a.store.GetUser(salesContactID); err != nil {
			return wrapNotFound(err, "user", salesContactID)
		}
	}

	client := &models.Client{
		Name:           name,
		Email:          email,
		Phone:          phone,
		Company:        company,
		SalesContactID: salesContactID,
	}
	if err := a.store.CreateClient(client); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Client %s created (id %d).\n", client.Name, client.ID)
	return nil
}

func runClientList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	actor, err := a.requireIdentity()
	if err != nil {
		return err
	}
	if err := a.authorize(actor, "client-list", nil); err != nil {
		return err
	}

	var mine uint
	if clientListMine {
		mine = actor.ID
	}
	clients, err := a.store.ListClients(mine)
	if err != nil {
		return err
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCOMPANY\tSALES CONTACT")
	for _, c := range clients {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.Company, c.SalesContact.Name)
	}
	return w.Flush()
}

func runClientRead(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	actor, err := a.requireIdentity()
	if err != nil {
		return err
	}
	if err := a.authorize(actor, "client-read", nil); err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	client, err := a.store.GetClient(id)
	if err != nil {
		return wrapNotFound(err, "client", id)
	}

	fmt.Fprintf(os.Stdout, "Client:        %s (id %d)\n", client.Name, client.ID)
	fmt.Fprintf(os.Stdout, "Email:         %s\n", client.Email)
	fmt.Fprintf(os.Stdout, "Phone:         %s\n", client.Phone)
	fmt.Fprintf(os.Stdout, "Company:       %s\n", client.Company)
	fmt.Fprintf(os.Stdout, "Sales contact: %s (id %d)\n", client.SalesContact.Name, client.SalesContactID)
	fmt.Fprintf(os.Stdout, "Created:       %s\n", client.CreatedAt.Format(timeLayout))
	return nil
}

func runClientUpdate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	actor, err := a.requireIdentity()
	if err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	client, err := a.store.GetClient(id)
	if err != nil {
		return wrapNotFound(err, "client", id)
	}

	if err := a.authorize(actor, "client-update", rbac.ClientOwnership(client)); err != nil {
		return err
	}

	if client.Name, err = readLineDefault("Client name", client.Name); err != nil {
		return err
	}
	if client.Email, err = readLineDefault("Client email", client.Email); err != nil {
		return err
	}
	if client.Phone, err = readLineDefault("Client phone", client.Phone); err != nil {
		return err
	}
	if client.Company, err = readLineDefault("Client company", client.Company); err != nil {
		return err
	}

	if err := a.store.SaveClient(client); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Client %s updated.\n", client.Name)
	return nil
}

func runClientDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	actor, err := a.requireIdentity()
	if err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	client, err := a.store.GetClient(id)
	if err != nil {
		return wrapNotFound(err, "client", id)
	}

	if err := a.authorize(actor, "client-delete", rbac.ClientOwnership(client)); err != nil {
		return err
	}

	if err := a.store.DeleteClient(id); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Client %s deleted.\n", client.Name)
	return nil
}

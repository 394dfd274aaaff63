package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/epic-events/epicrm/internal/models"
	"github.com/epic-events/epicrm/internal/rbac"
	"github.com/epic-events/epicrm/internal/store"
)

var contractCmd = &cobra.Command{
	Use:   "contract",
	Short: "Manage contracts",
}

var (
	contractListMine     bool
	contractListUnsigned bool
	contractListUnpaid   bool
)

var contractCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a contract",
	Args:  cobra.NoArgs,
	RunE:  runContractCreate,
}

var contractListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contracts",
	Args:  cobra.NoArgs,
	RunE:  runContractList,
}

var contractReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Show a contract",
	Args:  cobra.ExactArgs(1),
	RunE:  runContractRead,
}

var contractUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a contract",
	Args:  cobra.ExactArgs(1),
	RunE:  runContractUpdate,
}

var contractDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a contract",
	Args:  cobra.ExactArgs(1),
	RunE:  runContractDelete,
}

func init() {
	contractListCmd.Flags().BoolVar(&contractListMine, "mine", false, "only contracts of your clients")
	contractListCmd.Flags().BoolVar(&contractListUnsigned, "unsigned", false, "only unsigned contracts")
	contractListCmd.Flags().BoolVar(&contractListUnpaid, "unpaid", false, "only contracts with an outstanding amount")
	contractCmd.AddCommand(contractCreateCmd)
	contractCmd.AddCommand(contractListCmd)
	contractCmd.AddCommand(contractReadCmd)
	contractCmd.AddCommand(contractUpdateCmd)
	contractCmd.AddCommand(contractDeleteCmd)
}

func runContractCreate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	actor, err := a.requireIdentity()
	if err != nil {
		return err
	}
	if err := a.authorize(actor, "contract-create", nil); err != nil {
		return err
	}

	name, err := readLine("Contract name")
	if err != nil {
		return err
	}
	clientID, err := readUint("Client ID")
	if err != nil {
		return err
	}
	client, err := a.store.GetClient(clientID)
	if err != nil {
		return wrapNotFound(err, "client", clientID)
	}
	total, err := readFloat("Total amount")
	if err != nil {
		return err
	}
	due, err := readFloat("Due amount")
	if err != nil {
		return err
	}
	signed, err := readBool("Signed")
	if err != nil {
		return err
	}

	contract := &models.Contract{
		Name:        name,
		ClientID:    client.ID,
		TotalAmount: total,
		DueAmount:   due,
		Signed:      signed,
	}
	if err := a.store.CreateContract(contract); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Contract %s created (id %d).\n", contract.Name, contract.ID)
	return nil
}

func runContractList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	actor, err := a.requireIdentity()
	if err != nil {
		return err
	}
	if err := a.authorize(actor, "contract-list", nil); err != nil {
		return err
	}

	filter := store.ContractFilter{
		Unsigned: contractListUnsigned,
		Unpaid:   contractListUnpaid,
	}
	if contractListMine {
		filter.SalesContactID = actor.ID
	}
	contracts, err := a.store.ListContracts(filter)
	if err != nil {
		return err
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tCLIENT\tTOTAL\tDUE\tSIGNED")
	for _, c := range contracts {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%.2f\t%s\n",
			c.ID, c.Name, c.Client.Name, c.TotalAmount, c.DueAmount, strconv.FormatBool(c.Signed))
	}
	return w.Flush()
}

func runContractRead(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	actor, err := a.requireIdentity()
	if err != nil {
		return err
	}
	if err := a.authorize(actor, "contract-read", nil); err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	contract, err := a.store.GetContract(id)
	if err != nil {
		return wrapNotFound(err, "contract", id)
	}

	fmt.Fprintf(os.Stdout, "Contract:      %s (id %d)\n", contract.Name, contract.ID)
	fmt.Fprintf(os.Stdout, "Client:        %s (id %d)\n", contract.Client.Name, contract.ClientID)
	fmt.Fprintf(os.Stdout, "Sales contact: %s (id %d)\n", contract.Client.SalesContact.Name, contract.Client.SalesContactID)
	fmt.Fprintf(os.Stdout, "Total amount:  %.2f\n", contract.TotalAmount)
	fmt.Fprintf(os.Stdout, "Due amount:    %.2f\n", contract.DueAmount)
	fmt.Fprintf(os.Stdout, "Signed:        %t\n", contract.Signed)
	return nil
}

func runContractUpdate(cmd *cobra.Command, args []string) error {
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
	contract, err := a.store.GetContract(id)
	if err != nil {
		return wrapNotFound(err, "contract", id)
	}

	if err := a.authorize(actor, "contract-update", rbac.ContractOwnership(contract)); err != nil {
		return err
	}

	if contract.Name, err = readLineDefault("Contract name", contract.Name); err != nil {
		return err
	}
	totalStr, err := readLineDefault("Total amount", strconv.FormatFloat(contract.TotalAmount, 'f', 2, 64))
	if err != nil {
		return err
	}
	if contract.TotalAmount, err = strconv.ParseFloat(totalStr, 64); err != nil {
		return fmt.Errorf("total amount must be a number")
	}
	dueStr, err := readLineDefault("Due amount", strconv.FormatFloat(contract.DueAmount, 'f', 2, 64))
	if err != nil {
		return err
	}
	if contract.DueAmount, err = strconv.ParseFloat(dueStr, 64); err != nil {
		return fmt.Errorf("due amount must be a number")
	}
	signedStr, err := readLineDefault("Signed (y/n)", strconv.FormatBool(contract.Signed))
	if err != nil {
		return err
	}
	switch signedStr {
	case "y", "yes", "true":
		contract.Signed = true
	case "n", "no", "false":
		contract.Signed = false
	}

	if err := a.store.SaveContract(contract); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Contract %s updated.\n", contract.Name)
	return nil
}

func runContractDelete(cmd *cobra.Command, args []string) error {
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
	contract, err := a.store.GetContract(id)
	if err != nil {
		return wrapNotFound(err, "contract", id)
	}

	if err := a.authorize(actor, "contract-delete", rbac.ContractOwnership(contract)); err != nil {
		return err
	}

	if err := a.store.DeleteContract(id); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Contract %s deleted.\n", contract.Name)
	return nil
}

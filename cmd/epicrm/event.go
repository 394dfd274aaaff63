package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/epic-events/epicrm/internal/models"
	"github.com/epic-events/epicrm/internal/rbac"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Manage events",
}

var eventListMine bool

var eventCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an event",
	Args:  cobra.NoArgs,
	RunE:  runEventCreate,
}

var eventListCmd = &cobra.Command{
	Use:   "list",
	Short: "List events",
	Args:  cobra.NoArgs,
	RunE:  runEventList,
}

var eventReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Show an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventRead,
}

var eventUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventUpdate,
}

var eventDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventDelete,
}

func init() {
	eventListCmd.Flags().BoolVar(&eventListMine, "mine", false, "only events you are the support contact for")
	eventCmd.AddCommand(eventCreateCmd)
	eventCmd.AddCommand(eventListCmd)
	eventCmd.AddCommand(eventReadCmd)
	eventCmd.AddCommand(eventUpdateCmd)
	eventCmd.AddCommand(eventDeleteCmd)
}

func runEventCreate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	actor, err := a.requireIdentity()
	if err != nil {
		return err
	}
	if err := a.authorize(actor, "event-create", nil); err != nil {
		return err
	}

	name, err := readLine("Event name")
	if err != nil {
		return err
	}
	contractID, err := readUint("Contract ID")
	if err != nil {
		return err
	}
	contract, err := a.store.GetContract(contractID)
	if err != nil {
		return wrapNotFound(err, "contract", contractID)
	}
	supportContactID, err := readUint("Support contact ID")
	if err != nil {
		return err
	}
	if _, err := a.store.GetUser(supportContactID); err != nil {
		return wrapNotFound(err, "user", supportContactID)
	}
	dateStart, err := readTime("Start date")
	if err != nil {
		return err
	}
	dateEnd, err := readTime("End date")
	if err != nil {
		return err
	}
	location, err := readLine("Location")
	if err != nil {
		return err
	}
	attendees, err := readInt("Attendees")
	if err != nil {
		return err
	}
	notes, err := readLine("Notes")
	if err != nil {
		return err
	}

	event := &models.Event{
		Name:             name,
		ContractID:       contract.ID,
		SupportContactID: supportContactID,
		DateStart:        dateStart,
		DateEnd:          dateEnd,
		Location:         location,
		Attendees:        attendees,
		Notes:            notes,
	}
	if err := a.store.CreateEvent(event); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Event %s created (id %d).\n", event.Name, event.ID)
	return nil
}

func runEventList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	actor, err := a.requireIdentity()
	if err != nil {
		return err
	}
	if err := a.authorize(actor, "event-list", nil); err != nil {
		return err
	}

	var mine uint
	if eventListMine {
		mine = actor.ID
	}
	events, err := a.store.ListEvents(mine)
	if err != nil {
		return err
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tCONTRACT\tSTART\tLOCATION\tATTENDEES")
	for _, e := range events {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\n",
			e.ID, e.Name, e.Contract.Name, e.DateStart.Format(timeLayout), e.Location, e.Attendees)
	}
	return w.Flush()
}

func runEventRead(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	actor, err := a.requireIdentity()
	if err != nil {
		return err
	}
	if err := a.authorize(actor, "event-read", nil); err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	event, err := a.store.GetEvent(id)
	if err != nil {
		return wrapNotFound(err, "event", id)
	}

	fmt.Fprintf(os.Stdout, "Event:           %s (id %d)\n", event.Name, event.ID)
	fmt.Fprintf(os.Stdout, "Contract:        %s (id %d)\n", event.Contract.Name, event.ContractID)
	fmt.Fprintf(os.Stdout, "Support contact: %s (id %d)\n", event.SupportContact.Name, event.SupportContactID)
	fmt.Fprintf(os.Stdout, "Start:           %s\n", event.DateStart.Format(timeLayout))
	fmt.Fprintf(os.Stdout, "End:             %s\n", event.DateEnd.Format(timeLayout))
	fmt.Fprintf(os.Stdout, "Location:        %s\n", event.Location)
	fmt.Fprintf(os.Stdout, "Attendees:       %d\n", event.Attendees)
	fmt.Fprintf(os.Stdout, "Notes:           %s\n", event.Notes)
	return nil
}

func runEventUpdate(cmd *cobra.Command, args []string) error {
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
	event, err := a.store.GetEvent(id)
	if err != nil {
		return wrapNotFound(err, "event", id)
	}

	if err := a.authorize(actor, "event-update", rbac.EventOwnership(event)); err != nil {
		return err
	}

	if event.Name, err = readLineDefault("Event name", event.Name); err != nil {
		return err
	}
	if event.Location, err = readLineDefault("Location", event.Location); err != nil {
		return err
	}
	attendeesStr, err := readLineDefault("Attendees", fmt.Sprintf("%d", event.Attendees))
	if err != nil {
		return err
	}
	if _, err := fmt.Sscanf(attendeesStr, "%d", &event.Attendees); err != nil {
		return fmt.Errorf("attendees must be a number")
	}
	if event.Notes, err = readLineDefault("Notes", event.Notes); err != nil {
		return err
	}

	if err := a.store.SaveEvent(event); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Event %s updated.\n", event.Name)
	return nil
}

func runEventDelete(cmd *cobra.Command, args []string) error {
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
	event, err := a.store.GetEvent(id)
	if err != nil {
		return wrapNotFound(err, "event", id)
	}

	if err := a.authorize(actor, "event-delete", rbac.EventOwnership(event)); err != nil {
		return err
	}

	if err := a.store.DeleteEvent(id); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Event %s deleted.\n", event.Name)
	return nil
}

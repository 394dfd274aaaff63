package store

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/epic-events/epicrm/internal/models"
)

func createStaff(t *testing.T, s *Store, name, email, roleName string) *models.User {
	t.Helper()
	role, err := s.GetRoleByName(roleName)
	if err != nil {
		t.Fatalf("GetRoleByName(%q): %v", roleName, err)
	}
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "x",
		RoleID:       role.ID,
	}
	if err := s.CreateUser(user); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return user
}

func TestUserRoundTrip(t *testing.T) {
	s := seededStore(t)

	created := createStaff(t, s, "Alice", "alice@example.com", models.RoleSales)

	got, err := s.GetUser(created.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.RoleName() != models.RoleSales {
		t.Fatalf("expected role preloaded, got %q", got.RoleName())
	}

	found, err := s.FindUserByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("FindUserByEmail: %v", err)
	}
	if found == nil || found.ID != created.ID {
		t.Fatal("expected to find user by email")
	}

	missing, err := s.FindUserByEmail("nobody@example.com")
	if err != nil {
		t.Fatalf("FindUserByEmail: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for unknown email")
	}

	if err := s.DeleteUser(created.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if _, err := s.GetUser(created.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound after delete, got %v", err)
	}
}

func TestClientListFilter(t *testing.T) {
	s := seededStore(t)

	alice := createStaff(t, s, "Alice", "alice@example.com", models.RoleSales)
	bob := createStaff(t, s, "Bob", "bob@example.com", models.RoleSales)

	for i, rep := range []*models.User{alice, alice, bob} {
		client := &models.Client{
			Name:           "Client",
			Email:          string(rune('a'+i)) + "@client.example.com",
			Phone:          "0600000000",
			Company:        "ACME",
			SalesContactID: rep.ID,
		}
		if err := s.CreateClient(client); err != nil {
			t.Fatalf("CreateClient: %v", err)
		}
	}

	all, err := s.ListClients(0)
	if err != nil {
		t.Fatalf("ListClients: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 clients, got %d", len(all))
	}

	mine, err := s.ListClients(alice.ID)
	if err != nil {
		t.Fatalf("ListClients: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 clients for alice, got %d", len(mine))
	}
}

func TestContractFilters(t *testing.T) {
	s := seededStore(t)

	alice := createStaff(t, s, "Alice", "alice@example.com", models.RoleSales)
	bob := createStaff(t, s, "Bob", "bob@example.com", models.RoleSales)

	clientA := &models.Client{Name: "A", Email: "a@c.example.com", Phone: "1", Company: "ACME", SalesContactID: alice.ID}
	clientB := &models.Client{Name: "B", Email: "b@c.example.com", Phone: "2", Company: "ACME", SalesContactID: bob.ID}
	for _, c := range []*models.Client{clientA, clientB} {
		if err := s.CreateClient(c); err != nil {
			t.Fatalf("CreateClient: %v", err)
		}
	}

	contracts := []*models.Contract{
		{Name: "signed-paid", ClientID: clientA.ID, TotalAmount: 100, DueAmount: 0, Signed: true},
		{Name: "unsigned", ClientID: clientA.ID, TotalAmount: 100, DueAmount: 100, Signed: false},
		{Name: "bob-unpaid", ClientID: clientB.ID, TotalAmount: 50, DueAmount: 25, Signed: true},
	}
	for _, c := range contracts {
		if err := s.CreateContract(c); err != nil {
			t.Fatalf("CreateContract: %v", err)
		}
	}

	unsigned, err := s.ListContracts(ContractFilter{Unsigned: true})
	if err != nil {
		t.Fatalf("ListContracts: %v", err)
	}
	if len(unsigned) != 1 || unsigned[0].Name != "unsigned" {
		t.Fatalf("unexpected unsigned result: %+v", unsigned)
	}

	unpaid, err := s.ListContracts(ContractFilter{Unpaid: true})
	if err != nil {
		t.Fatalf("ListContracts: %v", err)
	}
	if len(unpaid) != 2 {
		t.Fatalf("expected 2 unpaid contracts, got %d", len(unpaid))
	}

	mine, err := s.ListContracts(ContractFilter{SalesContactID: alice.ID})
	if err != nil {
		t.Fatalf("ListContracts: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 contracts for alice's clients, got %d", len(mine))
	}

	got, err := s.GetContract(contracts[0].ID)
	if err != nil {
		t.Fatalf("GetContract: %v", err)
	}
	if got.Client.SalesContactID != alice.ID {
		t.Fatal("expected client association preloaded for ownership checks")
	}
}

func TestEventAssociations(t *testing.T) {
	s := seededStore(t)

	alice := createStaff(t, s, "Alice", "alice@example.com", models.RoleSales)
	carol := createStaff(t, s, "Carol", "carol@example.com", models.RoleSupport)

	client := &models.Client{Name: "A", Email: "a@c.example.com", Phone: "1", Company: "ACME", SalesContactID: alice.ID}
	if err := s.CreateClient(client); err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	contract := &models.Contract{Name: "C", ClientID: client.ID, Signed: true}
	if err := s.CreateContract(contract); err != nil {
		t.Fatalf("CreateContract: %v", err)
	}

	event := &models.Event{
		Name:             "Launch",
		ContractID:       contract.ID,
		SupportContactID: carol.ID,
		DateStart:        time.Now(),
		DateEnd:          time.Now().Add(2 * time.Hour),
		Location:         "Paris",
		Attendees:        120,
	}
	if err := s.CreateEvent(event); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	got, err := s.GetEvent(event.ID)
	if err != nil {
		t.Fatalf("GetEvent: %v", err)
	}
	// Both ownership axes must be reachable from one load.
	if got.SupportContactID != carol.ID {
		t.Fatal("expected support contact id")
	}
	if got.Contract.Client.SalesContactID != alice.ID {
		t.Fatal("expected contract→client→sales contact preloaded")
	}

	mine, err := s.ListEvents(carol.ID)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 event for carol, got %d", len(mine))
	}
	none, err := s.ListEvents(alice.ID)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected 0 events for alice as support contact, got %d", len(none))
	}
}

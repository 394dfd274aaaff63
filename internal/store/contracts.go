package store

import (
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/epic-events/epicrm/internal/models"
)

// ContractFilter narrows ListContracts results.
type ContractFilter struct {
	SalesContactID uint // non-zero: contracts of this rep's clients
	Unsigned       bool
	Unpaid         bool
}

// CreateContract inserts a new contract.
func (s *Store) CreateContract(contract *models.Contract) error {
	if err := s.db.Omit(clause.Associations).Create(contract).Error; err != nil {
		return fmt.Errorf("creating contract: %w", err)
	}
	return nil
}

// GetContract fetches a contract by id with its client (and the
// client's sales contact) preloaded for ownership evaluation.
func (s *Store) GetContract(id uint) (*models.Contract, error) {
	var contract models.Contract
	err := s.db.Preload("Client").Preload("Client.SalesContact").First(&contract, id).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

// ListContracts returns contracts matching the filter.
func (s *Store) ListContracts(f ContractFilter) ([]models.Contract, error) {
	q := s.db.Preload("Client").Order("contracts.id")
	if f.SalesContactID != 0 {
		q = q.Joins("JOIN clients ON clients.id = contracts.client_id").
			Where("clients.sales_contact_id = ?", f.SalesContactID)
	}
	if f.Unsigned {
		q = q.Where("signed = ?", false)
	}
	if f.Unpaid {
		q = q.Where("due_amount > 0")
	}
	var contracts []models.Contract
	if err := q.Find(&contracts).Error; err != nil {
		return nil, fmt.Errorf("listing contracts: %w", err)
	}
	return contracts, nil
}

// SaveContract persists changes to an existing contract.
func (s *Store) SaveContract(contract *models.Contract) error {
	if err := s.db.Omit(clause.Associations).Save(contract).Error; err != nil {
		return fmt.Errorf("saving contract: %w", err)
	}
	return nil
}

// DeleteContract removes a contract by id.
func (s *Store) DeleteContract(id uint) error {
	if err := s.db.Delete(&models.Contract{}, id).Error; err != nil {
		return fmt.Errorf("deleting contract: %w", err)
	}
	return nil
}

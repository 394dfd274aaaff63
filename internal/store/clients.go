package store

import (
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/epic-events/epicrm/internal/models"
)

// CreateClient inserts a new client record.
func (s *Store) CreateClient(client *models.Client) error {
	if err := s.db.Omit(clause.Associations).Create(client).Error; err != nil {
		return fmt.Errorf("creating client: %w", err)
	}
	return nil
}

// GetClient fetches a client by id with its sales contact preloaded.
func (s *Store) GetClient(id uint) (*models.Client, error) {
	var client models.Client
	if err := s.db.Preload("SalesContact").First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// ListClients returns all clients. When salesContactID is non-zero
// the result is filtered to that contact's clients ("my records").
func (s *Store) ListClients(salesContactID uint) ([]models.Client, error) {
	q := s.db.Preload("SalesContact").Order("id")
	if salesContactID != 0 {
		q = q.Where("sales_contact_id = ?", salesContactID)
	}
	var clients []models.Client
	if err := q.Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	return clients, nil
}

// SaveClient persists changes to an existing client.
func (s *Store) SaveClient(client *models.Client) error {
	if err := s.db.Omit(clause.Associations).Save(client).Error; err != nil {
		return fmt.Errorf("saving client: %w", err)
	}
	return nil
}

// DeleteClient removes a client by id.
func (s *Store) DeleteClient(id uint) error {
	if err := s.db.Delete(&models.Client{}, id).Error; err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}
	return nil
}

package store

import (
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/epic-events/epicrm/internal/models"
)

// CreateEvent inserts a new event.
func (s *Store) CreateEvent(event *models.Event) error {
	if err := s.db.Omit(clause.Associations).Create(event).Error; err != nil {
		return fmt.Errorf("creating event: %w", err)
	}
	return nil
}

// GetEvent fetches an event by id with the associations needed for
// ownership evaluation (support contact and the contract's client).
func (s *Store) GetEvent(id uint) (*models.Event, error) {
	var event models.Event
	err := s.db.
		Preload("SupportContact").
		Preload("Contract").
		Preload("Contract.Client").
		First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// ListEvents returns all events. When supportContactID is non-zero
// the result is filtered to that staffer's events.
func (s *Store) ListEvents(supportContactID uint) ([]models.Event, error) {
	q := s.db.Preload("Contract").Order("id")
	if supportContactID != 0 {
		q = q.Where("support_contact_id = ?", supportContactID)
	}
	var events []models.Event
	if err := q.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return events, nil
}

// SaveEvent persists changes to an existing event.
func (s *Store) SaveEvent(event *models.Event) error {
	if err := s.db.Omit(clause.Associations).Save(event).Error; err != nil {
		return fmt.Errorf("saving event: %w", err)
	}
	return nil
}

// DeleteEvent removes an event by id.
func (s *Store) DeleteEvent(id uint) error {
	if err := s.db.Delete(&models.Event{}, id).Error; err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	return nil
}

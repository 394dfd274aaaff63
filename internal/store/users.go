package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/epic-events/epicrm/internal/models"
)

// CreateUser inserts a new user.
func (s *Store) CreateUser(user *models.User) error {
	if err := s.db.Omit(clause.Associations).Create(user).Error; err != nil {
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

// GetUser fetches a user by id with its role preloaded.
func (s *Store) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Role").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByEmail returns the user with the given email, or nil if
// no such user exists.
func (s *Store) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Preload("Role").Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns all users with roles preloaded.
func (s *Store) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Preload("Role").Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// SaveUser persists changes to an existing user.
func (s *Store) SaveUser(user *models.User) error {
	if err := s.db.Omit(clause.Associations).Save(user).Error; err != nil {
		return fmt.Errorf("saving user: %w", err)
	}
	return nil
}

// DeleteUser removes a user by id.
func (s *Store) DeleteUser(id uint) error {
	if err := s.db.Delete(&models.User{}, id).Error; err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}

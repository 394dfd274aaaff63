package models

import "time"

// Client is a CRM client record. The assigned sales contact is the
// ownership axis for non-privileged authorization.
type Client struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone          string    `gorm:"not null" json:"phone"`
	Company        string    `gorm:"not null" json:"company"`
	SalesContactID uint      `gorm:"not null;index" json:"sales_contact_id"`
	SalesContact   User      `gorm:"foreignKey:SalesContactID" json:"sales_contact,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

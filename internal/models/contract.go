package models

import "time"

// Contract belongs to a client; ownership follows the client's
// sales contact.
type Contract struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	ClientID    uint      `gorm:"not null;index" json:"client_id"`
	Client      Client    `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	TotalAmount float64   `gorm:"not null;default:0" json:"total_amount"`
	DueAmount   float64   `gorm:"not null;default:0" json:"due_amount"`
	Signed      bool      `gorm:"not null;default:false" json:"signed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

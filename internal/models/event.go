package models

import "time"

// Event is tied to a contract and an assigned support contact. Both
// the support contact and the originating sales rep (via the
// contract's client) have standing over it.
type Event struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	ContractID       uint      `gorm:"not null;index" json:"contract_id"`
	Contract         Contract  `gorm:"foreignKey:ContractID" json:"contract,omitempty"`
	SupportContactID uint      `gorm:"not null;index" json:"support_contact_id"`
	SupportContact   User      `gorm:"foreignKey:SupportContactID" json:"support_contact,omitempty"`
	DateStart        time.Time `json:"date_start"`
	DateEnd          time.Time `json:"date_end"`
	Location         string    `json:"location"`
	Attendees        int       `json:"attendees"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

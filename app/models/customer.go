package models

import "time"

// Customer is a buyer record. Deleting a customer cascades to their
// orders and, through those, to the order items.
type Customer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FirstName   string    `gorm:"size:100;not null" json:"first_name"`
	LastName    string    `gorm:"size:100;not null" json:"last_name"`
	Email       string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Address     string    `gorm:"type:text" json:"address"`
	City        string    `gorm:"size:100" json:"city"`
	PostalCode  string    `gorm:"size:20" json:"postal_code"`
	Country     string    `gorm:"size:100" json:"country"`
	PhoneNumber string    `gorm:"size:20" json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Orders []Order `gorm:"constraint:OnDelete:CASCADE" json:"orders,omitempty"`
}

// FullName returns "First Last" as shown on report pages.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

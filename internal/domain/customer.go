package domain

import "time"

// Customer is a homeowner or property contact the business works for.
type Customer struct {
	ID        string    `gorm:"type:text;primaryKey" json:"id"`
	FirstName string    `gorm:"type:text;not null" json:"first_name"`
	LastName  string    `gorm:"type:text;not null" json:"last_name"`
	Email     string    `gorm:"type:text;index:idx_customers_email" json:"email"`
	Phone     string    `gorm:"type:text" json:"phone"`
	Address   Address   `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Customer.
func (Customer) TableName() string {
	return "customers"
}

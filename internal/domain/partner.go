package domain

import "time"

// Partner is a referring company, typically a roofer sending detach/reset work.
type Partner struct {
	ID          string    `gorm:"type:text;primaryKey" json:"id"`
	CompanyName string    `gorm:"type:text;not null" json:"company_name"`
	ContactName string    `gorm:"type:text" json:"contact_name,omitempty"`
	Email       string    `gorm:"type:text" json:"email,omitempty"`
	Phone       string    `gorm:"type:text" json:"phone,omitempty"`
	Type        string    `gorm:"type:text" json:"type,omitempty"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the database table name for Partner.
func (Partner) TableName() string {
	return "partners"
}

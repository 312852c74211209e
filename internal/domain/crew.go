package domain

import "time"

// Crew is a field team assignable to jobs and schedule entries.
type Crew struct {
	ID        string      `gorm:"type:text;primaryKey" json:"id"`
	Name      string      `gorm:"type:text;not null" json:"name"`
	Specialty string      `gorm:"type:text" json:"specialty,omitempty"`
	ForemanID string      `gorm:"type:text" json:"foreman_id,omitempty"`
	MemberIDs StringArray `gorm:"type:text" json:"member_ids"`
	IsActive  bool        `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// TableName returns the database table name for Crew.
func (Crew) TableName() string {
	return "crews"
}

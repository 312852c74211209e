package domain

import "time"

// LeadStatus tracks a lead through the sales funnel.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusQuoted    LeadStatus = "quoted"
	LeadStatusWon       LeadStatus = "won"
	LeadStatusLost      LeadStatus = "lost"
)

// Lead is a prospective detach/reset engagement, usually partner-referred.
type Lead struct {
	ID           string     `gorm:"type:text;primaryKey" json:"id"`
	CustomerName string     `gorm:"type:text;not null" json:"customer_name"`
	Email        string     `gorm:"type:text" json:"email,omitempty"`
	Phone        string     `gorm:"type:text" json:"phone,omitempty"`
	Address      string     `gorm:"type:text" json:"address,omitempty"`
	Source       string     `gorm:"type:text" json:"source,omitempty"`
	PartnerID    string     `gorm:"type:text;index:idx_leads_partner" json:"partner_id,omitempty"`
	Status       LeadStatus `gorm:"type:text;index:idx_leads_status;default:new" json:"status"`
	Notes        string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName returns the database table name for Lead.
func (Lead) TableName() string {
	return "leads"
}

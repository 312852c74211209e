package domain

import "time"

// TechJSA is a Job Safety Analysis form submitted from the field before
// work starts.
type TechJSA struct {
	ID               string      `gorm:"type:text;primaryKey" json:"id"`
	JobID            string      `gorm:"type:text;not null;index:idx_jsa_job" json:"job_id"`
	TechnicianID     string      `gorm:"type:text;not null;index:idx_jsa_tech" json:"technician_id"`
	Hazards          StringArray `gorm:"type:text" json:"hazards"`
	Controls         StringArray `gorm:"type:text" json:"controls"`
	CrewAcknowledged bool        `json:"crew_acknowledged"`
	Notes            string      `gorm:"type:text" json:"notes,omitempty"`
	SubmittedAt      time.Time   `json:"submitted_at"`
}

// TableName returns the database table name for TechJSA.
func (TechJSA) TableName() string {
	return "tech_jsa"
}

// TechDamageScan records pre-existing damage found on site.
type TechDamageScan struct {
	ID           string      `gorm:"type:text;primaryKey" json:"id"`
	JobID        string      `gorm:"type:text;not null;index:idx_damage_job" json:"job_id"`
	TechnicianID string      `gorm:"type:text;not null" json:"technician_id"`
	PanelSerial  string      `gorm:"type:text" json:"panel_serial,omitempty"`
	DamageFound  bool        `json:"damage_found"`
	DamageNotes  string      `gorm:"type:text" json:"damage_notes,omitempty"`
	PhotoKeys    StringArray `gorm:"type:text" json:"photo_keys"`
	SubmittedAt  time.Time   `json:"submitted_at"`
}

// TableName returns the database table name for TechDamageScan.
func (TechDamageScan) TableName() string {
	return "damage_scans"
}

// TechDetachReport is the field report closing out a detach visit.
type TechDetachReport struct {
	ID               string    `gorm:"type:text;primaryKey" json:"id"`
	JobID            string    `gorm:"type:text;not null;index:idx_detach_job" json:"job_id"`
	TechnicianID     string    `gorm:"type:text;not null" json:"technician_id"`
	PanelsRemoved    int       `json:"panels_removed"`
	InverterShutdown bool      `json:"inverter_shutdown"`
	Notes            string    `gorm:"type:text" json:"notes,omitempty"`
	SubmittedAt      time.Time `json:"submitted_at"`
}

// TableName returns the database table name for TechDetachReport.
func (TechDetachReport) TableName() string {
	return "detach_reports"
}

// TechResetReport is the field report closing out a reset visit.
type TechResetReport struct {
	ID                string    `gorm:"type:text;primaryKey" json:"id"`
	JobID             string    `gorm:"type:text;not null;index:idx_reset_job" json:"job_id"`
	TechnicianID      string    `gorm:"type:text;not null" json:"technician_id"`
	PanelsReinstalled int       `json:"panels_reinstalled"`
	SystemEnergized   bool      `json:"system_energized"`
	Notes             string    `gorm:"type:text" json:"notes,omitempty"`
	SubmittedAt       time.Time `json:"submitted_at"`
}

// TableName returns the database table name for TechResetReport.
func (TechResetReport) TableName() string {
	return "reset_reports"
}

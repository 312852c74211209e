package domain

import (
	"database/sql/driver"
	"time"
)

// JobStatus represents the coarse operational status of a job.
type JobStatus string

const (
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusInProgress JobStatus = "in-progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// JobType represents the kind of work sold for a job.
type JobType string

const (
	JobTypeDetach      JobType = "detach"
	JobTypeReset       JobType = "reset"
	JobTypeDetachReset JobType = "detach-reset"
)

// JobWorkflowState is one stage in the fixed job lifecycle, from intake
// through close. The legal ordering is declared in the workflow package.
type JobWorkflowState string

const (
	StateIntakeQuoting       JobWorkflowState = "intake_quoting"
	StateSiteSurveyPending   JobWorkflowState = "site_survey_pending"
	StateSiteSurveyComplete  JobWorkflowState = "site_survey_complete"
	StatePermitSubmitted     JobWorkflowState = "permit_submitted"
	StatePermitApproved      JobWorkflowState = "permit_approved"
	StateScheduledDetach     JobWorkflowState = "scheduled_detach"
	StateDetachCompleteHold  JobWorkflowState = "detach_complete_hold"
	StateRoofingComplete     JobWorkflowState = "roofing_complete"
	StateReadyForReset       JobWorkflowState = "ready_for_reset"
	StateScheduledReset      JobWorkflowState = "scheduled_reset"
	StateResetComplete       JobWorkflowState = "reset_complete"
	StateInspectionPtoPassed JobWorkflowState = "inspection_pto_passed"
	StateClosed              JobWorkflowState = "closed"
)

// Address is a postal address embedded into several records.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// TechSpecs holds the equipment details captured during survey and detach.
// Mutable sub-record; does not participate in workflow invariants.
type TechSpecs struct {
	PanelMake       string `json:"panel_make,omitempty"`
	PanelModel      string `json:"panel_model,omitempty"`
	PanelCount      int    `json:"panel_count,omitempty"`
	InverterMake    string `json:"inverter_make,omitempty"`
	InverterModel   string `json:"inverter_model,omitempty"`
	InverterType    string `json:"inverter_type,omitempty"`
	RackingType     string `json:"racking_type,omitempty"`
	BatteryMake     string `json:"battery_make,omitempty"`
	BatteryModel    string `json:"battery_model,omitempty"`
	ElectricalNotes string `json:"electrical_notes,omitempty"`
}

// Value implements the driver.Valuer interface.
func (s *TechSpecs) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return jsonValue(s)
}

// Scan implements the sql.Scanner interface.
func (s *TechSpecs) Scan(value interface{}) error {
	return jsonScan(value, s)
}

// JobPhoto is a photo record already uploaded to object storage and
// attached to a job.
type JobPhoto struct {
	URL        string     `json:"url"`
	StorageKey string     `json:"storage_key,omitempty"`
	Caption    string     `json:"caption,omitempty"`
	Phase      string     `json:"phase,omitempty"`
	Width      int        `json:"width,omitempty"`
	Height     int        `json:"height,omitempty"`
	UploadedBy string     `json:"uploaded_by,omitempty"`
	TakenAt    *time.Time `json:"taken_at,omitempty"`
}

// PhotoList stores job photos as JSON in a text column.
type PhotoList []JobPhoto

// Value implements the driver.Valuer interface.
func (p PhotoList) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	return jsonValue(p)
}

// Scan implements the sql.Scanner interface.
func (p *PhotoList) Scan(value interface{}) error {
	if value == nil {
		*p = PhotoList{}
		return nil
	}
	return jsonScan(value, p)
}

// Job is the aggregate record for a detach/reset engagement.
//
// The milestone timestamps are write-once: each is populated the first time
// the job enters the corresponding workflow state and never overwritten.
type Job struct {
	ID            string           `gorm:"type:text;primaryKey" json:"id"`
	CustomerID    string           `gorm:"type:text;not null;index:idx_jobs_customer" json:"customer_id"`
	Status        JobStatus        `gorm:"type:text;index:idx_jobs_status;default:scheduled" json:"status"`
	Type          JobType          `gorm:"type:text;not null" json:"type"`
	WorkflowState JobWorkflowState `gorm:"type:text;index:idx_jobs_workflow;default:intake_quoting" json:"workflow_state"`
	Address       Address          `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	Latitude      *float64         `json:"latitude,omitempty"`
	Longitude     *float64         `json:"longitude,omitempty"`
	ScheduledDate *time.Time       `json:"scheduled_date,omitempty"`
	CrewID        string           `gorm:"type:text;index:idx_jobs_crew" json:"crew_id,omitempty"`
	TechnicianIDs StringArray      `gorm:"type:text" json:"technician_ids"`
	Notes         string           `gorm:"type:text" json:"notes,omitempty"`
	TechSpecs     *TechSpecs       `gorm:"type:text" json:"tech_specs,omitempty"`
	Photos        PhotoList        `gorm:"type:text" json:"photos"`

	SiteSurveyCompletedAt *time.Time `json:"site_survey_completed_at,omitempty"`
	PermitSubmittedAt     *time.Time `json:"permit_submitted_at,omitempty"`
	PermitApprovedAt      *time.Time `json:"permit_approved_at,omitempty"`
	DetachScheduledAt     *time.Time `json:"detach_scheduled_at,omitempty"`
	DetachCompletedAt     *time.Time `json:"detach_completed_at,omitempty"`
	RoofingCompletedAt    *time.Time `json:"roofing_completed_at,omitempty"`
	ResetScheduledAt      *time.Time `json:"reset_scheduled_at,omitempty"`
	ResetCompletedAt      *time.Time `json:"reset_completed_at,omitempty"`
	InspectionPtoPassedAt *time.Time `json:"inspection_pto_passed_at,omitempty"`
	ClosedAt              *time.Time `json:"closed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Job.
func (Job) TableName() string {
	return "jobs"
}

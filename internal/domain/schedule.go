package domain

import (
	"database/sql/driver"
	"time"
)

// ScheduleType is the activity a crew is calendared for.
type ScheduleType string

const (
	ScheduleTypeSurvey     ScheduleType = "survey"
	ScheduleTypeDetach     ScheduleType = "detach"
	ScheduleTypeRoofing    ScheduleType = "roofing"
	ScheduleTypeReset      ScheduleType = "reset"
	ScheduleTypeInspection ScheduleType = "inspection"
	ScheduleTypeOther      ScheduleType = "other"
)

// ScheduleDateLayout is the calendar date format used on schedule entries.
const ScheduleDateLayout = "2006-01-02"

// WeatherSnapshot is the forecast captured for a schedule entry at
// creation time. Best-effort; entries without one are valid.
type WeatherSnapshot struct {
	Condition     string  `json:"condition"`
	Description   string  `json:"description,omitempty"`
	Temperature   int     `json:"temperature"`
	Humidity      int     `json:"humidity"`
	WindSpeed     float64 `json:"wind_speed"`
	Precipitation float64 `json:"precipitation"`
	Forecast      string  `json:"forecast,omitempty"`
	Icon          string  `json:"icon,omitempty"`
}

// Value implements the driver.Valuer interface.
func (w *WeatherSnapshot) Value() (driver.Value, error) {
	if w == nil {
		return nil, nil
	}
	return jsonValue(w)
}

// Scan implements the sql.Scanner interface.
func (w *WeatherSnapshot) Scan(value interface{}) error {
	return jsonScan(value, w)
}

// ScheduleEntry is a calendared block of crew work tied to a job.
// Date is YYYY-MM-DD, StartTime/EndTime are HH:MM (24-hour).
type ScheduleEntry struct {
	ID        string           `gorm:"type:text;primaryKey" json:"id"`
	JobID     string           `gorm:"type:text;not null;index:idx_schedule_job" json:"job_id" binding:"required"`
	CrewID    string           `gorm:"type:text;index:idx_schedule_crew" json:"crew_id,omitempty"`
	Type      ScheduleType     `gorm:"type:text;not null" json:"type" binding:"required"`
	Date      string           `gorm:"type:text;not null;index:idx_schedule_date" json:"date" binding:"required,caldate"`
	StartTime string           `gorm:"type:text" json:"start_time,omitempty" binding:"omitempty,clocktime"`
	EndTime   string           `gorm:"type:text" json:"end_time,omitempty" binding:"omitempty,clocktime"`
	Notes     string           `gorm:"type:text" json:"notes,omitempty"`
	Weather   *WeatherSnapshot `gorm:"type:text" json:"weather,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// TableName returns the database table name for ScheduleEntry.
func (ScheduleEntry) TableName() string {
	return "schedule_entries"
}

package domain

import "time"

// VehicleStatus represents a vehicle's availability.
type VehicleStatus string

const (
	VehicleStatusActive      VehicleStatus = "active"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
	VehicleStatusRetired     VehicleStatus = "retired"
)

// Vehicle is a truck or trailer assigned to a crew.
type Vehicle struct {
	ID        string        `gorm:"type:text;primaryKey" json:"id"`
	Name      string        `gorm:"type:text;not null" json:"name"`
	Plate     string        `gorm:"type:text" json:"plate,omitempty"`
	Type      string        `gorm:"type:text" json:"type,omitempty"`
	CrewID    string        `gorm:"type:text;index:idx_vehicles_crew" json:"crew_id,omitempty"`
	Status    VehicleStatus `gorm:"type:text;default:active" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// TableName returns the database table name for Vehicle.
func (Vehicle) TableName() string {
	return "vehicles"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// DroneModel represents the database model for drones.
type DroneModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	SerialNumber    string    `gorm:"type:varchar(100);not null;uniqueIndex;check:length(serial_number) <= 100"`
	Model           string    `gorm:"type:varchar(20);not null;check:model IN ('Lightweight','Middleweight','Cruiserweight','Heavyweight')"`
	WeightLimit     float64   `gorm:"not null;check:weight_limit > 0 AND weight_limit <= 500"`
	BatteryCapacity int       `gorm:"not null;check:battery_capacity >= 0 AND battery_capacity <= 100"`
	State           string    `gorm:"type:varchar(20);not null;default:'IDLE';index;check:state IN ('IDLE','LOADING','LOADED','DELIVERING','DELIVERED','RETURNING')"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`

	Medications []MedicationModel   `gorm:"foreignKey:DroneID;constraint:OnDelete:SET NULL"`
	Audits      []BatteryAuditModel `gorm:"foreignKey:DroneID;constraint:OnDelete:CASCADE"`
}

func (DroneModel) TableName() string {
	return "drones"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// MedicationModel represents the database model for medications.
type MedicationModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Weight    float64    `gorm:"not null;check:weight > 0"`
	Code      string     `gorm:"type:varchar(255);not null"`
	Image     string     `gorm:"type:varchar(512);not null"`
	DroneID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
}

func (MedicationModel) TableName() string {
	return "medications"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// BatteryAuditModel represents the database model for battery audit history.
type BatteryAuditModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	DroneID      uuid.UUID `gorm:"type:uuid;not null;index"`
	BatteryLevel int       `gorm:"not null;check:battery_level >= 0 AND battery_level <= 100"`
	CheckTime    time.Time `gorm:"not null;index"`
}

func (BatteryAuditModel) TableName() string {
	return "battery_audits"
}

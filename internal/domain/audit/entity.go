package audit

import (
	"time"

	"github.com/google/uuid"
)

// BatteryAudit is one snapshot of a drone's battery level, appended by the
// periodic audit pass. History is pruned by age, never updated.
type BatteryAudit struct {
	ID           uuid.UUID
	DroneID      uuid.UUID
	BatteryLevel int // percent, 0-100
	CheckTime    time.Time
}

package medication

import (
	"time"

	"github.com/google/uuid"
)

// Medication represents an item that can be attached to a drone. A nil
// DroneID means the medication is not loaded on any drone.
type Medication struct {
	ID        uuid.UUID
	Name      string
	Weight    float64 // grams
	Code      string
	Image     string
	DroneID   *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

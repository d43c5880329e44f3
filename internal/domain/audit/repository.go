package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the persistence operations for battery audit history.
type Repository interface {
	Create(ctx context.Context, audit *BatteryAudit) error
	ListByDrone(ctx context.Context, droneID uuid.UUID) ([]*BatteryAudit, error)
	ListRecent(ctx context.Context, limit int) ([]*BatteryAudit, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

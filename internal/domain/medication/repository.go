package medication

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence operations for medications.
type Repository interface {
	Create(ctx context.Context, medication *Medication) error
	GetByID(ctx context.Context, medicationID uuid.UUID) (*Medication, error)
	ListByDrone(ctx context.Context, droneID uuid.UUID) ([]*Medication, error)
	List(ctx context.Context) ([]*Medication, error)
	Delete(ctx context.Context, medicationID uuid.UUID) error
}

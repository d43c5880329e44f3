package drone

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence operations for drones.
type Repository interface {
	Create(ctx context.Context, drone *Drone) error
	GetByID(ctx context.Context, droneID uuid.UUID) (*Drone, error)
	GetByIDWithMedications(ctx context.Context, droneID uuid.UUID) (*Drone, error)
	GetBySerialNumber(ctx context.Context, serialNumber string) (*Drone, error)
	List(ctx context.Context) ([]*Drone, error)
	ListAvailableForLoading(ctx context.Context) ([]*Drone, error)
	UpdateState(ctx context.Context, droneID uuid.UUID, state DroneState) error
	UpdateBattery(ctx context.Context, droneID uuid.UUID, batteryCapacity int) error
	LoadedWeight(ctx context.Context, droneID uuid.UUID) (float64, error)
	Delete(ctx context.Context, droneID uuid.UUID) error
}

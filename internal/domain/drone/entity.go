package drone

import (
	"time"

	"github.com/google/uuid"

	"drone-fleet-manager/internal/domain/medication"
)

// DroneModel classifies a drone's airframe. Informational only; no current
// business rule depends on it.
type DroneModel string

const (
	ModelLightweight   DroneModel = "Lightweight"
	ModelMiddleweight  DroneModel = "Middleweight"
	ModelCruiserweight DroneModel = "Cruiserweight"
	ModelHeavyweight   DroneModel = "Heavyweight"
)

// DroneState is the operational state of a drone.
type DroneState string

const (
	StateIdle       DroneState = "IDLE"
	StateLoading    DroneState = "LOADING"
	StateLoaded     DroneState = "LOADED"
	StateDelivering DroneState = "DELIVERING"
	StateDelivered  DroneState = "DELIVERED"
	StateReturning  DroneState = "RETURNING"
)

// MinLoadingBattery is the battery floor (percent) below which a drone must
// not accept new medication.
const MinLoadingBattery = 25

// MaxWeightLimit is the heaviest payload capacity any drone may declare, in grams.
const MaxWeightLimit = 500.0

// Drone represents a fleet unit in the domain.
type Drone struct {
	ID              uuid.UUID
	SerialNumber    string
	Model           DroneModel
	WeightLimit     float64 // grams
	BatteryCapacity int     // percent, 0-100
	State           DroneState
	Medications     []medication.Medication
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// LoadedWeight is the sum of the weights of the medications currently
// attached to the drone, in grams.
func (d *Drone) LoadedWeight() float64 {
	var total float64
	for _, m := range d.Medications {
		total += m.Weight
	}
	return total
}

// CanLoad reports whether the drone's battery permits loading.
func (d *Drone) CanLoad() bool {
	return d.BatteryCapacity >= MinLoadingBattery
}

// ValidState reports whether s is one of the six known drone states.
func ValidState(s DroneState) bool {
	switch s {
	case StateIdle, StateLoading, StateLoaded, StateDelivering, StateDelivered, StateReturning:
		return true
	}
	return false
}

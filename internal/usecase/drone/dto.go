package drone

import (
	"time"

	"github.com/google/uuid"

	domainDrone "drone-fleet-manager/internal/domain/drone"
	medicationUsecase "drone-fleet-manager/internal/usecase/medication"
)

// RegisterDroneRequest is the payload for drone registration. Battery and
// state are optional; omitted values default to a fully charged idle drone.
type RegisterDroneRequest struct {
	SerialNumber    string   `json:"serialNumber" validate:"required"`
	Model           string   `json:"model" validate:"required,oneof=Lightweight Middleweight Cruiserweight Heavyweight"`
	WeightLimit     *float64 `json:"weightLimit" validate:"required"`
	BatteryCapacity *int     `json:"batteryCapacity"`
	State           *string  `json:"state" validate:"omitempty,oneof=IDLE LOADING LOADED DELIVERING DELIVERED RETURNING"`
}

// LoadMedicationRequest is the payload for loading a medication onto a drone.
type LoadMedicationRequest struct {
	Name   string  `json:"name" validate:"required"`
	Weight float64 `json:"weight" validate:"required"`
	Code   string  `json:"code" validate:"required"`
	Image  string  `json:"image" validate:"required"`
}

// UpdateStateRequest is the payload for a commanded state transition.
type UpdateStateRequest struct {
	State string `json:"state" validate:"required"`
}

// DroneResponse is the API representation of a drone.
type DroneResponse struct {
	ID              uuid.UUID                               `json:"id"`
	SerialNumber    string                                  `json:"serialNumber"`
	Model           string                                  `json:"model"`
	WeightLimit     float64                                 `json:"weightLimit"`
	BatteryCapacity int                                     `json:"batteryCapacity"`
	State           string                                  `json:"state"`
	Medications     []*medicationUsecase.MedicationResponse `json:"medications,omitempty"`
	CreatedAt       time.Time                               `json:"createdAt"`
	UpdatedAt       time.Time                               `json:"updatedAt"`
}

// LoadResult pairs the refreshed drone with the medication just loaded.
type LoadResult struct {
	Drone      *DroneResponse                        `json:"drone"`
	Medication *medicationUsecase.MedicationResponse `json:"medication"`
}

// BatteryLevelResponse reports a drone's battery with a low-battery flag.
type BatteryLevelResponse struct {
	DroneID      uuid.UUID `json:"droneId"`
	BatteryLevel int       `json:"batteryLevel"`
	Status       string    `json:"status"`
}

func ToDroneResponse(d *domainDrone.Drone) *DroneResponse {
	resp := &DroneResponse{
		ID:              d.ID,
		SerialNumber:    d.SerialNumber,
		Model:           string(d.Model),
		WeightLimit:     d.WeightLimit,
		BatteryCapacity: d.BatteryCapacity,
		State:           string(d.State),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}

	if len(d.Medications) > 0 {
		resp.Medications = make([]*medicationUsecase.MedicationResponse, len(d.Medications))
		for i := range d.Medications {
			resp.Medications[i] = medicationUsecase.ToMedicationResponse(&d.Medications[i])
		}
	}

	return resp
}

func ToDroneResponses(drones []*domainDrone.Drone) []*DroneResponse {
	responses := make([]*DroneResponse, len(drones))
	for i, d := range drones {
		responses[i] = ToDroneResponse(d)
	}
	return responses
}

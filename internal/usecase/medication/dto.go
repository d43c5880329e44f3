package medication

import (
	"time"

	"github.com/google/uuid"

	domainMedication "drone-fleet-manager/internal/domain/medication"
)

// MedicationResponse is the API representation of a medication.
type MedicationResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Weight    float64    `json:"weight"`
	Code      string     `json:"code"`
	Image     string     `json:"image"`
	DroneID   *uuid.UUID `json:"droneId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func ToMedicationResponse(m *domainMedication.Medication) *MedicationResponse {
	return &MedicationResponse{
		ID:        m.ID,
		Name:      m.Name,
		Weight:    m.Weight,
		Code:      m.Code,
		Image:     m.Image,
		DroneID:   m.DroneID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToMedicationResponses(meds []*domainMedication.Medication) []*MedicationResponse {
	responses := make([]*MedicationResponse, len(meds))
	for i, m := range meds {
		responses[i] = ToMedicationResponse(m)
	}
	return responses
}

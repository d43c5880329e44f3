package medication

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainMedication "drone-fleet-manager/internal/domain/medication"
	"drone-fleet-manager/internal/logger"
	appErrors "drone-fleet-manager/pkg/errors"
	"drone-fleet-manager/pkg/utils"
)

// Service handles medication catalog operations.
type Service struct {
	medicationRepo domainMedication.Repository
}

func NewService(medicationRepo domainMedication.Repository) *Service {
	return &Service{medicationRepo: medicationRepo}
}

// CreateMedication validates and persists a medication. A nil droneID
// creates an unassigned catalog entry.
func (s *Service) CreateMedication(ctx context.Context, name string, weight float64, code, image string, droneID *uuid.UUID) (*MedicationResponse, error) {
	if err := Validate(name, weight, code); err != nil {
		return nil, err
	}
	if image == "" {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "Medication image is required", nil)
	}

	med := &domainMedication.Medication{
		Name:    name,
		Weight:  weight,
		Code:    code,
		Image:   utils.SanitizeString(image),
		DroneID: droneID,
	}

	if err := s.medicationRepo.Create(ctx, med); err != nil {
		logger.Error("Failed to create medication", zap.Error(err), zap.String("code", code))
		return nil, err
	}

	return ToMedicationResponse(med), nil
}

func (s *Service) GetMedication(ctx context.Context, medicationID uuid.UUID) (*MedicationResponse, error) {
	med, err := s.medicationRepo.GetByID(ctx, medicationID)
	if errors.Is(err, domainMedication.ErrMedicationNotFound) {
		return nil, appErrors.NewAppError(appErrors.CodeNotFound, "Medication not found", err)
	}
	if err != nil {
		return nil, err
	}

	return ToMedicationResponse(med), nil
}

func (s *Service) ListMedications(ctx context.Context) ([]*MedicationResponse, error) {
	meds, err := s.medicationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return ToMedicationResponses(meds), nil
}

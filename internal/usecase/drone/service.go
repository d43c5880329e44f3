package drone

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainDrone "drone-fleet-manager/internal/domain/drone"
	domainMedication "drone-fleet-manager/internal/domain/medication"
	"drone-fleet-manager/internal/logger"
	medicationUsecase "drone-fleet-manager/internal/usecase/medication"
	appErrors "drone-fleet-manager/pkg/errors"
	"drone-fleet-manager/pkg/utils"
)

// Service handles drone fleet operations: registration, medication loading,
// state transitions, and battery queries.
type Service struct {
	droneRepo      domainDrone.Repository
	medicationRepo domainMedication.Repository

	// Per-drone serialization for loading. Without it two concurrent loads
	// can both pass the weight check against a stale total and jointly
	// overshoot the drone's limit.
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewService(droneRepo domainDrone.Repository, medicationRepo domainMedication.Repository) *Service {
	return &Service{
		droneRepo:      droneRepo,
		medicationRepo: medicationRepo,
		locks:          make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *Service) loadLock(droneID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, exists := s.locks[droneID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[droneID] = lock
	}
	return lock
}

// RegisterDrone validates and creates a drone. Battery defaults to 100 and
// state to IDLE when omitted.
func (s *Service) RegisterDrone(ctx context.Context, req *RegisterDroneRequest) (*DroneResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, err.Error(), err)
	}
	if err := ValidateRegistration(req.SerialNumber, req.WeightLimit, req.BatteryCapacity); err != nil {
		return nil, err
	}

	if _, err := s.droneRepo.GetBySerialNumber(ctx, req.SerialNumber); err == nil {
		return nil, appErrors.NewAppError(appErrors.CodeConstraintViolation, "Drone with this serial number already exists", nil)
	} else if !errors.Is(err, domainDrone.ErrDroneNotFound) {
		return nil, err
	}

	batteryCapacity := 100
	if req.BatteryCapacity != nil {
		batteryCapacity = *req.BatteryCapacity
	}
	state := domainDrone.StateIdle
	if req.State != nil {
		state = domainDrone.DroneState(*req.State)
	}

	d := &domainDrone.Drone{
		SerialNumber:    req.SerialNumber,
		Model:           domainDrone.DroneModel(req.Model),
		WeightLimit:     *req.WeightLimit,
		BatteryCapacity: batteryCapacity,
		State:           state,
	}

	if err := s.droneRepo.Create(ctx, d); err != nil {
		if errors.Is(err, domainDrone.ErrDroneAlreadyExists) {
			return nil, appErrors.NewAppError(appErrors.CodeConstraintViolation, "Drone with this serial number already exists", err)
		}
		logger.Error("Failed to register drone", zap.Error(err), zap.String("serial_number", req.SerialNumber))
		return nil, err
	}

	logger.Info("Drone registered",
		zap.String("drone_id", d.ID.String()),
		zap.String("serial_number", d.SerialNumber),
	)

	return ToDroneResponse(d), nil
}

// LoadMedication attaches a medication to a drone after the battery and
// weight admission checks pass. Validation is fully sequenced before the
// write, so a rejected load leaves all data unchanged.
func (s *Service) LoadMedication(ctx context.Context, droneID uuid.UUID, req *LoadMedicationRequest) (*LoadResult, error) {
	lock := s.loadLock(droneID)
	lock.Lock()
	defer lock.Unlock()

	d, err := s.droneRepo.GetByIDWithMedications(ctx, droneID)
	if errors.Is(err, domainDrone.ErrDroneNotFound) {
		return nil, appErrors.NewAppError(appErrors.CodeNotFound, "Drone not found", err)
	}
	if err != nil {
		return nil, err
	}

	if !d.CanLoad() {
		return nil, appErrors.NewAppError(appErrors.CodeLowBattery, "Cannot load drone with battery level below 25%", nil)
	}

	if err := medicationUsecase.Validate(req.Name, req.Weight, req.Code); err != nil {
		return nil, err
	}
	if req.Image == "" {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "Medication image is required", nil)
	}

	currentWeight := d.LoadedWeight()
	projected := currentWeight + req.Weight
	if projected > d.WeightLimit {
		msg := fmt.Sprintf("Cannot load medication. Weight limit exceeded. Current: %sgr, New: %sgr, Limit: %sgr",
			formatGrams(currentWeight), formatGrams(req.Weight), formatGrams(d.WeightLimit))
		return nil, appErrors.NewAppError(appErrors.CodeWeightExceeded, msg, nil)
	}

	med := &domainMedication.Medication{
		Name:    req.Name,
		Weight:  req.Weight,
		Code:    req.Code,
		Image:   utils.SanitizeString(req.Image),
		DroneID: &d.ID,
	}
	if err := s.medicationRepo.Create(ctx, med); err != nil {
		logger.Error("Failed to load medication", zap.Error(err), zap.String("drone_id", droneID.String()))
		return nil, err
	}

	if d.State == domainDrone.StateIdle {
		if err := s.droneRepo.UpdateState(ctx, d.ID, domainDrone.StateLoading); err != nil {
			return nil, err
		}
	}

	refreshed, err := s.droneRepo.GetByIDWithMedications(ctx, droneID)
	if err != nil {
		return nil, err
	}

	logger.Info("Medication loaded",
		zap.String("drone_id", droneID.String()),
		zap.String("medication_code", med.Code),
		zap.Float64("projected_weight", projected),
	)

	return &LoadResult{
		Drone:      ToDroneResponse(refreshed),
		Medication: medicationUsecase.ToMedicationResponse(med),
	}, nil
}

func (s *Service) GetAllDrones(ctx context.Context) ([]*DroneResponse, error) {
	drones, err := s.droneRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ToDroneResponses(drones), nil
}

func (s *Service) GetDroneByID(ctx context.Context, droneID uuid.UUID) (*DroneResponse, error) {
	d, err := s.droneRepo.GetByIDWithMedications(ctx, droneID)
	if errors.Is(err, domainDrone.ErrDroneNotFound) {
		return nil, appErrors.NewAppError(appErrors.CodeNotFound, "Drone not found", err)
	}
	if err != nil {
		return nil, err
	}
	return ToDroneResponse(d), nil
}

// GetAvailableDrones lists idle drones with enough battery to load,
// best battery first.
func (s *Service) GetAvailableDrones(ctx context.Context) ([]*DroneResponse, error) {
	drones, err := s.droneRepo.ListAvailableForLoading(ctx)
	if err != nil {
		return nil, err
	}
	return ToDroneResponses(drones), nil
}

func (s *Service) GetLoadedMedications(ctx context.Context, droneID uuid.UUID) ([]*medicationUsecase.MedicationResponse, error) {
	if _, err := s.droneRepo.GetByID(ctx, droneID); err != nil {
		if errors.Is(err, domainDrone.ErrDroneNotFound) {
			return nil, appErrors.NewAppError(appErrors.CodeNotFound, "Drone not found", err)
		}
		return nil, err
	}

	meds, err := s.medicationRepo.ListByDrone(ctx, droneID)
	if err != nil {
		return nil, err
	}
	return medicationUsecase.ToMedicationResponses(meds), nil
}

// GetBatteryLevel reports the drone's battery along with a LOW_BATTERY or
// OK status flag.
func (s *Service) GetBatteryLevel(ctx context.Context, droneID uuid.UUID) (*BatteryLevelResponse, error) {
	d, err := s.droneRepo.GetByID(ctx, droneID)
	if errors.Is(err, domainDrone.ErrDroneNotFound) {
		return nil, appErrors.NewAppError(appErrors.CodeNotFound, "Drone not found", err)
	}
	if err != nil {
		return nil, err
	}

	status := "OK"
	if d.BatteryCapacity < domainDrone.MinLoadingBattery {
		status = "LOW_BATTERY"
	}

	return &BatteryLevelResponse{
		DroneID:      d.ID,
		BatteryLevel: d.BatteryCapacity,
		Status:       status,
	}, nil
}

// UpdateState commands a transition to any of the six states. No transition
// graph is enforced; lifecycle sequencing is left to the caller.
func (s *Service) UpdateState(ctx context.Context, droneID uuid.UUID, newState string) (*DroneResponse, error) {
	state := domainDrone.DroneState(newState)
	if !domainDrone.ValidState(state) {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "Invalid drone state", domainDrone.ErrInvalidState)
	}

	if err := s.droneRepo.UpdateState(ctx, droneID, state); err != nil {
		if errors.Is(err, domainDrone.ErrDroneNotFound) {
			return nil, appErrors.NewAppError(appErrors.CodeNotFound, "Drone not found", err)
		}
		return nil, err
	}

	d, err := s.droneRepo.GetByIDWithMedications(ctx, droneID)
	if err != nil {
		return nil, err
	}

	logger.Info("Drone state updated",
		zap.String("drone_id", droneID.String()),
		zap.String("state", newState),
	)

	return ToDroneResponse(d), nil
}

func (s *Service) DeleteDrone(ctx context.Context, droneID uuid.UUID) error {
	if err := s.droneRepo.Delete(ctx, droneID); err != nil {
		if errors.Is(err, domainDrone.ErrDroneNotFound) {
			return appErrors.NewAppError(appErrors.CodeNotFound, "Drone not found", err)
		}
		return err
	}

	s.mu.Lock()
	delete(s.locks, droneID)
	s.mu.Unlock()

	logger.Info("Drone deleted", zap.String("drone_id", droneID.String()))
	return nil
}

// formatGrams renders a weight without a trailing ".0" for whole values.
func formatGrams(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

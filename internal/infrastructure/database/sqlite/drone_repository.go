package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainDrone "drone-fleet-manager/internal/domain/drone"
	domainMedication "drone-fleet-manager/internal/domain/medication"
	"drone-fleet-manager/internal/infrastructure/database/sqlite/models"
)

// DroneRepository implements drone.Repository on SQLite.
type DroneRepository struct {
	db *DB
}

func NewDroneRepository(db *DB) domainDrone.Repository {
	return &DroneRepository{db: db}
}

func (r *DroneRepository) Create(ctx context.Context, d *domainDrone.Drone) error {
	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	d.UpdatedAt = time.Now()

	dbModel := toDroneModel(d)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return domainDrone.ErrDroneAlreadyExists
		}
		return fmt.Errorf("failed to create drone: %w", err)
	}

	return nil
}

func (r *DroneRepository) GetByID(ctx context.Context, droneID uuid.UUID) (*domainDrone.Drone, error) {
	var dbModel models.DroneModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", droneID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainDrone.ErrDroneNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get drone: %w", err)
	}

	return toDroneEntity(&dbModel), nil
}

func (r *DroneRepository) GetByIDWithMedications(ctx context.Context, droneID uuid.UUID) (*domainDrone.Drone, error) {
	var dbModel models.DroneModel
	err := r.db.DB.WithContext(ctx).
		Preload("Medications", func(db *gorm.DB) *gorm.DB {
			return db.Order("medications.created_at DESC")
		}).
		Where("id = ?", droneID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainDrone.ErrDroneNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get drone: %w", err)
	}

	return toDroneEntity(&dbModel), nil
}

func (r *DroneRepository) GetBySerialNumber(ctx context.Context, serialNumber string) (*domainDrone.Drone, error) {
	var dbModel models.DroneModel
	err := r.db.DB.WithContext(ctx).
		Where("serial_number = ?", serialNumber).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainDrone.ErrDroneNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get drone: %w", err)
	}

	return toDroneEntity(&dbModel), nil
}

func (r *DroneRepository) List(ctx context.Context) ([]*domainDrone.Drone, error) {
	var dbModels []models.DroneModel
	err := r.db.DB.WithContext(ctx).
		Preload("Medications").
		Order("created_at DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list drones: %w", err)
	}

	drones := make([]*domainDrone.Drone, len(dbModels))
	for i := range dbModels {
		drones[i] = toDroneEntity(&dbModels[i])
	}

	return drones, nil
}

func (r *DroneRepository) ListAvailableForLoading(ctx context.Context) ([]*domainDrone.Drone, error) {
	var dbModels []models.DroneModel
	err := r.db.DB.WithContext(ctx).
		Where("state = ? AND battery_capacity >= ?", string(domainDrone.StateIdle), domainDrone.MinLoadingBattery).
		Order("battery_capacity DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list available drones: %w", err)
	}

	drones := make([]*domainDrone.Drone, len(dbModels))
	for i := range dbModels {
		drones[i] = toDroneEntity(&dbModels[i])
	}

	return drones, nil
}

func (r *DroneRepository) UpdateState(ctx context.Context, droneID uuid.UUID, state domainDrone.DroneState) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.DroneModel{}).
		Where("id = ?", droneID).
		Updates(map[string]interface{}{
			"state":      string(state),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainDrone.ErrDroneNotFound
	}

	return nil
}

func (r *DroneRepository) UpdateBattery(ctx context.Context, droneID uuid.UUID, batteryCapacity int) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.DroneModel{}).
		Where("id = ?", droneID).
		Updates(map[string]interface{}{
			"battery_capacity": batteryCapacity,
			"updated_at":       time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update battery: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainDrone.ErrDroneNotFound
	}

	return nil
}

func (r *DroneRepository) LoadedWeight(ctx context.Context, droneID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.DB.WithContext(ctx).
		Model(&models.MedicationModel{}).
		Where("drone_id = ?", droneID).
		Select("COALESCE(SUM(weight), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum loaded weight: %w", err)
	}

	return total, nil
}

func (r *DroneRepository) Delete(ctx context.Context, droneID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", droneID).
		Delete(&models.DroneModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete drone: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainDrone.ErrDroneNotFound
	}

	return nil
}

// Helper functions to convert between domain entities and database models

func toDroneModel(d *domainDrone.Drone) *models.DroneModel {
	return &models.DroneModel{
		ID:              d.ID,
		SerialNumber:    d.SerialNumber,
		Model:           string(d.Model),
		WeightLimit:     d.WeightLimit,
		BatteryCapacity: d.BatteryCapacity,
		State:           string(d.State),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func toDroneEntity(m *models.DroneModel) *domainDrone.Drone {
	medications := make([]domainMedication.Medication, len(m.Medications))
	for i := range m.Medications {
		medications[i] = *toMedicationEntity(&m.Medications[i])
	}

	return &domainDrone.Drone{
		ID:              m.ID,
		SerialNumber:    m.SerialNumber,
		Model:           domainDrone.DroneModel(m.Model),
		WeightLimit:     m.WeightLimit,
		BatteryCapacity: m.BatteryCapacity,
		State:           domainDrone.DroneState(m.State),
		Medications:     medications,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainMedication "drone-fleet-manager/internal/domain/medication"
	"drone-fleet-manager/internal/infrastructure/database/sqlite/models"
	appErrors "drone-fleet-manager/pkg/errors"
)

// MedicationRepository implements medication.Repository on SQLite.
type MedicationRepository struct {
	db *DB
}

func NewMedicationRepository(db *DB) domainMedication.Repository {
	return &MedicationRepository{db: db}
}

func (r *MedicationRepository) Create(ctx context.Context, m *domainMedication.Medication) error {
	m.ID = uuid.New()
	m.CreatedAt = time.Now()
	m.UpdatedAt = time.Now()

	dbModel := toMedicationModel(m)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if strings.Contains(err.Error(), "constraint failed") {
			return appErrors.NewAppError(appErrors.CodeConstraintViolation, "Database constraint violation", err)
		}
		return fmt.Errorf("failed to create medication: %w", err)
	}

	return nil
}

func (r *MedicationRepository) GetByID(ctx context.Context, medicationID uuid.UUID) (*domainMedication.Medication, error) {
	var dbModel models.MedicationModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", medicationID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainMedication.ErrMedicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get medication: %w", err)
	}

	return toMedicationEntity(&dbModel), nil
}

func (r *MedicationRepository) ListByDrone(ctx context.Context, droneID uuid.UUID) ([]*domainMedication.Medication, error) {
	var dbModels []models.MedicationModel
	err := r.db.DB.WithContext(ctx).
		Where("drone_id = ?", droneID).
		Order("created_at DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}

	medications := make([]*domainMedication.Medication, len(dbModels))
	for i := range dbModels {
		medications[i] = toMedicationEntity(&dbModels[i])
	}

	return medications, nil
}

func (r *MedicationRepository) List(ctx context.Context) ([]*domainMedication.Medication, error) {
	var dbModels []models.MedicationModel
	err := r.db.DB.WithContext(ctx).
		Order("created_at DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}

	medications := make([]*domainMedication.Medication, len(dbModels))
	for i := range dbModels {
		medications[i] = toMedicationEntity(&dbModels[i])
	}

	return medications, nil
}

func (r *MedicationRepository) Delete(ctx context.Context, medicationID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", medicationID).
		Delete(&models.MedicationModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete medication: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainMedication.ErrMedicationNotFound
	}

	return nil
}

// Helper functions to convert between domain entities and database models

func toMedicationModel(m *domainMedication.Medication) *models.MedicationModel {
	return &models.MedicationModel{
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

func toMedicationEntity(m *models.MedicationModel) *domainMedication.Medication {
	return &domainMedication.Medication{
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

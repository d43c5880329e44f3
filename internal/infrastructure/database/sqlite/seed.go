package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainDrone "drone-fleet-manager/internal/domain/drone"
	"drone-fleet-manager/internal/infrastructure/database/sqlite/models"
	"drone-fleet-manager/internal/logger"
)

// Seed populates the database with a sample fleet for local development.
// It is a no-op when any drones already exist.
func Seed(ctx context.Context, db *DB) error {
	var count int64
	if err := db.DB.WithContext(ctx).Model(&models.DroneModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count drones: %w", err)
	}
	if count > 0 {
		logger.Info("Database already seeded, skipping", zap.Int64("drones", count))
		return nil
	}

	now := time.Now()

	type seedDrone struct {
		serial  string
		model   domainDrone.DroneModel
		weight  float64
		battery int
		state   domainDrone.DroneState
	}

	fleet := []seedDrone{
		{"DRN001", domainDrone.ModelLightweight, 150, 100, domainDrone.StateIdle},
		{"DRN002", domainDrone.ModelMiddleweight, 250, 85, domainDrone.StateIdle},
		{"DRN003", domainDrone.ModelCruiserweight, 350, 90, domainDrone.StateIdle},
		{"DRN004", domainDrone.ModelHeavyweight, 500, 75, domainDrone.StateIdle},
		{"DRN005", domainDrone.ModelLightweight, 150, 20, domainDrone.StateIdle},
		{"DRN006", domainDrone.ModelMiddleweight, 250, 60, domainDrone.StateLoading},
		{"DRN007", domainDrone.ModelCruiserweight, 350, 50, domainDrone.StateLoaded},
		{"DRN008", domainDrone.ModelHeavyweight, 500, 40, domainDrone.StateDelivering},
		{"DRN009", domainDrone.ModelLightweight, 150, 30, domainDrone.StateReturning},
		{"DRN010", domainDrone.ModelMiddleweight, 250, 15, domainDrone.StateIdle},
	}

	drones := make([]models.DroneModel, len(fleet))
	for i, s := range fleet {
		drones[i] = models.DroneModel{
			ID:              uuid.New(),
			SerialNumber:    s.serial,
			Model:           string(s.model),
			WeightLimit:     s.weight,
			BatteryCapacity: s.battery,
			State:           string(s.state),
			CreatedAt:       now,
			UpdatedAt:       now,
		}
	}

	if err := db.DB.WithContext(ctx).Create(&drones).Error; err != nil {
		return fmt.Errorf("failed to seed drones: %w", err)
	}

	type seedMedication struct {
		name   string
		weight float64
		code   string
		drone  int // index into fleet, -1 for unassigned
	}

	meds := []seedMedication{
		{"Paracetamol-500mg", 50, "PARA_500", 6},
		{"Amoxicillin-250mg", 30, "AMOX_250", 6},
		{"Insulin-10ml", 25, "INSU_10", 7},
		{"Morphine-5mg", 15, "MORP_5", -1},
		{"Adrenaline-1mg", 10, "ADRE_1", -1},
	}

	medications := make([]models.MedicationModel, len(meds))
	for i, s := range meds {
		var droneID *uuid.UUID
		if s.drone >= 0 {
			id := drones[s.drone].ID
			droneID = &id
		}
		medications[i] = models.MedicationModel{
			ID:        uuid.New(),
			Name:      s.name,
			Weight:    s.weight,
			Code:      s.code,
			Image:     fmt.Sprintf("https://example.com/medications/%s.jpg", s.code),
			DroneID:   droneID,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	if err := db.DB.WithContext(ctx).Create(&medications).Error; err != nil {
		return fmt.Errorf("failed to seed medications: %w", err)
	}

	logger.Info("Database seeded",
		zap.Int("drones", len(drones)),
		zap.Int("medications", len(medications)),
	)

	return nil
}

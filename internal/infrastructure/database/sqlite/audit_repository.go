package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainAudit "drone-fleet-manager/internal/domain/audit"
	"drone-fleet-manager/internal/infrastructure/database/sqlite/models"
)

// AuditRepository implements audit.Repository on SQLite.
type AuditRepository struct {
	db *DB
}

func NewAuditRepository(db *DB) domainAudit.Repository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Create(ctx context.Context, a *domainAudit.BatteryAudit) error {
	a.ID = uuid.New()
	if a.CheckTime.IsZero() {
		a.CheckTime = time.Now()
	}

	dbModel := toAuditModel(a)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create battery audit: %w", err)
	}

	return nil
}

func (r *AuditRepository) ListByDrone(ctx context.Context, droneID uuid.UUID) ([]*domainAudit.BatteryAudit, error) {
	var dbModels []models.BatteryAuditModel
	err := r.db.DB.WithContext(ctx).
		Where("drone_id = ?", droneID).
		Order("check_time DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list battery audits: %w", err)
	}

	return toAuditEntities(dbModels), nil
}

func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]*domainAudit.BatteryAudit, error) {
	if limit <= 0 {
		limit = 100
	}

	var dbModels []models.BatteryAuditModel
	err := r.db.DB.WithContext(ctx).
		Order("check_time DESC").
		Limit(limit).
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent battery audits: %w", err)
	}

	return toAuditEntities(dbModels), nil
}

func (r *AuditRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.DB.WithContext(ctx).
		Where("check_time < ?", cutoff).
		Delete(&models.BatteryAuditModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to prune battery audits: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func toAuditModel(a *domainAudit.BatteryAudit) *models.BatteryAuditModel {
	return &models.BatteryAuditModel{
		ID:           a.ID,
		DroneID:      a.DroneID,
		BatteryLevel: a.BatteryLevel,
		CheckTime:    a.CheckTime,
	}
}

func toAuditEntities(dbModels []models.BatteryAuditModel) []*domainAudit.BatteryAudit {
	audits := make([]*domainAudit.BatteryAudit, len(dbModels))
	for i := range dbModels {
		m := dbModels[i]
		audits[i] = &domainAudit.BatteryAudit{
			ID:           m.ID,
			DroneID:      m.DroneID,
			BatteryLevel: m.BatteryLevel,
			CheckTime:    m.CheckTime,
		}
	}
	return audits
}

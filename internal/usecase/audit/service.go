package audit

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domainAudit "drone-fleet-manager/internal/domain/audit"
	domainDrone "drone-fleet-manager/internal/domain/drone"
	appErrors "drone-fleet-manager/pkg/errors"
)

const defaultRecentLimit = 100

// Service exposes read access to the battery audit history.
type Service struct {
	droneRepo domainDrone.Repository
	auditRepo domainAudit.Repository
}

func NewService(droneRepo domainDrone.Repository, auditRepo domainAudit.Repository) *Service {
	return &Service{
		droneRepo: droneRepo,
		auditRepo: auditRepo,
	}
}

// GetDroneAudits returns a drone's audit history, newest first.
func (s *Service) GetDroneAudits(ctx context.Context, droneID uuid.UUID) ([]*AuditResponse, error) {
	if _, err := s.droneRepo.GetByID(ctx, droneID); err != nil {
		if errors.Is(err, domainDrone.ErrDroneNotFound) {
			return nil, appErrors.NewAppError(appErrors.CodeNotFound, "Drone not found", err)
		}
		return nil, err
	}

	audits, err := s.auditRepo.ListByDrone(ctx, droneID)
	if err != nil {
		return nil, err
	}
	return ToAuditResponses(audits), nil
}

// GetRecentAudits returns the latest audit entries across the fleet.
func (s *Service) GetRecentAudits(ctx context.Context, limit int) ([]*AuditResponse, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	audits, err := s.auditRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return ToAuditResponses(audits), nil
}

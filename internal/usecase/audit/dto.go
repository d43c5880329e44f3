package audit

import (
	"time"

	"github.com/google/uuid"

	domainAudit "drone-fleet-manager/internal/domain/audit"
)

// AuditResponse is the API representation of a battery audit entry.
type AuditResponse struct {
	ID           uuid.UUID `json:"id"`
	DroneID      uuid.UUID `json:"droneId"`
	BatteryLevel int       `json:"batteryLevel"`
	CheckTime    time.Time `json:"checkTime"`
}

func ToAuditResponse(a *domainAudit.BatteryAudit) *AuditResponse {
	return &AuditResponse{
		ID:           a.ID,
		DroneID:      a.DroneID,
		BatteryLevel: a.BatteryLevel,
		CheckTime:    a.CheckTime,
	}
}

func ToAuditResponses(audits []*domainAudit.BatteryAudit) []*AuditResponse {
	responses := make([]*AuditResponse, len(audits))
	for i, a := range audits {
		responses[i] = ToAuditResponse(a)
	}
	return responses
}

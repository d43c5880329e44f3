package audit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	domainAudit "drone-fleet-manager/internal/domain/audit"
	domainDrone "drone-fleet-manager/internal/domain/drone"
	"drone-fleet-manager/internal/logger"
)

// Auditor periodically snapshots every drone's battery level into the audit
// log and prunes entries past the retention window.
type Auditor struct {
	droneRepo domainDrone.Repository
	auditRepo domainAudit.Repository
	interval  time.Duration
	retention time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

func NewAuditor(droneRepo domainDrone.Repository, auditRepo domainAudit.Repository, interval, retention time.Duration) *Auditor {
	return &Auditor{
		droneRepo: droneRepo,
		auditRepo: auditRepo,
		interval:  interval,
		retention: retention,
	}
}

// Start runs one audit pass immediately, then repeats on the configured
// interval until Stop is called. Calling Start on a running auditor is a
// no-op.
func (a *Auditor) Start() {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.done = make(chan struct{})
	a.running = true
	a.mu.Unlock()

	logger.Info("Battery auditor started",
		zap.Duration("interval", a.interval),
		zap.Duration("retention", a.retention),
	)

	go a.run(ctx)
}

func (a *Auditor) run(ctx context.Context) {
	defer close(a.done)

	a.runPass(ctx)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.runPass(ctx)
		}
	}
}

// runPass snapshots all drones, then prunes aged audit rows. A failure is
// logged and the pass continues; the next scheduled pass runs regardless.
func (a *Auditor) runPass(ctx context.Context) {
	drones, err := a.droneRepo.List(ctx)
	if err != nil {
		logger.Error("Battery audit pass failed to list drones", zap.Error(err))
		return
	}

	now := time.Now()
	for _, d := range drones {
		entry := &domainAudit.BatteryAudit{
			DroneID:      d.ID,
			BatteryLevel: d.BatteryCapacity,
			CheckTime:    now,
		}
		if err := a.auditRepo.Create(ctx, entry); err != nil {
			logger.Error("Failed to record battery audit",
				zap.Error(err),
				zap.String("drone_id", d.ID.String()),
			)
			continue
		}

		if d.BatteryCapacity < domainDrone.MinLoadingBattery {
			logger.Warn("Drone battery below loading threshold",
				zap.String("drone_id", d.ID.String()),
				zap.String("serial_number", d.SerialNumber),
				zap.Int("battery_level", d.BatteryCapacity),
			)
		}
	}

	pruned, err := a.auditRepo.DeleteOlderThan(ctx, now.Add(-a.retention))
	if err != nil {
		logger.Error("Failed to prune battery audits", zap.Error(err))
		return
	}
	if pruned > 0 {
		logger.Info("Pruned aged battery audits", zap.Int64("rows", pruned))
	}
}

// Stop cancels future passes. An in-flight pass is not aborted; Stop waits
// for it to finish.
func (a *Auditor) Stop() {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return
	}
	a.cancel()
	done := a.done
	a.running = false
	a.mu.Unlock()

	<-done
	logger.Info("Battery auditor stopped")
}

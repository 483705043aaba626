package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/timewatch/timewatch-backend-go/internal/domain/punch"
)

type PunchJobs struct {
	punchService punch.PunchService
}

func NewPunchJobs(punchService punch.PunchService) *PunchJobs {
	return &PunchJobs{punchService: punchService}
}

func (j *PunchJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_punch_events", 1*time.Hour, j.AutoCloseStalePunchEvents)
}

// AutoCloseStalePunchEvents punches out events left open on previous days so
// forgotten punch-ins stop accruing into reports.
func (j *PunchJobs) AutoCloseStalePunchEvents(ctx context.Context) error {
	// Only run during the first hour of the UTC day
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	closed, err := j.punchService.CloseStale(ctx)
	if err != nil {
		return err
	}

	if closed > 0 {
		slog.Info("Cron: closed stale punch events", "count", closed)
	}
	return nil
}

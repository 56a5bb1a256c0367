package worker

import (
	"context"
	"fmt"

	"github.com/Owennied/HimmyGames/internal/farm"
	"github.com/Owennied/HimmyGames/internal/logger"
)

// TickJob runs one farmer pass on the farm
type TickJob struct {
	farm farm.Service
}

// NewTickJob creates a tick job for svc
func NewTickJob(svc farm.Service) *TickJob {
	return &TickJob{farm: svc}
}

// Process ticks the farm. A failed save after a tick is reported as an error.
func (j *TickJob) Process(ctx context.Context) error {
	report, err := j.farm.Tick(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgTickFailed,
			"harvested", len(report.Harvests),
			"replanted", len(report.Replants),
			"error", err)
		return fmt.Errorf("%s: %w", farm.TickJobName, err)
	}
	return nil
}

// AutosaveJob writes the farm to its store
type AutosaveJob struct {
	farm farm.Service
}

// NewAutosaveJob creates an autosave job for svc
func NewAutosaveJob(svc farm.Service) *AutosaveJob {
	return &AutosaveJob{farm: svc}
}

// Process saves the farm
func (j *AutosaveJob) Process(ctx context.Context) error {
	if err := j.farm.Save(ctx); err != nil {
		logger.FromContext(ctx).Warn(LogMsgAutosaveFailed, "error", err)
		return err
	}
	return nil
}

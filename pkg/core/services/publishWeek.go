package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/SojoC/nexo-ppeam/internal/config"
	"github.com/SojoC/nexo-ppeam/pkg/core/scheduler"
)

// WeekPublisher writes a built week to an external spreadsheet
type WeekPublisher interface {
	PublishWeek(spreadsheetID string, week *scheduler.WeekSchedule) error
}

// PublishWeekSchedule publishes the given week to the configured schedule
// spreadsheet
func PublishWeekSchedule(ctx context.Context, publisher WeekPublisher, cfg *config.Config, logger *zap.Logger, week *scheduler.WeekSchedule) error {
	if cfg.ScheduleSheetID == "" {
		return fmt.Errorf("scheduleSheetID is not configured")
	}

	logger.Debug("Publishing week schedule",
		zap.String("schedule_id", week.ID),
		zap.String("spreadsheet_id", cfg.ScheduleSheetID))

	if err := publisher.PublishWeek(cfg.ScheduleSheetID, week); err != nil {
		return fmt.Errorf("failed to publish week schedule: %w", err)
	}

	logger.Info("Week schedule published",
		zap.String("schedule_id", week.ID),
		zap.String("start", week.Start.Format(scheduler.ISODateFormat)))

	return nil
}

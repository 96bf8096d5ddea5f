package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/SojoC/nexo-ppeam/internal/config"
	"github.com/SojoC/nexo-ppeam/pkg/core/scheduler"
	"github.com/SojoC/nexo-ppeam/pkg/roster"
)

// WeekOptions carries the caller-controlled inputs of a week build
type WeekOptions struct {
	// Start anchors the 7-day window; expected to be a Monday but any
	// weekday is accepted
	Start time.Time

	// Selected location IDs; an empty selection produces a week with no
	// assignments
	Selected []string

	// Overrides holds per-date customization; may be nil
	Overrides *scheduler.OverrideStore

	// Exclusive enables cross-location roster consumption per day
	Exclusive bool
}

// BuildWeekSchedule fetches the roster and builds the 7-day schedule.
// Roster retrieval is fail-open: a provider error is logged and the week is
// built with an empty roster, so every slot renders empty instead of the
// build failing.
func BuildWeekSchedule(ctx context.Context, provider roster.Provider, cfg *config.Config, logger *zap.Logger, opts WeekOptions) (*scheduler.WeekSchedule, error) {
	locations, err := cfg.LocationTable()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve location table: %w", err)
	}

	logger.Debug("Fetching roster")
	people, err := roster.FailOpen(provider, logger).ListPeople(ctx)
	if err != nil {
		// FailOpen never returns an error; guard anyway
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}
	logger.Debug("Roster fetched", zap.Int("people", len(people)))

	week := scheduler.BuildWeek(scheduler.WeekRequest{
		Start:      opts.Start,
		Locations:  locations,
		Selected:   opts.Selected,
		Roster:     people,
		TimeLabels: cfg.DefaultTimeLabels(),
		Overrides:  opts.Overrides,
		Exclusive:  opts.Exclusive,
	})

	logger.Info("Week schedule built",
		zap.String("schedule_id", week.ID),
		zap.String("start", week.Start.Format(scheduler.ISODateFormat)),
		zap.Int("locations_selected", len(opts.Selected)),
		zap.Int("roster_size", len(people)))

	return week, nil
}

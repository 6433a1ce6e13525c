// Package services – LogService
//
// This file implements LogService, which governs workout completion records.
// It validates status and fatigue values, enforces plan-day ownership, and
// upserts the single log row per (user, day). Service-level sentinel errors
// are returned for predictable cases so handlers can map them to HTTP
// results consistently.
package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/fitai-one/go-fitness-backend/internal/domain"
	"github.com/fitai-one/go-fitness-backend/internal/repo"
	"github.com/fitai-one/go-fitness-backend/internal/utils"
)

// LogService implements the use-cases around workout logs.
type LogService struct {
	DB *gorm.DB
}

// Save upserts a completion record for (userID, planDayID).
//
// Semantics and validation:
//   - status must be one of done/skipped/partial; otherwise ErrInvalidInput.
//   - fatigue, when present, must be in [1,5]; otherwise ErrInvalidInput.
//   - planDayID must exist; otherwise ErrDayNotFound.
//   - The day must belong to a plan owned by userID; otherwise ErrForbiddenDay.
//   - A second save for the same day updates the existing row and refreshes
//     logged_at; created reports whether a new row was inserted.
//
// Nothing is written when any validation fails.
func (s *LogService) Save(ctx context.Context, userID, planDayID, status string, fatigue *int, notes *string) (*domain.WorkoutLog, bool, error) {
	switch status {
	case domain.StatusDone, domain.StatusSkipped, domain.StatusPartial:
	default:
		return nil, false, fmt.Errorf("%w: status must be one of done, skipped, partial", ErrInvalidInput)
	}
	if fatigue != nil && (*fatigue < 1 || *fatigue > 5) {
		return nil, false, fmt.Errorf("%w: fatigue_rating must be between 1 and 5", ErrInvalidInput)
	}

	_, ownerID, err := repo.GetPlanDay(ctx, s.DB, planDayID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, false, ErrDayNotFound
		}
		return nil, false, err
	}
	if ownerID != userID {
		return nil, false, ErrForbiddenDay
	}

	created := false
	if _, err := repo.GetLogForDay(ctx, s.DB, userID, planDayID); errors.Is(err, repo.ErrNotFound) {
		created = true
	} else if err != nil {
		return nil, false, err
	}

	log, err := repo.UpsertLog(ctx, s.DB, userID, planDayID, status, fatigue, notes)
	if err != nil {
		return nil, false, err
	}
	return log, created, nil
}

// LogStats aggregates a listed page of logs.
type LogStats struct {
	TotalLogged    int      `json:"total_logged"`
	Completed      int      `json:"completed"`
	Skipped        int      `json:"skipped"`
	Partial        int      `json:"partial"`
	AverageFatigue *float64 `json:"average_fatigue"`
}

// List returns the user's logs ordered by logged_at descending, optionally
// bounded to the 7-day window starting at weekStart, along with aggregate
// stats over the returned rows. limit defaults to 50 and is capped at 100.
func (s *LogService) List(ctx context.Context, userID, weekStart string, limit int) ([]repo.LogRow, LogStats, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}

	from, to := "", ""
	if weekStart != "" {
		if !utils.ValidDate(weekStart) {
			return nil, LogStats{}, fmt.Errorf("%w: week_start must be YYYY-MM-DD", ErrInvalidInput)
		}
		weekEnd, err := utils.AddDays(weekStart, 6)
		if err != nil {
			return nil, LogStats{}, err
		}
		from, to = weekStart, weekEnd
	}

	rows, err := repo.ListLogs(ctx, s.DB, userID, from, to, limit)
	if err != nil {
		return nil, LogStats{}, err
	}

	stats := LogStats{TotalLogged: len(rows)}
	fatigueSum, fatigueCount := 0, 0
	for _, row := range rows {
		switch row.Status {
		case domain.StatusDone:
			stats.Completed++
		case domain.StatusSkipped:
			stats.Skipped++
		case domain.StatusPartial:
			stats.Partial++
		}
		if row.FatigueRating != nil {
			fatigueSum += *row.FatigueRating
			fatigueCount++
		}
	}
	if fatigueCount > 0 {
		avg := math.Round(float64(fatigueSum)/float64(fatigueCount)*10) / 10
		stats.AverageFatigue = &avg
	}
	return rows, stats, nil
}

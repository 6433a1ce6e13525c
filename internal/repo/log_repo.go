// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for workout logs.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitai-one/go-fitness-backend/internal/domain"
)

// GetLogForDay fetches the user's log for a plan day, or ErrNotFound.
func GetLogForDay(ctx context.Context, db *gorm.DB, userID, planDayID string) (*domain.WorkoutLog, error) {
	var l domain.WorkoutLog
	err := db.WithContext(ctx).
		Where("user_id = ? AND plan_day_id = ?", userID, planDayID).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// UpsertLog records a completion for (userID, planDayID). An existing row is
// updated in place with a refreshed logged_at; otherwise a new row is
// inserted. The caller is responsible for ownership and value validation.
func UpsertLog(ctx context.Context, db *gorm.DB, userID, planDayID, status string, fatigue *int, notes *string) (*domain.WorkoutLog, error) {
	now := time.Now().UTC()

	var existing domain.WorkoutLog
	err := db.WithContext(ctx).
		Where("user_id = ? AND plan_day_id = ?", userID, planDayID).
		First(&existing).Error
	switch {
	case err == nil:
		updates := map[string]any{
			"status":         status,
			"fatigue_rating": fatigue,
			"notes":          notes,
			"logged_at":      now,
		}
		if err := db.WithContext(ctx).Model(&domain.WorkoutLog{}).
			Where("id = ?", existing.ID).
			Updates(updates).Error; err != nil {
			return nil, err
		}
		existing.Status = status
		existing.FatigueRating = fatigue
		existing.Notes = notes
		existing.LoggedAt = now
		return &existing, nil
	case err != gorm.ErrRecordNotFound:
		return nil, err
	}

	l := &domain.WorkoutLog{
		ID:            uuid.NewString(),
		PlanDayID:     planDayID,
		UserID:        userID,
		Status:        status,
		FatigueRating: fatigue,
		Notes:         notes,
		LoggedAt:      now,
	}
	if err := db.WithContext(ctx).Create(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

// LogRow is a workout log joined with its day and week for list responses.
type LogRow struct {
	ID            string    `json:"id"`
	PlanDayID     string    `json:"plan_day_id"`
	Date          string    `json:"date"`
	Title         string    `json:"title"`
	WeekStart     string    `json:"week_start"`
	Status        string    `json:"status"`
	FatigueRating *int      `json:"fatigue_rating"`
	Notes         *string   `json:"notes"`
	LoggedAt      time.Time `json:"logged_at"`
}

// ListLogs returns the user's logs ordered by logged_at descending, joined
// with plan day metadata. When from/to are non-empty they bound the plan
// day's calendar date (inclusive). limit caps the result set.
func ListLogs(ctx context.Context, db *gorm.DB, userID, from, to string, limit int) ([]LogRow, error) {
	q := db.WithContext(ctx).
		Model(&domain.WorkoutLog{}).
		Select(`workout_logs.id, workout_logs.plan_day_id, workout_logs.status,
			workout_logs.fatigue_rating, workout_logs.notes, workout_logs.logged_at,
			plan_days.date, plan_days.title, plans.week_start`).
		Joins("JOIN plan_days ON plan_days.id = workout_logs.plan_day_id").
		Joins("JOIN plans ON plans.id = plan_days.plan_id").
		Where("workout_logs.user_id = ?", userID)

	if from != "" && to != "" {
		q = q.Where("plan_days.date BETWEEN ? AND ?", from, to)
	}

	var rows []LogRow
	err := q.Order("workout_logs.logged_at DESC").Limit(limit).Scan(&rows).Error
	return rows, err
}

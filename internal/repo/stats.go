// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the aggregate queries behind the
// dashboard projection: today's and the next session, weekly completion
// counts, streak inputs, and recent activity. Each function is context-aware
// and performs reads only.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/fitai-one/go-fitness-backend/internal/domain"
)

// DayWithStatus is a plan day joined with the user's log status, if any.
type DayWithStatus struct {
	domain.PlanDay
	Status        *string
	FatigueRating *int
}

// TodayDay returns the plan day in planID dated exactly `date`, with the
// user's log status when one exists, or ErrNotFound.
func TodayDay(ctx context.Context, db *gorm.DB, userID, planID, date string) (*DayWithStatus, error) {
	var row DayWithStatus
	err := db.WithContext(ctx).
		Model(&domain.PlanDay{}).
		Select("plan_days.*, workout_logs.status, workout_logs.fatigue_rating").
		Joins("LEFT JOIN workout_logs ON workout_logs.plan_day_id = plan_days.id AND workout_logs.user_id = ?", userID).
		Where("plan_days.plan_id = ? AND plan_days.date = ?", planID, date).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// NextUnloggedDay returns the earliest-dated day in planID strictly after
// `date` that has no log from the user yet (regardless of status), or
// ErrNotFound.
func NextUnloggedDay(ctx context.Context, db *gorm.DB, userID, planID, date string) (*domain.PlanDay, error) {
	var d domain.PlanDay
	err := db.WithContext(ctx).
		Model(&domain.PlanDay{}).
		Select("plan_days.*").
		Joins("LEFT JOIN workout_logs ON workout_logs.plan_day_id = plan_days.id AND workout_logs.user_id = ?", userID).
		Where("plan_days.plan_id = ? AND plan_days.date > ? AND workout_logs.id IS NULL", planID, date).
		Order("plan_days.date ASC").
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// WeekCompletion counts a plan's days and how many of them the user has
// logged as done.
func WeekCompletion(ctx context.Context, db *gorm.DB, userID, planID string) (totalDays, completedDays int, err error) {
	var row struct {
		Total     int
		Completed int
	}
	err = db.WithContext(ctx).
		Model(&domain.PlanDay{}).
		Select(`COUNT(plan_days.id) AS total,
			COALESCE(SUM(CASE WHEN workout_logs.status = 'done' THEN 1 ELSE 0 END), 0) AS completed`).
		Joins("LEFT JOIN workout_logs ON workout_logs.plan_day_id = plan_days.id AND workout_logs.user_id = ?", userID).
		Where("plan_days.plan_id = ?", planID).
		Scan(&row).Error
	return row.Total, row.Completed, err
}

// DoneDates returns the distinct plan-day dates the user has logged as done,
// most recent first. This is the input to the streak walk.
func DoneDates(ctx context.Context, db *gorm.DB, userID string) ([]string, error) {
	var dates []string
	err := db.WithContext(ctx).
		Model(&domain.WorkoutLog{}).
		Distinct("plan_days.date").
		Joins("JOIN plan_days ON plan_days.id = workout_logs.plan_day_id").
		Where("workout_logs.user_id = ? AND workout_logs.status = ?", userID, domain.StatusDone).
		Order("plan_days.date DESC").
		Pluck("plan_days.date", &dates).Error
	return dates, err
}

// ActivityRow is one recent-activity entry: a log plus its day's metadata.
type ActivityRow struct {
	Date          string    `json:"date"`
	Title         string    `json:"title"`
	Status        string    `json:"status"`
	FatigueRating *int      `json:"fatigue_rating"`
	LoggedAt      time.Time `json:"logged_at"`
}

// RecentActivity returns the user's most recently logged workouts, ordered
// by logged_at descending.
func RecentActivity(ctx context.Context, db *gorm.DB, userID string, limit int) ([]ActivityRow, error) {
	var rows []ActivityRow
	err := db.WithContext(ctx).
		Model(&domain.WorkoutLog{}).
		Select("plan_days.date, plan_days.title, workout_logs.status, workout_logs.fatigue_rating, workout_logs.logged_at").
		Joins("JOIN plan_days ON plan_days.id = workout_logs.plan_day_id").
		Where("workout_logs.user_id = ?", userID).
		Order("workout_logs.logged_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// CountDone returns the user's lifetime count of done logs.
func CountDone(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&domain.WorkoutLog{}).
		Where("user_id = ? AND status = ?", userID, domain.StatusDone).
		Count(&n).Error
	return n, err
}

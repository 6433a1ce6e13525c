// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for Plan
// aggregates (plan + days + items).
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions. They follow the "thin repository"
// approach: no business logic, only CRUD persistence and query composition.
//
// Error semantics:
//   - When a plan is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fitai-one/go-fitness-backend/internal/domain"
	"github.com/fitai-one/go-fitness-backend/internal/planner"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for consistency across the service
// layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// GetPlan fetches the plan header for (userID, weekStart), or ErrNotFound.
func GetPlan(ctx context.Context, db *gorm.DB, userID, weekStart string) (*domain.Plan, error) {
	var p domain.Plan
	err := db.WithContext(ctx).
		Where("user_id = ? AND week_start = ?", userID, weekStart).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPlanDays returns a plan's days ordered by day_order ascending.
func ListPlanDays(ctx context.Context, db *gorm.DB, planID string) ([]domain.PlanDay, error) {
	var out []domain.PlanDay
	err := db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("day_order asc").
		Find(&out).Error
	return out, err
}

// ListPlanItems returns a day's items ordered by order_index ascending.
func ListPlanItems(ctx context.Context, db *gorm.DB, planDayID string) ([]domain.PlanItem, error) {
	var out []domain.PlanItem
	err := db.WithContext(ctx).
		Where("plan_day_id = ?", planDayID).
		Order("order_index asc").
		Find(&out).Error
	return out, err
}

// GetPlanDay fetches a plan day joined with its owning plan's user id, so
// callers can enforce ownership without a second query. Returns ErrNotFound
// when the day does not exist.
func GetPlanDay(ctx context.Context, db *gorm.DB, planDayID string) (*domain.PlanDay, string, error) {
	var row struct {
		domain.PlanDay
		OwnerID string
	}
	err := db.WithContext(ctx).
		Model(&domain.PlanDay{}).
		Select("plan_days.*, plans.user_id AS owner_id").
		Joins("JOIN plans ON plans.id = plan_days.plan_id").
		Where("plan_days.id = ?", planDayID).
		First(&row).Error
	if err != nil {
		return nil, "", err
	}
	return &row.PlanDay, row.OwnerID, nil
}

// ReplacePlan atomically persists a generated week for (userID, weekStart):
// within one transaction it deletes any existing plan for that week
// (cascading to days, items, and their logs), inserts the new plan row, then
// inserts days in array order (day_order = index) and items in session order
// (order_index = index). On any failure the transaction rolls back and no
// partial plan is visible.
//
// The unique index on (user_id, week_start) backstops concurrent calls: the
// loser of a delete/insert race fails on the constraint instead of leaving a
// duplicate plan behind.
func ReplacePlan(ctx context.Context, db *gorm.DB, userID, weekStart string, week *planner.WeekPlan, isAdjusted bool) (*domain.Plan, error) {
	plan := &domain.Plan{
		ID:         uuid.NewString(),
		UserID:     userID,
		WeekStart:  weekStart,
		Principles: jsonOrEmptyArray(week.Principles),
		Notes:      jsonOrEmptyArray(week.Notes),
		IsAdjusted: isAdjusted,
		CreatedAt:  time.Now().UTC(),
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Plan
		err := tx.Where("user_id = ? AND week_start = ?", userID, weekStart).First(&existing).Error
		switch {
		case err == nil:
			// Delete bottom-up so the replacement never depends on the
			// driver enforcing ON DELETE CASCADE.
			var dayIDs []string
			if err := tx.Model(&domain.PlanDay{}).Where("plan_id = ?", existing.ID).Pluck("id", &dayIDs).Error; err != nil {
				return err
			}
			if len(dayIDs) > 0 {
				if err := tx.Where("plan_day_id IN ?", dayIDs).Delete(&domain.WorkoutLog{}).Error; err != nil {
					return err
				}
				if err := tx.Where("plan_day_id IN ?", dayIDs).Delete(&domain.PlanItem{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("plan_id = ?", existing.ID).Delete(&domain.PlanDay{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&domain.Plan{}, "id = ?", existing.ID).Error; err != nil {
				return err
			}
		case err != gorm.ErrRecordNotFound:
			return err
		}

		if err := tx.Create(plan).Error; err != nil {
			return err
		}

		for dayOrder, day := range week.Days {
			pd := &domain.PlanDay{
				ID:               uuid.NewString(),
				PlanID:           plan.ID,
				Date:             day.Date,
				Title:            day.Title,
				EstimatedMinutes: day.Minutes(),
				DayOrder:         dayOrder,
			}
			if err := tx.Create(pd).Error; err != nil {
				return err
			}

			for orderIndex, sess := range day.Sessions {
				item := &domain.PlanItem{
					ID:           uuid.NewString(),
					PlanDayID:    pd.ID,
					ExerciseName: sess.Exercise,
					Sets:         sess.Sets,
					Reps:         string(sess.Reps),
					RestSec:      sess.Rest(),
					Notes:        sess.Notes,
					OrderIndex:   orderIndex,
				}
				if err := tx.Create(item).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// jsonOrEmptyArray stores the raw document as-is, substituting an empty JSON
// array for absent blobs the way the original API did.
func jsonOrEmptyArray(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 {
		return datatypes.JSON([]byte(`[]`))
	}
	return datatypes.JSON(raw)
}

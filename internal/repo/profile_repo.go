// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for user profiles
// and the exercise catalog.
package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitai-one/go-fitness-backend/internal/domain"
)

// GetProfile fetches the profile owned by userID, or ErrNotFound.
func GetProfile(ctx context.Context, db *gorm.DB, userID string) (*domain.UserProfile, error) {
	var p domain.UserProfile
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile applies the given column updates to userID's profile,
// creating the row first when none exists yet.
func UpdateProfile(ctx context.Context, db *gorm.DB, userID string, updates map[string]any) (*domain.UserProfile, error) {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.UserProfile
		err := tx.Where("user_id = ?", userID).First(&existing).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			if err := tx.Create(&domain.UserProfile{ID: uuid.NewString(), UserID: userID}).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		}
		return tx.Model(&domain.UserProfile{}).
			Where("user_id = ?", userID).
			Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return GetProfile(ctx, db, userID)
}

// ExerciseFilter narrows a catalog listing. Empty fields match everything.
type ExerciseFilter struct {
	Equipment   string
	MuscleGroup string
	Difficulty  string
}

// ListExercises returns catalog rows matching the filter, ordered by muscle
// group, difficulty, then name.
func ListExercises(ctx context.Context, db *gorm.DB, f ExerciseFilter) ([]domain.Exercise, error) {
	q := db.WithContext(ctx).Model(&domain.Exercise{})
	if f.Equipment != "" {
		q = q.Where("equipment = ?", f.Equipment)
	}
	if f.MuscleGroup != "" {
		q = q.Where("muscle_group = ?", f.MuscleGroup)
	}
	if f.Difficulty != "" {
		q = q.Where("difficulty = ?", f.Difficulty)
	}
	var out []domain.Exercise
	err := q.Order("muscle_group, difficulty, name").Find(&out).Error
	return out, err
}

// ListPlannerExercises returns the candidate exercises for plan generation:
// bodyweight rows plus those matching the profile's equipment, ordered the
// way the planning service expects them.
func ListPlannerExercises(ctx context.Context, db *gorm.DB, equipment string) ([]domain.Exercise, error) {
	var out []domain.Exercise
	err := db.WithContext(ctx).
		Where("equipment IN ?", []string{"none", equipment}).
		Order("muscle_group, difficulty").
		Find(&out).Error
	return out, err
}

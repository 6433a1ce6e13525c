// Package services – ExerciseService
//
// Read-only access to the exercise catalog, with the grouped-by-muscle-group
// view the workout builder UI consumes.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/fitai-one/go-fitness-backend/internal/domain"
	"github.com/fitai-one/go-fitness-backend/internal/repo"
)

// ExerciseService lists catalog exercises.
type ExerciseService struct {
	DB *gorm.DB
}

// List returns exercises matching the filter plus a map keyed by muscle
// group, in catalog order (muscle group, difficulty, name).
func (s *ExerciseService) List(ctx context.Context, f repo.ExerciseFilter) ([]domain.Exercise, map[string][]domain.Exercise, error) {
	rows, err := repo.ListExercises(ctx, s.DB, f)
	if err != nil {
		return nil, nil, err
	}
	grouped := make(map[string][]domain.Exercise)
	for _, ex := range rows {
		grouped[ex.MuscleGroup] = append(grouped[ex.MuscleGroup], ex)
	}
	return rows, grouped, nil
}

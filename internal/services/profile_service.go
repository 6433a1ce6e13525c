// Package services – ProfileService
//
// This file implements ProfileService, which reads and updates a user's
// training profile. Updates are partial: only fields present in the request
// are touched, each validated against its allowed values before anything is
// written. Availability and social links are opaque JSON stored verbatim.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fitai-one/go-fitness-backend/internal/domain"
	"github.com/fitai-one/go-fitness-backend/internal/repo"
)

// ProfileService provides profile read/update operations.
type ProfileService struct {
	DB *gorm.DB
}

// ProfileUpdate is a partial profile change; nil fields are left untouched.
type ProfileUpdate struct {
	DisplayName    *string
	Bio            *string
	Goal           *string
	Level          *string
	DaysPerWeek    *int
	SessionMinutes *int
	Equipment      *string
	Constraints    *string
	Availability   json.RawMessage
	SocialLinks    json.RawMessage
}

var (
	allowedGoals     = map[string]bool{"fat_loss": true, "muscle_gain": true, "maintenance": true}
	allowedLevels    = map[string]bool{"beginner": true, "intermediate": true, "advanced": true}
	allowedEquipment = map[string]bool{"none": true, "home": true, "gym": true}
)

// Get returns userID's profile, or ErrProfileNotFound.
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	p, err := repo.GetProfile(ctx, s.DB, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update validates and applies a partial profile update, creating the
// profile row when the user has none yet. An update with no fields set is
// rejected with ErrInvalidInput.
func (s *ProfileService) Update(ctx context.Context, userID string, in ProfileUpdate) (*domain.UserProfile, error) {
	updates := map[string]any{}

	if in.Goal != nil {
		if !allowedGoals[*in.Goal] {
			return nil, fmt.Errorf("%w: goal must be one of fat_loss, muscle_gain, maintenance", ErrInvalidInput)
		}
		updates["goal"] = *in.Goal
	}
	if in.Level != nil {
		if !allowedLevels[*in.Level] {
			return nil, fmt.Errorf("%w: level must be one of beginner, intermediate, advanced", ErrInvalidInput)
		}
		updates["level"] = *in.Level
	}
	if in.Equipment != nil {
		if !allowedEquipment[*in.Equipment] {
			return nil, fmt.Errorf("%w: equipment must be one of none, home, gym", ErrInvalidInput)
		}
		updates["equipment"] = *in.Equipment
	}
	if in.DaysPerWeek != nil {
		if *in.DaysPerWeek < 3 || *in.DaysPerWeek > 6 {
			return nil, fmt.Errorf("%w: days_per_week must be between 3 and 6", ErrInvalidInput)
		}
		updates["days_per_week"] = *in.DaysPerWeek
	}
	if in.SessionMinutes != nil {
		if *in.SessionMinutes < 20 || *in.SessionMinutes > 90 {
			return nil, fmt.Errorf("%w: session_minutes must be between 20 and 90", ErrInvalidInput)
		}
		updates["session_minutes"] = *in.SessionMinutes
	}
	if in.DisplayName != nil {
		updates["display_name"] = *in.DisplayName
	}
	if in.Bio != nil {
		updates["bio"] = *in.Bio
	}
	if in.Constraints != nil {
		updates["constraints_text"] = *in.Constraints
	}
	if in.Availability != nil {
		updates["availability"] = datatypes.JSON(in.Availability)
	}
	if in.SocialLinks != nil {
		updates["social_links"] = datatypes.JSON(in.SocialLinks)
	}

	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	return repo.UpdateProfile(ctx, s.DB, userID, updates)
}

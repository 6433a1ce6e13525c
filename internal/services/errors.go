// Package services defines the business logic for profiles, plan
// generation, workout logging, and the dashboard projection. This file
// centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer;
// translation into user-facing messages or HTTP status codes is performed
// at the handler layer.
package services

import "errors"

var (
	// ErrProfileNotFound indicates the user has no profile row yet.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrProfileIncomplete is returned when plan generation is requested
	// before goal, level, and equipment are all set.
	ErrProfileIncomplete = errors.New("please complete your profile first")

	// ErrNoCurrentPlan is returned by the adjustment flow when the current
	// week has no plan to adjust from.
	ErrNoCurrentPlan = errors.New("no current week plan found, generate a plan first")

	// ErrPlanNotFound indicates no plan exists for the requested week.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrDayNotFound indicates the referenced plan day does not exist.
	ErrDayNotFound = errors.New("plan day not found")

	// ErrForbiddenDay is returned when a user attempts to log a day that
	// belongs to another user's plan.
	ErrForbiddenDay = errors.New("plan day belongs to another user")

	// ErrInvalidInput wraps field validation failures (bad enum value,
	// out-of-range rating, malformed date). The wrapped message names the
	// offending field.
	ErrInvalidInput = errors.New("invalid input")
)

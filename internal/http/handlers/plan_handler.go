// Plan HTTP handlers.
//
// This file exposes REST endpoints for weekly training plans:
//   - GET  /plans              (current or requested week, with per-day logs)
//   - POST /plans/generate     (create the current week's plan if absent)
//   - POST /plans/regenerate   (force-replace the current week's plan)
//   - POST /plans/adjust       (derive next week's plan from this week's logs)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results (including planning-service failures) into HTTP
// responses.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fitai-one/go-fitness-backend/internal/domain"
	"github.com/fitai-one/go-fitness-backend/internal/http/middleware"
	"github.com/fitai-one/go-fitness-backend/internal/planner"
	"github.com/fitai-one/go-fitness-backend/internal/repo"
	"github.com/fitai-one/go-fitness-backend/internal/services"
	"github.com/fitai-one/go-fitness-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// ProfileService defines profile read/update operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ProfileService interface {
	// Get returns the user's profile.
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
	// Update applies a partial profile change, creating the row when absent.
	Update(ctx context.Context, userID string, in services.ProfileUpdate) (*domain.UserProfile, error)
}

// ExerciseService defines exercise catalog reads.
type ExerciseService interface {
	// List returns filtered exercises plus the same rows grouped by muscle group.
	List(ctx context.Context, f repo.ExerciseFilter) ([]domain.Exercise, map[string][]domain.Exercise, error)
}

// PlanService defines weekly plan lifecycle operations.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type PlanService interface {
	// CurrentWeekStart returns the Monday of the current week (UTC).
	CurrentWeekStart() string
	// Get returns the assembled plan for a week.
	Get(ctx context.Context, userID, weekStart string) (*services.PlanView, error)
	// Generate creates the current week's plan; force replaces an existing one.
	Generate(ctx context.Context, userID string, force bool) (*services.PlanView, bool, error)
	// Adjust derives next week's plan from the current week's outcomes.
	Adjust(ctx context.Context, userID string) (*services.AdjustResult, error)
}

// LogService defines workout log writes and listing.
type LogService interface {
	// Save upserts the completion record for a plan day.
	Save(ctx context.Context, userID, planDayID, status string, fatigue *int, notes *string) (*domain.WorkoutLog, bool, error)
	// List returns logs newest-first with aggregate stats.
	List(ctx context.Context, userID, weekStart string, limit int) ([]repo.LogRow, services.LogStats, error)
}

// DashboardService defines the dashboard aggregation read.
type DashboardService interface {
	// Compute assembles today's session, next session, weekly completion,
	// streak, and recent activity for the user.
	Compute(ctx context.Context, userID string) (*services.Stats, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for profiles, exercises, plans, logs, and
// the dashboard. It depends on abstract service interfaces to keep transport
// concerns separate from business logic.
type Handlers struct {
	profileSvc  ProfileService
	exerciseSvc ExerciseService
	planSvc     PlanService
	logSvc      LogService
	dashSvc     DashboardService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(profileSvc ProfileService, exerciseSvc ExerciseService, planSvc PlanService, logSvc LogService, dashSvc DashboardService) *Handlers {
	return &Handlers{
		profileSvc:  profileSvc,
		exerciseSvc: exerciseSvc,
		planSvc:     planSvc,
		logSvc:      logSvc,
		dashSvc:     dashSvc,
	}
}

// userID extracts the authenticated user id from Gin context (set by the
// session middleware). If absent, it falls back to "X-User-ID" header (tests
// use it), and finally to "demo-user". It never touches c.Request if it's nil.
func userID(c *gin.Context) string {
	if s := middleware.UserID(c); s != "" {
		return s
	}
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			return h
		}
	}
	return "demo-user"
}

// failService translates service and gateway sentinel errors into the HTTP
// error envelope. Unknown errors become 500 internal_error.
func failService(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, services.ErrProfileIncomplete):
		fail(c, http.StatusBadRequest, ErrCodeProfileIncomplete, err.Error())
	case errors.Is(err, services.ErrNoCurrentPlan):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, services.ErrProfileNotFound),
		errors.Is(err, services.ErrPlanNotFound),
		errors.Is(err, services.ErrDayNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, services.ErrForbiddenDay):
		fail(c, http.StatusForbidden, ErrCodeForbidden, err.Error())
	case errors.Is(err, planner.ErrUnavailable):
		fail(c, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "AI service unavailable")
	case errors.Is(err, planner.ErrUpstream):
		fail(c, http.StatusBadGateway, ErrCodeUpstreamError, "AI service returned an error")
	case errors.Is(err, planner.ErrInvalidResponse):
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "AI service returned an invalid plan")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}

//
// DTOs
//

// PlanResponse wraps a plan payload.
type PlanResponse struct {
	Success bool               `json:"success"`
	HasPlan bool               `json:"has_plan"`
	Plan    *services.PlanView `json:"plan"`
}

// GenerateResponse is returned by generate/regenerate.
type GenerateResponse struct {
	Success bool               `json:"success"`
	Created bool               `json:"created"`
	Plan    *services.PlanView `json:"plan"`
}

// AdjustResponse is returned by the adjustment endpoint.
type AdjustResponse struct {
	Success     bool                `json:"success"`
	Plan        *services.PlanView  `json:"plan"`
	LogsSummary planner.LogsSummary `json:"logs_summary"`
}

//
// Handlers
//

// GetPlan godoc
// @ID          getPlan
// @Summary     Get a week's plan
// @Description Returns the plan for the requested week (default: current week) with per-day logs. has_plan=false when the week has no plan.
// @Tags        Plans
// @Produce     json
//
// @Param       week_start  query  string  false  "Week start (Monday, YYYY-MM-DD)"  example(2026-08-31)
//
// @Success     200  {object}  handlers.PlanResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /plans [get]
func (h *Handlers) GetPlan(c *gin.Context) {
	weekStart := strings.TrimSpace(c.Query("week_start"))
	if weekStart == "" {
		weekStart = h.planSvc.CurrentWeekStart()
	} else if !utils.ValidDate(weekStart) {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "week_start must be YYYY-MM-DD")
		return
	}

	plan, err := h.planSvc.Get(c.Request.Context(), userID(c), weekStart)
	if err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			// An empty week is a normal state, not an error.
			ok(c, http.StatusOK, PlanResponse{Success: true, HasPlan: false})
			return
		}
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, PlanResponse{Success: true, HasPlan: true, Plan: plan})
}

// GeneratePlan godoc
// @ID          generatePlan
// @Summary     Generate the current week's plan
// @Description Calls the AI planning service and persists the plan. If the week already has a plan it is returned unchanged.
// @Tags        Plans
// @Accept      json
// @Produce     json
//
// @Success     200  {object}  handlers.GenerateResponse  "Existing plan returned"
// @Success     201  {object}  handlers.GenerateResponse  "Plan created"
// @Failure     400  {object}  handlers.ErrorResponse  "Profile incomplete"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     403  {object}  handlers.ErrorResponse  "CSRF failure"
// @Failure     502  {object}  handlers.ErrorResponse  "AI service error"
// @Failure     503  {object}  handlers.ErrorResponse  "AI service unavailable"
// @Router      /plans/generate [post]
func (h *Handlers) GeneratePlan(c *gin.Context) {
	plan, created, err := h.planSvc.Generate(c.Request.Context(), userID(c), false)
	if err != nil {
		failService(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ok(c, status, GenerateResponse{Success: true, Created: created, Plan: plan})
}

// RegeneratePlan godoc
// @ID          regeneratePlan
// @Summary     Regenerate the current week's plan
// @Description Calls the AI planning service and atomically replaces the current week's plan, discarding the old days and sessions.
// @Tags        Plans
// @Accept      json
// @Produce     json
//
// @Success     201  {object}  handlers.GenerateResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Profile incomplete"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     403  {object}  handlers.ErrorResponse  "CSRF failure"
// @Failure     502  {object}  handlers.ErrorResponse  "AI service error"
// @Failure     503  {object}  handlers.ErrorResponse  "AI service unavailable"
// @Router      /plans/regenerate [post]
func (h *Handlers) RegeneratePlan(c *gin.Context) {
	plan, created, err := h.planSvc.Generate(c.Request.Context(), userID(c), true)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusCreated, GenerateResponse{Success: true, Created: created, Plan: plan})
}

// AdjustPlan godoc
// @ID          adjustPlan
// @Summary     Generate next week's plan from this week's outcomes
// @Description Summarizes the current week's logs, sends them with the previous plan to the AI planning service, and persists the adjusted plan for next week.
// @Tags        Plans
// @Accept      json
// @Produce     json
//
// @Success     201  {object}  handlers.AdjustResponse
// @Failure     400  {object}  handlers.ErrorResponse  "No current plan to adjust from"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     403  {object}  handlers.ErrorResponse  "CSRF failure"
// @Failure     502  {object}  handlers.ErrorResponse  "AI service error"
// @Failure     503  {object}  handlers.ErrorResponse  "AI service unavailable"
// @Router      /plans/adjust [post]
func (h *Handlers) AdjustPlan(c *gin.Context) {
	res, err := h.planSvc.Adjust(c.Request.Context(), userID(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusCreated, AdjustResponse{Success: true, Plan: res.Plan, LogsSummary: res.LogsSummary})
}

// Package services – PlanService
//
// This file implements PlanService, the application-level component that
// owns the weekly plan lifecycle: reading a week's plan with per-day logs,
// generating the current week through the AI planning gateway, forced
// regeneration, and producing next week's adjusted plan from the current
// week's logs.
//
// The service never persists anything until the gateway has returned a
// valid week: validation and upstream failures abort before the transaction
// opens, so a failed generation leaves prior state untouched.
//
// Observability: the mutating methods are OpenTelemetry-instrumented; spans
// carry the user id and target week.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/fitai-one/go-fitness-backend/internal/domain"
	"github.com/fitai-one/go-fitness-backend/internal/planner"
	"github.com/fitai-one/go-fitness-backend/internal/repo"
	"github.com/fitai-one/go-fitness-backend/internal/utils"
)

// PlanService coordinates the plan generation flow between the profile
// store, the exercise catalog, the AI planning gateway, and the plan store.
type PlanService struct {
	DB       *gorm.DB
	Provider planner.Service

	// Now is the clock used to compute the current week; tests pin it.
	Now func() time.Time
}

// NewPlanService constructs a PlanService using the real clock.
func NewPlanService(db *gorm.DB, provider planner.Service) *PlanService {
	return &PlanService{DB: db, Provider: provider, Now: time.Now}
}

// DayView is one day of a plan as served to clients: the day, its ordered
// sessions, and the user's log when one exists.
type DayView struct {
	ID               string            `json:"id"`
	Date             string            `json:"date"`
	Title            string            `json:"title"`
	EstimatedMinutes int               `json:"estimated_minutes"`
	Sessions         []domain.PlanItem `json:"sessions"`
	Log              *LogView          `json:"log"`
}

// LogView is the log subset embedded in a DayView.
type LogView struct {
	Status        string    `json:"status"`
	FatigueRating *int      `json:"fatigue_rating"`
	Notes         *string   `json:"notes"`
	LoggedAt      time.Time `json:"logged_at"`
}

// PlanView is a fully assembled week: header, ordered days, and the opaque
// principles/notes documents passed through from the planning service.
type PlanView struct {
	ID         string          `json:"id"`
	WeekStart  string          `json:"week_start"`
	Days       []DayView       `json:"days"`
	Principles json.RawMessage `json:"principles"`
	Notes      json.RawMessage `json:"notes"`
	IsAdjusted bool            `json:"is_adjusted"`
	CreatedAt  time.Time       `json:"created_at"`
}

// CurrentWeekStart returns the Monday of the service clock's current week.
func (s *PlanService) CurrentWeekStart() string {
	return utils.WeekStart(s.Now().UTC())
}

// Get returns the assembled plan for (userID, weekStart), or ErrPlanNotFound
// when the week has no plan. Days come back ordered by day_order, sessions
// by order_index.
func (s *PlanService) Get(ctx context.Context, userID, weekStart string) (*PlanView, error) {
	plan, err := repo.GetPlan(ctx, s.DB, userID, weekStart)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return s.assemble(ctx, userID, plan)
}

// Generate produces the current week's plan. When a plan already exists and
// force is false, the existing plan is returned unchanged with created=false.
// Otherwise the gateway is called and the result atomically replaces the
// week; created=true on success.
func (s *PlanService) Generate(ctx context.Context, userID string, force bool) (*PlanView, bool, error) {
	tr := otel.Tracer("services/PlanService")
	ctx, span := tr.Start(ctx, "Generate",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.Bool("force", force),
		),
	)
	defer span.End()

	weekStart := s.CurrentWeekStart()

	if !force {
		if existing, err := s.Get(ctx, userID, weekStart); err == nil {
			return existing, false, nil
		} else if !errors.Is(err, ErrPlanNotFound) {
			return nil, false, err
		}
	}

	req, err := s.buildRequest(ctx, userID, weekStart)
	if err != nil {
		return nil, false, err
	}

	week, err := s.Provider.GeneratePlan(ctx, *req)
	if err != nil {
		return nil, false, err
	}

	plan, err := repo.ReplacePlan(ctx, s.DB, userID, weekStart, week, false)
	if err != nil {
		return nil, false, err
	}

	view, err := s.assemble(ctx, userID, plan)
	if err != nil {
		return nil, false, err
	}
	return view, true, nil
}

// AdjustResult carries the adjusted plan plus the logs summary the
// adjustment was based on.
type AdjustResult struct {
	Plan        *PlanView
	LogsSummary planner.LogsSummary
}

// Adjust produces next week's plan from the current week's outcomes. It
// fails with ErrNoCurrentPlan when the current week has nothing to adjust
// from. On success the new plan replaces any existing plan for next week and
// is flagged is_adjusted.
func (s *PlanService) Adjust(ctx context.Context, userID string) (*AdjustResult, error) {
	tr := otel.Tracer("services/PlanService")
	ctx, span := tr.Start(ctx, "Adjust",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	weekStart := s.CurrentWeekStart()
	nextWeekStart, err := utils.AddDays(weekStart, 7)
	if err != nil {
		return nil, err
	}

	current, err := repo.GetPlan(ctx, s.DB, userID, weekStart)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNoCurrentPlan
		}
		return nil, err
	}

	summaries, logsSummary, err := s.summarizeWeek(ctx, userID, current)
	if err != nil {
		return nil, err
	}

	req, err := s.buildRequest(ctx, userID, nextWeekStart)
	if err != nil {
		return nil, err
	}

	week, err := s.Provider.AdjustPlan(ctx, planner.AdjustRequest{
		PlanRequest: *req,
		PreviousPlan: planner.PreviousPlan{
			WeekStart:  current.WeekStart,
			Principles: json.RawMessage(current.Principles),
			Days:       summaries,
		},
		LogsSummary: logsSummary,
	})
	if err != nil {
		return nil, err
	}

	plan, err := repo.ReplacePlan(ctx, s.DB, userID, nextWeekStart, week, true)
	if err != nil {
		return nil, err
	}

	view, err := s.assemble(ctx, userID, plan)
	if err != nil {
		return nil, err
	}
	return &AdjustResult{Plan: view, LogsSummary: logsSummary}, nil
}

// buildRequest loads the profile and candidate exercises and shapes the
// upstream payload. Generation is refused until goal, level, and equipment
// are all set.
func (s *PlanService) buildRequest(ctx context.Context, userID, weekStart string) (*planner.PlanRequest, error) {
	profile, err := repo.GetProfile(ctx, s.DB, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProfileIncomplete
		}
		return nil, err
	}
	if profile.Goal == "" || profile.Level == "" || profile.Equipment == "" {
		return nil, ErrProfileIncomplete
	}

	exercises, err := repo.ListPlannerExercises(ctx, s.DB, profile.Equipment)
	if err != nil {
		return nil, err
	}

	catalog := make([]planner.CatalogExercise, 0, len(exercises))
	for _, ex := range exercises {
		catalog = append(catalog, planner.CatalogExercise{
			Name:        ex.Name,
			MuscleGroup: ex.MuscleGroup,
			Equipment:   ex.Equipment,
			Difficulty:  ex.Difficulty,
			Description: ex.Description,
		})
	}

	return &planner.PlanRequest{
		UserID:    userID,
		WeekStart: weekStart,
		Profile: planner.Profile{
			Goal:           profile.Goal,
			Level:          profile.Level,
			DaysPerWeek:    profile.DaysPerWeek,
			SessionMinutes: profile.SessionMinutes,
			Equipment:      profile.Equipment,
			Constraints:    profile.Constraints,
			Availability:   json.RawMessage(profile.Availability),
		},
		Exercises: catalog,
	}, nil
}

// summarizeWeek walks the plan's days with their logs and builds both the
// day-by-day summary and the aggregate logs summary sent upstream. A day
// without a log reports status "pending". The completion rate is rounded to
// the nearest percent; average fatigue to one decimal, omitted entirely when
// no day carries a rating.
func (s *PlanService) summarizeWeek(ctx context.Context, userID string, plan *domain.Plan) ([]planner.DaySummary, planner.LogsSummary, error) {
	days, err := repo.ListPlanDays(ctx, s.DB, plan.ID)
	if err != nil {
		return nil, planner.LogsSummary{}, err
	}

	summaries := make([]planner.DaySummary, 0, len(days))
	completed := 0
	fatigueSum := 0
	fatigueCount := 0

	for _, day := range days {
		sum := planner.DaySummary{
			Date:   day.Date,
			Title:  day.Title,
			Status: domain.StatusPending,
		}
		log, err := repo.GetLogForDay(ctx, s.DB, userID, day.ID)
		switch {
		case err == nil:
			sum.Status = log.Status
			sum.FatigueRating = log.FatigueRating
			sum.Notes = log.Notes
			if log.Status == domain.StatusDone {
				completed++
			}
			if log.FatigueRating != nil {
				fatigueSum += *log.FatigueRating
				fatigueCount++
			}
		case !errors.Is(err, repo.ErrNotFound):
			return nil, planner.LogsSummary{}, err
		}
		summaries = append(summaries, sum)
	}

	summary := planner.LogsSummary{
		CompletedDays: completed,
		TotalDays:     len(days),
	}
	if len(days) > 0 {
		summary.CompletionRate = int(math.Round(float64(completed) / float64(len(days)) * 100))
	}
	if fatigueCount > 0 {
		avg := math.Round(float64(fatigueSum)/float64(fatigueCount)*10) / 10
		summary.AverageFatigue = &avg
	}
	return summaries, summary, nil
}

// assemble loads a plan's days, items, and logs into a PlanView.
func (s *PlanService) assemble(ctx context.Context, userID string, plan *domain.Plan) (*PlanView, error) {
	days, err := repo.ListPlanDays(ctx, s.DB, plan.ID)
	if err != nil {
		return nil, err
	}

	views := make([]DayView, 0, len(days))
	for _, day := range days {
		items, err := repo.ListPlanItems(ctx, s.DB, day.ID)
		if err != nil {
			return nil, err
		}
		dv := DayView{
			ID:               day.ID,
			Date:             day.Date,
			Title:            day.Title,
			EstimatedMinutes: day.EstimatedMinutes,
			Sessions:         items,
		}
		log, err := repo.GetLogForDay(ctx, s.DB, userID, day.ID)
		switch {
		case err == nil:
			dv.Log = &LogView{
				Status:        log.Status,
				FatigueRating: log.FatigueRating,
				Notes:         log.Notes,
				LoggedAt:      log.LoggedAt,
			}
		case !errors.Is(err, repo.ErrNotFound):
			return nil, err
		}
		views = append(views, dv)
	}

	return &PlanView{
		ID:         plan.ID,
		WeekStart:  plan.WeekStart,
		Days:       views,
		Principles: json.RawMessage(plan.Principles),
		Notes:      json.RawMessage(plan.Notes),
		IsAdjusted: plan.IsAdjusted,
		CreatedAt:  plan.CreatedAt,
	}, nil
}

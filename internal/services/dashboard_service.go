// Package services – DashboardService
//
// This file implements the read-side dashboard projection: today's and the
// next upcoming session, weekly completion, the consecutive-day streak,
// recent activity, and the lifetime completion count. The projection is
// recomputed on every request from the plan and log tables; it performs no
// writes and keeps no cache.
package services

import (
	"context"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/fitai-one/go-fitness-backend/internal/domain"
	"github.com/fitai-one/go-fitness-backend/internal/repo"
	"github.com/fitai-one/go-fitness-backend/internal/utils"
)

// DashboardService computes derived statistics for one user.
type DashboardService struct {
	DB *gorm.DB

	// Now is the clock defining "today"; tests pin it.
	Now func() time.Time
}

// NewDashboardService constructs a DashboardService using the real clock.
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db, Now: time.Now}
}

// TodaySession is today's planned session with its items and log status
// ("pending" when unlogged).
type TodaySession struct {
	ID               string            `json:"id"`
	Date             string            `json:"date"`
	Title            string            `json:"title"`
	EstimatedMinutes int               `json:"estimated_minutes"`
	Status           string            `json:"status"`
	Exercises        []domain.PlanItem `json:"exercises"`
}

// NextSession is the next unlogged session strictly after today.
type NextSession struct {
	ID               string `json:"id"`
	Date             string `json:"date"`
	Title            string `json:"title"`
	EstimatedMinutes int    `json:"estimated_minutes"`
}

// Stats is the full dashboard payload.
type Stats struct {
	TodaySession      *TodaySession      `json:"today_session"`
	NextSession       *NextSession       `json:"next_session"`
	HasPlan           bool               `json:"has_plan"`
	WeekStart         string             `json:"week_start"`
	WeeklyCompletion  int                `json:"weekly_completion"`
	CompletedThisWeek int                `json:"completed_this_week"`
	TotalThisWeek     int                `json:"total_this_week"`
	CurrentStreak     int                `json:"current_streak"`
	TotalCompleted    int64              `json:"total_completed"`
	RecentActivity    []repo.ActivityRow `json:"recent_activity"`
}

// Compute assembles the dashboard for userID. A user without a current-week
// plan still gets streak, recent activity, and lifetime totals.
func (s *DashboardService) Compute(ctx context.Context, userID string) (*Stats, error) {
	tr := otel.Tracer("services/DashboardService")
	ctx, span := tr.Start(ctx, "Compute",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	now := s.Now().UTC()
	today := now.Format(utils.DateLayout)
	weekStart := utils.WeekStart(now)

	out := &Stats{WeekStart: weekStart, RecentActivity: []repo.ActivityRow{}}

	plan, err := repo.GetPlan(ctx, s.DB, userID, weekStart)
	switch {
	case err == nil:
		out.HasPlan = true
		if err := s.fillWeek(ctx, out, userID, plan.ID, today); err != nil {
			return nil, err
		}
	case !errors.Is(err, repo.ErrNotFound):
		return nil, err
	}

	dates, err := repo.DoneDates(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}
	out.CurrentStreak = streak(dates, today)

	recent, err := repo.RecentActivity(ctx, s.DB, userID, 5)
	if err != nil {
		return nil, err
	}
	if recent != nil {
		out.RecentActivity = recent
	}

	total, err := repo.CountDone(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}
	out.TotalCompleted = total

	return out, nil
}

// fillWeek populates the plan-dependent fields: today's session, the next
// unlogged session, and the weekly completion percentage.
func (s *DashboardService) fillWeek(ctx context.Context, out *Stats, userID, planID, today string) error {
	day, err := repo.TodayDay(ctx, s.DB, userID, planID, today)
	switch {
	case err == nil:
		items, err := repo.ListPlanItems(ctx, s.DB, day.ID)
		if err != nil {
			return err
		}
		status := domain.StatusPending
		if day.Status != nil {
			status = *day.Status
		}
		out.TodaySession = &TodaySession{
			ID:               day.ID,
			Date:             day.Date,
			Title:            day.Title,
			EstimatedMinutes: day.EstimatedMinutes,
			Status:           status,
			Exercises:        items,
		}
	case !errors.Is(err, repo.ErrNotFound):
		return err
	}

	next, err := repo.NextUnloggedDay(ctx, s.DB, userID, planID, today)
	switch {
	case err == nil:
		out.NextSession = &NextSession{
			ID:               next.ID,
			Date:             next.Date,
			Title:            next.Title,
			EstimatedMinutes: next.EstimatedMinutes,
		}
	case !errors.Is(err, repo.ErrNotFound):
		return err
	}

	total, completed, err := repo.WeekCompletion(ctx, s.DB, userID, planID)
	if err != nil {
		return err
	}
	out.TotalThisWeek = total
	out.CompletedThisWeek = completed
	if total > 0 {
		out.WeeklyCompletion = int(math.Round(float64(completed) / float64(total) * 100))
	}
	return nil
}

// streak counts consecutive done-days ending at the most recent done date.
// dates must be sorted descending. The streak is 0 unless the most recent
// done date is today or yesterday; otherwise it walks backwards, advancing a
// one-day cursor while each next date stays within one day of it, and stops
// at the first larger gap. Dates that fail to parse end the walk.
func streak(dates []string, today string) int {
	if len(dates) == 0 {
		return 0
	}
	todayT, err := time.Parse(utils.DateLayout, today)
	if err != nil {
		return 0
	}
	lastT, err := time.Parse(utils.DateLayout, dates[0])
	if err != nil {
		return 0
	}
	if absDays(todayT.Sub(lastT)) > 1 {
		return 0
	}

	count := 0
	cursor := lastT
	for _, d := range dates {
		t, err := time.Parse(utils.DateLayout, d)
		if err != nil {
			break
		}
		if absDays(cursor.Sub(t)) > 1 {
			break
		}
		count++
		cursor = t.AddDate(0, 0, -1)
	}
	return count
}

// absDays converts a duration between date-only timestamps to whole days.
func absDays(d time.Duration) int {
	days := int(d.Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}

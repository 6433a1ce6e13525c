package repo

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fitai-one/go-fitness-backend/internal/domain"
)

func newStatsDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("stats_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := db.AutoMigrate(&domain.Plan{}, &domain.PlanDay{}, &domain.WorkoutLog{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

// seedWeek creates a plan with days at the given dates, returning the plan id
// and the day ids in input order.
func seedWeek(t *testing.T, db *gorm.DB, userID, weekStart string, dates []string) (string, []string) {
	t.Helper()
	planID := "plan-" + userID + "-" + weekStart
	if err := db.Create(&domain.Plan{ID: planID, UserID: userID, WeekStart: weekStart}).Error; err != nil {
		t.Fatalf("seed plan: %v", err)
	}
	ids := make([]string, 0, len(dates))
	for i, d := range dates {
		id := fmt.Sprintf("%s-day%d", planID, i)
		if err := db.Create(&domain.PlanDay{ID: id, PlanID: planID, Date: d, Title: "Day " + d, DayOrder: i}).Error; err != nil {
			t.Fatalf("seed day: %v", err)
		}
		ids = append(ids, id)
	}
	return planID, ids
}

func logDay(t *testing.T, db *gorm.DB, userID, dayID, status string, loggedAt time.Time) {
	t.Helper()
	err := db.Create(&domain.WorkoutLog{
		ID:        fmt.Sprintf("log-%s-%s", userID, dayID),
		PlanDayID: dayID,
		UserID:    userID,
		Status:    status,
		LoggedAt:  loggedAt,
	}).Error
	if err != nil {
		t.Fatalf("seed log: %v", err)
	}
}

func TestTodayDay_WithAndWithoutLog(t *testing.T) {
	db := newStatsDB(t)
	ctx := context.Background()
	planID, days := seedWeek(t, db, "u1", "2026-08-31", []string{"2026-08-31", "2026-09-02"})

	// no log yet
	row, err := TodayDay(ctx, db, "u1", planID, "2026-08-31")
	if err != nil {
		t.Fatalf("TodayDay: %v", err)
	}
	if row.Status != nil {
		t.Fatalf("expected nil status for unlogged day, got %v", *row.Status)
	}

	logDay(t, db, "u1", days[0], domain.StatusDone, time.Now().UTC())
	row, err = TodayDay(ctx, db, "u1", planID, "2026-08-31")
	if err != nil {
		t.Fatalf("TodayDay after log: %v", err)
	}
	if row.Status == nil || *row.Status != domain.StatusDone {
		t.Fatalf("expected done status, got %+v", row)
	}

	// another user's log must not leak into the join
	row2, err := TodayDay(ctx, db, "u2", planID, "2026-08-31")
	if err != nil {
		t.Fatalf("TodayDay other user: %v", err)
	}
	if row2.Status != nil {
		t.Fatalf("status leaked across users: %v", *row2.Status)
	}

	// a date the plan does not contain
	if _, err := TodayDay(ctx, db, "u1", planID, "2026-09-05"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNextUnloggedDay_SkipsLoggedRegardlessOfStatus(t *testing.T) {
	db := newStatsDB(t)
	ctx := context.Background()
	planID, days := seedWeek(t, db, "u1", "2026-08-31", []string{"2026-08-31", "2026-09-02", "2026-09-04"})

	// skipping still counts as logged
	logDay(t, db, "u1", days[1], domain.StatusSkipped, time.Now().UTC())

	next, err := NextUnloggedDay(ctx, db, "u1", planID, "2026-08-31")
	if err != nil {
		t.Fatalf("NextUnloggedDay: %v", err)
	}
	if next.Date != "2026-09-04" {
		t.Fatalf("next = %s, want 2026-09-04", next.Date)
	}

	logDay(t, db, "u1", days[2], domain.StatusDone, time.Now().UTC())
	if _, err := NextUnloggedDay(ctx, db, "u1", planID, "2026-08-31"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound when everything after today is logged, got %v", err)
	}
}

func TestWeekCompletion_CountsOnlyDone(t *testing.T) {
	db := newStatsDB(t)
	ctx := context.Background()
	planID, days := seedWeek(t, db, "u1", "2026-08-31", []string{"2026-08-31", "2026-09-02", "2026-09-04", "2026-09-06"})

	logDay(t, db, "u1", days[0], domain.StatusDone, time.Now().UTC())
	logDay(t, db, "u1", days[1], domain.StatusSkipped, time.Now().UTC())
	logDay(t, db, "u1", days[2], domain.StatusPartial, time.Now().UTC())

	total, completed, err := WeekCompletion(ctx, db, "u1", planID)
	if err != nil {
		t.Fatalf("WeekCompletion: %v", err)
	}
	if total != 4 || completed != 1 {
		t.Fatalf("total=%d completed=%d, want 4/1", total, completed)
	}
}

func TestDoneDates_DistinctDescending(t *testing.T) {
	db := newStatsDB(t)
	ctx := context.Background()
	_, week1 := seedWeek(t, db, "u1", "2026-08-24", []string{"2026-08-24", "2026-08-26"})
	_, week2 := seedWeek(t, db, "u1", "2026-08-31", []string{"2026-08-31"})

	now := time.Now().UTC()
	logDay(t, db, "u1", week1[0], domain.StatusDone, now.Add(-48*time.Hour))
	logDay(t, db, "u1", week1[1], domain.StatusSkipped, now.Add(-24*time.Hour)) // not done
	logDay(t, db, "u1", week2[0], domain.StatusDone, now)

	dates, err := DoneDates(ctx, db, "u1")
	if err != nil {
		t.Fatalf("DoneDates: %v", err)
	}
	want := []string{"2026-08-31", "2026-08-24"}
	if len(dates) != len(want) {
		t.Fatalf("dates = %v, want %v", dates, want)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("dates = %v, want %v", dates, want)
		}
	}
}

func TestRecentActivity_And_CountDone(t *testing.T) {
	db := newStatsDB(t)
	ctx := context.Background()
	_, days := seedWeek(t, db, "u1", "2026-08-31", []string{"2026-08-31", "2026-09-02", "2026-09-04"})

	base := time.Now().UTC().Add(-time.Hour)
	logDay(t, db, "u1", days[0], domain.StatusDone, base)
	logDay(t, db, "u1", days[1], domain.StatusDone, base.Add(10*time.Minute))
	logDay(t, db, "u1", days[2], domain.StatusSkipped, base.Add(20*time.Minute))

	rows, err := RecentActivity(ctx, db, "u1", 2)
	if err != nil {
		t.Fatalf("RecentActivity: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 (limit)", len(rows))
	}
	if rows[0].Date != "2026-09-04" || rows[1].Date != "2026-09-02" {
		t.Fatalf("ordering unexpected: %+v", rows)
	}
	if rows[0].Title == "" {
		t.Fatalf("joined title missing")
	}

	n, err := CountDone(ctx, db, "u1")
	if err != nil {
		t.Fatalf("CountDone: %v", err)
	}
	if n != 2 {
		t.Fatalf("done count = %d, want 2", n)
	}
}

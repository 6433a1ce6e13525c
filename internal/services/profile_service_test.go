package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fitai-one/go-fitness-backend/internal/repo"
)

func strp(s string) *string { return &s }

func TestProfileService_Get_NotFound(t *testing.T) {
	db := newServicesDB(t)
	s := &ProfileService{DB: db}

	if _, err := s.Get(context.Background(), "nobody"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("err = %v, want ErrProfileNotFound", err)
	}
}

func TestProfileService_Update_CreatesAndReads(t *testing.T) {
	db := newServicesDB(t)
	s := &ProfileService{DB: db}

	p, err := s.Update(context.Background(), "u1", ProfileUpdate{
		DisplayName:  strp("Alex"),
		Goal:         strp("fat_loss"),
		Level:        strp("beginner"),
		Equipment:    strp("none"),
		Availability: json.RawMessage(`{"mon":true,"wed":true}`),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p.DisplayName != "Alex" || p.Goal != "fat_loss" {
		t.Fatalf("unexpected profile: %+v", p)
	}
	// Schema defaults survive a partial create.
	if p.DaysPerWeek != 3 || p.SessionMinutes != 45 {
		t.Fatalf("defaults = %d/%d, want 3/45", p.DaysPerWeek, p.SessionMinutes)
	}

	got, err := s.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got.Availability) != `{"mon":true,"wed":true}` {
		t.Fatalf("availability = %s", got.Availability)
	}
}

func TestProfileService_Update_PartialKeepsOtherFields(t *testing.T) {
	db := newServicesDB(t)
	s := &ProfileService{DB: db}

	if _, err := s.Update(context.Background(), "u1", ProfileUpdate{
		Goal: strp("muscle_gain"), Level: strp("advanced"), Equipment: strp("gym"),
	}); err != nil {
		t.Fatalf("seed Update: %v", err)
	}

	days := 5
	p, err := s.Update(context.Background(), "u1", ProfileUpdate{DaysPerWeek: &days})
	if err != nil {
		t.Fatalf("partial Update: %v", err)
	}
	if p.DaysPerWeek != 5 {
		t.Fatalf("days_per_week = %d, want 5", p.DaysPerWeek)
	}
	if p.Goal != "muscle_gain" || p.Level != "advanced" || p.Equipment != "gym" {
		t.Fatalf("partial update clobbered other fields: %+v", p)
	}
}

func TestProfileService_Update_Validation(t *testing.T) {
	db := newServicesDB(t)
	s := &ProfileService{DB: db}

	bad := []struct {
		name string
		in   ProfileUpdate
	}{
		{"no fields", ProfileUpdate{}},
		{"bad goal", ProfileUpdate{Goal: strp("get_swole")}},
		{"bad level", ProfileUpdate{Level: strp("elite")}},
		{"bad equipment", ProfileUpdate{Equipment: strp("kettlebells")}},
		{"days too low", ProfileUpdate{DaysPerWeek: intp(2)}},
		{"days too high", ProfileUpdate{DaysPerWeek: intp(7)}},
		{"minutes too low", ProfileUpdate{SessionMinutes: intp(15)}},
		{"minutes too high", ProfileUpdate{SessionMinutes: intp(120)}},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.Update(context.Background(), "u1", tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
		})
	}

	// Nothing was persisted for any rejected update.
	if _, err := s.Get(context.Background(), "u1"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("profile row created by rejected update")
	}
}

func TestExerciseService_List_Grouped(t *testing.T) {
	db := newServicesDB(t)
	seedExercise(t, db, "Bench Press", "chest", "gym")
	seedExercise(t, db, "Push Up", "chest", "none")
	seedExercise(t, db, "Deadlift", "back", "gym")

	s := &ExerciseService{DB: db}
	rows, grouped, err := s.List(context.Background(), repo.ExerciseFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if len(grouped["chest"]) != 2 || len(grouped["back"]) != 1 {
		t.Fatalf("unexpected grouping: %v", grouped)
	}

	rows, grouped, err = s.List(context.Background(), repo.ExerciseFilter{MuscleGroup: "chest"})
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if len(rows) != 2 || len(grouped) != 1 {
		t.Fatalf("filtered rows = %d, groups = %d, want 2/1", len(rows), len(grouped))
	}
}

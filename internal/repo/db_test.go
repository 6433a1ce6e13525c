package repo

import (
	"path/filepath"
	"testing"

	"github.com/fitai-one/go-fitness-backend/internal/domain"
)

func TestOpen_UnknownDriver(t *testing.T) {
	if _, err := Open("oracle", "whatever"); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestOpenSQLite_MissingParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "app.db")
	if _, err := OpenSQLite(path); err == nil {
		t.Fatalf("expected error when parent directory is missing")
	}
}

func TestOpenSQLite_AndAutoMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")
	db, err := Open("sqlite", path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}

	// every table exists and accepts a basic query
	for _, m := range []any{
		&domain.Session{}, &domain.UserProfile{}, &domain.Exercise{},
		&domain.Plan{}, &domain.PlanDay{}, &domain.PlanItem{}, &domain.WorkoutLog{},
	} {
		var n int64
		if err := db.Model(m).Count(&n).Error; err != nil {
			t.Fatalf("count %T: %v", m, err)
		}
	}
}

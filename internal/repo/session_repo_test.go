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

func newSessionRepoDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("session_repo_test_%d.db", time.Now().UnixNano()))
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
	if err := db.AutoMigrate(&domain.Session{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestGetSession_ValidExpiredUnknown(t *testing.T) {
	db := newSessionRepoDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	seed := []domain.Session{
		{ID: "tok-live", UserID: "u1", CSRFToken: "csrf-1", ExpiresAt: now.Add(time.Hour)},
		{ID: "tok-dead", UserID: "u1", CSRFToken: "csrf-2", ExpiresAt: now.Add(-time.Minute)},
	}
	for _, s := range seed {
		if err := db.Create(&s).Error; err != nil {
			t.Fatalf("seed session: %v", err)
		}
	}

	s, err := GetSession(ctx, db, "tok-live", now)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if s.UserID != "u1" || s.CSRFToken != "csrf-1" {
		t.Fatalf("unexpected session: %+v", s)
	}

	if _, err := GetSession(ctx, db, "tok-dead", now); err != ErrNotFound {
		t.Fatalf("expired session should be absent, got %v", err)
	}
	if _, err := GetSession(ctx, db, "tok-nope", now); err != ErrNotFound {
		t.Fatalf("unknown token should be absent, got %v", err)
	}
}

// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the read side of the sessions table,
// which is written by the auth frontend and only consulted here.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/fitai-one/go-fitness-backend/internal/domain"
)

// GetSession resolves a session token to its row, treating expired sessions
// as absent. Returns ErrNotFound for unknown or expired tokens.
func GetSession(ctx context.Context, db *gorm.DB, token string, now time.Time) (*domain.Session, error) {
	var s domain.Session
	err := db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", token, now).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

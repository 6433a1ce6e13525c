// Package domain defines the persistence models for training profiles,
// the exercise catalog, weekly workout plans, and workout logs. These types
// are mapped with GORM and form the core data layer of the fitness backend.
package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Session is an authenticated session issued by the auth frontend. This
// service never creates sessions; it only resolves the session cookie to a
// user id and checks the CSRF token on mutating requests.
//
// Fields:
//   - ID: opaque session token carried by the cookie (char(64)).
//   - UserID: owner of the session; indexed for lookups.
//   - CSRFToken: per-session token compared against X-CSRF-Token.
//   - ExpiresAt: sessions past this instant are treated as absent.
type Session struct {
	ID        string    `json:"-"          gorm:"type:char(64);primaryKey"`
	UserID    string    `json:"user_id"    gorm:"type:varchar(64);not null;index"`
	CSRFToken string    `json:"-"          gorm:"type:char(64);not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Session.
func (Session) TableName() string { return "sessions" }

// UserProfile holds one user's training preferences. Goal, level, and
// equipment must all be set before plan generation is permitted.
//
// Availability and SocialLinks are opaque JSON documents stored verbatim;
// their shape is owned by the client and the AI service, not by this schema.
type UserProfile struct {
	ID             string         `json:"-"               gorm:"type:char(36);primaryKey"`
	UserID         string         `json:"user_id"         gorm:"type:varchar(64);not null;uniqueIndex"`
	DisplayName    string         `json:"display_name"    gorm:"type:varchar(120)"`
	Bio            string         `json:"bio"             gorm:"type:text"`
	Goal           string         `json:"goal"            gorm:"type:varchar(32)"` // fat_loss | muscle_gain | maintenance
	Level          string         `json:"level"           gorm:"type:varchar(32)"` // beginner | intermediate | advanced
	DaysPerWeek    int            `json:"days_per_week"   gorm:"default:3"`
	SessionMinutes int            `json:"session_minutes" gorm:"default:45"`
	Equipment      string         `json:"equipment"       gorm:"type:varchar(16)"` // none | home | gym
	Constraints    string         `json:"constraints"     gorm:"column:constraints_text;type:text"`
	Availability   datatypes.JSON `json:"availability,omitempty"`
	SocialLinks    datatypes.JSON `json:"social_links,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// TableName returns the database table name for UserProfile.
func (UserProfile) TableName() string { return "user_profiles" }

// Exercise is a static catalog row. The planning flow only reads it; rows
// are maintained out of band (seed data / admin tooling).
type Exercise struct {
	ID           string `json:"id"           gorm:"type:char(36);primaryKey"`
	Name         string `json:"name"         gorm:"type:varchar(120);not null;index"`
	MuscleGroup  string `json:"muscle_group" gorm:"type:varchar(48);not null;index"`
	Equipment    string `json:"equipment"    gorm:"type:varchar(16);not null;index"` // none | home | gym
	Difficulty   string `json:"difficulty"   gorm:"type:varchar(32);not null"`
	Description  string `json:"description"  gorm:"type:text"`
	Instructions string `json:"instructions" gorm:"type:text"`
}

// TableName returns the database table name for Exercise.
func (Exercise) TableName() string { return "exercises" }

// Plan is one user's workout schedule for one calendar week, identified by
// the Monday of that week. Principles and Notes are opaque JSON passed
// through from the AI planning service.
//
// The unique index on (user_id, week_start) makes concurrent generations for
// the same week race-safe: replacement is delete+insert inside one
// transaction, and the loser of a race fails on the constraint instead of
// leaving duplicate rows.
type Plan struct {
	ID         string         `json:"id"          gorm:"type:char(36);primaryKey"`
	UserID     string         `json:"user_id"     gorm:"type:varchar(64);not null;uniqueIndex:ux_plan_user_week,priority:1"`
	WeekStart  string         `json:"week_start"  gorm:"type:date;not null;uniqueIndex:ux_plan_user_week,priority:2"` // YYYY-MM-DD, always a Monday
	Principles datatypes.JSON `json:"principles"`
	Notes      datatypes.JSON `json:"notes"`
	IsAdjusted bool           `json:"is_adjusted" gorm:"not null;default:false"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"-"`
}

// TableName returns the database table name for Plan.
func (Plan) TableName() string { return "plans" }

// PlanDay is one calendar day within a Plan. DayOrder is the position in the
// AI response's days array, which normally but not contractually matches the
// calendar order.
type PlanDay struct {
	ID               string    `json:"id"                gorm:"type:char(36);primaryKey"`
	PlanID           string    `json:"-"                 gorm:"type:char(36);not null;index"`
	Date             string    `json:"date"              gorm:"type:date;not null;index"` // YYYY-MM-DD
	Title            string    `json:"title"             gorm:"type:varchar(200);not null"`
	EstimatedMinutes int       `json:"estimated_minutes" gorm:"not null;default:45"`
	DayOrder         int       `json:"day_order"         gorm:"not null"`
	CreatedAt        time.Time `json:"-"`

	// Plan is the owning week. Days are cascade-deleted with their plan.
	Plan Plan `json:"-" gorm:"foreignKey:PlanID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for PlanDay.
func (PlanDay) TableName() string { return "plan_days" }

// PlanItem is one prescribed exercise within a PlanDay. ExerciseName is free
// text, not a foreign key into the catalog: the AI service's output is
// persisted verbatim.
type PlanItem struct {
	ID           string `json:"id"            gorm:"type:char(36);primaryKey"`
	PlanDayID    string `json:"-"             gorm:"type:char(36);not null;index"`
	ExerciseName string `json:"exercise"      gorm:"type:varchar(160);not null"`
	Sets         int    `json:"sets"          gorm:"not null"`
	Reps         string `json:"reps"          gorm:"type:varchar(40);not null"` // "8-12", "30 sec", ...
	RestSec      int    `json:"rest_sec"      gorm:"not null;default:60"`
	Notes        string `json:"notes,omitempty" gorm:"type:text"`
	OrderIndex   int    `json:"order_index"   gorm:"not null"`

	// PlanDay is the owning day. Items are cascade-deleted with their day.
	PlanDay PlanDay `json:"-" gorm:"foreignKey:PlanDayID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for PlanItem.
func (PlanItem) TableName() string { return "plan_items" }

// WorkoutLog is a user's self-reported completion record for one PlanDay.
// At most one log exists per (user, day); saving again updates the row and
// refreshes LoggedAt. The log is the sole source of completion truth: plan
// rows are never mutated to reflect it.
type WorkoutLog struct {
	ID            string    `json:"id"             gorm:"type:char(36);primaryKey"`
	PlanDayID     string    `json:"plan_day_id"    gorm:"type:char(36);not null;index;uniqueIndex:ux_log_user_day,priority:2"`
	UserID        string    `json:"user_id"        gorm:"type:varchar(64);not null;index;uniqueIndex:ux_log_user_day,priority:1"`
	Status        string    `json:"status"         gorm:"type:varchar(16);not null;check:status IN ('done','skipped','partial')"`
	FatigueRating *int      `json:"fatigue_rating,omitempty"` // 1..5 when present
	Notes         *string   `json:"notes,omitempty" gorm:"type:text"`
	LoggedAt      time.Time `json:"logged_at"      gorm:"not null;index"`

	// PlanDay is the logged session. Logs are cascade-deleted with their day.
	PlanDay PlanDay `json:"-" gorm:"foreignKey:PlanDayID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for WorkoutLog.
func (WorkoutLog) TableName() string { return "workout_logs" }

// Workout log status values.
const (
	StatusDone    = "done"
	StatusSkipped = "skipped"
	StatusPartial = "partial"
	StatusPending = "pending" // derived: a day with no log
)

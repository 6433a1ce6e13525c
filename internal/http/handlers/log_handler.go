// Workout log HTTP handlers.
//
// This file exposes REST endpoints for workout completion records:
//   - POST /logs  (upsert the record for a plan day)
//   - GET  /logs  (list newest-first with aggregate stats)
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fitai-one/go-fitness-backend/internal/domain"
	"github.com/fitai-one/go-fitness-backend/internal/repo"
	"github.com/fitai-one/go-fitness-backend/internal/services"
	"github.com/fitai-one/go-fitness-backend/internal/utils"
)

//
// DTOs
//

// SaveLogRequest is the JSON payload for recording a day's outcome. Posting
// again for the same day overwrites the previous record.
type SaveLogRequest struct {
	// PlanDayID references the plan day being logged.
	PlanDayID string `json:"plan_day_id" binding:"required" format:"uuid" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	// Status is the day's outcome.
	Status string `json:"status" binding:"required" enums:"done,skipped,partial" example:"done"`
	// FatigueRating optionally rates the session from 1 (fresh) to 5 (exhausted).
	FatigueRating *int `json:"fatigue_rating" minimum:"1" maximum:"5" example:"3"`
	// Notes optionally carries free-form session notes.
	Notes *string `json:"notes" example:"felt strong on squats"`
}

// SaveLogResponse wraps the stored record.
type SaveLogResponse struct {
	Success bool               `json:"success"`
	Created bool               `json:"created"`
	Log     *domain.WorkoutLog `json:"log"`
}

// ListLogsResponse wraps a listed page of logs with aggregate stats.
type ListLogsResponse struct {
	Success bool              `json:"success"`
	Logs    []repo.LogRow     `json:"logs"`
	Stats   services.LogStats `json:"stats"`
}

//
// Handlers
//

// SaveLog godoc
// @ID          saveLog
// @Summary     Record a workout day's outcome
// @Description Upserts the completion record for a plan day owned by the current user. Re-posting replaces the previous record and refreshes its timestamp.
// @Tags        Logs
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.SaveLogRequest  true  "Log payload"
//
// @Success     200  {object}  handlers.SaveLogResponse  "Existing record updated"
// @Success     201  {object}  handlers.SaveLogResponse  "Record created"
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failure"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     403  {object}  handlers.ErrorResponse  "Day belongs to another user / CSRF failure"
// @Failure     404  {object}  handlers.ErrorResponse  "Plan day not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /logs [post]
func (h *Handlers) SaveLog(c *gin.Context) {
	var req SaveLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "plan_day_id and status are required")
		return
	}
	if _, err := uuid.Parse(req.PlanDayID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "plan_day_id must be a UUID")
		return
	}

	log, created, err := h.logSvc.Save(c.Request.Context(), userID(c), req.PlanDayID, req.Status, req.FatigueRating, req.Notes)
	if err != nil {
		failService(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ok(c, status, SaveLogResponse{Success: true, Created: created, Log: log})
}

// ListLogs godoc
// @ID          listLogs
// @Summary     List workout logs
// @Description Returns the user's logs ordered by logged_at descending, optionally restricted to one week, with aggregate stats over the returned rows.
// @Tags        Logs
// @Produce     json
//
// @Param       week_start  query  string  false  "Restrict to the week starting at this Monday (YYYY-MM-DD)"  example(2026-08-31)
// @Param       limit       query  int     false  "Max rows"  minimum(1) maximum(100) default(50)
//
// @Success     200  {object}  handlers.ListLogsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /logs [get]
func (h *Handlers) ListLogs(c *gin.Context) {
	weekStart := strings.TrimSpace(c.Query("week_start"))
	limit := utils.AtoiDefault(c.Query("limit"), 50)

	rows, stats, err := h.logSvc.List(c.Request.Context(), userID(c), weekStart, limit)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, ListLogsResponse{Success: true, Logs: rows, Stats: stats})
}

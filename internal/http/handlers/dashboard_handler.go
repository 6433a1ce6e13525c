// Dashboard HTTP handlers.
//
// Exposes GET /dashboard/stats: the read-side aggregation of today's session,
// the next unlogged session, weekly completion, streak, and recent activity.
// Everything is recomputed per request; nothing is cached server-side.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitai-one/go-fitness-backend/internal/services"
)

// DashboardResponse wraps the dashboard aggregation.
type DashboardResponse struct {
	Success bool            `json:"success"`
	Stats   *services.Stats `json:"stats"`
}

// DashboardStats godoc
// @ID          dashboardStats
// @Summary     Get dashboard statistics
// @Description Returns today's session, the next pending session, this week's completion, the consecutive-day streak, recent activity, and the lifetime completed count.
// @Tags        Dashboard
// @Produce     json
//
// @Success     200  {object}  handlers.DashboardResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /dashboard/stats [get]
func (h *Handlers) DashboardStats(c *gin.Context) {
	stats, err := h.dashSvc.Compute(c.Request.Context(), userID(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, DashboardResponse{Success: true, Stats: stats})
}

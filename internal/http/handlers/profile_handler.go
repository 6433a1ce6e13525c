// Profile HTTP handlers.
//
// This file exposes REST endpoints for the user profile resource:
//   - GET /profile   (read)
//   - PUT /profile   (partial update with field validation)
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitai-one/go-fitness-backend/internal/domain"
	"github.com/fitai-one/go-fitness-backend/internal/services"
)

//
// DTOs
//

// UpdateProfileRequest is the JSON payload for a partial profile update.
// Omitted fields are left untouched.
type UpdateProfileRequest struct {
	DisplayName    *string         `json:"display_name" example:"Alex"`
	Bio            *string         `json:"bio" example:"Weekend lifter"`
	Goal           *string         `json:"goal" enums:"fat_loss,muscle_gain,maintenance" example:"muscle_gain"`
	Level          *string         `json:"level" enums:"beginner,intermediate,advanced" example:"beginner"`
	DaysPerWeek    *int            `json:"days_per_week" minimum:"1" maximum:"7" example:"3"`
	SessionMinutes *int            `json:"session_minutes" minimum:"10" maximum:"240" example:"45"`
	Equipment      *string         `json:"equipment" enums:"none,home,gym" example:"home"`
	Constraints    *string         `json:"constraints" example:"left knee pain"`
	Availability   json.RawMessage `json:"availability" swaggertype:"object"`
	SocialLinks    json.RawMessage `json:"social_links" swaggertype:"object"`
}

// ProfileResponse wraps a profile payload.
type ProfileResponse struct {
	Success bool                `json:"success"`
	Profile *domain.UserProfile `json:"profile"`
}

//
// Handlers
//

// GetProfile godoc
// @ID          getProfile
// @Summary     Get the current user's profile
// @Description Returns the authenticated user's training profile.
// @Tags        Profile
// @Produce     json
//
// @Success     200  {object}  handlers.ProfileResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     404  {object}  handlers.ErrorResponse  "Profile not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /profile [get]
func (h *Handlers) GetProfile(c *gin.Context) {
	p, err := h.profileSvc.Get(c.Request.Context(), userID(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, ProfileResponse{Success: true, Profile: p})
}

// UpdateProfile godoc
// @ID          updateProfile
// @Summary     Update the current user's profile
// @Description Applies a partial update; enum and range fields are validated. The profile row is created on first update.
// @Tags        Profile
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.UpdateProfileRequest  true  "Fields to change"
//
// @Success     200  {object}  handlers.ProfileResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Validation failure"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     403  {object}  handlers.ErrorResponse  "CSRF failure"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /profile [put]
func (h *Handlers) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	p, err := h.profileSvc.Update(c.Request.Context(), userID(c), services.ProfileUpdate{
		DisplayName:    req.DisplayName,
		Bio:            req.Bio,
		Goal:           req.Goal,
		Level:          req.Level,
		DaysPerWeek:    req.DaysPerWeek,
		SessionMinutes: req.SessionMinutes,
		Equipment:      req.Equipment,
		Constraints:    req.Constraints,
		Availability:   req.Availability,
		SocialLinks:    req.SocialLinks,
	})
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, ProfileResponse{Success: true, Profile: p})
}

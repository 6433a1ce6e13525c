// Exercise catalog HTTP handlers.
//
// Exposes GET /exercises: the read-only catalog with optional muscle group,
// equipment, and difficulty filters, plus a grouped-by-muscle-group view.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fitai-one/go-fitness-backend/internal/domain"
	"github.com/fitai-one/go-fitness-backend/internal/repo"
)

// ListExercisesResponse wraps the filtered catalog and the grouped view.
type ListExercisesResponse struct {
	Success   bool                         `json:"success"`
	Exercises []domain.Exercise            `json:"exercises"`
	Grouped   map[string][]domain.Exercise `json:"grouped"`
}

// ListExercises godoc
// @ID          listExercises
// @Summary     List the exercise catalog
// @Description Returns exercises matching the optional filters, ordered by muscle group, difficulty, and name, plus the same rows grouped by muscle group.
// @Tags        Exercises
// @Produce     json
//
// @Param       muscle_group  query  string  false  "Filter by muscle group"  example(legs)
// @Param       equipment     query  string  false  "Filter by equipment"     Enums(none, home, gym)
// @Param       difficulty    query  string  false  "Filter by difficulty"    Enums(beginner, intermediate, advanced)
//
// @Success     200  {object}  handlers.ListExercisesResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /exercises [get]
func (h *Handlers) ListExercises(c *gin.Context) {
	f := repo.ExerciseFilter{
		MuscleGroup: strings.TrimSpace(c.Query("muscle_group")),
		Equipment:   strings.TrimSpace(c.Query("equipment")),
		Difficulty:  strings.TrimSpace(c.Query("difficulty")),
	}

	rows, grouped, err := h.exerciseSvc.List(c.Request.Context(), f)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, ListExercisesResponse{Success: true, Exercises: rows, Grouped: grouped})
}

package api

import (
	"errors"
	"net/http"

	"dialed/fitness-app/internal/domain"
	"dialed/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise catalog service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs ---

// ExerciseResponse is the DTO for returning exercise data, both catalog
// definitions and workout-scoped instances.
type ExerciseResponse struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	PrimaryMuscle    domain.Muscle       `json:"primaryMuscle,omitempty"`
	SecondaryMuscles []domain.Muscle     `json:"secondaryMuscles,omitempty"`
	Equipment        string              `json:"equipment,omitempty"`
	Movement         string              `json:"movement,omitempty"`
	Laterality       domain.Laterality   `json:"laterality,omitempty"`
	Sets             []SetResponse       `json:"sets"`
	Notes            string              `json:"notes,omitempty"`
}

// SetResponse keeps explicit nulls for unfilled reps/weight.
type SetResponse struct {
	Reps      *int     `json:"reps"`
	Weight    *float64 `json:"weight"`
	Completed bool     `json:"completed"`
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	sets := make([]SetResponse, len(ex.Sets))
	for i, s := range ex.Sets {
		sets[i] = SetResponse{Reps: s.Reps, Weight: s.Weight, Completed: s.Completed}
	}
	return ExerciseResponse{
		ID:               ex.ID,
		Name:             ex.Name,
		PrimaryMuscle:    ex.PrimaryMuscle,
		SecondaryMuscles: ex.SecondaryMuscles,
		Equipment:        ex.Equipment,
		Movement:         ex.Movement,
		Laterality:       ex.Laterality,
		Sets:             sets,
		Notes:            ex.Notes,
	}
}

// MapExercisesToResponse converts a slice of domain.Exercise to DTOs.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapExerciseToResponse(&exercises[i])
	}
	return responses
}

// --- Handler Methods ---

// GetExercises godoc
// @Summary List the exercise catalog
// @Produce json
// @Success 200 {array} ExerciseResponse
// @Router /exercises [get]
func (h *ExerciseHandler) GetExercises(c *gin.Context) {
	exercises, err := h.exerciseService.GetExercises(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercises.")
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// GetExerciseByID godoc
// @Summary Fetch one catalog exercise
// @Produce json
// @Success 200 {object} ExerciseResponse
// @Failure 404 {object} gin.H "Exercise not found"
// @Router /exercises/{id} [get]
func (h *ExerciseHandler) GetExerciseByID(c *gin.Context) {
	exercise, err := h.exerciseService.GetExerciseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve exercise.")
		}
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}

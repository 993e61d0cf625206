package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"dialed/fitness-app/internal/domain"
	"dialed/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

// SetRequest is one set in a create or merge payload. Completed is a pointer
// so omitting it is distinguishable from sending false.
type SetRequest struct {
	Reps      *int     `json:"reps"`
	Weight    *float64 `json:"weight"`
	Completed *bool    `json:"completed"`
}

// ExerciseRequest is one entry of the exercise list in a create or merge
// payload. The wire format also allows a bare string, which is shorthand for
// a catalog reference by ID.
type ExerciseRequest struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	PrimaryMuscle    domain.Muscle     `json:"primaryMuscle"`
	SecondaryMuscles []domain.Muscle   `json:"secondaryMuscles"`
	Equipment        string            `json:"equipment"`
	Movement         string            `json:"movement"`
	Laterality       domain.Laterality `json:"laterality"`
	Sets             []SetRequest      `json:"sets"`
	Notes            string            `json:"notes"`
}

// UnmarshalJSON accepts either a full exercise object or a bare catalog ID
// string ("bench").
func (e *ExerciseRequest) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*e = ExerciseRequest{ID: id}
		return nil
	}
	type alias ExerciseRequest
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*e = ExerciseRequest(a)
	return nil
}

// CreateWorkoutRequest defines the expected JSON for creating a workout or
// template.
type CreateWorkoutRequest struct {
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description"`
	Exercises   []ExerciseRequest `json:"exercises"`
	Duration    *int              `json:"duration"`
	IsTemplate  bool              `json:"isTemplate"`
}

// UpdateWorkoutRequest is the merge-update payload. Omitted fields are left
// untouched; an omitted exercise list keeps the stored exercises.
type UpdateWorkoutRequest struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	Duration    *int               `json:"duration"`
	Exercises   *[]ExerciseRequest `json:"exercises"`
}

// WorkoutResponse is the DTO for returning workout details.
type WorkoutResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Exercises   []ExerciseResponse `json:"exercises"`
	Duration    *int               `json:"duration,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	UserID      string             `json:"userId"`
	IsTemplate  bool               `json:"isTemplate"`
}

// MapWorkoutToResponse converts a domain.Workout to WorkoutResponse DTO.
func MapWorkoutToResponse(w *domain.Workout) WorkoutResponse {
	if w == nil {
		return WorkoutResponse{}
	}
	return WorkoutResponse{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Exercises:   MapExercisesToResponse(w.Exercises),
		Duration:    w.Duration,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
		UserID:      w.UserID,
		IsTemplate:  w.IsTemplate,
	}
}

// MapWorkoutsToResponse converts a slice of domain.Workout to DTOs.
func MapWorkoutsToResponse(workouts []domain.Workout) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i := range workouts {
		responses[i] = MapWorkoutToResponse(&workouts[i])
	}
	return responses
}

func mapSetInputs(sets []SetRequest) []service.SetInput {
	out := make([]service.SetInput, len(sets))
	for i, s := range sets {
		out[i] = service.SetInput{Reps: s.Reps, Weight: s.Weight, Completed: s.Completed}
	}
	return out
}

func mapExerciseInputs(entries []ExerciseRequest) []service.ExerciseInput {
	out := make([]service.ExerciseInput, len(entries))
	for i, e := range entries {
		out[i] = service.ExerciseInput{
			ID:               e.ID,
			Name:             e.Name,
			PrimaryMuscle:    e.PrimaryMuscle,
			SecondaryMuscles: e.SecondaryMuscles,
			Equipment:        e.Equipment,
			Movement:         e.Movement,
			Laterality:       e.Laterality,
			Sets:             mapSetInputs(e.Sets),
			Notes:            e.Notes,
		}
	}
	return out
}

// --- Handler Methods ---

// GetWorkouts godoc
// @Summary List all workouts (templates and sessions)
// @Produce json
// @Success 200 {array} WorkoutResponse
// @Router /workouts [get]
func (h *WorkoutHandler) GetWorkouts(c *gin.Context) {
	workouts, err := h.workoutService.GetWorkouts(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workouts.")
		return
	}
	c.JSON(http.StatusOK, MapWorkoutsToResponse(workouts))
}

// GetWorkoutByID godoc
// @Summary Fetch one workout
// @Produce json
// @Success 200 {object} WorkoutResponse
// @Failure 404 {object} gin.H "Workout not found"
// @Router /workouts/{id} [get]
func (h *WorkoutHandler) GetWorkoutByID(c *gin.Context) {
	workout, err := h.workoutService.GetWorkoutByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout.")
		}
		return
	}
	c.JSON(http.StatusOK, MapWorkoutToResponse(workout))
}

// CreateWorkout godoc
// @Summary Create a workout or template
// @Description Exercise entries may be bare catalog IDs or fully specified
// @Description exercises; catalog references copy the definition's fields
// @Description and default sets.
// @Accept json
// @Produce json
// @Success 201 {object} WorkoutResponse
// @Failure 400 {object} gin.H "Validation error"
// @Router /workouts [post]
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	workout, err := h.workoutService.CreateWorkout(c.Request.Context(), service.CreateWorkoutInput{
		Name:        req.Name,
		Description: req.Description,
		Exercises:   mapExerciseInputs(req.Exercises),
		Duration:    req.Duration,
		IsTemplate:  req.IsTemplate,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create workout.")
		}
		return
	}
	c.JSON(http.StatusCreated, MapWorkoutToResponse(workout))
}

// UpdateWorkout handles the merge-update of a workout (PUT).
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	var req UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	input := service.UpdateWorkoutInput{
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
	}
	if req.Exercises != nil {
		entries := mapExerciseInputs(*req.Exercises)
		input.Exercises = &entries
	}

	workout, err := h.workoutService.UpdateWorkout(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkoutNotFound):
			abortWithError(c, http.StatusNotFound, "Workout not found.")
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update workout.")
		}
		return
	}
	c.JSON(http.StatusOK, MapWorkoutToResponse(workout))
}

// DeleteWorkout removes a workout entirely.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	if err := h.workoutService.DeleteWorkout(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete workout.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// StartWorkout godoc
// @Summary Instantiate a live session from a template
// @Produce json
// @Success 201 {object} WorkoutResponse
// @Failure 404 {object} gin.H "Workout template not found"
// @Router /workouts/{id}/start [post]
func (h *WorkoutHandler) StartWorkout(c *gin.Context) {
	workout, err := h.workoutService.StartWorkout(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout template not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to start workout.")
		}
		return
	}
	c.JSON(http.StatusCreated, MapWorkoutToResponse(workout))
}

// UpdateSet applies a partial update to one set of one exercise instance.
// The body is decoded key-by-key so an explicit null (clear the value) is
// distinguishable from an omitted field.
func (h *WorkoutHandler) UpdateSet(c *gin.Context) {
	setIndex, err := strconv.Atoi(c.Param("idx"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid set index.")
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	var patch service.SetPatch
	if msg, ok := raw["reps"]; ok {
		patch.HasReps = true
		if err := json.Unmarshal(msg, &patch.Reps); err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid reps value.")
			return
		}
	}
	if msg, ok := raw["weight"]; ok {
		patch.HasWeight = true
		if err := json.Unmarshal(msg, &patch.Weight); err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid weight value.")
			return
		}
	}
	if msg, ok := raw["completed"]; ok {
		patch.HasCompleted = true
		if err := json.Unmarshal(msg, &patch.Completed); err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid completed value.")
			return
		}
	}

	exercise, err := h.workoutService.UpdateSet(
		c.Request.Context(),
		c.Param("id"),
		c.Param("eid"),
		setIndex,
		patch,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkoutNotFound):
			abortWithError(c, http.StatusNotFound, "Workout not found.")
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, "Exercise not found.")
		case errors.Is(err, service.ErrInvalidSetIndex):
			abortWithError(c, http.StatusBadRequest, "Invalid set index.")
		case errors.Is(err, service.ErrTemplateLocked):
			abortWithError(c, http.StatusBadRequest, "Templates cannot record set results.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update set.")
		}
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}

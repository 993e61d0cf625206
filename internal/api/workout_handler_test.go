package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"dialed/fitness-app/internal/catalog"
	"dialed/fitness-app/internal/repository/memory"
	"dialed/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := memory.NewWorkoutRepository()
	workoutService := service.NewWorkoutService(repo, catalog.Default())
	exerciseService := service.NewExerciseService(catalog.Default())

	router := gin.New()
	SetupRoutes(router, workoutService, exerciseService)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeWorkout(t *testing.T, rec *httptest.ResponseRecorder) WorkoutResponse {
	t.Helper()
	var resp WorkoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func createWorkout(t *testing.T, router *gin.Engine, body any) WorkoutResponse {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/workouts", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeWorkout(t, rec)
}

func TestGetExercises(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/exercises", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var exercises []ExerciseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &exercises))
	assert.NotEmpty(t, exercises)

	rec = doJSON(t, router, http.MethodGet, "/api/exercises/no-such-exercise", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateWorkout_BareStringCatalogReference(t *testing.T) {
	router := newTestRouter(t)

	// The exercises array mixes a bare catalog ID with a full object.
	payload := map[string]any{
		"name": "Push Day",
		"exercises": []any{
			"bench",
			map[string]any{
				"name":          "Cable Fly",
				"primaryMuscle": "chest",
				"sets":          []any{map[string]any{"reps": 15}},
			},
		},
	}
	created := createWorkout(t, router, payload)

	require.Len(t, created.Exercises, 2)
	assert.Equal(t, "Bench Press", created.Exercises[0].Name)
	assert.Equal(t, "Cable Fly", created.Exercises[1].Name)
	require.Len(t, created.Exercises[1].Sets, 1)
	assert.Equal(t, 15, *created.Exercises[1].Sets[0].Reps)
	assert.False(t, created.Exercises[1].Sets[0].Completed)
}

func TestCreateWorkout_MissingName(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/workouts", map[string]any{
		"exercises": []any{"bench"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateGetRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	created := createWorkout(t, router, map[string]any{
		"name":      "Push Day",
		"exercises": []any{"bench"},
	})

	rec := doJSON(t, router, http.MethodGet, "/api/workouts/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeWorkout(t, rec))

	rec = doJSON(t, router, http.MethodGet, "/api/workouts/nonexistent", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStartWorkout(t *testing.T) {
	router := newTestRouter(t)

	template := createWorkout(t, router, map[string]any{
		"name":       "Push Day",
		"isTemplate": true,
		"exercises":  []any{"bench", "ohp"},
	})

	rec := doJSON(t, router, http.MethodPost, "/api/workouts/"+template.ID+"/start", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	started := decodeWorkout(t, rec)
	assert.False(t, started.IsTemplate)
	assert.NotEqual(t, template.ID, started.ID)
	require.Len(t, started.Exercises, 2)
	assert.NotEqual(t, template.Exercises[0].ID, started.Exercises[0].ID)
}

func TestStartWorkout_NonTemplate(t *testing.T) {
	router := newTestRouter(t)

	session := createWorkout(t, router, map[string]any{
		"name":      "Just a session",
		"exercises": []any{"bench"},
	})

	rec := doJSON(t, router, http.MethodPost, "/api/workouts/"+session.ID+"/start", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateSet(t *testing.T) {
	router := newTestRouter(t)

	workout := createWorkout(t, router, map[string]any{
		"name":      "Push Day",
		"exercises": []any{"bench"},
	})
	exerciseID := workout.Exercises[0].ID

	path := fmt.Sprintf("/api/workouts/%s/exercises/%s/sets/0", workout.ID, exerciseID)
	rec := doJSON(t, router, http.MethodPatch, path, map[string]any{
		"weight":    102.5,
		"reps":      8,
		"completed": true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var exercise ExerciseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &exercise))
	assert.Equal(t, 102.5, *exercise.Sets[0].Weight)
	assert.Equal(t, 8, *exercise.Sets[0].Reps)
	assert.True(t, exercise.Sets[0].Completed)

	// The workout's updatedAt moves forward with the patch.
	rec = doJSON(t, router, http.MethodGet, "/api/workouts/"+workout.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	refetched := decodeWorkout(t, rec)
	assert.True(t, refetched.UpdatedAt.After(workout.UpdatedAt) || refetched.UpdatedAt.Equal(workout.UpdatedAt))
	assert.True(t, refetched.Exercises[0].Sets[0].Completed)
}

func TestUpdateSet_ExplicitNull(t *testing.T) {
	router := newTestRouter(t)

	workout := createWorkout(t, router, map[string]any{
		"name": "Push Day",
		"exercises": []any{map[string]any{
			"name":          "Bench Press",
			"primaryMuscle": "chest",
			"sets":          []any{map[string]any{"reps": 10, "weight": 100}},
		}},
	})
	exerciseID := workout.Exercises[0].ID

	path := fmt.Sprintf("/api/workouts/%s/exercises/%s/sets/0", workout.ID, exerciseID)
	rec := doJSON(t, router, http.MethodPatch, path, json.RawMessage(`{"weight":null}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var exercise ExerciseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &exercise))
	assert.Nil(t, exercise.Sets[0].Weight)
	assert.Equal(t, 10, *exercise.Sets[0].Reps)
}

func TestUpdateSet_InvalidIndex(t *testing.T) {
	router := newTestRouter(t)

	workout := createWorkout(t, router, map[string]any{
		"name":      "Push Day",
		"exercises": []any{"bench"},
	})
	exerciseID := workout.Exercises[0].ID

	body := map[string]any{"completed": true}

	path := fmt.Sprintf("/api/workouts/%s/exercises/%s/sets/%d", workout.ID, exerciseID, len(workout.Exercises[0].Sets))
	rec := doJSON(t, router, http.MethodPatch, path, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	path = fmt.Sprintf("/api/workouts/%s/exercises/%s/sets/first", workout.ID, exerciseID)
	rec = doJSON(t, router, http.MethodPatch, path, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateSet_UnknownIDs(t *testing.T) {
	router := newTestRouter(t)

	workout := createWorkout(t, router, map[string]any{
		"name":      "Push Day",
		"exercises": []any{"bench"},
	})

	body := map[string]any{"completed": true}

	path := fmt.Sprintf("/api/workouts/nonexistent/exercises/%s/sets/0", workout.Exercises[0].ID)
	rec := doJSON(t, router, http.MethodPatch, path, body)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	path = fmt.Sprintf("/api/workouts/%s/exercises/nonexistent/sets/0", workout.ID)
	rec = doJSON(t, router, http.MethodPatch, path, body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateWorkout_Merge(t *testing.T) {
	router := newTestRouter(t)

	workout := createWorkout(t, router, map[string]any{
		"name":      "Legs",
		"exercises": []any{"squat", "rdl"},
	})
	keptID := workout.Exercises[1].ID

	rec := doJSON(t, router, http.MethodPut, "/api/workouts/"+workout.ID, map[string]any{
		"name": "Legs v2",
		"exercises": []any{
			map[string]any{
				"id":   keptID,
				"name": workout.Exercises[1].Name,
				"sets": []any{map[string]any{"reps": 8, "completed": true}},
			},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	updated := decodeWorkout(t, rec)
	assert.Equal(t, "Legs v2", updated.Name)
	require.Len(t, updated.Exercises, 1)
	assert.Equal(t, keptID, updated.Exercises[0].ID)
	assert.True(t, updated.Exercises[0].Sets[0].Completed)
}

func TestDeleteWorkout(t *testing.T) {
	router := newTestRouter(t)

	workout := createWorkout(t, router, map[string]any{
		"name":      "Doomed",
		"exercises": []any{"bench"},
	})

	rec := doJSON(t, router, http.MethodDelete, "/api/workouts/"+workout.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/workouts/"+workout.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

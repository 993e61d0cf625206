package api

import (
	"net/http"

	"dialed/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes mounts the API surface on the given engine. The UI consumes
// everything under /api.
func SetupRoutes(
	router *gin.Engine,
	workoutService service.WorkoutService,
	exerciseService service.ExerciseService,
) {
	exerciseHandler := NewExerciseHandler(exerciseService)
	workoutHandler := NewWorkoutHandler(workoutService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := router.Group("/api")
	{
		exerciseGroup := apiGroup.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.GetExercises)
			exerciseGroup.GET("/:id", exerciseHandler.GetExerciseByID)
		}

		workoutGroup := apiGroup.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.GetWorkouts)
			workoutGroup.GET("/:id", workoutHandler.GetWorkoutByID)
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.PUT("/:id", workoutHandler.UpdateWorkout)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
			workoutGroup.POST("/:id/start", workoutHandler.StartWorkout)
			workoutGroup.PATCH("/:id/exercises/:eid/sets/:idx", workoutHandler.UpdateSet)
		}
	}
}

// abortWithError sends a JSON error body and aborts the request chain.
func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

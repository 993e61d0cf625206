package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dialed/fitness-app/internal/api"
	"dialed/fitness-app/internal/catalog"
	"dialed/fitness-app/internal/config"
	"dialed/fitness-app/internal/repository/memory"
	"dialed/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

// @title Dialed Workout API
// @version 1.0
// @description REST backend for browsing exercises, building workout templates and tracking live sessions.
// @host localhost:8080
// @BasePath /api
func main() {
	log.Println("Starting workout tracker server...")

	// .env is optional; viper picks up whatever it exports.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Initialize Store & Catalog ---
	// The record store is in-memory: state lives for the life of the
	// process. Durability would slot in behind the same repository contract.
	workoutRepo := memory.NewWorkoutRepository()
	exerciseCatalog := catalog.Default()

	// --- Initialize Services ---
	log.Println("Initializing services...")
	exerciseService := service.NewExerciseService(exerciseCatalog)
	workoutService := service.NewWorkoutService(workoutRepo, exerciseCatalog)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	log.Println("Setting up API routes...")
	api.SetupRoutes(router, workoutService, exerciseService)

	// The browser UI runs on a different origin during development.
	corsWrapper := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders: []string{"*"},
	})

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      corsWrapper.Handler(router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

// Package memory provides the in-memory workout record store. State lives
// for the life of the process only; swapping in a durable store means
// implementing repository.WorkoutRepository against a database instead.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"dialed/fitness-app/internal/domain"
	"dialed/fitness-app/internal/repository"

	"github.com/google/uuid"
)

// workoutRepository implements repository.WorkoutRepository over a
// mutex-guarded map. Workouts are deep-copied on the way in and out so
// callers can never mutate stored state behind the store's back.
type workoutRepository struct {
	mu       sync.RWMutex
	workouts map[string]*domain.Workout
}

// NewWorkoutRepository creates an empty in-memory workout store.
func NewWorkoutRepository() repository.WorkoutRepository {
	return &workoutRepository{
		workouts: make(map[string]*domain.Workout),
	}
}

// Create assigns a fresh ID and both timestamps, then stores the workout.
func (r *workoutRepository) Create(_ context.Context, workout *domain.Workout) (*domain.Workout, error) {
	stored := workout.Clone()
	stored.ID = uuid.NewString()
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.mu.Lock()
	r.workouts[stored.ID] = stored
	r.mu.Unlock()

	return stored.Clone(), nil
}

// GetAll returns every stored workout, newest first.
func (r *workoutRepository) GetAll(_ context.Context) ([]domain.Workout, error) {
	r.mu.RLock()
	out := make([]domain.Workout, 0, len(r.workouts))
	for _, w := range r.workouts {
		out = append(out, *w.Clone())
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *workoutRepository) GetByID(_ context.Context, id string) (*domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return w.Clone(), nil
}

// Update replaces the stored record wholesale, keeping the original ID and
// CreatedAt and refreshing UpdatedAt.
func (r *workoutRepository) Update(_ context.Context, workout *domain.Workout) (*domain.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.workouts[workout.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	stored := workout.Clone()
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now().UTC()
	r.workouts[workout.ID] = stored

	return stored.Clone(), nil
}

// Delete removes the workout entirely. No soft delete.
func (r *workoutRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.workouts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.workouts, id)
	return nil
}

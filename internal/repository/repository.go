package repository

import (
	"context"

	"dialed/fitness-app/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// WorkoutRepository is the record store for workouts: the single source of
// truth for both templates and live/completed sessions. Create assigns the
// workout ID and both timestamps; Update replaces the stored record and
// refreshes UpdatedAt. Implementations must not alias caller memory.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (*domain.Workout, error)
	GetAll(ctx context.Context) ([]domain.Workout, error)
	GetByID(ctx context.Context, id string) (*domain.Workout, error)
	Update(ctx context.Context, workout *domain.Workout) (*domain.Workout, error)
	Delete(ctx context.Context, id string) error
}

package service

import (
	"context"
	"errors"

	"dialed/fitness-app/internal/catalog"
	"dialed/fitness-app/internal/domain"
)

var ErrExerciseNotFound = errors.New("exercise not found")

// ExerciseService exposes the read-only exercise catalog.
type ExerciseService interface {
	GetExercises(ctx context.Context) ([]domain.Exercise, error)
	GetExerciseByID(ctx context.Context, id string) (*domain.Exercise, error)
}

type exerciseService struct {
	catalog *catalog.Catalog
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(cat *catalog.Catalog) ExerciseService {
	return &exerciseService{catalog: cat}
}

func (s *exerciseService) GetExercises(_ context.Context) ([]domain.Exercise, error) {
	return s.catalog.List(), nil
}

func (s *exerciseService) GetExerciseByID(_ context.Context, id string) (*domain.Exercise, error) {
	def, err := s.catalog.GetByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return def, nil
}

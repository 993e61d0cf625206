package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"dialed/fitness-app/internal/catalog"
	"dialed/fitness-app/internal/domain"
	"dialed/fitness-app/internal/repository"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrTemplateNotFound = errors.New("workout template not found")
	ErrTemplateLocked   = errors.New("templates cannot record set results")
	ErrInvalidSetIndex  = errors.New("set index out of range")
	ErrValidationFailed = errors.New("workout validation failed")
)

// Single-user tool for now; every workout belongs to this user until an
// account system exists.
const defaultUserID = "local-user"

// SetInput carries one set of a create or merge payload. Completed is a
// pointer so an omitted flag can default to false during a merge.
type SetInput struct {
	Reps      *int
	Weight    *float64
	Completed *bool
}

// ExerciseInput is one entry of a create or merge payload. An entry carrying
// only an ID (no sets) is a bare catalog reference.
type ExerciseInput struct {
	ID               string
	Name             string
	PrimaryMuscle    domain.Muscle
	SecondaryMuscles []domain.Muscle
	Equipment        string
	Movement         string
	Laterality       domain.Laterality
	Sets             []SetInput
	Notes            string
}

// CreateWorkoutInput is the payload for creating a workout or template.
type CreateWorkoutInput struct {
	Name        string
	Description string
	Exercises   []ExerciseInput
	Duration    *int
	IsTemplate  bool
	UserID      string
}

// UpdateWorkoutInput is the merge-update payload. Nil fields are "leave as
// is"; a nil Exercises pointer keeps the existing exercise list untouched.
type UpdateWorkoutInput struct {
	Name        *string
	Description *string
	Duration    *int
	Exercises   *[]ExerciseInput
}

// SetPatch is a partial update of one set. The Has flags distinguish an
// omitted field from an explicit null that clears the value.
type SetPatch struct {
	Reps         *int
	HasReps      bool
	Weight       *float64
	HasWeight    bool
	Completed    bool
	HasCompleted bool
}

// WorkoutService owns workout lifecycle: instantiation from the catalog or a
// template, merge updates, and single-set patches.
type WorkoutService interface {
	GetWorkouts(ctx context.Context) ([]domain.Workout, error)
	GetWorkoutByID(ctx context.Context, id string) (*domain.Workout, error)
	CreateWorkout(ctx context.Context, input CreateWorkoutInput) (*domain.Workout, error)
	UpdateWorkout(ctx context.Context, id string, input UpdateWorkoutInput) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, id string) error
	StartWorkout(ctx context.Context, templateID string) (*domain.Workout, error)
	UpdateSet(ctx context.Context, workoutID, exerciseID string, setIndex int, patch SetPatch) (*domain.Exercise, error)
}

type workoutService struct {
	workouts repository.WorkoutRepository
	catalog  *catalog.Catalog
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workouts repository.WorkoutRepository, cat *catalog.Catalog) WorkoutService {
	return &workoutService{
		workouts: workouts,
		catalog:  cat,
	}
}

func (s *workoutService) GetWorkouts(ctx context.Context) ([]domain.Workout, error) {
	return s.workouts.GetAll(ctx)
}

func (s *workoutService) GetWorkoutByID(ctx context.Context, id string) (*domain.Workout, error) {
	workout, err := s.workouts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// CreateWorkout builds a workout from a mix of bare catalog references and
// fully specified exercises. Catalog references copy the definition's
// descriptive fields and reset its default sets; unresolvable references are
// dropped. Completed flags are always forced to false at creation.
func (s *workoutService) CreateWorkout(ctx context.Context, input CreateWorkoutInput) (*domain.Workout, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrValidationFailed
	}

	exercises := make([]domain.Exercise, 0, len(input.Exercises))
	for _, entry := range input.Exercises {
		if entry.ID != "" && len(entry.Sets) == 0 && entry.Name == "" {
			def, err := s.catalog.GetByID(entry.ID)
			if err != nil {
				log.Printf("WARN: dropping unknown catalog exercise %q from create payload", entry.ID)
				continue
			}
			instance := *def
			instance.ID = uuid.NewString()
			// Default set templates start blank regardless of what the
			// catalog definition carries.
			instance.Sets = make([]domain.ExerciseSet, len(def.Sets))
			exercises = append(exercises, instance)
			continue
		}
		exercises = append(exercises, exerciseFromInput(entry, uuid.NewString(), false))
	}

	userID := input.UserID
	if userID == "" {
		userID = defaultUserID
	}

	workout := &domain.Workout{
		Name:        input.Name,
		Description: input.Description,
		Exercises:   exercises,
		Duration:    cloneInt(input.Duration),
		UserID:      userID,
		IsTemplate:  input.IsTemplate,
	}
	return s.workouts.Create(ctx, workout)
}

// StartWorkout instantiates a live session from a template: a deep copy with
// fresh IDs throughout, IsTemplate cleared and every set back to
// completed=false.
func (s *workoutService) StartWorkout(ctx context.Context, templateID string) (*domain.Workout, error) {
	template, err := s.workouts.GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	if !template.IsTemplate {
		return nil, ErrTemplateNotFound
	}

	session := template.Clone()
	session.IsTemplate = false
	for i := range session.Exercises {
		session.Exercises[i].ID = uuid.NewString()
		for j := range session.Exercises[i].Sets {
			session.Exercises[i].Sets[j].Completed = false
		}
	}
	return s.workouts.Create(ctx, session)
}

// UpdateWorkout merges the payload into the stored workout. Supplied name,
// description and duration overwrite; omitted ones are retained. When an
// exercise list is present, entries carrying an instance ID reuse it (and
// keep the prior instance's descriptive snapshot) while ID-less entries are
// inserted with fresh IDs; each entry's set sequence replaces the prior one
// entirely.
func (s *workoutService) UpdateWorkout(ctx context.Context, id string, input UpdateWorkoutInput) (*domain.Workout, error) {
	existing, err := s.workouts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrValidationFailed
		}
		existing.Name = *input.Name
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.Duration != nil {
		existing.Duration = cloneInt(input.Duration)
	}
	if input.Exercises != nil {
		existing.Exercises = mergeExercises(existing, *input.Exercises)
	}

	updated, err := s.workouts.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *workoutService) DeleteWorkout(ctx context.Context, id string) error {
	err := s.workouts.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrWorkoutNotFound
	}
	return err
}

// UpdateSet applies a partial update to exactly one set of one exercise
// instance. Templates are read-only for set results.
func (s *workoutService) UpdateSet(ctx context.Context, workoutID, exerciseID string, setIndex int, patch SetPatch) (*domain.Exercise, error) {
	workout, err := s.workouts.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	if workout.IsTemplate {
		return nil, ErrTemplateLocked
	}

	exercise := workout.ExerciseByID(exerciseID)
	if exercise == nil {
		return nil, ErrExerciseNotFound
	}
	if setIndex < 0 || setIndex >= len(exercise.Sets) {
		return nil, ErrInvalidSetIndex
	}

	set := &exercise.Sets[setIndex]
	if patch.HasReps {
		set.Reps = cloneInt(patch.Reps)
	}
	if patch.HasWeight {
		set.Weight = cloneFloat(patch.Weight)
	}
	if patch.HasCompleted {
		set.Completed = patch.Completed
	}

	updated, err := s.workouts.Update(ctx, workout)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	result := updated.ExerciseByID(exerciseID)
	if result == nil {
		return nil, ErrExerciseNotFound
	}
	cp := result.Clone()
	return &cp, nil
}

// mergeExercises rebuilds the exercise list from the merge payload. Matching
// is by instance ID, never by position: an entry with an ID that exists in
// the workout keeps that instance's descriptive snapshot, an entry with an
// unknown or missing ID is an insertion.
func mergeExercises(existing *domain.Workout, entries []ExerciseInput) []domain.Exercise {
	merged := make([]domain.Exercise, 0, len(entries))
	for _, entry := range entries {
		if entry.ID != "" {
			if prior := existing.ExerciseByID(entry.ID); prior != nil {
				instance := prior.Clone()
				instance.Name = entry.Name
				instance.Notes = entry.Notes
				instance.Sets = setsFromInput(entry.Sets, true)
				merged = append(merged, instance)
				continue
			}
			merged = append(merged, exerciseFromInput(entry, entry.ID, true))
			continue
		}
		merged = append(merged, exerciseFromInput(entry, uuid.NewString(), true))
	}
	return merged
}

// exerciseFromInput builds a fresh exercise instance from a fully specified
// payload entry.
func exerciseFromInput(entry ExerciseInput, id string, keepCompleted bool) domain.Exercise {
	instance := domain.Exercise{
		ID:            id,
		Name:          entry.Name,
		PrimaryMuscle: entry.PrimaryMuscle,
		Equipment:     entry.Equipment,
		Movement:      entry.Movement,
		Laterality:    entry.Laterality,
		Notes:         entry.Notes,
		Sets:          setsFromInput(entry.Sets, keepCompleted),
	}
	if entry.SecondaryMuscles != nil {
		instance.SecondaryMuscles = append([]domain.Muscle(nil), entry.SecondaryMuscles...)
	}
	return instance
}

// setsFromInput normalizes a set payload. Reps/weight default to null.
// Completed defaults to false when omitted, and is forced to false outright
// at creation time (keepCompleted=false).
func setsFromInput(in []SetInput, keepCompleted bool) []domain.ExerciseSet {
	out := make([]domain.ExerciseSet, len(in))
	for i, s := range in {
		out[i] = domain.ExerciseSet{
			Reps:   cloneInt(s.Reps),
			Weight: cloneFloat(s.Weight),
		}
		if keepCompleted && s.Completed != nil {
			out[i].Completed = *s.Completed
		}
	}
	return out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dialed/fitness-app/internal/api"

	"dialed/fitness-app/internal/client/queue"
)

// State is the lifecycle of an in-progress session.
type State string

const (
	StateLoading       State = "loading"
	StateReady         State = "ready"
	StateSaving        State = "saving"
	StateCompleted     State = "completed"
	StateOfflineQueued State = "offline_queued"
)

// ErrSetIncomplete is returned when a completion toggle is attempted before
// both weight and reps are filled in for that set.
var ErrSetIncomplete = errors.New("weight and reps must be filled in before completing a set")

// API is the server surface the session needs. *Client implements it; tests
// substitute fakes.
type API interface {
	GetWorkout(ctx context.Context, id string) (*api.WorkoutResponse, error)
	StartWorkout(ctx context.Context, id string) (*api.WorkoutResponse, error)
	CreateWorkout(ctx context.Context, req api.CreateWorkoutRequest) (*api.WorkoutResponse, error)
	UpdateWorkout(ctx context.Context, id string, req api.UpdateWorkoutRequest) (*api.WorkoutResponse, error)
	UpdateExerciseSet(ctx context.Context, workoutID, exerciseID string, setIndex int, patch SetPatch) (*api.ExerciseResponse, error)
}

// SetEntry is the locally editable state of one set. Local state is
// authoritative for the UI; the server copy trails behind it.
type SetEntry struct {
	Weight *float64
	Reps   *int
	Done   bool
}

// CompletionPayload is what gets replayed against POST /workouts if the
// completion calls fail: the finished workout, fully specified.
type CompletionPayload struct {
	WorkoutName string                `json:"workoutName"`
	CompletedAt time.Time             `json:"completedAt"`
	Duration    *int                  `json:"duration,omitempty"`
	Exercises   []api.ExerciseRequest `json:"exercises"`
}

// CreateRequest renders the payload as a workout create request.
func (p CompletionPayload) CreateRequest() api.CreateWorkoutRequest {
	return api.CreateWorkoutRequest{
		Name:        p.WorkoutName,
		Description: "Completed " + p.CompletedAt.Format("2006-01-02 15:04"),
		Exercises:   p.Exercises,
		Duration:    p.Duration,
	}
}

// Session drives one live workout. Every edit lands locally first and is
// then pushed as a single-set patch tagged to exactly that slot; a failed
// push only raises a non-blocking sync warning. Server responses are never
// copied back over local state, so a stale echo can't clobber a newer edit.
//
// A session is not safe for concurrent use; drive it from one goroutine.
type Session struct {
	api   API
	queue *queue.Queue

	state       State
	workout     *api.WorkoutResponse
	entries     [][]SetEntry
	startedAt   time.Time
	syncWarning string
}

// StartSession instantiates a live workout from the template and opens a
// session over it.
func StartSession(ctx context.Context, apiClient API, q *queue.Queue, templateID string) (*Session, error) {
	s := &Session{api: apiClient, queue: q, state: StateLoading}
	workout, err := s.api.StartWorkout(ctx, templateID)
	if err != nil {
		return nil, err
	}
	s.seed(workout)
	return s, nil
}

// ResumeSession opens a session over an already-started workout, seeded from
// whatever set values the server has.
func ResumeSession(ctx context.Context, apiClient API, q *queue.Queue, workoutID string) (*Session, error) {
	s := &Session{api: apiClient, queue: q, state: StateLoading}
	workout, err := s.api.GetWorkout(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	s.seed(workout)
	return s, nil
}

func (s *Session) seed(workout *api.WorkoutResponse) {
	s.workout = workout
	s.entries = make([][]SetEntry, len(workout.Exercises))
	for i, ex := range workout.Exercises {
		s.entries[i] = make([]SetEntry, len(ex.Sets))
		for j, set := range ex.Sets {
			s.entries[i][j] = SetEntry{Weight: set.Weight, Reps: set.Reps, Done: set.Completed}
		}
	}
	s.startedAt = time.Now()
	s.state = StateReady
}

func (s *Session) State() State { return s.state }

// Workout returns the server copy the session was seeded from.
func (s *Session) Workout() *api.WorkoutResponse { return s.workout }

// Entries exposes the local editable state. The session keeps ownership;
// mutate only through the Update/Toggle methods.
func (s *Session) Entries() [][]SetEntry { return s.entries }

// SyncWarning is non-empty while local edits are ahead of the server. It is
// informational only; the session keeps working.
func (s *Session) SyncWarning() string { return s.syncWarning }

// UpdateWeight records a weight edit locally and pushes it to the server.
// A nil value clears the field.
func (s *Session) UpdateWeight(ctx context.Context, exerciseIndex, setIndex int, weight *float64) error {
	entry, err := s.entry(exerciseIndex, setIndex)
	if err != nil {
		return err
	}
	entry.Weight = weight
	s.push(ctx, exerciseIndex, setIndex, SetPatch{"weight": weight})
	return nil
}

// UpdateReps records a reps edit locally and pushes it to the server.
func (s *Session) UpdateReps(ctx context.Context, exerciseIndex, setIndex int, reps *int) error {
	entry, err := s.entry(exerciseIndex, setIndex)
	if err != nil {
		return err
	}
	entry.Reps = reps
	s.push(ctx, exerciseIndex, setIndex, SetPatch{"reps": reps})
	return nil
}

// ToggleCompleted flips the done flag for a set. Refused until both weight
// and reps are present; the server is not trusted to enforce this.
func (s *Session) ToggleCompleted(ctx context.Context, exerciseIndex, setIndex int) error {
	entry, err := s.entry(exerciseIndex, setIndex)
	if err != nil {
		return err
	}
	if entry.Weight == nil || entry.Reps == nil {
		return ErrSetIncomplete
	}
	entry.Done = !entry.Done
	s.push(ctx, exerciseIndex, setIndex, SetPatch{
		"completed": entry.Done,
		"weight":    entry.Weight,
		"reps":      entry.Reps,
	})
	return nil
}

// AddSet appends a blank set locally. It reaches the server with the full
// merge at completion time.
func (s *Session) AddSet(exerciseIndex int) error {
	if exerciseIndex < 0 || exerciseIndex >= len(s.entries) {
		return fmt.Errorf("no exercise at index %d", exerciseIndex)
	}
	s.entries[exerciseIndex] = append(s.entries[exerciseIndex], SetEntry{})
	return nil
}

// Complete pushes the full local state as a merge update, then records the
// finished session as a new non-template workout. If either call fails the
// completion payload is parked in the durable queue and the session reports
// OfflineQueued instead of an error.
func (s *Session) Complete(ctx context.Context) (State, error) {
	if s.state == StateSaving {
		return s.state, nil
	}
	s.state = StateSaving
	s.syncWarning = ""

	exercises := s.exerciseRequests()
	minutes := int(time.Since(s.startedAt).Round(time.Minute) / time.Minute)
	payload := CompletionPayload{
		WorkoutName: s.workout.Name,
		CompletedAt: time.Now().UTC(),
		Duration:    &minutes,
		Exercises:   exercises,
	}

	if _, err := s.api.UpdateWorkout(ctx, s.workout.ID, api.UpdateWorkoutRequest{Exercises: &exercises}); err != nil {
		return s.queueOffline(ctx, payload)
	}
	if _, err := s.api.CreateWorkout(ctx, payload.CreateRequest()); err != nil {
		return s.queueOffline(ctx, payload)
	}

	s.state = StateCompleted
	return s.state, nil
}

func (s *Session) queueOffline(ctx context.Context, payload CompletionPayload) (State, error) {
	if s.queue == nil {
		s.state = StateReady
		return s.state, errors.New("completion failed and no offline queue is configured")
	}
	if _, err := s.queue.Enqueue(ctx, payload); err != nil {
		// The durable fallback itself failed; this one is fatal.
		s.state = StateReady
		return s.state, fmt.Errorf("queueing completion offline: %w", err)
	}
	s.state = StateOfflineQueued
	s.syncWarning = "Workout saved offline. Will sync when connection is restored."
	return s.state, nil
}

// entry bounds-checks and returns a pointer into local state.
func (s *Session) entry(exerciseIndex, setIndex int) (*SetEntry, error) {
	if exerciseIndex < 0 || exerciseIndex >= len(s.entries) {
		return nil, fmt.Errorf("no exercise at index %d", exerciseIndex)
	}
	sets := s.entries[exerciseIndex]
	if setIndex < 0 || setIndex >= len(sets) {
		return nil, fmt.Errorf("no set at index %d", setIndex)
	}
	return &sets[setIndex], nil
}

// push issues the single-set patch for one slot. The response is discarded
// on purpose: local state stays authoritative and is never overwritten by a
// server echo.
func (s *Session) push(ctx context.Context, exerciseIndex, setIndex int, patch SetPatch) {
	if exerciseIndex >= len(s.workout.Exercises) {
		// Locally added exercise not yet known to the server; the final
		// merge carries it.
		return
	}
	exercise := s.workout.Exercises[exerciseIndex]
	if _, err := s.api.UpdateExerciseSet(ctx, s.workout.ID, exercise.ID, setIndex, patch); err != nil {
		s.syncWarning = "Changes will be saved when back online"
		return
	}
	s.syncWarning = ""
	s.state = StateReady
}

// exerciseRequests renders local state as a full exercise list for the
// completion merge, reusing the server-issued instance IDs.
func (s *Session) exerciseRequests() []api.ExerciseRequest {
	out := make([]api.ExerciseRequest, len(s.workout.Exercises))
	for i, ex := range s.workout.Exercises {
		sets := make([]api.SetRequest, len(s.entries[i]))
		for j, entry := range s.entries[i] {
			done := entry.Done
			sets[j] = api.SetRequest{Weight: entry.Weight, Reps: entry.Reps, Completed: &done}
		}
		out[i] = api.ExerciseRequest{
			ID:    ex.ID,
			Name:  ex.Name,
			Sets:  sets,
			Notes: ex.Notes,
		}
	}
	return out
}

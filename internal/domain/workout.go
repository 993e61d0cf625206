package domain

import "time"

// Workout is either a reusable template (IsTemplate=true) or a live/completed
// session. Exercises are workout-scoped instances with IDs that are unique
// within the workout and stable for its lifetime.
type Workout struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Exercises   []Exercise `json:"exercises"`
	Duration    *int       `json:"duration,omitempty"` // minutes
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	UserID      string     `json:"userId"`
	IsTemplate  bool       `json:"isTemplate"`
}

// Clone returns a deep copy of the workout.
func (w *Workout) Clone() *Workout {
	if w == nil {
		return nil
	}
	out := *w
	if w.Duration != nil {
		d := *w.Duration
		out.Duration = &d
	}
	if w.Exercises != nil {
		out.Exercises = make([]Exercise, len(w.Exercises))
		for i, ex := range w.Exercises {
			out.Exercises[i] = ex.Clone()
		}
	}
	return &out
}

// ExerciseByID returns the exercise instance with the given ID, or nil.
func (w *Workout) ExerciseByID(id string) *Exercise {
	for i := range w.Exercises {
		if w.Exercises[i].ID == id {
			return &w.Exercises[i]
		}
	}
	return nil
}

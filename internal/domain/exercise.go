package domain

// Muscle is the closed set of muscle groups an exercise can target.
type Muscle string

const (
	MuscleChest      Muscle = "chest"
	MuscleBack       Muscle = "back"
	MuscleShoulders  Muscle = "shoulders"
	MuscleBiceps     Muscle = "biceps"
	MuscleTriceps    Muscle = "triceps"
	MuscleQuads      Muscle = "quads"
	MuscleHamstrings Muscle = "hamstrings"
	MuscleGlutes     Muscle = "glutes"
	MuscleCalves     Muscle = "calves"
	MuscleCore       Muscle = "core"
)

// Laterality describes whether an exercise works one side at a time.
type Laterality string

const (
	LateralityUnilateral Laterality = "unilateral"
	LateralityBilateral  Laterality = "bilateral"
	LateralityEither     Laterality = "either"
)

// ExerciseSet is one set of an exercise. Reps and Weight stay nil until the
// user fills them in, so the JSON carries explicit nulls instead of omitting
// the fields.
type ExerciseSet struct {
	Reps      *int     `json:"reps"`
	Weight    *float64 `json:"weight"`
	Completed bool     `json:"completed"`
}

// Exercise is either a catalog definition (where Sets acts as the default
// set template) or a workout-scoped instance. An instance gets its own ID at
// instantiation time and snapshots the descriptive fields, so later catalog
// edits never alter existing workouts.
type Exercise struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	PrimaryMuscle    Muscle        `json:"primaryMuscle,omitempty"`
	SecondaryMuscles []Muscle      `json:"secondaryMuscles,omitempty"`
	Equipment        string        `json:"equipment,omitempty"`
	Movement         string        `json:"movement,omitempty"`
	Laterality       Laterality    `json:"laterality,omitempty"`
	Sets             []ExerciseSet `json:"sets"`
	Notes            string        `json:"notes,omitempty"`
}

// Clone returns a deep copy of the exercise. Set pointers are duplicated so
// the copy never aliases the original's reps/weight values.
func (e Exercise) Clone() Exercise {
	out := e
	if e.SecondaryMuscles != nil {
		out.SecondaryMuscles = append([]Muscle(nil), e.SecondaryMuscles...)
	}
	out.Sets = CloneSets(e.Sets)
	return out
}

// CloneSets deep copies a set sequence.
func CloneSets(sets []ExerciseSet) []ExerciseSet {
	if sets == nil {
		return nil
	}
	out := make([]ExerciseSet, len(sets))
	for i, s := range sets {
		out[i] = s.Clone()
	}
	return out
}

// Clone returns a copy of the set with its own reps/weight pointers.
func (s ExerciseSet) Clone() ExerciseSet {
	out := s
	if s.Reps != nil {
		v := *s.Reps
		out.Reps = &v
	}
	if s.Weight != nil {
		v := *s.Weight
		out.Weight = &v
	}
	return out
}

package catalog

import "dialed/fitness-app/internal/domain"

// emptySets returns n default set templates with nothing filled in yet.
func emptySets(n int) []domain.ExerciseSet {
	sets := make([]domain.ExerciseSet, n)
	return sets
}

// seed is the built-in exercise library. IDs are stable slugs; changing them
// would orphan references stored inside existing workout templates.
func seed() []domain.Exercise {
	return []domain.Exercise{
		{
			ID:               "bench",
			Name:             "Bench Press",
			PrimaryMuscle:    domain.MuscleChest,
			SecondaryMuscles: []domain.Muscle{domain.MuscleTriceps, domain.MuscleShoulders},
			Equipment:        "barbell",
			Movement:         "compound",
			Laterality:       domain.LateralityBilateral,
			Sets:             emptySets(3),
		},
		{
			ID:               "incline-db-press",
			Name:             "Incline Dumbbell Press",
			PrimaryMuscle:    domain.MuscleChest,
			SecondaryMuscles: []domain.Muscle{domain.MuscleShoulders, domain.MuscleTriceps},
			Equipment:        "dumbbell",
			Movement:         "compound",
			Laterality:       domain.LateralityBilateral,
			Sets:             emptySets(3),
		},
		{
			ID:            "cable-fly",
			Name:          "Cable Fly",
			PrimaryMuscle: domain.MuscleChest,
			Equipment:     "cable",
			Movement:      "isolation",
			Laterality:    domain.LateralityBilateral,
			Sets:          emptySets(3),
		},
		{
			ID:               "deadlift",
			Name:             "Deadlift",
			PrimaryMuscle:    domain.MuscleBack,
			SecondaryMuscles: []domain.Muscle{domain.MuscleHamstrings, domain.MuscleGlutes, domain.MuscleCore},
			Equipment:        "barbell",
			Movement:         "compound",
			Laterality:       domain.LateralityBilateral,
			Sets:             emptySets(3),
		},
		{
			ID:               "barbell-row",
			Name:             "Barbell Row",
			PrimaryMuscle:    domain.MuscleBack,
			SecondaryMuscles: []domain.Muscle{domain.MuscleBiceps},
			Equipment:        "barbell",
			Movement:         "compound",
			Laterality:       domain.LateralityBilateral,
			Sets:             emptySets(3),
		},
		{
			ID:               "lat-pulldown",
			Name:             "Lat Pulldown",
			PrimaryMuscle:    domain.MuscleBack,
			SecondaryMuscles: []domain.Muscle{domain.MuscleBiceps},
			Equipment:        "cable",
			Movement:         "compound",
			Laterality:       domain.LateralityBilateral,
			Sets:             emptySets(3),
		},
		{
			ID:               "single-arm-row",
			Name:             "Single Arm Dumbbell Row",
			PrimaryMuscle:    domain.MuscleBack,
			SecondaryMuscles: []domain.Muscle{domain.MuscleBiceps},
			Equipment:        "dumbbell",
			Movement:         "compound",
			Laterality:       domain.LateralityUnilateral,
			Sets:             emptySets(3),
		},
		{
			ID:               "ohp",
			Name:             "Overhead Press",
			PrimaryMuscle:    domain.MuscleShoulders,
			SecondaryMuscles: []domain.Muscle{domain.MuscleTriceps},
			Equipment:        "barbell",
			Movement:         "compound",
			Laterality:       domain.LateralityBilateral,
			Sets:             emptySets(3),
		},
		{
			ID:            "lateral-raise",
			Name:          "Lateral Raise",
			PrimaryMuscle: domain.MuscleShoulders,
			Equipment:     "dumbbell",
			Movement:      "isolation",
			Laterality:    domain.LateralityEither,
			Sets:          emptySets(3),
		},
		{
			ID:            "barbell-curl",
			Name:          "Barbell Curl",
			PrimaryMuscle: domain.MuscleBiceps,
			Equipment:     "barbell",
			Movement:      "isolation",
			Laterality:    domain.LateralityBilateral,
			Sets:          emptySets(3),
		},
		{
			ID:            "hammer-curl",
			Name:          "Hammer Curl",
			PrimaryMuscle: domain.MuscleBiceps,
			Equipment:     "dumbbell",
			Movement:      "isolation",
			Laterality:    domain.LateralityEither,
			Sets:          emptySets(3),
		},
		{
			ID:            "triceps-pushdown",
			Name:          "Triceps Pushdown",
			PrimaryMuscle: domain.MuscleTriceps,
			Equipment:     "cable",
			Movement:      "isolation",
			Laterality:    domain.LateralityBilateral,
			Sets:          emptySets(3),
		},
		{
			ID:            "skullcrusher",
			Name:          "Skullcrusher",
			PrimaryMuscle: domain.MuscleTriceps,
			Equipment:     "barbell",
			Movement:      "isolation",
			Laterality:    domain.LateralityBilateral,
			Sets:          emptySets(3),
		},
		{
			ID:               "squat",
			Name:             "Back Squat",
			PrimaryMuscle:    domain.MuscleQuads,
			SecondaryMuscles: []domain.Muscle{domain.MuscleGlutes, domain.MuscleCore},
			Equipment:        "barbell",
			Movement:         "compound",
			Laterality:       domain.LateralityBilateral,
			Sets:             emptySets(3),
		},
		{
			ID:               "leg-press",
			Name:             "Leg Press",
			PrimaryMuscle:    domain.MuscleQuads,
			SecondaryMuscles: []domain.Muscle{domain.MuscleGlutes},
			Equipment:        "machine",
			Movement:         "compound",
			Laterality:       domain.LateralityBilateral,
			Sets:             emptySets(3),
		},
		{
			ID:               "bulgarian-split-squat",
			Name:             "Bulgarian Split Squat",
			PrimaryMuscle:    domain.MuscleQuads,
			SecondaryMuscles: []domain.Muscle{domain.MuscleGlutes},
			Equipment:        "dumbbell",
			Movement:         "compound",
			Laterality:       domain.LateralityUnilateral,
			Sets:             emptySets(3),
		},
		{
			ID:               "rdl",
			Name:             "Romanian Deadlift",
			PrimaryMuscle:    domain.MuscleHamstrings,
			SecondaryMuscles: []domain.Muscle{domain.MuscleGlutes, domain.MuscleBack},
			Equipment:        "barbell",
			Movement:         "compound",
			Laterality:       domain.LateralityBilateral,
			Sets:             emptySets(3),
		},
		{
			ID:            "leg-curl",
			Name:          "Lying Leg Curl",
			PrimaryMuscle: domain.MuscleHamstrings,
			Equipment:     "machine",
			Movement:      "isolation",
			Laterality:    domain.LateralityBilateral,
			Sets:          emptySets(3),
		},
		{
			ID:               "hip-thrust",
			Name:             "Hip Thrust",
			PrimaryMuscle:    domain.MuscleGlutes,
			SecondaryMuscles: []domain.Muscle{domain.MuscleHamstrings},
			Equipment:        "barbell",
			Movement:         "compound",
			Laterality:       domain.LateralityBilateral,
			Sets:             emptySets(3),
		},
		{
			ID:            "calf-raise",
			Name:          "Standing Calf Raise",
			PrimaryMuscle: domain.MuscleCalves,
			Equipment:     "machine",
			Movement:      "isolation",
			Laterality:    domain.LateralityBilateral,
			Sets:          emptySets(4),
		},
		{
			ID:            "plank",
			Name:          "Plank",
			PrimaryMuscle: domain.MuscleCore,
			Movement:      "isometric",
			Laterality:    domain.LateralityBilateral,
			Sets:          emptySets(3),
		},
		{
			ID:            "cable-crunch",
			Name:          "Cable Crunch",
			PrimaryMuscle: domain.MuscleCore,
			Equipment:     "cable",
			Movement:      "isolation",
			Laterality:    domain.LateralityBilateral,
			Sets:          emptySets(3),
		},
	}
}

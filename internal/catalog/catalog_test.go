package catalog

import (
	"testing"

	"dialed/fitness-app/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_GetByID(t *testing.T) {
	cat := Default()

	bench, err := cat.GetByID("bench")
	require.NoError(t, err)
	assert.Equal(t, "Bench Press", bench.Name)
	assert.Equal(t, domain.MuscleChest, bench.PrimaryMuscle)
	require.NotEmpty(t, bench.Sets)
	for _, set := range bench.Sets {
		assert.Nil(t, set.Reps)
		assert.Nil(t, set.Weight)
		assert.False(t, set.Completed)
	}
}

func TestCatalog_GetByID_NotFound(t *testing.T) {
	cat := Default()

	_, err := cat.GetByID("no-such-exercise")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_ListCoversEveryMuscleGroup(t *testing.T) {
	seen := make(map[domain.Muscle]bool)
	for _, def := range Default().List() {
		seen[def.PrimaryMuscle] = true
	}

	for _, muscle := range []domain.Muscle{
		domain.MuscleChest, domain.MuscleBack, domain.MuscleShoulders,
		domain.MuscleBiceps, domain.MuscleTriceps, domain.MuscleQuads,
		domain.MuscleHamstrings, domain.MuscleGlutes, domain.MuscleCalves,
		domain.MuscleCore,
	} {
		assert.True(t, seen[muscle], "no catalog exercise targets %s", muscle)
	}
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	cat := Default()

	first, err := cat.GetByID("bench")
	require.NoError(t, err)
	first.Name = "tampered"
	reps := 5
	first.Sets[0].Reps = &reps

	second, err := cat.GetByID("bench")
	require.NoError(t, err)
	assert.Equal(t, "Bench Press", second.Name)
	assert.Nil(t, second.Sets[0].Reps)
}

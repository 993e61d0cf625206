package queue

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestQueue(t *testing.T) *Queue {
	t.Helper()
	q, err := Open(filepath.Join(t.TempDir(), "state", "pending.db"))
	require.NoError(t, err)
	t.Cleanup(func() { q.Close() })
	return q
}

func TestQueue_EnqueuePendingRemove(t *testing.T) {
	q := openTestQueue(t)
	ctx := context.Background()

	payload := map[string]any{"workoutName": "Push Day", "duration": 45}
	key, err := q.Enqueue(ctx, payload)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "pendingWorkout:"))

	entries, err := q.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, key, entries[0].Key)
	assert.False(t, entries[0].CreatedAt.IsZero())

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(entries[0].Payload, &decoded))
	assert.Equal(t, "Push Day", decoded["workoutName"])
	assert.Equal(t, 45.0, decoded["duration"])

	require.NoError(t, q.Remove(ctx, key))
	entries, err = q.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestQueue_PendingOldestFirst(t *testing.T) {
	q := openTestQueue(t)
	ctx := context.Background()

	var keys []string
	for _, name := range []string{"first", "second", "third"} {
		key, err := q.Enqueue(ctx, map[string]string{"workoutName": name})
		require.NoError(t, err)
		keys = append(keys, key)
		time.Sleep(2 * time.Millisecond)
	}

	entries, err := q.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i, entry := range entries {
		assert.Equal(t, keys[i], entry.Key)
	}
}

func TestQueue_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pending.db")
	ctx := context.Background()

	q, err := Open(path)
	require.NoError(t, err)
	key, err := q.Enqueue(ctx, map[string]string{"workoutName": "Push Day"})
	require.NoError(t, err)
	require.NoError(t, q.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	entries, err := reopened.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, key, entries[0].Key)
}

func TestQueue_RemoveUnknownKeyIsNoop(t *testing.T) {
	q := openTestQueue(t)

	assert.NoError(t, q.Remove(context.Background(), "pendingWorkout:0"))
}

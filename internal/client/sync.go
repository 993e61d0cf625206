package client

import (
	"context"
	"encoding/json"
	"fmt"

	"dialed/fitness-app/internal/client/queue"
)

// SyncPending replays queued completion payloads against the server, oldest
// first, removing each entry once its workout is created. It stops at the
// first failure (the connection is presumably still down) and returns how
// many entries made it through.
func SyncPending(ctx context.Context, apiClient API, q *queue.Queue) (int, error) {
	entries, err := q.Pending(ctx)
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, entry := range entries {
		var payload CompletionPayload
		if err := json.Unmarshal(entry.Payload, &payload); err != nil {
			// A corrupt entry would block the queue forever; drop it.
			if err := q.Remove(ctx, entry.Key); err != nil {
				return synced, err
			}
			continue
		}
		if _, err := apiClient.CreateWorkout(ctx, payload.CreateRequest()); err != nil {
			return synced, fmt.Errorf("replaying %s: %w", entry.Key, err)
		}
		if err := q.Remove(ctx, entry.Key); err != nil {
			return synced, err
		}
		synced++
	}
	return synced, nil
}

// Package queue is the client-local durable pending-sync queue: completion
// payloads that could not reach the server wait here, keyed by a
// timestamp-derived key, until a later replay against the API succeeds.
package queue

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS pending_workouts (
	key        TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	created_at TEXT NOT NULL
)`

// Queue is a SQLite-backed FIFO of pending completion payloads.
type Queue struct {
	db *sql.DB
}

// Entry is one queued completion payload.
type Entry struct {
	Key       string
	Payload   []byte
	CreatedAt time.Time
}

// Open opens (or creates) the queue database at the given path.
// If path is ":memory:", uses an in-memory database.
func Open(path string) (*Queue, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating queue directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening queue database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating queue table: %w", err)
	}

	return &Queue{db: db}, nil
}

// Close closes the underlying database.
func (q *Queue) Close() error {
	return q.db.Close()
}

// Enqueue serializes the payload and appends it under a fresh
// timestamp-derived key, which is returned.
func (q *Queue) Enqueue(ctx context.Context, payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding pending payload: %w", err)
	}

	key := fmt.Sprintf("pendingWorkout:%d", time.Now().UnixNano())
	_, err = q.db.ExecContext(ctx,
		`INSERT INTO pending_workouts (key, payload, created_at) VALUES (?, ?, ?)`,
		key, string(data), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("inserting pending payload: %w", err)
	}
	return key, nil
}

// Pending returns all queued entries, oldest first.
func (q *Queue) Pending(ctx context.Context) ([]Entry, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT key, payload, created_at FROM pending_workouts ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing pending payloads: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var payload, createdAt string
		if err := rows.Scan(&e.Key, &payload, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning pending payload: %w", err)
		}
		e.Payload = []byte(payload)
		e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pending payloads: %w", err)
	}
	return entries, nil
}

// Remove deletes a replayed entry.
func (q *Queue) Remove(ctx context.Context, key string) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM pending_workouts WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("deleting pending payload: %w", err)
	}
	return nil
}

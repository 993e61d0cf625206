// Package client is the application side of the tracker: a typed API client,
// the in-progress session controller with optimistic local edits, and replay
// of completion payloads that were queued while offline.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"dialed/fitness-app/internal/api"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// SetPatch is the body of a single-set PATCH. Values map straight to JSON,
// so a nil value sends an explicit null that clears the field server-side.
type SetPatch map[string]any

// Client talks to the workout API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// do issues one request. Body is JSON-encoded when non-nil; the response is
// decoded into out unless the server replied 204.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(text))}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *Client) GetExercises(ctx context.Context) ([]api.ExerciseResponse, error) {
	var out []api.ExerciseResponse
	if err := c.do(ctx, http.MethodGet, "/api/exercises", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetExercise(ctx context.Context, id string) (*api.ExerciseResponse, error) {
	var out api.ExerciseResponse
	if err := c.do(ctx, http.MethodGet, "/api/exercises/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetWorkouts(ctx context.Context) ([]api.WorkoutResponse, error) {
	var out []api.WorkoutResponse
	if err := c.do(ctx, http.MethodGet, "/api/workouts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetWorkout(ctx context.Context, id string) (*api.WorkoutResponse, error) {
	var out api.WorkoutResponse
	if err := c.do(ctx, http.MethodGet, "/api/workouts/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateWorkout(ctx context.Context, req api.CreateWorkoutRequest) (*api.WorkoutResponse, error) {
	var out api.WorkoutResponse
	if err := c.do(ctx, http.MethodPost, "/api/workouts", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateWorkout(ctx context.Context, id string, req api.UpdateWorkoutRequest) (*api.WorkoutResponse, error) {
	var out api.WorkoutResponse
	if err := c.do(ctx, http.MethodPut, "/api/workouts/"+id, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteWorkout(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/workouts/"+id, nil, nil)
}

func (c *Client) StartWorkout(ctx context.Context, id string) (*api.WorkoutResponse, error) {
	var out api.WorkoutResponse
	if err := c.do(ctx, http.MethodPost, "/api/workouts/"+id+"/start", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateExerciseSet(ctx context.Context, workoutID, exerciseID string, setIndex int, patch SetPatch) (*api.ExerciseResponse, error) {
	var out api.ExerciseResponse
	path := fmt.Sprintf("/api/workouts/%s/exercises/%s/sets/%d", workoutID, exerciseID, setIndex)
	if err := c.do(ctx, http.MethodPatch, path, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

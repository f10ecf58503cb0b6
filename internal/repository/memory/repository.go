// Package memory provides an in-memory implementation of the repository interface
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/navikt/lecturerooms/internal/models"
	"github.com/navikt/lecturerooms/internal/occupancy"
)

// Repository keeps the serialized lists in a map, keyed the same way as the Redis store
type Repository struct {
	values map[string][]byte
	mu     sync.RWMutex
}

// NewRepository creates a new in-memory repository
func NewRepository() *Repository {
	return &Repository{
		values: make(map[string][]byte),
	}
}

// Load decodes the stored lists, substituting defaults for missing keys
func (r *Repository) Load(ctx context.Context) (occupancy.State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lecturers, err := decodeKey(r.values, models.LecturersKey, []models.Lecturer{})
	if err != nil {
		return occupancy.State{}, fmt.Errorf("failed to unmarshal lecturers: %w", err)
	}
	rooms, err := decodeKey(r.values, models.RoomsKey, models.DefaultRooms())
	if err != nil {
		return occupancy.State{}, fmt.Errorf("failed to unmarshal rooms: %w", err)
	}

	return occupancy.State{Lecturers: lecturers, Rooms: rooms}, nil
}

// Save encodes both lists and replaces the stored values together
func (r *Repository) Save(ctx context.Context, state occupancy.State) error {
	lecturers, err := marshalList(state.Lecturers)
	if err != nil {
		return fmt.Errorf("failed to marshal lecturers: %w", err)
	}
	rooms, err := marshalList(state.Rooms)
	if err != nil {
		return fmt.Errorf("failed to marshal rooms: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[models.LecturersKey] = lecturers
	r.values[models.RoomsKey] = rooms

	return nil
}

// Ping always succeeds for the in-memory store
func (r *Repository) Ping(ctx context.Context) error {
	return nil
}

// Raw returns the stored JSON for a key, as it would be written to Redis
func (r *Repository) Raw(key string) ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.values[key]
	return data, ok
}

// marshalList encodes a nil slice as an empty JSON array
func marshalList[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

// decodeKey unmarshals the list stored under key, returning fallback when the key is missing
func decodeKey[T any](values map[string][]byte, key string, fallback []T) ([]T, error) {
	data, ok := values[key]
	if !ok {
		return fallback, nil
	}
	items := []T{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

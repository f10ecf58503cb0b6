// Package redis provides a Redis/Valkey implementation of the repository interface
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/navikt/lecturerooms/internal/config"
	"github.com/navikt/lecturerooms/internal/models"
	"github.com/navikt/lecturerooms/internal/occupancy"
	"github.com/redis/go-redis/v9"
)

// Repository implements the repository interface with Redis storage.
// Each list is stored as one JSON string value without expiry.
type Repository struct {
	client    *redis.Client
	keyPrefix string
}

// NewRepository creates a new Redis repository
func NewRepository(cfg config.RedisConfig) (*Repository, error) {
	var client *redis.Client

	// Use URI if provided, otherwise build connection from individual parameters
	if cfg.URI != "" {
		opt, err := redis.ParseURL(cfg.URI)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URI: %w", err)
		}

		// Use DB from config if not specified in the URI
		if opt.DB == 0 {
			opt.DB = cfg.DB
		}

		if opt.Password == "" && cfg.Password != "" {
			opt.Password = cfg.Password
		}

		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Repository{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
	}, nil
}

// Close closes the Redis connection
func (r *Repository) Close() error {
	return r.client.Close()
}

// key returns the prefixed Redis key for one of the stored lists
func (r *Repository) key(name string) string {
	return r.keyPrefix + name
}

// Load reads both lists in a single roundtrip, substituting defaults for missing keys
func (r *Repository) Load(ctx context.Context) (occupancy.State, error) {
	values, err := r.client.MGet(ctx, r.key(models.LecturersKey), r.key(models.RoomsKey)).Result()
	if err != nil {
		return occupancy.State{}, fmt.Errorf("failed to load state: %w", err)
	}

	lecturers, err := decodeValue(values[0], []models.Lecturer{})
	if err != nil {
		return occupancy.State{}, fmt.Errorf("failed to unmarshal lecturers: %w", err)
	}
	rooms, err := decodeValue(values[1], models.DefaultRooms())
	if err != nil {
		return occupancy.State{}, fmt.Errorf("failed to unmarshal rooms: %w", err)
	}

	return occupancy.State{Lecturers: lecturers, Rooms: rooms}, nil
}

// Save writes both lists in one MULTI/EXEC transaction
func (r *Repository) Save(ctx context.Context, state occupancy.State) error {
	lecturers, err := marshalList(state.Lecturers)
	if err != nil {
		return fmt.Errorf("failed to marshal lecturers: %w", err)
	}
	rooms, err := marshalList(state.Rooms)
	if err != nil {
		return fmt.Errorf("failed to marshal rooms: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.key(models.LecturersKey), lecturers, 0)
		pipe.Set(ctx, r.key(models.RoomsKey), rooms, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	return nil
}

// Ping checks the connection to Redis
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// decodeValue unmarshals an MGET result, returning fallback for missing keys
func decodeValue[T any](v interface{}, fallback []T) ([]T, error) {
	if v == nil {
		return fallback, nil
	}
	data, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("unexpected value type %T", v)
	}
	items := []T{}
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// marshalList encodes a nil slice as an empty JSON array
func marshalList[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

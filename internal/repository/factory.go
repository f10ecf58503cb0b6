package repository

import (
	"log"

	"github.com/navikt/lecturerooms/internal/config"
	"github.com/navikt/lecturerooms/internal/repository/memory"
	"github.com/navikt/lecturerooms/internal/repository/redis"
)

// NewRepository returns a Redis-backed repository when enabled in cfg,
// otherwise an in-memory one
func NewRepository(cfg config.RedisConfig) (Repository, error) {
	if cfg.Enabled {
		log.Printf("Using Redis state store with key prefix %q", cfg.KeyPrefix)
		return redis.NewRepository(cfg)
	}

	log.Printf("Redis disabled, using in-memory state store")
	return memory.NewRepository(), nil
}

// SPDX-License-Identifier: MIT

// Package cache stores computed results (normal forms, renderings) keyed
// by a hash of the request that produced them.
//
// Backends:
//   - NullCache: never stores; caching disabled.
//   - MemoryCache: bounded in-process LRU with per-entry TTL.
//   - RedisCache: shared cache for several server instances.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/lvcat/internal/config"
)

// Cache is a byte-oriented key/value store with expiry.
// A ttl of 0 means no expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// New builds the backend selected by cfg.
func New(ctx context.Context, cfg config.CacheConfig) (Cache, error) {
	switch cfg.Backend {
	case config.CacheNone:
		return NewNullCache(), nil
	case config.CacheMemory, "":
		return NewMemoryCache(cfg.MaxEntries), nil
	case config.CacheRedis:
		rc, err := NewRedisCache(ctx, RedisConfig{Addr: cfg.RedisAddr, DB: cfg.RedisDB, Prefix: cfg.RedisKey})
		if err != nil {
			return nil, err
		}
		return rc, nil
	default:
		return nil, fmt.Errorf("%w: cache backend %q", config.ErrInvalid, cfg.Backend)
	}
}

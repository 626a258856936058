package store

import (
	"context"
	"fmt"
	"log/slog"
)

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Backends lists every supported backend.
var Backends = []string{BackendSQLite, BackendRedis, BackendMemory}

// RedisKeyPrefix namespaces splitlog keys in a shared Redis database.
const RedisKeyPrefix = "splitlog:"

// Options selects and configures a backend.
type Options struct {
	Backend  string
	Path     string // sqlite database file
	RedisURL string
}

// Open opens the configured backend and wraps it in a Gateway.
func Open(ctx context.Context, opts Options) (*Gateway, error) {
	var (
		kv  KV
		err error
	)

	switch opts.Backend {
	case "", BackendSQLite:
		if opts.Path == "" {
			return nil, fmt.Errorf("sqlite backend needs a database path")
		}
		kv, err = OpenSQLite(opts.Path)
	case BackendRedis:
		if opts.RedisURL == "" {
			return nil, fmt.Errorf("redis backend needs a redis url")
		}
		kv, err = OpenRedis(ctx, opts.RedisURL, RedisKeyPrefix)
	case BackendMemory:
		kv = NewMemoryKV()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s backend: %w", opts.Backend, err)
	}

	slog.Debug("Storage opened", "backend", opts.Backend, "path", opts.Path)
	return NewGateway(kv), nil
}

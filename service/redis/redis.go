package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/auton-labs/goapi/base/ctx"
)

// Forever expire means the key is stored without an associated TTL
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist, or by SetNX
	// when the write was rejected because the key is already present
	ErrNotFound = redis.ErrNil

	// ErrGapTime is returned when no pool is available to serve the command
	ErrGapTime = errors.New("get nil pool in gap time")

	// ErrNoTTL is returned by TTL when the key exists but has no
	// associated expire
	ErrNoTTL = errors.New("key has no associated ttl")
)

// Service wraps a redis connection pool
type Service interface {
	// Get returns the value of key
	Get(context ctx.Ctx, key string) ([]byte, error)

	// Set stores val under key. Pass Forever to store without a TTL.
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error

	// SetNX stores val under key only when the key does not exist yet
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error

	// Del removes the given keys and returns the number of keys removed
	Del(context ctx.Ctx, ks ...string) (int, error)

	// TTL returns the remaining time to live of key in seconds
	TTL(context ctx.Ctx, key string) (int, error)
}

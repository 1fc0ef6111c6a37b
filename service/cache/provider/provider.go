package provider

import (
	"errors"
	"time"

	"github.com/auton-labs/goapi/base/ctx"
)

var ErrNotFound = errors.New("Cache not found")

// Provider is a raw byte cache layer. Get reports the remaining ttl so
// a compound cache can refill nearer layers without extending the
// entry's life.
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}

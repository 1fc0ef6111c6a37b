package cache

import (
	"errors"
	"time"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/service/cache/provider"
)

var ErrNotFound = errors.New("Cache not found")

// OneTimeGetter loads the value on a miss, its result is cached and
// written into the caller's container.
type OneTimeGetter func() (interface{}, error)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

// Service is a typed cache over a raw provider, namespacing keys under
// a fixed prefix with one ttl.
type Service interface {
	GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

// ServiceConfig configures a Service. Leave Serialize and Deserialize
// nil for json.
type ServiceConfig struct {
	Ttl         time.Duration
	Pfx         string
	Cache       provider.Provider
	Serialize   Serializer
	Deserialize Deserializer
}

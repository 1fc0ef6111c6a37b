package ctx

import (
	"context"
	"sort"
	"time"

	"github.com/auton-labs/goapi/base/log"
)

// Ctx couples a context with the logger that accumulated its request
// scoped fields. Blocking calls take it as both deadline carrier and
// log sink, so derived contexts keep the two in step.
type Ctx struct {
	context.Context
	log.Logger
}

func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

// WithValue stores val under key and tags the logger with the same
// pair, so everything logged downstream carries it.
func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent, key, val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

// WithValues applies WithValue per pair in sorted key order, keeping
// logger field order stable across runs.
func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	sorted := make([]string, 0, len(kvs))
	for k := range kvs {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	c := parent
	for _, k := range sorted {
		c = WithValue(c, k, kvs[k])
	}
	return c
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	inner, cancel := context.WithCancel(parent)
	return Ctx{
		Context: inner,
		Logger:  parent.Logger,
	}, cancel
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	inner, cancel := context.WithTimeout(parent, timeout)
	return Ctx{
		Context: inner,
		Logger:  parent.Logger,
	}, cancel
}

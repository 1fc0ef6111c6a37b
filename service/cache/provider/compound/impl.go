package compound

import (
	"time"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/service/cache/provider"
)

type impl struct {
	layers []provider.Provider
}

// NewCompound layers providers nearest first. A hit is served from the
// first layer holding the key and copied into the layers in front of
// it with the remaining ttl. Writes and deletes reach every layer.
func NewCompound(layers []provider.Provider) provider.Provider {
	return &impl{layers}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	for idx, lyr := range im.layers {
		val, ttl, err := lyr.Get(c, key)
		if err == provider.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, 0, err
		}

		if err := im.refill(c, key, val, ttl, idx); err != nil {
			return nil, 0, err
		}
		return val, ttl, nil
	}

	return nil, 0, provider.ErrNotFound
}

// refill copies a far hit into the layers before hitIdx
func (im *impl) refill(c ctx.Ctx, key string, val []byte, ttl time.Duration, hitIdx int) error {
	for _, lyr := range im.layers[:hitIdx] {
		if err := lyr.Set(c, key, val, ttl); err != nil {
			return err
		}
	}
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	for _, lyr := range im.layers {
		if err := lyr.Set(c, key, value, ttl); err != nil {
			return err
		}
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	for _, lyr := range im.layers {
		if err := lyr.Del(c, key); err != nil {
			return err
		}
	}
	return nil
}

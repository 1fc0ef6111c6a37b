package repository

import (
	"bytes"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/database/mongoclient"
	hcdomain "github.com/auton-labs/goapi/domain/healthcheck"
	"github.com/auton-labs/goapi/domain/keys"
	"github.com/auton-labs/goapi/service/redis"
)

const probeTimeout = 2 * time.Second

type impl struct {
	mgoClient  *mongoclient.Client
	redisCache redis.Service
}

func New(
	mgoClient *mongoclient.Client,
	redisCache redis.Service,
) hcdomain.HealthCheckRepo {
	return &impl{
		mgoClient:  mgoClient,
		redisCache: redisCache,
	}
}

func (im *impl) PingDB(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, probeTimeout)
	defer cancel()
	if err := im.mgoClient.Ping(ctx, readpref.Primary()); err != nil {
		context.WithField("err", err).Error("ping mongo error")
		return err
	}
	return nil
}

// PingCache writes a sentinel and reads it back, so a half-dead redis
// that accepts writes but cannot serve reads still fails the probe.
func (im *impl) PingCache(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, probeTimeout)
	defer cancel()

	key := keys.RedisKey(keys.PfxHealthCheck, "testset")
	want := []byte("1")

	if err := im.redisCache.Set(ctx, key, want, 30*time.Second); err != nil {
		context.WithField("err", err).Error("test redis set failed")
		return err
	}
	if got, err := im.redisCache.Get(ctx, key); err != nil {
		context.WithField("err", err).Error("test redis get failed")
		return err
	} else if !bytes.Equal(got, want) {
		context.WithField("got", string(got)).Error("test redis roundtrip mismatch")
		return fmt.Errorf("redis roundtrip mismatch")
	}
	return nil
}

package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/database/mongoclient"
	"github.com/auton-labs/goapi/base/log"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/domain/creator"
	"github.com/auton-labs/goapi/domain/keys"
	"github.com/auton-labs/goapi/service/cache"
	"github.com/auton-labs/goapi/service/cache/provider"
	"github.com/auton-labs/goapi/service/cache/provider/compound"
	"github.com/auton-labs/goapi/service/cache/provider/primitive"
	redisCache "github.com/auton-labs/goapi/service/cache/provider/redis"
	"github.com/auton-labs/goapi/service/query"
	"github.com/auton-labs/goapi/service/redis"
)

type impl struct {
	q            query.Mongo
	creatorCache cache.Service
}

// New creates new creator repo
func New(q query.Mongo, redis redis.Service) creator.Repo {
	cacheProviders := []provider.Provider{
		primitive.NewPrimitive(keys.PfxCreator, 128),
	}

	if redis != nil {
		cacheProviders = append(cacheProviders, redisCache.NewRedis(redis))
	}

	return &impl{
		q: q,
		creatorCache: cache.New(cache.ServiceConfig{
			Ttl:   time.Hour,
			Pfx:   keys.PfxCreator,
			Cache: compound.NewCompound(cacheProviders),
		}),
	}
}

func (im *impl) Get(c ctx.Ctx, address domain.Address) (*creator.Creator, error) {
	res := &creator.Creator{}

	if err := im.creatorCache.GetByFunc(c, string(address), res, func() (interface{}, error) {
		return im.get(c, address)
	}); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("creatorCache.GetByFunc failed")
		return nil, err
	}

	return res, nil
}

func (im *impl) get(c ctx.Ctx, address domain.Address) (*creator.Creator, error) {
	res := &creator.Creator{}
	err := im.q.FindOne(c, domain.TableCreators, bson.M{"address": address}, res)
	if err != nil && err != query.ErrNotFound {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("find creator failed")
	} else if err == query.ErrNotFound {
		err = domain.ErrNotFound
	}
	return res, err
}

func (im *impl) GetByUsername(c ctx.Ctx, username string) (*creator.Creator, error) {
	res := &creator.Creator{}
	err := im.q.FindOne(c, domain.TableCreators, bson.M{"username": username}, res)
	if err != nil && err != query.ErrNotFound {
		c.WithFields(log.Fields{
			"username": username,
			"err":      err,
		}).Error("find creator failed")
		return nil, err
	} else if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	}
	return res, nil
}

func (im *impl) FindAll(c ctx.Ctx, opts ...creator.FindAllOptionsFunc) ([]*creator.Creator, error) {
	res := []*creator.Creator{}

	options, err := creator.GetFindAllOptions(opts...)
	if err != nil {
		c.WithField("err", err).Error("creator.GetFindAllOptions failed")
		return res, err
	}

	offset := int(0)
	limit := int(0)
	sort := "_id"

	if options.Offset != nil {
		offset = int(*options.Offset)
	}

	if options.Limit != nil {
		limit = int(*options.Limit)
	}

	if options.Sort != nil {
		sort = *options.Sort
	}

	if err := im.q.Search(c, domain.TableCreators, offset, limit, sort, bson.M{}, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return res, err
	}

	return res, nil
}

func (im *impl) Insert(c ctx.Ctx, value *creator.Creator) error {
	if err := im.q.Insert(c, domain.TableCreators, value); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"address": value.Address,
			"err":     err,
		}).Error("insert creator failed")
		return err
	}
	return nil
}

func (im *impl) Update(c ctx.Ctx, address domain.Address, updater *creator.Updater) error {
	updaterBson, err := mongoclient.MakeBsonM(updater)
	if err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("make bsonM failed")
		return err
	}
	if err := im.q.Patch(c, domain.TableCreators, bson.M{"address": address}, updaterBson); err != nil && err != query.ErrNotFound {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("patch creator failed")
		return err
	} else if err == query.ErrNotFound {
		return domain.ErrNotFound
	}
	if err := im.creatorCache.Del(c, string(address)); err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("creatorCache.Del failed")
		return nil
	}
	return nil
}

func (im *impl) IncrementContentCount(c ctx.Ctx, address domain.Address, delta int) error {
	res := &creator.Creator{}
	if err := im.q.Increment(c, domain.TableCreators, bson.M{"address": address}, res, "contentCount", delta); err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("q.Increment failed")
		return err
	}

	if err := im.creatorCache.Del(c, string(address)); err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("creatorCache.Del failed")
		return nil
	}
	return nil
}

func (im *impl) IncrementTotalEarned(c ctx.Ctx, address domain.Address, delta int64) error {
	res := &creator.Creator{}
	if err := im.q.Increment(c, domain.TableCreators, bson.M{"address": address}, res, "totalEarned", delta); err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("q.Increment failed")
		return err
	}

	if err := im.creatorCache.Del(c, string(address)); err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("creatorCache.Del failed")
		return nil
	}
	return nil
}

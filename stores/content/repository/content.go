package repository

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/database/mongoclient"
	"github.com/auton-labs/goapi/base/log"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/domain/content"
	"github.com/auton-labs/goapi/service/query"
)

type impl struct {
	q query.Mongo
}

// New creates new content repo
func New(q query.Mongo) content.Repo {
	return &impl{q: q}
}

func makeFindQuery(optFns ...content.FindAllOptionsFunc) (bson.M, error) {
	opts, err := content.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	query := bson.M{}

	if opts.Creator != nil {
		query["creator"] = *opts.Creator
	}

	if opts.Status != nil {
		query["status"] = *opts.Status
	}

	if opts.Asset != nil {
		query["asset"] = *opts.Asset
	}

	if opts.PriceGTE != nil || opts.PriceLTE != nil {
		subQuery := bson.M{}
		if opts.PriceGTE != nil {
			subQuery["$gte"] = *opts.PriceGTE
		}
		if opts.PriceLTE != nil {
			subQuery["$lte"] = *opts.PriceLTE
		}
		query["price"] = subQuery
	}

	return query, nil
}

func (im *impl) FindOne(c ctx.Ctx, id content.Id) (*content.Content, error) {
	res := &content.Content{}
	err := im.q.FindOne(c, domain.TableContents, bson.M{"creator": id.Creator, "contentId": id.ContentId}, res)
	if err != nil && err != query.ErrNotFound {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("find content failed")
		return nil, err
	} else if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	}
	return res, nil
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...content.FindAllOptionsFunc) ([]*content.Content, error) {
	res := []*content.Content{}

	opts, err := content.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("content.GetFindAllOptions failed")
		return res, err
	}

	query, err := makeFindQuery(optFns...)
	if err != nil {
		return res, err
	}

	offset := int(0)
	limit := int(0)
	sort := "_id"

	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}

	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}

	if opts.Sort != nil {
		sort = *opts.Sort
	}

	if err := im.q.Search(c, domain.TableContents, offset, limit, sort, query, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return res, err
	}

	return res, nil
}

func (im *impl) Count(c ctx.Ctx, optFns ...content.FindAllOptionsFunc) (int, error) {
	query, err := makeFindQuery(optFns...)
	if err != nil {
		return 0, err
	}

	res, err := im.q.Count(c, domain.TableContents, query)
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}

	return res, nil
}

func (im *impl) Insert(c ctx.Ctx, value *content.Content) error {
	if err := im.q.Insert(c, domain.TableContents, value); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"id":  value.ToId(),
			"err": err,
		}).Error("insert content failed")
		return err
	}
	return nil
}

func (im *impl) Patch(c ctx.Ctx, id content.Id, patchable *content.Patchable) error {
	patchableBson, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("make bsonM failed")
		return err
	}
	selector := bson.M{"creator": id.Creator, "contentId": id.ContentId}
	if err := im.q.Patch(c, domain.TableContents, selector, patchableBson); err != nil && err != query.ErrNotFound {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("patch content failed")
		return err
	} else if err == query.ErrNotFound {
		return domain.ErrNotFound
	}
	return nil
}

func (im *impl) IncrementUnlockCount(c ctx.Ctx, id content.Id, delta int) error {
	res := &content.Content{}
	selector := bson.M{"creator": id.Creator, "contentId": id.ContentId}
	if err := im.q.Increment(c, domain.TableContents, selector, res, "unlockCount", delta); err != nil {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("q.Increment failed")
		return err
	}
	return nil
}

// NextContentId allocates the next id in the creator's sequence. The
// counter upserts, so a missing row is the same as seq 0.
func (im *impl) NextContentId(c ctx.Ctx, creator domain.Address) (string, error) {
	res := &content.Counter{}
	if err := im.q.Increment(c, domain.TableContentCounter, bson.M{"creator": creator}, res, "seq", 1); err != nil {
		c.WithFields(log.Fields{
			"creator": creator,
			"err":     err,
		}).Error("q.Increment failed")
		return "", err
	}
	return strconv.FormatInt(res.Seq, 10), nil
}

func (im *impl) EnsureCounter(c ctx.Ctx, creator domain.Address) error {
	res := &content.Counter{}
	if err := im.q.Increment(c, domain.TableContentCounter, bson.M{"creator": creator}, res, "seq", 0); err != nil {
		c.WithFields(log.Fields{
			"creator": creator,
			"err":     err,
		}).Error("q.Increment failed")
		return err
	}
	return nil
}

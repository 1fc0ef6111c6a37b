package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/log"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/domain/access"
	"github.com/auton-labs/goapi/service/query"
)

type impl struct {
	q query.Mongo
}

// New creates new access grant repo
func New(q query.Mongo) access.Repo {
	return &impl{q: q}
}

func makeIdQuery(id access.GrantId) bson.M {
	return bson.M{
		"buyer":     id.Buyer,
		"creator":   id.Creator,
		"contentId": id.ContentId,
	}
}

func makeFindQuery(optFns ...access.FindAllOptionsFunc) (bson.M, error) {
	opts, err := access.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	query := bson.M{}

	if opts.Buyer != nil {
		query["buyer"] = *opts.Buyer
	}

	if opts.Creator != nil {
		query["creator"] = *opts.Creator
	}

	if opts.ContentId != nil {
		query["contentId"] = *opts.ContentId
	}

	return query, nil
}

func (im *impl) FindOne(c ctx.Ctx, id access.GrantId) (*access.Grant, error) {
	res := &access.Grant{}
	err := im.q.FindOne(c, domain.TableAccessGrants, makeIdQuery(id), res)
	if err != nil && err != query.ErrNotFound {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("find grant failed")
		return nil, err
	} else if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	}
	return res, nil
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...access.FindAllOptionsFunc) ([]*access.Grant, error) {
	res := []*access.Grant{}

	opts, err := access.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("access.GetFindAllOptions failed")
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

	if err := im.q.Search(c, domain.TableAccessGrants, offset, limit, sort, query, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return res, err
	}

	return res, nil
}

func (im *impl) Count(c ctx.Ctx, optFns ...access.FindAllOptionsFunc) (int, error) {
	query, err := makeFindQuery(optFns...)
	if err != nil {
		return 0, err
	}

	res, err := im.q.Count(c, domain.TableAccessGrants, query)
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}

	return res, nil
}

func (im *impl) Insert(c ctx.Ctx, grant *access.Grant) error {
	if err := im.q.Insert(c, domain.TableAccessGrants, grant); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"id":  grant.ToId(),
			"err": err,
		}).Error("insert grant failed")
		return err
	}
	return nil
}

func (im *impl) MarkMinted(c ctx.Ctx, id access.GrantId, tokenId string, at time.Time) error {
	update := bson.M{
		"$set": bson.M{"tokenId": tokenId, "lastMintAt": at},
		"$inc": bson.M{"unlockCount": 1},
	}
	if err := im.q.CustomPatch(c, domain.TableAccessGrants, makeIdQuery(id), update, false); err != nil && err != query.ErrNotFound {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("mark minted failed")
		return err
	} else if err == query.ErrNotFound {
		return domain.ErrNotFound
	}
	return nil
}

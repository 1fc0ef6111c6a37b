package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/log"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/domain/sponsorship"
	"github.com/auton-labs/goapi/service/query"
)

type impl struct {
	q query.Mongo
}

// New creates new sponsorship repo
func New(q query.Mongo) sponsorship.Repo {
	return &impl{q: q}
}

func makeFindQuery(optFns ...sponsorship.FindAllOptionsFunc) (bson.M, error) {
	opts, err := sponsorship.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	query := bson.M{}

	if opts.ClientIp != nil {
		query["clientIp"] = *opts.ClientIp
	}

	if opts.Suspicious != nil {
		query["suspicious"] = *opts.Suspicious
	}

	if opts.CreatedAtGTE != nil {
		query["createdAt"] = bson.M{"$gte": *opts.CreatedAtGTE}
	}

	return query, nil
}

func (im *impl) FindOne(c ctx.Ctx, address domain.Address) (*sponsorship.Sponsorship, error) {
	res := &sponsorship.Sponsorship{}
	err := im.q.FindOne(c, domain.TableSponsorships, bson.M{"address": address}, res)
	if err != nil && err != query.ErrNotFound {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("find sponsorship failed")
		return nil, err
	} else if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	}
	return res, nil
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...sponsorship.FindAllOptionsFunc) ([]*sponsorship.Sponsorship, error) {
	res := []*sponsorship.Sponsorship{}

	opts, err := sponsorship.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("sponsorship.GetFindAllOptions failed")
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

	if err := im.q.Search(c, domain.TableSponsorships, offset, limit, sort, query, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return res, err
	}

	return res, nil
}

func (im *impl) Count(c ctx.Ctx, optFns ...sponsorship.FindAllOptionsFunc) (int, error) {
	query, err := makeFindQuery(optFns...)
	if err != nil {
		return 0, err
	}

	res, err := im.q.Count(c, domain.TableSponsorships, query)
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}

	return res, nil
}

func (im *impl) Insert(c ctx.Ctx, record *sponsorship.Sponsorship) error {
	if err := im.q.Insert(c, domain.TableSponsorships, record); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"address": record.Address,
			"err":     err,
		}).Error("insert sponsorship failed")
		return err
	}
	return nil
}

package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/database/mongoclient"
	"github.com/auton-labs/goapi/base/log"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/domain/payment"
	"github.com/auton-labs/goapi/service/query"
)

type impl struct {
	q query.Mongo
}

// New creates new payment intent repo
func New(q query.Mongo) payment.Repo {
	return &impl{q: q}
}

func makeFindQuery(optFns ...payment.FindAllOptionsFunc) (bson.M, error) {
	opts, err := payment.GetFindAllOptions(optFns...)
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

	if opts.Status != nil {
		query["status"] = *opts.Status
	}

	if opts.ExpiresAtLT != nil {
		query["expiresAt"] = bson.M{"$lt": *opts.ExpiresAtLT}
	}

	return query, nil
}

func (im *impl) FindOne(c ctx.Ctx, id string) (*payment.Intent, error) {
	res := &payment.Intent{}
	err := im.q.FindOne(c, domain.TablePaymentIntents, bson.M{"id": id}, res)
	if err != nil && err != query.ErrNotFound {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("find intent failed")
		return nil, err
	} else if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	}
	return res, nil
}

func (im *impl) FindOneByTxSignature(c ctx.Ctx, txSignature domain.TxSignature) (*payment.Intent, error) {
	res := &payment.Intent{}
	err := im.q.FindOne(c, domain.TablePaymentIntents, bson.M{"txSignature": txSignature}, res)
	if err != nil && err != query.ErrNotFound {
		c.WithFields(log.Fields{
			"txSignature": txSignature,
			"err":         err,
		}).Error("find intent by signature failed")
		return nil, err
	} else if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	}
	return res, nil
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...payment.FindAllOptionsFunc) ([]*payment.Intent, error) {
	res := []*payment.Intent{}

	opts, err := payment.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("payment.GetFindAllOptions failed")
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

	if err := im.q.Search(c, domain.TablePaymentIntents, offset, limit, sort, query, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return res, err
	}

	return res, nil
}

func (im *impl) Count(c ctx.Ctx, optFns ...payment.FindAllOptionsFunc) (int, error) {
	query, err := makeFindQuery(optFns...)
	if err != nil {
		return 0, err
	}

	res, err := im.q.Count(c, domain.TablePaymentIntents, query)
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}

	return res, nil
}

func (im *impl) Insert(c ctx.Ctx, intent *payment.Intent) error {
	if err := im.q.Insert(c, domain.TablePaymentIntents, intent); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"id":  intent.Id,
			"err": err,
		}).Error("insert intent failed")
		return err
	}
	return nil
}

func (im *impl) Patch(c ctx.Ctx, id string, patchable *payment.IntentPatchable) error {
	patchableBson, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("make bsonM failed")
		return err
	}
	if err := im.q.Patch(c, domain.TablePaymentIntents, bson.M{"id": id}, patchableBson); err != nil && err != query.ErrNotFound {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("patch intent failed")
		return err
	} else if err == query.ErrNotFound {
		return domain.ErrNotFound
	}
	return nil
}

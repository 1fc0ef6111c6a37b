package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/database/mongoclient"
	"github.com/auton-labs/goapi/base/log"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/service/query"
)

type assetMongoRepo struct {
	q query.Mongo
}

func NewAssetRepo(q query.Mongo) domain.AssetRepo {
	return &assetMongoRepo{
		q: q,
	}
}

func (r *assetMongoRepo) FindOne(ctx bCtx.Ctx, symbol string) (*domain.Asset, error) {
	asset := &domain.Asset{}
	if err := r.q.FindOne(ctx, domain.TableAssets, bson.M{"symbol": symbol}, asset); err != nil && err != query.ErrNotFound {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	} else if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	}
	return asset, nil
}

func (r *assetMongoRepo) FindAll(ctx bCtx.Ctx) ([]*domain.Asset, error) {
	assets := []*domain.Asset{}
	if err := r.q.Search(ctx, domain.TableAssets, 0, 0, "symbol", bson.M{}, &assets); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return assets, nil
}

func (r *assetMongoRepo) Create(ctx bCtx.Ctx, asset *domain.Asset) error {
	if err := r.q.Insert(ctx, domain.TableAssets, asset); err != nil {
		ctx.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *assetMongoRepo) Upsert(ctx bCtx.Ctx, asset *domain.Asset) error {
	selector, err := mongoclient.MakeBsonM(asset.ToId())
	if err != nil {
		ctx.WithField("err", err).Error("failed to make bson.M")
		return err
	}
	if err := r.q.Upsert(ctx, domain.TableAssets, selector, asset); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  asset.ToId(),
		}).Error("failed to update")
		return err
	}
	return nil
}

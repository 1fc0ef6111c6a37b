package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/domain/vault"
	"github.com/auton-labs/goapi/service/query"
)

type impl struct {
	q query.Mongo
}

// New creates new vault stats repo
func New(q query.Mongo) vault.Repo {
	return &impl{q: q}
}

func statsQuery() bson.M {
	return bson.M{"key": vault.StatsKey}
}

func (im *impl) FindOne(c ctx.Ctx) (*vault.Stats, error) {
	res := &vault.Stats{}
	err := im.q.FindOne(c, domain.TableVaultStats, statsQuery(), res)
	if err != nil && err != query.ErrNotFound {
		c.WithField("err", err).Error("find vault stats failed")
		return nil, err
	} else if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	}
	return res, nil
}

// IncrementMany upserts the accumulator document, the stats key rides
// in on the selector
func (im *impl) IncrementMany(c ctx.Ctx, fields map[string]int64) error {
	inc := bson.M{}
	for field, delta := range fields {
		inc[field] = delta
	}

	res := &vault.Stats{}
	if err := im.q.IncrementMany(c, domain.TableVaultStats, statsQuery(), inc, nil, res); err != nil {
		c.WithField("err", err).Error("increment vault stats failed")
		return err
	}
	return nil
}

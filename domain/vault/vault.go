package vault

import (
	bCtx "github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/domain"
)

const StatsKey = "vault"

// Stats is a single accumulator document updated with atomic
// increments, never read-modify-write
type Stats struct {
	Key               string `bson:"key"`
	SponsoredCount    int64  `bson:"sponsoredCount"`
	SponsoredLamports int64  `bson:"sponsoredLamports"`
	ConfirmedPayments int64  `bson:"confirmedPayments"`
	VolumeCollected   int64  `bson:"volumeCollected"`
	FeeCollected      int64  `bson:"feeCollected"`
}

type StatsId struct {
	Key string `bson:"key"`
}

func (s *Stats) ToId() StatsId {
	return StatsId{Key: s.Key}
}

// Status reports the vault's live standing for operators
type Status struct {
	Address           domain.Address `json:"address"`
	Network           domain.Network `json:"network"`
	Balance           int64          `json:"balance"`
	Floor             int64          `json:"floor"`
	Funded            bool           `json:"funded"`
	SponsoredCount    int64          `json:"sponsoredCount"`
	SponsoredLamports int64          `json:"sponsoredLamports"`
	ConfirmedPayments int64          `json:"confirmedPayments"`
	VolumeCollected   int64          `json:"volumeCollected"`
	FeeCollected      int64          `json:"feeCollected"`
}

type Repo interface {
	FindOne(ctx bCtx.Ctx) (*Stats, error)
	IncrementMany(ctx bCtx.Ctx, fields map[string]int64) error
}

type UseCase interface {
	Status(ctx bCtx.Ctx) (*Status, error)
	RecordSponsorship(ctx bCtx.Ctx, lamports int64) error
	RecordPayment(ctx bCtx.Ctx, amount, fee int64) error
}

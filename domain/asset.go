package domain

import (
	"github.com/auton-labs/goapi/base/ctx"
)

type AssetKind string

const (
	// AssetKindNative settles in the ledger's native unit
	AssetKindNative AssetKind = "native"
	// AssetKindToken settles in a token held by derived token accounts
	AssetKindToken AssetKind = "token"
)

func (k AssetKind) IsValid() bool {
	switch k {
	case AssetKindNative, AssetKindToken:
		return true
	}
	return false
}

// Asset is a payable asset stored in database
type Asset struct {
	Symbol    string    `bson:"symbol"`
	Name      string    `bson:"name"`
	Kind      AssetKind `bson:"kind"`
	Decimals  int32     `bson:"decimals"`
	Mint      Address   `bson:"mint"` // empty for the native asset
	IsMainnet bool      `bson:"isMainnet"`
}

type AssetId struct {
	Symbol string `bson:"symbol"`
}

func (a *Asset) ToId() *AssetId {
	return &AssetId{Symbol: a.Symbol}
}

type AssetRepo interface {
	FindOne(ctx.Ctx, string) (*Asset, error)
	FindAll(ctx.Ctx) ([]*Asset, error)
	Create(ctx.Ctx, *Asset) error
	Upsert(ctx.Ctx, *Asset) error
}

package amount

import (
	"sync"

	"github.com/shopspring/decimal"

	bCtx "github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/log"
	"github.com/auton-labs/goapi/domain"
)

type FormatterCfg struct {
	Asset domain.AssetRepo
}

type impl struct {
	asset domain.AssetRepo

	// mutex protected members
	mutex      sync.Mutex
	assetCache map[string]*domain.Asset
}

func NewFormatter(cfg *FormatterCfg) Formatter {
	return &impl{
		asset:      cfg.Asset,
		assetCache: make(map[string]*domain.Asset),
	}
}

func (f *impl) getAsset(ctx bCtx.Ctx, symbol string) (*domain.Asset, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	a, ok := f.assetCache[symbol]
	if ok {
		return a, nil
	}
	a, err := f.asset.FindOne(ctx, symbol)
	if err == domain.ErrNotFound {
		return nil, domain.ErrUnknownAsset
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"symbol": symbol,
			"err":    err,
		}).Error("asset.FindOne failed")
		return nil, err
	}
	f.assetCache[symbol] = a
	return a, nil
}

func (f *impl) ToDisplay(ctx bCtx.Ctx, symbol string, minor int64) (decimal.Decimal, error) {
	if minor < 0 {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	a, err := f.getAsset(ctx, symbol)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.New(minor, -a.Decimals), nil
}

func (f *impl) ToMinor(ctx bCtx.Ctx, symbol string, display decimal.Decimal) (int64, error) {
	a, err := f.getAsset(ctx, symbol)
	if err != nil {
		return 0, err
	}
	shifted := display.Shift(a.Decimals)
	if !shifted.IsInteger() {
		return 0, domain.ErrInvalidAmount
	}
	bi := shifted.BigInt()
	if !bi.IsInt64() || bi.Int64() < 0 {
		return 0, domain.ErrInvalidAmount
	}
	return bi.Int64(), nil
}

package amount

import (
	"github.com/shopspring/decimal"

	bCtx "github.com/auton-labs/goapi/base/ctx"
)

// Formatter converts between the minor units payments settle in and
// the display amounts shown to people, using each asset's registered
// decimals
type Formatter interface {
	ToDisplay(ctx bCtx.Ctx, symbol string, minor int64) (decimal.Decimal, error)
	ToMinor(ctx bCtx.Ctx, symbol string, display decimal.Decimal) (int64, error)
}

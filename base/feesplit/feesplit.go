package feesplit

import (
	"math"

	"github.com/auton-labs/goapi/domain"
)

const BpsDenominator = 10000

// Split divides a payment between the platform and the creator
type Split struct {
	PlatformFee   int64
	CreatorAmount int64
}

// Compute charges the platform fee in basis points, rounded down. The
// two legs always add back to amount exactly, nothing is lost to
// rounding and nothing is charged twice.
func Compute(amount int64, feeBps int64) (Split, error) {
	if amount < 0 {
		return Split{}, domain.ErrInvalidAmount
	}
	if feeBps < 0 || feeBps > BpsDenominator {
		return Split{}, domain.ErrInvalidFeeRate
	}
	if feeBps > 0 && amount > math.MaxInt64/feeBps {
		return Split{}, domain.ErrInvalidAmount
	}
	fee := amount * feeBps / BpsDenominator
	return Split{
		PlatformFee:   fee,
		CreatorAmount: amount - fee,
	}, nil
}

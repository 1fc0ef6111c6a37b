package feesplit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/auton-labs/goapi/domain"
)

func TestCompute(t *testing.T) {
	req := require.New(t)

	// 0.75% platform fee on one million minor units
	split, err := Compute(1000000, 75)
	req.NoError(err)
	req.Equal(int64(7500), split.PlatformFee)
	req.Equal(int64(992500), split.CreatorAmount)

	// rounding loss goes to the creator leg
	split, err = Compute(999, 75)
	req.NoError(err)
	req.Equal(int64(7), split.PlatformFee)
	req.Equal(int64(992), split.CreatorAmount)

	split, err = Compute(0, 75)
	req.NoError(err)
	req.Equal(int64(0), split.PlatformFee)
	req.Equal(int64(0), split.CreatorAmount)

	split, err = Compute(1000000, 0)
	req.NoError(err)
	req.Equal(int64(0), split.PlatformFee)
	req.Equal(int64(1000000), split.CreatorAmount)

	split, err = Compute(1000000, BpsDenominator)
	req.NoError(err)
	req.Equal(int64(1000000), split.PlatformFee)
	req.Equal(int64(0), split.CreatorAmount)
}

func TestComputeSumsExactly(t *testing.T) {
	req := require.New(t)

	amounts := []int64{1, 3, 99, 100, 12345, 999999, 1000000, 987654321}
	rates := []int64{1, 25, 75, 100, 250, 9999}
	for _, amount := range amounts {
		for _, bps := range rates {
			split, err := Compute(amount, bps)
			req.NoError(err)
			req.Equal(amount, split.PlatformFee+split.CreatorAmount)
			req.Equal(amount*bps/BpsDenominator, split.PlatformFee)
		}
	}
}

func TestComputeRejectsBadInput(t *testing.T) {
	req := require.New(t)

	_, err := Compute(-1, 75)
	req.Equal(domain.ErrInvalidAmount, err)

	_, err = Compute(100, -1)
	req.Equal(domain.ErrInvalidFeeRate, err)

	_, err = Compute(100, BpsDenominator+1)
	req.Equal(domain.ErrInvalidFeeRate, err)
}

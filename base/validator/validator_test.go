package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidAddress(t *testing.T) {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "empty address",
			address:    "",
			expIsValid: false,
		},
		{
			desc:       "hex address",
			address:    "0x939ae6A4C8dfDBB1f7085189574F0A938013952A",
			expIsValid: false,
		},
		{
			desc:       "too short",
			address:    "1111111111111111111111111111111",
			expIsValid: false,
		},
		{
			desc:       "all zero key",
			address:    "11111111111111111111111111111111",
			expIsValid: true,
		},
		{
			desc:       "real address",
			address:    "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
			expIsValid: true,
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expIsValid, IsValidAddress(tt.address), tt.desc)
	}
}

func TestLedgerAddressTag(t *testing.T) {
	v := NewCustomValidator(validator.New())

	type params struct {
		Wallet string `validate:"ledgerAddress"`
	}

	require.NoError(t, v.Validate(params{Wallet: "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"}))
	require.Error(t, v.Validate(params{Wallet: "0x939ae6A4C8dfDBB1f7085189574F0A938013952A"}))
}

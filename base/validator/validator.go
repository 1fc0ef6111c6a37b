package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/auton-labs/goapi/domain"
)

// CustomValidator plugs go-playground validation into echo's Bind flow.
type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	v.RegisterValidation("ledgerAddress", AddressValidation)
	return &CustomValidator{v}
}

func (v *CustomValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

// IsValidAddress reports whether the string parses as a ledger address.
func IsValidAddress(address string) bool {
	return domain.Address(address).IsValid()
}

// AddressValidation backs the `ledgerAddress` struct tag
func AddressValidation(fl validator.FieldLevel) bool {
	return IsValidAddress(fl.Field().String())
}

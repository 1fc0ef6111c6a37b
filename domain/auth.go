package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/auton-labs/goapi/base/ctx"
)

// JwtCustomClaims is the session token payload. The address doubles as the
// subject, every authenticated route resolves the caller through it.
type JwtCustomClaims struct {
	Address string `json:"address"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	// SignToken verifies the wallet signature over the sign-in message
	// and mints a session token for the address.
	SignToken(ctx ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address string, err error)
}

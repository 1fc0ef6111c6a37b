package usecase

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/domain/access"
)

const defaultTokenTtl = 15 * time.Minute

type issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates an HMAC unlock token issuer
func NewTokenIssuer(secret []byte, ttl time.Duration) access.TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTtl
	}
	return &issuer{
		secret: secret,
		ttl:    ttl,
	}
}

func (im *issuer) Issue(c ctx.Ctx, buyer, creator domain.Address, contentId string) (*access.Minted, error) {
	now := jwt.TimeFunc()
	claims := access.TokenClaims{
		Buyer:     string(buyer),
		Creator:   string(creator),
		ContentId: contentId,
		TokenId:   uuid.NewString(),
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(im.ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(im.secret)
	if err != nil {
		c.WithField("err", err).Error("token.SignedString failed")
		return nil, err
	}

	return &access.Minted{
		Token:     signed,
		TokenId:   claims.TokenId,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

func (im *issuer) Verify(c ctx.Ctx, token string) (*access.TokenClaims, error) {
	claims := &access.TokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenSignature
		}
		return im.secret, nil
	})
	if err == nil {
		return claims, nil
	}

	// expiry outranks signature here. The claims validator ran before
	// the signature check, so an expired token reports expired even
	// when its signature is also wrong.
	if vErr, ok := err.(*jwt.ValidationError); ok {
		switch {
		case vErr.Errors&jwt.ValidationErrorMalformed != 0:
			return nil, domain.ErrTokenMalformed
		case vErr.Errors&jwt.ValidationErrorExpired != 0:
			return nil, domain.ErrTokenExpired
		case vErr.Errors&(jwt.ValidationErrorSignatureInvalid|jwt.ValidationErrorUnverifiable) != 0:
			return nil, domain.ErrTokenSignature
		}
	}
	return nil, domain.ErrTokenMalformed
}

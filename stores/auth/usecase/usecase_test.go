package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/domain"
	mCreator "github.com/auton-labs/goapi/domain/creator/mocks"
	"github.com/auton-labs/goapi/stores/auth/usecase"
)

func TestSignAndParseToken(t *testing.T) {
	mockCreatorUC := &mCreator.Usecase{}

	mockCreatorUC.On("ValidateSignature", mock.Anything, domain.Address("my-address"), "my-signature").Return(nil)

	ctx := ctx.Background()
	u := usecase.New("jwt-secret", mockCreatorUC)
	tkn, err := u.SignToken(ctx, "my-address", "my-signature")
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)
	ads, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, "my-address", ads)
}

func TestSignTokenInvalidSignature(t *testing.T) {
	mockCreatorUC := &mCreator.Usecase{}

	mockCreatorUC.On("ValidateSignature", mock.Anything, domain.Address("my-address"), "forged").Return(domain.ErrInvalidSignature)

	ctx := ctx.Background()
	u := usecase.New("jwt-secret", mockCreatorUC)
	tkn, err := u.SignToken(ctx, "my-address", "forged")
	assert.Equal(t, domain.ErrInvalidSignature, err)
	assert.Empty(t, tkn)
}

func TestParseTokenMalformed(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret", &mCreator.Usecase{})
	_, err := u.ParseToken(ctx, "not-a-token")
	assert.Error(t, err)
}

func TestParseTokenWrongSecret(t *testing.T) {
	mockCreatorUC := &mCreator.Usecase{}

	mockCreatorUC.On("ValidateSignature", mock.Anything, domain.Address("my-address"), "my-signature").Return(nil)

	ctx := ctx.Background()
	tkn, err := usecase.New("jwt-secret", mockCreatorUC).SignToken(ctx, "my-address", "my-signature")
	assert.NoError(t, err)

	_, err = usecase.New("another-secret", mockCreatorUC).ParseToken(ctx, tkn)
	assert.Error(t, err)
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/delivery"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/domain/creator"
)

type authHandler struct {
	auth               domain.AuthUsecase
	signingMsgTemplate string
}

func New(e *echo.Echo, auth domain.AuthUsecase, template string) {
	handler := &authHandler{
		auth:               auth,
		signingMsgTemplate: template,
	}
	g := e.Group("/auth")
	g.POST("/sign", handler.sign)
	g.GET("/signingMsgTemplate", handler.getSigningMsgTemplate)
}

// sign
//
//	@Summary		Get session token
//	@Description	Verify the wallet signature over the signing message and create a session token for given address
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.sign.params	true	"params"
//	@Success		201		{object}	object{data=string}
//	@Failure		401
//	@Failure		500
//	@Router			/auth/sign [post]
func (h *authHandler) sign(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Address   domain.Address `json:"address" binding:"address" description:"wallet address" example:"DjVE6JNiYqPL2QXyCUUh8rNjHrbz9hXHNYt99MQ59qw1"` // wallet address
		Signature string         `json:"signature" description:"base58 signature of the signing message"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	tkn, err := h.auth.SignToken(ctx, p.Address, p.Signature)
	if err == nil {
		return delivery.MakeJsonResp(c, http.StatusCreated, tkn)
	}

	ctx.WithField("err", err).Error("auth.SignToken failed")
	switch err {
	case domain.ErrNotFound, domain.ErrInvalidSignature, creator.ErrInvalidNonce:
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

// getSigningMsgTemplate
//
//	@Summary		Get signature template
//	@Description	Replace %s with nonce fetched from /creators/nonce to build signing message
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	object{msg=string}	"signing message template"
//	@Router			/auth/signingMsgTemplate [get]
func (h *authHandler) getSigningMsgTemplate(c echo.Context) error {
	res := struct {
		Msg string `json:"template"`
	}{
		Msg: h.signingMsgTemplate,
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

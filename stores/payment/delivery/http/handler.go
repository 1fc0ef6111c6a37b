package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/delivery"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/domain/payment"
)

type handler struct {
	payment payment.Usecase
}

func New(e *echo.Echo, payment payment.Usecase) {
	h := &handler{
		payment: payment,
	}

	g := e.Group("/payments")
	g.POST("/confirm", h.confirm)
	g.GET("/:intentId", h.getIntent)
}

// confirm
//
//	@Summary		Confirm a payment intent
//	@Description	Checks the submitted transaction signature against the ledger and mints the unlock token. A 503 means the transaction is not visible yet, retry with the same body. A 402 carries the definitive rejection reason.
//	@Tags			payment
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.confirm.payload	true	"params"
//	@Success		200		{object}	payment.ConfirmResult
//	@Failure		400
//	@Failure		402
//	@Failure		404
//	@Failure		409
//	@Failure		500
//	@Failure		503
//	@Router			/payments/confirm [post]
func (h *handler) confirm(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		IntentId    string `json:"intentId"`
		TxSignature string `json:"txSignature"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.payment.Confirm(ctx, p.IntentId, domain.TxSignature(p.TxSignature))
	if err == nil {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}

	ctx.WithField("err", err).Error("payment.Confirm failed")

	// the verifier wraps the rejection reason around the sentinel
	if errors.Is(err, domain.ErrPaymentRejected) {
		return delivery.MakeJsonResp(c, http.StatusPaymentRequired, err)
	}

	switch err {
	case domain.ErrBadParamInput, domain.ErrUnknownAsset:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	case domain.ErrNotFound:
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	case domain.ErrIntentExpired, domain.ErrIntentConsumed, domain.ErrTxAlreadyUsed:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	case domain.ErrTxNotFound:
		// not a rejection, the ledger read replica has not caught up
		c.Response().Header().Set("Retry-After", "5")
		return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

// getIntent
//
//	@Summary		Poll intent status
//	@Description	Wallets poll this while the buyer signs. Expired intents still report their terminal status.
//	@Tags			payment
//	@Accept			json
//	@Produce		json
//	@Param			intentId	path		string	true	"intent id"
//	@Success		200			{object}	object{id=string,creator=string,contentId=string,asset=string,amount=int,status=string,failReason=string,expiresAt=int}
//	@Failure		404
//	@Failure		500
//	@Router			/payments/{intentId} [get]
func (h *handler) getIntent(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	intent, err := h.payment.GetIntent(ctx, c.Param("intentId"))
	if err == domain.ErrNotFound {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Id         string               `json:"id"`
		Creator    domain.Address       `json:"creator"`
		ContentId  string               `json:"contentId"`
		Asset      string               `json:"asset"`
		Amount     int64                `json:"amount"`
		Status     payment.IntentStatus `json:"status"`
		FailReason string               `json:"failReason,omitempty"`
		ExpiresAt  int64                `json:"expiresAt"`
	}{intent.Id, intent.Creator, intent.ContentId, intent.Asset, intent.Amount, intent.Status, intent.FailReason, intent.ExpiresAt.Unix()}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/delivery"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/domain/sponsorship"
	"github.com/auton-labs/goapi/middleware"
	authMiddleware "github.com/auton-labs/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	sponsorship sponsorship.Usecase
}

func New(e *echo.Echo, sponsorship sponsorship.Usecase, authMiddleware *authMiddleware.AuthMiddleware, rateLimit echo.MiddlewareFunc) {
	h := &handler{
		sponsorship: sponsorship,
	}
	g := e.Group("/sponsor")
	g.POST("/check-eligibility/:address", h.checkEligibility, rateLimit, middleware.IsValidAddress("address"))
	g.POST("/prepare", h.prepare, rateLimit)
	g.POST("/submit", h.submit, rateLimit)

	// operator review of flagged sponsorships
	g.GET("/flags", h.flags, authMiddleware.Auth(), authMiddleware.IsAdmin())
}

// checkEligibility
//
//	@Summary		Check sponsorship eligibility
//	@Description	Probe whether a wallet qualifies for a vault-funded fee grant. Ineligibility is an answer, not an error.
//	@Tags			sponsor
//	@Produce		json
//	@Param			address	path		string	true	"wallet address"
//	@Success		200		{object}	sponsorship.CheckResult
//	@Failure		400
//	@Failure		429
//	@Failure		500
//	@Router			/sponsor/check-eligibility/{address} [post]
func (h *handler) checkEligibility(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := domain.Address(c.Param("address"))

	res, err := h.sponsorship.CheckEligibility(ctx, address)
	if err != nil {
		ctx.WithField("err", err).Error("sponsorship.CheckEligibility failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// prepare
//
//	@Summary		Prepare a sponsored transaction
//	@Description	Build the vault-fee-payer message for the wallet to sign. The nonce inside is single use and expires.
//	@Tags			sponsor
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.prepare.payload	true	"params"
//	@Success		200		{object}	sponsorship.Prepared
//	@Failure		400
//	@Failure		403
//	@Failure		429
//	@Failure		500
//	@Router			/sponsor/prepare [post]
func (h *handler) prepare(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Address      domain.Address       `json:"address" example:"DjVE6JNiYqPL2QXyCUUh8rNjHrbz9hXHNYt99MQ59qw1"` // wallet address
		Instructions []domain.Instruction `json:"instructions"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if !p.Address.IsValid() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	prepared, err := h.sponsorship.Prepare(ctx, p.Address, p.Instructions)
	if err == nil {
		return delivery.MakeJsonResp(c, http.StatusOK, prepared)
	}

	if errors.Is(err, domain.ErrNotEligible) {
		return delivery.MakeJsonResp(c, http.StatusForbidden, err)
	}

	ctx.WithField("err", err).Error("sponsorship.Prepare failed")
	switch err {
	case domain.ErrBadParamInput:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

// submit
//
//	@Summary		Submit a signed sponsored transaction
//	@Description	Co-sign the wallet's signed message with the vault key and broadcast it. Sponsorship is granted at most once per wallet.
//	@Tags			sponsor
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.submit.payload	true	"params"
//	@Success		200		{object}	sponsorship.Submitted
//	@Failure		400
//	@Failure		403
//	@Failure		405
//	@Failure		409
//	@Failure		429
//	@Failure		500
//	@Failure		503
//	@Router			/sponsor/submit [post]
func (h *handler) submit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Address           domain.Address `json:"address" example:"DjVE6JNiYqPL2QXyCUUh8rNjHrbz9hXHNYt99MQ59qw1"` // wallet address
		SignedTransaction string         `json:"signedTransaction"` // base64 transaction signed by the wallet
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if !p.Address.IsValid() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}
	if p.SignedTransaction == "" {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	submitted, err := h.sponsorship.Submit(ctx, p.Address, p.SignedTransaction, c.RealIP())
	if err == nil {
		return delivery.MakeJsonResp(c, http.StatusOK, submitted)
	}

	if errors.Is(err, domain.ErrNotEligible) {
		return delivery.MakeJsonResp(c, http.StatusForbidden, err)
	}

	ctx.WithField("err", err).Error("sponsorship.Submit failed")
	switch err {
	case domain.ErrBadParamInput, domain.ErrInvalidFeePayer:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	case domain.ErrInvalidSignature:
		return delivery.MakeJsonResp(c, http.StatusMethodNotAllowed, err)
	case domain.ErrAlreadySponsored:
		return delivery.MakeJsonResp(c, http.StatusForbidden, err)
	case domain.ErrNonceConsumed:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	case domain.ErrLedgerUnavailable:
		return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

// flags
//
//	@Summary		List flagged sponsorships
//	@Tags			sponsor
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			offset	query	int	false	"paging offset"
//	@Param			limit	query	int	false	"paging limit"
//	@Success		200
//	@Failure		401
//	@Failure		405
//	@Failure		500
//	@Router			/sponsor/flags [get]
func (h *handler) flags(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	offset, err := strconv.ParseInt(c.QueryParam("offset"), 10, 32)
	if err != nil {
		offset = 0
	}
	limit, err := strconv.ParseInt(c.QueryParam("limit"), 10, 32)
	if err != nil || limit <= 0 || limit > 100 {
		limit = 50
	}

	records, err := h.sponsorship.FindFlagged(ctx, int32(offset), int32(limit))
	if err != nil {
		ctx.WithField("err", err).Error("sponsorship.FindFlagged failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	type view struct {
		Address     domain.Address `json:"address"`
		TxSignature string         `json:"txSignature"`
		Lamports    int64          `json:"lamports"`
		ClientIp    string         `json:"clientIp"`
		Hints       []string       `json:"hints"`
		CreatedAt   time.Time      `json:"createdAt"`
	}
	views := make([]view, 0, len(records))
	for _, r := range records {
		views = append(views, view{
			Address:     r.Address,
			TxSignature: string(r.TxSignature),
			Lamports:    r.Lamports,
			ClientIp:    r.ClientIp,
			Hints:       r.SuspicionHints,
			CreatedAt:   r.CreatedAt,
		})
	}
	return delivery.MakeJsonResp(c, http.StatusOK, views)
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/delivery"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/domain/vault"
	authMiddleware "github.com/auton-labs/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	vault vault.UseCase
}

func New(e *echo.Echo, vault vault.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		vault: vault,
	}
	e.GET("/vault/status", h.status, authMiddleware.Auth(), authMiddleware.IsAdmin())
}

// status
//
//	@Summary	Vault standing
//	@Description	Live balance, funded flag and lifetime counters for the fee-payer wallet.
//	@Tags		vault
//	@Produce	json
//	@Security	ApiKeyAuth
//	@Success	200	{object}	vault.Status
//	@Failure	401
//	@Failure	405
//	@Failure	500
//	@Failure	503
//	@Router		/vault/status [get]
func (h *handler) status(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	status, err := h.vault.Status(ctx)
	if err == nil {
		return delivery.MakeJsonResp(c, http.StatusOK, status)
	}

	ctx.WithField("err", err).Error("vault.Status failed")
	switch err {
	case domain.ErrLedgerUnavailable:
		return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

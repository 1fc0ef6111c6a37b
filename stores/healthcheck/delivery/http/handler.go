package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/domain"
	hcdomain "github.com/auton-labs/goapi/domain/healthcheck"
)

type ResponseError struct {
	Message string `json:"message"`
}

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
	network     domain.Network
}

// New mounts the probe endpoint.
func New(e *echo.Echo, us hcdomain.HealthCheckUsecase, network domain.Network) {
	handler := &healthCheckHandler{
		healthCheck: us,
		network:     network,
	}
	g := e.Group("/health")
	g.GET("", handler.check)
}

// check
//
//	@Summary		Health check
//	@Description	Ping backing stores and report which ledger network this api serves
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	object{healthy=string,network=string}
//	@Failure		500	{object}	http.ResponseError
//	@Router			/health [get]
func (h *healthCheckHandler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	if err := h.healthCheck.Check(context); err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{
			Message: err.Error(),
		})
	}
	// network in the payload catches an api pointed at the wrong cluster
	return c.JSON(http.StatusOK, map[string]string{
		"healthy": "ok",
		"network": string(h.network),
	})
}

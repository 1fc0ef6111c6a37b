package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

// JsonResponse is the envelope every handler replies with, so clients
// switch on status instead of sniffing the payload shape.
type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// MakeJsonResp writes data under the envelope. Errors flatten to their
// message, with not-found mapped to 404 regardless of the status the
// handler asked for.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound) {
			status = http.StatusNotFound
		}
		data = err.Error()
	}

	switch {
	case status >= http.StatusBadRequest:
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	case status >= http.StatusOK && status < http.StatusMultipleChoices:
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	default:
		return c.JSON(status, data)
	}
}

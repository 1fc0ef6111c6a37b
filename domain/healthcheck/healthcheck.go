package healthcheck

import (
	"github.com/auton-labs/goapi/base/ctx"
)

// HealthCheckUsecase answers the readiness probe.
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) error
}

// HealthCheckRepo pings the stores the API cannot serve without.
type HealthCheckRepo interface {
	PingDB(context ctx.Ctx) error
	PingCache(context ctx.Ctx) error
}

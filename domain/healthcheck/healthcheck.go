package healthcheck

import (
	"github.com/x-xyz/nftdash/base/ctx"
)

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) error
}

// HealthCheckRepo pings every backing dependency
type HealthCheckRepo interface {
	PingChain(context ctx.Ctx) error
	PingCache(context ctx.Ctx) error
}

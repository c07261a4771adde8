package repository

import (
	"fmt"
	"time"

	"github.com/x-xyz/nftdash/base/ctx"
	"github.com/x-xyz/nftdash/base/log"
	hcdomain "github.com/x-xyz/nftdash/domain/healthcheck"
	"github.com/x-xyz/nftdash/service/chain"
	"github.com/x-xyz/nftdash/service/redis"
)

const pingTimeout = 2 * time.Second

type impl struct {
	chain      chain.Client
	redisCache redis.Service
}

// New creates a HealthCheckRepo. redisCache may be nil when no redis is configured.
func New(
	chain chain.Client,
	redisCache redis.Service,
) hcdomain.HealthCheckRepo {
	return &impl{
		chain:      chain,
		redisCache: redisCache,
	}
}

func (im *impl) PingChain(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()

	networks := im.chain.Networks()
	if len(networks) == 0 {
		return fmt.Errorf("no network connected")
	}
	for _, n := range networks {
		if _, err := im.chain.BlockNumber(ctx, n.ChainId); err != nil {
			context.WithFields(log.Fields{"err": err, "chainId": n.ChainId}).Error("ping chain error")
			return fmt.Errorf("chain %d: %w", n.ChainId, err)
		}
	}
	return nil
}

func (im *impl) PingCache(context ctx.Ctx) error {
	if im.redisCache == nil {
		return nil
	}

	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.redisCache.Ping(ctx); err != nil {
		context.WithField("err", err).Error("ping redis error")
		return err
	}
	return nil
}

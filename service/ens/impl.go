package ens

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	goens "github.com/wealdtech/go-ens/v3"

	"github.com/x-xyz/nftdash/base/ctx"
	"github.com/x-xyz/nftdash/base/log"
	"github.com/x-xyz/nftdash/base/metrics"
	"github.com/x-xyz/nftdash/domain"
	"github.com/x-xyz/nftdash/domain/keys"
	"github.com/x-xyz/nftdash/service/cache"
	"github.com/x-xyz/nftdash/service/cache/provider/primitive"
	redisCache "github.com/x-xyz/nftdash/service/cache/provider/redis"
	"github.com/x-xyz/nftdash/service/redis"
)

const (
	localTtl  = 30 * time.Second
	sharedTtl = 7 * 24 * time.Hour
)

type (
	resolveFunc        func(backend bind.ContractBackend, name string) (common.Address, error)
	reverseResolveFunc func(backend bind.ContractBackend, address common.Address) (string, error)
)

type impl struct {
	backend        bind.ContractBackend
	cache          cache.Service
	met            metrics.Service
	resolve        resolveFunc
	reverseResolve reverseResolveFunc
}

// New resolves names against the ENS registry reachable through backend. Lookups
// are cached in process and, when redis is not nil, in redis as well.
func New(backend bind.ContractBackend, redis redis.Service) ENS {
	layers := []cache.Service{
		cache.New(cache.ServiceConfig{
			Ttl:   localTtl,
			Pfx:   keys.PfxEns,
			Cache: primitive.NewPrimitive("ens", 16),
		}),
	}
	if redis != nil {
		layers = append(layers, cache.New(cache.ServiceConfig{
			Ttl:   sharedTtl,
			Pfx:   keys.PfxEns,
			Cache: redisCache.NewRedis(redis),
		}))
	}

	return &impl{
		backend:        backend,
		cache:          cache.NewCompound(layers...),
		met:            metrics.New("ens"),
		resolve:        goens.Resolve,
		reverseResolve: goens.ReverseResolve,
	}
}

func (im *impl) Resolve(ctx ctx.Ctx, name string) (domain.Address, error) {
	res := domain.Address("")
	key := keys.RedisKey("resolve", name)
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		defer im.met.BumpTime("resolve.time").End()
		addr, err := im.resolve(im.backend, name)
		if fmt.Sprint(err) == "unregistered name" {
			val := domain.Address("")
			return &val, nil
		}
		if err != nil {
			im.met.BumpSum("resolve.err", 1)
			ctx.WithFields(log.Fields{
				"err":  err,
				"name": name,
			}).Error("failed to goens.Resolve")
			return nil, err
		}
		val := domain.Address(addr.Hex())
		return &val, nil
	})
	if err != nil {
		return "", err
	}

	return res, nil
}

func (im *impl) ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error) {
	if !address.IsHex() {
		return "", domain.ErrInvalidAddress
	}

	res := ""
	key := keys.RedisKey("reverse-resolve", address.ToLowerStr())
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		defer im.met.BumpTime("reverse_resolve.time").End()
		name, err := im.reverseResolve(im.backend, address.ToCommon())
		if fmt.Sprint(err) == "not a resolver" || fmt.Sprint(err) == "no resolution" {
			val := ""
			return &val, nil
		}
		if err != nil {
			im.met.BumpSum("reverse_resolve.err", 1)
			ctx.WithFields(log.Fields{
				"err":     err,
				"address": address,
			}).Error("failed to goens.ReverseResolve")
			return nil, err
		}
		return &name, nil
	})
	if err != nil {
		return "", err
	}

	return res, nil
}

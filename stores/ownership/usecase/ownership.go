package usecase

import (
	"errors"
	"fmt"

	"github.com/x-xyz/nftdash/base/ctx"
	"github.com/x-xyz/nftdash/base/log"
	"github.com/x-xyz/nftdash/base/metrics"
	"github.com/x-xyz/nftdash/domain"
	"github.com/x-xyz/nftdash/domain/ownership"
)

type impl struct {
	contract ownership.Contract
	met      metrics.Service
}

func New(contract ownership.Contract) ownership.Usecase {
	return &impl{
		contract: contract,
		met:      metrics.New("ownership"),
	}
}

func (im *impl) Fetch(c ctx.Ctx, q ownership.Query) ownership.Result {
	c = ctx.WithFields(c, log.Fields{
		"chainId":  q.ChainId,
		"contract": q.Contract,
		"owner":    q.Owner,
	})

	if q.ChainId <= 0 {
		c.Warn("invalid chain id")
		return ownership.Failed(domain.ErrInvalidChainId)
	}
	if !q.Contract.IsHex() || !q.Owner.IsHex() {
		c.Warn("invalid address")
		return ownership.Failed(domain.ErrInvalidAddress)
	}

	tags := []string{"chain", fmt.Sprint(q.ChainId)}
	defer im.met.BumpTime("fetch.time", tags...).End()

	ids, err := im.contract.CheckNFTOwnership(c, q.ChainId, q.Contract, q.Owner)
	if err != nil {
		im.met.BumpSum("fetch.err", 1, tags...)
		c.WithField("err", err).Error("contract.CheckNFTOwnership failed")
		if errors.Is(err, domain.ErrUnsupportedChain) {
			return ownership.Failed(err)
		}
		return ownership.Failed(fmt.Errorf("%w: %v", domain.ErrQueryFailed, err))
	}

	im.met.BumpHistogram("fetch.count", float64(len(ids)), tags...)
	return ownership.Succeeded(domain.TokenIdListFromBigInts(ids))
}

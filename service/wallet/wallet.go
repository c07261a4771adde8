package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"

	bCtx "github.com/x-xyz/nftdash/base/ctx"
	"github.com/x-xyz/nftdash/base/log"
	"github.com/x-xyz/nftdash/base/metrics"
	"github.com/x-xyz/nftdash/domain"
	dWallet "github.com/x-xyz/nftdash/domain/wallet"
)

// Caller is the part of *rpc.Client the gateway needs
type Caller interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
}

type impl struct {
	caller  Caller
	timeout time.Duration
	met     metrics.Service
}

// New returns a gateway over an EIP-1193 style json-rpc wallet provider.
// caller may be nil, every call then fails with domain.ErrWalletUnavailable.
func New(caller Caller, timeout time.Duration) dWallet.Gateway {
	if c, ok := caller.(*rpc.Client); ok && c == nil {
		caller = nil
	}
	return &impl{
		caller:  caller,
		timeout: timeout,
		met:     metrics.New("wallet"),
	}
}

func (im *impl) GetConnectedAccount(ctx bCtx.Ctx) (domain.Address, error) {
	return im.accounts(ctx, "eth_accounts")
}

func (im *impl) RequestConnection(ctx bCtx.Ctx) (domain.Address, error) {
	return im.accounts(ctx, "eth_requestAccounts")
}

// codeUserRejected is the EIP-1193 provider error code of a declined request
const codeUserRejected = 4001

// classify maps a failed provider call to the domain error it is reported as
func classify(err error) error {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == codeUserRejected {
		return fmt.Errorf("%w: %v", domain.ErrConnectionRejected, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrWalletUnavailable, err)
}

func (im *impl) accounts(ctx bCtx.Ctx, method string) (domain.Address, error) {
	if im.caller == nil {
		return "", domain.ErrWalletUnavailable
	}
	defer im.met.BumpTime("accounts.time", "method", method).End()

	c := ctx
	if im.timeout > 0 {
		var cancel context.CancelFunc
		c, cancel = bCtx.WithTimeout(ctx, im.timeout)
		defer cancel()
	}

	accounts := []common.Address{}
	if err := im.caller.CallContext(c, &accounts, method); err != nil {
		im.met.BumpSum("accounts.err", 1, "method", method)
		ctx.WithFields(log.Fields{
			"err":    err,
			"method": method,
		}).Error("wallet provider call failed")
		return "", classify(err)
	}
	if len(accounts) == 0 {
		ctx.WithField("method", method).Info("no authorized account")
		return "", domain.ErrNoWalletConnected
	}
	return domain.Address(accounts[0].Hex()), nil
}

package notify

import (
	"github.com/x-xyz/nftdash/base/ctx"
	"github.com/x-xyz/nftdash/domain"
)

// Failure describes a dashboard step that did not complete
type Failure struct {
	Stage    string
	ChainId  domain.ChainId
	Contract domain.Address
	Owner    domain.Address
	Reason   string
}

type Notifier interface {
	NotifyFailure(c ctx.Ctx, f Failure) error
}

type nop struct{}

// Nop drops every notification
func Nop() Notifier {
	return nop{}
}

func (nop) NotifyFailure(ctx.Ctx, Failure) error {
	return nil
}

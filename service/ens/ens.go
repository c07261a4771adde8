package ens

import (
	"github.com/x-xyz/nftdash/base/ctx"
	"github.com/x-xyz/nftdash/domain"
)

type ENS interface {
	// Resolve returns the address of name, empty when the name is not registered
	Resolve(ctx ctx.Ctx, name string) (domain.Address, error)
	// ReverseResolve returns the primary name of address, empty when it has none
	ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error)
}

package ownership

import (
	"math/big"

	"github.com/x-xyz/nftdash/base/ctx"
	"github.com/x-xyz/nftdash/domain"
)

// DefaultContract is the ownership lookup contract the dashboard queries
const DefaultContract = domain.Address("0x4C0c1E72d51433e2B04b1d0cBd234F3b9b78585b")

type Status string

const (
	StatusOk     Status = "ok"
	StatusFailed Status = "failed"
)

// Result tells "owns nothing" (ok, empty TokenIds) apart from a failed query
// (failed, empty TokenIds, Reason set).
type Result struct {
	Status   Status             `json:"status"`
	TokenIds domain.TokenIdList `json:"tokenIds"`
	Reason   string             `json:"reason,omitempty"`

	err error
}

func Succeeded(ids domain.TokenIdList) Result {
	if ids == nil {
		ids = domain.TokenIdList{}
	}
	return Result{Status: StatusOk, TokenIds: ids}
}

func Failed(err error) Result {
	return Result{Status: StatusFailed, TokenIds: domain.TokenIdList{}, Reason: err.Error(), err: err}
}

func (r Result) Ok() bool {
	return r.Status == StatusOk
}

// Err returns the cause of a failed result. It is not serialized, a decoded
// Result only has Reason.
func (r Result) Err() error {
	return r.err
}

type Query struct {
	ChainId  domain.ChainId `json:"chainId" param:"chainId"`
	Contract domain.Address `json:"contract" param:"contract"`
	Owner    domain.Address `json:"owner" param:"owner"`
}

// Contract is the on-chain view method behind a query
type Contract interface {
	CheckNFTOwnership(c ctx.Ctx, chainId domain.ChainId, nftContract, owner domain.Address) ([]*big.Int, error)
}

// Usecase never returns an error, failures come back as a failed Result
type Usecase interface {
	Fetch(c ctx.Ctx, q Query) Result
}

package dashboard

import (
	"time"

	"github.com/x-xyz/nftdash/base/ctx"
	"github.com/x-xyz/nftdash/domain"
	"github.com/x-xyz/nftdash/domain/ownership"
)

type FetchRequest struct {
	ChainId  domain.ChainId `json:"chainId" validate:"required"`
	Contract domain.Address `json:"contract" validate:"required,address"`
	// Owner is optional, the connected wallet account is used when empty.
	// Accepts a hex address or an ENS name.
	Owner domain.Address `json:"owner" validate:"omitempty,owner"`
}

// Snapshot is the display state: a token id list together with the account and
// contract that produced it.
type Snapshot struct {
	RequestId string           `json:"requestId"`
	Seq       uint64           `json:"seq"`
	ChainId   domain.ChainId   `json:"chainId"`
	Contract  domain.Address   `json:"contract"`
	Owner     domain.Address   `json:"owner"`
	Result    ownership.Result `json:"result"`
	FetchedAt time.Time        `json:"fetchedAt"`
	// Applied is false when a later fetch started before this one finished,
	// the result was then discarded instead of displayed.
	Applied bool `json:"applied"`
}

type Collection struct {
	ChainId domain.ChainId `json:"chainId" mapstructure:"chainId"`
	Address domain.Address `json:"address" mapstructure:"address"`
	Name    string         `json:"name" mapstructure:"name"`
}

type CollectionResult struct {
	Collection Collection       `json:"collection"`
	Result     ownership.Result `json:"result"`
}

type Usecase interface {
	// Fetch runs wallet -> ownership query -> display state. It fails only
	// when no owner can be determined.
	Fetch(c ctx.Ctx, req FetchRequest) (*Snapshot, error)
	// Snapshot returns the displayed state, nil before the first fetch
	Snapshot(c ctx.Ctx) *Snapshot
	Collections(c ctx.Ctx) []Collection
	// FetchAll queries every curated collection for owner without touching display state
	FetchAll(c ctx.Ctx, owner domain.Address) ([]CollectionResult, error)
	// Close cancels the fetch in flight and releases the worker pool
	Close()
}

package wallet

import (
	"strings"

	"github.com/x-xyz/nftdash/base/ctx"
	"github.com/x-xyz/nftdash/domain"
)

// Mode picks which wallet capability supplies the account of a fetch
type Mode string

const (
	// ModeConnected reads the already authorized accounts (eth_accounts), never prompts
	ModeConnected Mode = "connected"
	// ModeRequest asks the wallet for authorization (eth_requestAccounts), may prompt
	ModeRequest Mode = "request"
)

func ToMode(s string) Mode {
	switch Mode(strings.ToLower(s)) {
	case ModeRequest:
		return ModeRequest
	default:
		return ModeConnected
	}
}

// Gateway talks to the wallet provider. Both methods return the first
// authorized account, or domain.ErrNoWalletConnected when there is none.
type Gateway interface {
	GetConnectedAccount(ctx ctx.Ctx) (domain.Address, error)
	RequestConnection(ctx ctx.Ctx) (domain.Address, error)
}

// GetAccount dispatches to the capability selected by mode
func GetAccount(c ctx.Ctx, g Gateway, mode Mode) (domain.Address, error) {
	if mode == ModeRequest {
		return g.RequestConnection(c)
	}
	return g.GetConnectedAccount(c)
}

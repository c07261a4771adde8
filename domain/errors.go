package domain

import "errors"

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput    = errors.New("Given Param is not valid")
	ErrInvalidChainId   = errors.New("invalid chain id")
	ErrUnsupportedChain = errors.New("unsupported chain")

	// wallet
	ErrNoWalletConnected  = errors.New("no wallet connected")
	ErrWalletUnavailable  = errors.New("wallet provider unavailable")
	ErrConnectionRejected = errors.New("wallet connection rejected")

	// request error
	ErrInvalidAddress = errors.New("Invalid address")

	// ErrQueryFailed marks a failed ownership query when it has to travel as an error
	ErrQueryFailed = errors.New("ownership query failed")
)

package domain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
)

// EthClientRepo is the read-only subset of go-ethereum/ethclient the service uses
type EthClientRepo interface {
	BlockNumber(context.Context) (uint64, error)
	CallContract(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error)
	Close()
}

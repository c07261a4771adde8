package ethereum

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/x-xyz/nftdash/domain"
)

// ThrottledClient caps the number of in-flight calls to one rpc endpoint
type ThrottledClient struct {
	domain.EthClientRepo
	tokens chan struct{}
}

func NewThrottledClient(client domain.EthClientRepo, n int) *ThrottledClient {
	if n <= 0 {
		n = 1
	}
	return &ThrottledClient{
		EthClientRepo: client,
		tokens:        make(chan struct{}, n),
	}
}

func (c *ThrottledClient) BlockNumber(ctx context.Context) (uint64, error) {
	if err := c.acquire(ctx); err != nil {
		return 0, err
	}
	defer c.release()
	return c.EthClientRepo.BlockNumber(ctx)
}

func (c *ThrottledClient) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	if err := c.acquire(ctx); err != nil {
		return nil, err
	}
	defer c.release()
	return c.EthClientRepo.CallContract(ctx, msg, number)
}

func (c *ThrottledClient) acquire(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case c.tokens <- struct{}{}:
		return nil
	}
}

func (c *ThrottledClient) release() {
	<-c.tokens
}

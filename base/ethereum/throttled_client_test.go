package ethereum

import (
	"context"
	"math/big"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/stretchr/testify/require"
)

type slowClient struct {
	inflight int32
	max      int32
}

func (s *slowClient) BlockNumber(context.Context) (uint64, error) {
	n := atomic.AddInt32(&s.inflight, 1)
	defer atomic.AddInt32(&s.inflight, -1)
	for {
		m := atomic.LoadInt32(&s.max)
		if n <= m || atomic.CompareAndSwapInt32(&s.max, m, n) {
			break
		}
	}
	time.Sleep(10 * time.Millisecond)
	return 1, nil
}

func (s *slowClient) CallContract(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error) {
	return []byte{1}, nil
}

func (s *slowClient) Close() {}

func TestThrottledClientLimit(t *testing.T) {
	slow := &slowClient{}
	c := NewThrottledClient(slow, 2)

	wg := sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.BlockNumber(context.Background())
			require.NoError(t, err)
		}()
	}
	wg.Wait()
	require.LessOrEqual(t, atomic.LoadInt32(&slow.max), int32(2))
}

func TestThrottledClientCtxDone(t *testing.T) {
	c := NewThrottledClient(&slowClient{}, 1)
	c.tokens <- struct{}{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.CallContract(ctx, ethereum.CallMsg{}, nil)
	require.Equal(t, context.Canceled, err)
}

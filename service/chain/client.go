package chain

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/x-xyz/nftdash/base/backoff"
	bCtx "github.com/x-xyz/nftdash/base/ctx"
	bEthereum "github.com/x-xyz/nftdash/base/ethereum"
	"github.com/x-xyz/nftdash/base/log"
	"github.com/x-xyz/nftdash/base/metrics"
	"github.com/x-xyz/nftdash/domain"
)

const (
	defaultCallTimeout  = 15 * time.Second
	defaultDialAttempts = 3
	defaultMaxInflight  = 16
)

// Dialer opens an rpc client for url, rpc.DialContext by default
type Dialer func(ctx context.Context, url string) (*rpc.Client, error)

type Network struct {
	ChainId domain.ChainId `mapstructure:"chainId"`
	Name    string         `mapstructure:"name"`
	RpcUrl  string         `mapstructure:"rpcUrl"`
}

// ClientCfg is the provider configuration of the process. It is built once at
// startup and never mutated afterwards.
type ClientCfg struct {
	AppName   string
	ProjectId string
	Networks  []Network
	// WalletUrl is the json-rpc endpoint of the wallet provider
	WalletUrl string

	CallTimeout  time.Duration
	DialAttempts int
	// MaxInflight caps concurrent calls per network
	MaxInflight int
	Dialer      Dialer
}

type Client interface {
	Call(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	BlockNumber(ctx bCtx.Ctx, chainId domain.ChainId) (uint64, error)
	// Backend exposes the unthrottled client of chainId for contract bindings
	Backend(chainId domain.ChainId) (bind.ContractBackend, error)
	Networks() []Network
	// Wallet returns the wallet provider connection, nil when none is configured
	Wallet() *rpc.Client
	CallTimeout() time.Duration
	Close()
}

type clientImpl struct {
	cfg      ClientCfg
	clients  map[domain.ChainId]domain.EthClientRepo
	backends map[domain.ChainId]*ethclient.Client
	networks []Network
	wallet   *rpc.Client
	met      metrics.Service

	closeOnce sync.Once
}

// NewClient dials every configured network and the wallet provider. A network
// that cannot be dialled is logged and skipped so the server still starts; the
// last dial error is returned along with the client.
func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	c := *cfg
	if c.CallTimeout == 0 {
		c.CallTimeout = defaultCallTimeout
	}
	if c.DialAttempts == 0 {
		c.DialAttempts = defaultDialAttempts
	}
	if c.MaxInflight == 0 {
		c.MaxInflight = defaultMaxInflight
	}
	if c.Dialer == nil {
		c.Dialer = rpc.DialContext
	}

	var anyerr error
	im := &clientImpl{
		cfg:      c,
		clients:  make(map[domain.ChainId]domain.EthClientRepo),
		backends: make(map[domain.ChainId]*ethclient.Client),
		met:      metrics.New("chain"),
	}
	for _, n := range c.Networks {
		rpcClient, err := dial(ctx, c, n.RpcUrl)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": n.ChainId,
				"url":     n.RpcUrl,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		ethClient := ethclient.NewClient(rpcClient)
		im.backends[n.ChainId] = ethClient
		im.clients[n.ChainId] = bEthereum.NewThrottledClient(ethClient, c.MaxInflight)
		im.networks = append(im.networks, n)
	}

	if c.WalletUrl != "" {
		wallet, err := dial(ctx, c, c.WalletUrl)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err": err,
				"url": c.WalletUrl,
			}).Warn("failed to dial wallet provider")
		} else {
			im.wallet = wallet
		}
	}

	ctx.WithFields(log.Fields{
		"app":       c.AppName,
		"projectId": c.ProjectId,
		"networks":  len(im.networks),
		"wallet":    im.wallet != nil,
	}).Info("chain client ready")

	return im, anyerr
}

func dial(ctx bCtx.Ctx, cfg ClientCfg, url string) (*rpc.Client, error) {
	var client *rpc.Client
	err := backoff.Retry(ctx, backoff.NewExponential(200*time.Millisecond, 2*time.Second), cfg.DialAttempts, func() error {
		var err error
		client, err = cfg.Dialer(ctx, url)
		return err
	})
	return client, err
}

func (c *clientImpl) get(chainId domain.ChainId) (domain.EthClientRepo, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, fmt.Errorf("chain %d: %w", chainId, domain.ErrUnsupportedChain)
	}
	return client, nil
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, err := c.get(chainId)
	if err != nil {
		return nil, err
	}
	tags := []string{"chain", fmt.Sprint(chainId), "method", method}
	defer c.met.BumpTime("call.time", tags...).End()

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}

	callCtx, cancel := bCtx.WithTimeout(ctx, c.cfg.CallTimeout)
	defer cancel()
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(callCtx, msg, nil)
	if err != nil {
		c.met.BumpSum("call.err", 1, tags...)
		ctx.WithFields(log.Fields{"err": err, "method": method}).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		c.met.BumpSum("call.err", 1, tags...)
		ctx.WithFields(log.Fields{"err": err, "method": method}).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) BlockNumber(ctx bCtx.Ctx, chainId domain.ChainId) (uint64, error) {
	client, err := c.get(chainId)
	if err != nil {
		return 0, err
	}
	callCtx, cancel := bCtx.WithTimeout(ctx, c.cfg.CallTimeout)
	defer cancel()
	return client.BlockNumber(callCtx)
}

func (c *clientImpl) Backend(chainId domain.ChainId) (bind.ContractBackend, error) {
	backend, ok := c.backends[chainId]
	if !ok {
		return nil, fmt.Errorf("chain %d: %w", chainId, domain.ErrUnsupportedChain)
	}
	return backend, nil
}

func (c *clientImpl) Networks() []Network {
	res := make([]Network, len(c.networks))
	copy(res, c.networks)
	return res
}

func (c *clientImpl) Wallet() *rpc.Client {
	return c.wallet
}

func (c *clientImpl) CallTimeout() time.Duration {
	return c.cfg.CallTimeout
}

func (c *clientImpl) Close() {
	c.closeOnce.Do(func() {
		for _, client := range c.clients {
			client.Close()
		}
		if c.wallet != nil {
			c.wallet.Close()
		}
	})
}

package chain

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	baseabi "github.com/x-xyz/nftdash/base/abi"
	bCtx "github.com/x-xyz/nftdash/base/ctx"
	"github.com/x-xyz/nftdash/base/log"
	"github.com/x-xyz/nftdash/domain"
	"github.com/x-xyz/nftdash/service/chain/chaintest"
)

var (
	ownershipContract = common.HexToAddress("0x4C0c1E72d51433e2B04b1d0cBd234F3b9b78585b")
	bayc              = common.HexToAddress("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d")
	owner             = common.HexToAddress("0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872")
)

type clientSuite struct {
	suite.Suite

	node   *chaintest.Node
	client Client
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(clientSuite))
}

func (s *clientSuite) SetupTest() {
	s.node = chaintest.NewNode()
	client, err := NewClient(bCtx.Background(), &ClientCfg{
		AppName:   "test",
		Networks:  []Network{{ChainId: 1, Name: "mainnet", RpcUrl: "inproc"}},
		WalletUrl: "inproc",
		Dialer:    s.node.Dialer(),
	})
	s.Require().NoError(err)
	s.client = client
}

func (s *clientSuite) TearDownTest() {
	s.client.Close()
	s.node.Stop()
}

func encodeIds(ids ...int64) []byte {
	arr, _ := abi.NewType("uint256[]", "", nil)
	vals := []*big.Int{}
	for _, id := range ids {
		vals = append(vals, big.NewInt(id))
	}
	out, err := abi.Arguments{{Type: arr}}.Pack(vals)
	if err != nil {
		panic(err)
	}
	return out
}

func (s *clientSuite) TestCall() {
	var gotTo common.Address
	var gotData []byte
	s.node.HandleCall(func(to common.Address, data []byte) ([]byte, error) {
		gotTo, gotData = to, data
		return encodeIds(1, 2, 3), nil
	})

	res, err := s.client.Call(bCtx.Background(), 1, ownershipContract, baseabi.NFTOwnershipABI, "checkNFTOwnership", bayc, owner)
	s.Require().NoError(err)
	s.Equal([]*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)}, res[0].([]*big.Int))
	s.Equal(ownershipContract, gotTo)

	expected, err := baseabi.NFTOwnershipABI.Pack("checkNFTOwnership", bayc, owner)
	s.Require().NoError(err)
	s.Equal(expected, gotData)
}

func (s *clientSuite) TestCallReverted() {
	s.node.HandleCall(func(common.Address, []byte) ([]byte, error) {
		return nil, errors.New("execution reverted")
	})
	_, err := s.client.Call(bCtx.Background(), 1, ownershipContract, baseabi.NFTOwnershipABI, "checkNFTOwnership", bayc, owner)
	s.Error(err)
	s.Contains(err.Error(), "execution reverted")
}

func (s *clientSuite) TestCallUnsupportedChain() {
	_, err := s.client.Call(bCtx.Background(), 137, ownershipContract, baseabi.NFTOwnershipABI, "checkNFTOwnership", bayc, owner)
	s.True(errors.Is(err, domain.ErrUnsupportedChain))
	s.Equal(0, s.node.Calls())
}

func (s *clientSuite) TestCallPackError() {
	_, err := s.client.Call(bCtx.Background(), 1, ownershipContract, baseabi.NFTOwnershipABI, "checkNFTOwnership", bayc)
	s.Error(err)
	s.Equal(0, s.node.Calls())
}

func (s *clientSuite) TestBlockNumber() {
	s.node.SetBlockNumber(15000000)
	n, err := s.client.BlockNumber(bCtx.Background(), 1)
	s.NoError(err)
	s.Equal(uint64(15000000), n)
}

func (s *clientSuite) TestNetworksAndWallet() {
	s.Equal([]Network{{ChainId: 1, Name: "mainnet", RpcUrl: "inproc"}}, s.client.Networks())
	s.NotNil(s.client.Wallet())
	s.Equal(defaultCallTimeout, s.client.CallTimeout())
}

func (s *clientSuite) TestBackend() {
	backend, err := s.client.Backend(1)
	s.NoError(err)
	s.NotNil(backend)

	_, err = s.client.Backend(10)
	s.True(errors.Is(err, domain.ErrUnsupportedChain))
}

func TestNewClientSoftFailure(t *testing.T) {
	errDial := errors.New("connection refused")
	client, err := NewClient(bCtx.Background(), &ClientCfg{
		Networks:     []Network{{ChainId: 1, RpcUrl: "ws://nowhere"}},
		DialAttempts: 1,
		Dialer: func(context.Context, string) (*rpc.Client, error) {
			return nil, errDial
		},
	})
	req := require.New(t)
	req.Equal(errDial, err)
	req.Empty(client.Networks())
	req.Nil(client.Wallet())
	client.Close()
}

func TestNewClientLogsIdentity(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	c := bCtx.Ctx{Context: context.Background(), Logger: log.New(zap.New(core))}

	node := chaintest.NewNode()
	defer node.Stop()
	client, err := NewClient(c, &ClientCfg{
		AppName:   "nftdash",
		ProjectId: "wc-project",
		Networks:  []Network{{ChainId: 1, Name: "mainnet", RpcUrl: "inproc"}},
		Dialer:    node.Dialer(),
	})
	req := require.New(t)
	req.NoError(err)
	defer client.Close()

	ready := logs.FilterMessage("chain client ready").All()
	req.Len(ready, 1)
	fields := ready[0].ContextMap()
	req.Equal("nftdash", fields["app"])
	req.Equal("wc-project", fields["projectId"])
}

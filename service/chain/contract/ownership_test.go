package contract

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/nftdash/base/ctx"
	"github.com/x-xyz/nftdash/domain"
	"github.com/x-xyz/nftdash/domain/ownership"
	"github.com/x-xyz/nftdash/service/chain"
	"github.com/x-xyz/nftdash/service/chain/chaintest"
)

type ownershipSuite struct {
	suite.Suite

	node     *chaintest.Node
	chain    chain.Client
	contract ownership.Contract
}

func TestOwnershipSuite(t *testing.T) {
	suite.Run(t, new(ownershipSuite))
}

func (s *ownershipSuite) SetupTest() {
	s.node = chaintest.NewNode()
	c, err := chain.NewClient(bCtx.Background(), &chain.ClientCfg{
		Networks: []chain.Network{{ChainId: 1, RpcUrl: "inproc"}},
		Dialer:   s.node.Dialer(),
	})
	s.Require().NoError(err)
	s.chain = c
	s.contract = NewNFTOwnership(c, "")
}

func (s *ownershipSuite) TearDownTest() {
	s.chain.Close()
	s.node.Stop()
}

func (s *ownershipSuite) TestCheckNFTOwnership() {
	uint256Arr, _ := abi.NewType("uint256[]", "", nil)
	var target common.Address
	s.node.HandleCall(func(to common.Address, data []byte) ([]byte, error) {
		target = to
		return abi.Arguments{{Type: uint256Arr}}.Pack([]*big.Int{big.NewInt(7), big.NewInt(3)})
	})

	ids, err := s.contract.CheckNFTOwnership(bCtx.Background(), 1,
		"0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d",
		"0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872")
	s.Require().NoError(err)
	s.Equal([]*big.Int{big.NewInt(7), big.NewInt(3)}, ids)
	s.Equal(ownership.DefaultContract.ToCommon(), target)
}

func (s *ownershipSuite) TestCheckNFTOwnershipCustomAddress() {
	custom := domain.Address("0x0000000000000000000000000000000000001234")
	c := NewNFTOwnership(s.chain, custom)

	var target common.Address
	s.node.HandleCall(func(to common.Address, data []byte) ([]byte, error) {
		target = to
		return nil, errors.New("execution reverted")
	})
	_, err := c.CheckNFTOwnership(bCtx.Background(), 1, custom, custom)
	s.Error(err)
	s.Equal(custom.ToCommon(), target)
}

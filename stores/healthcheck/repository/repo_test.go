package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftdash/base/ctx"
	"github.com/x-xyz/nftdash/service/chain"
	"github.com/x-xyz/nftdash/service/chain/chaintest"
	mockRedis "github.com/x-xyz/nftdash/service/redis/mocks"
)

type repoSuite struct {
	suite.Suite

	node   *chaintest.Node
	client chain.Client
	redis  *mockRedis.Service
}

func (s *repoSuite) SetupTest() {
	s.node = chaintest.NewNode()
	client, err := chain.NewClient(ctx.Background(), &chain.ClientCfg{
		Networks: []chain.Network{{ChainId: 1, Name: "mainnet", RpcUrl: "inproc"}},
		Dialer:   s.node.Dialer(),
	})
	s.Require().NoError(err)
	s.client = client
	s.redis = &mockRedis.Service{}
}

func (s *repoSuite) TearDownTest() {
	s.client.Close()
	s.node.Stop()
	s.redis.AssertExpectations(s.T())
}

func TestRepoSuite(t *testing.T) {
	suite.Run(t, new(repoSuite))
}

func (s *repoSuite) TestPingChain() {
	s.node.SetBlockNumber(100)
	s.NoError(New(s.client, nil).PingChain(ctx.Background()))
}

func (s *repoSuite) TestPingChainNoNetwork() {
	client, _ := chain.NewClient(ctx.Background(), &chain.ClientCfg{})
	defer client.Close()
	s.Error(New(client, nil).PingChain(ctx.Background()))
}

func (s *repoSuite) TestPingCache() {
	s.NoError(New(s.client, nil).PingCache(ctx.Background()))

	s.redis.On("Ping", mock.Anything).Return(nil).Once()
	s.NoError(New(s.client, s.redis).PingCache(ctx.Background()))

	errDown := errors.New("dial tcp: connection refused")
	s.redis.On("Ping", mock.Anything).Return(errDown).Once()
	s.Equal(errDown, New(s.client, s.redis).PingCache(ctx.Background()))
}

package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftdash/base/ctx"
	"github.com/x-xyz/nftdash/domain/healthcheck/mocks"
)

func TestCheck(t *testing.T) {
	repo := &mocks.HealthCheckRepo{}
	repo.On("PingChain", mock.Anything).Return(nil).Once()
	repo.On("PingCache", mock.Anything).Return(nil).Once()

	require.NoError(t, New(repo).Check(ctx.Background()))
	repo.AssertExpectations(t)
}

func TestCheckChainDown(t *testing.T) {
	errDown := errors.New("chain 1: connection refused")
	repo := &mocks.HealthCheckRepo{}
	repo.On("PingChain", mock.Anything).Return(errDown).Once()

	require.Equal(t, errDown, New(repo).Check(ctx.Background()))
	repo.AssertNotCalled(t, "PingCache", mock.Anything)
}

package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"golang.org/x/xerrors"

	baseabi "github.com/x-xyz/nftdash/base/abi"
	bCtx "github.com/x-xyz/nftdash/base/ctx"
	"github.com/x-xyz/nftdash/domain"
	"github.com/x-xyz/nftdash/domain/ownership"
	"github.com/x-xyz/nftdash/service/chain"
)

// NFTOwnership calls the read-only checkNFTOwnership method of the lookup contract
type NFTOwnership struct {
	chainService chain.Client
	abi          ethabi.ABI
	address      domain.Address
}

func NewNFTOwnership(chainService chain.Client, address domain.Address) ownership.Contract {
	if address.IsEmpty() {
		address = ownership.DefaultContract
	}
	return &NFTOwnership{
		chainService: chainService,
		abi:          baseabi.NFTOwnershipABI,
		address:      address,
	}
}

func (o *NFTOwnership) CheckNFTOwnership(ctx bCtx.Ctx, chainId domain.ChainId, nftContract, owner domain.Address) ([]*big.Int, error) {
	method := "checkNFTOwnership"
	unpacked, err := o.chainService.Call(ctx, chainId, o.address.ToCommon(), o.abi, method, nftContract.ToCommon(), owner.ToCommon())
	if err != nil {
		return nil, err
	}
	ids, ok := unpacked[0].([]*big.Int)
	if !ok {
		return nil, xerrors.Errorf("unexpected %s output %T: %w", method, unpacked[0], domain.ErrQueryFailed)
	}
	return ids, nil
}

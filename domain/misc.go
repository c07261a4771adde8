package domain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

type ChainId int32

type Address string

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return string(a.ToLower())
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

// IsHex reports whether a is a 20 byte hex address, with or without checksum
func (a Address) IsHex() bool {
	return common.IsHexAddress(string(a))
}

// IsENSName reports whether a looks like an ENS name rather than a hex address
func (a Address) IsENSName() bool {
	return !a.IsHex() && strings.HasSuffix(a.ToLowerStr(), ".eth")
}

func (a Address) ToCommon() common.Address {
	return common.HexToAddress(string(a))
}

// TokenId is the decimal representation of a uint256 token id
type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func TokenIdFromBigInt(id *big.Int) TokenId {
	return TokenId(id.String())
}

// TokenIdList is an ordered list of token ids. It is replaced wholesale and
// never mutated in place.
type TokenIdList []TokenId

func TokenIdListFromBigInts(ids []*big.Int) TokenIdList {
	res := make(TokenIdList, 0, len(ids))
	for _, id := range ids {
		res = append(res, TokenIdFromBigInt(id))
	}
	return res
}

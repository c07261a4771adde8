package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var NFTOwnershipABI abi.ABI

func init() {
	_abi, err := abi.JSON(strings.NewReader(nftOwnershipABIJson))
	if err != nil {
		panic("Failed to parse ABI")
	}
	NFTOwnershipABI = _abi
}

var nftOwnershipABIJson = `
[
  {
    "inputs": [
      {
        "internalType": "address",
        "name": "nftContract",
        "type": "address"
      },
      {
        "internalType": "address",
        "name": "_owner",
        "type": "address"
      }
    ],
    "name": "checkNFTOwnership",
    "outputs": [
      {
        "internalType": "uint256[]",
        "name": "",
        "type": "uint256[]"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  }
]
`

package main

import (
	"bytes"
	"fmt"
	"math/big"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftdash/service/chain/chaintest"
)

const bayc = "0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D"

var account = common.HexToAddress("0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872")

func encodeIds(ids ...int64) []byte {
	arr, _ := abi.NewType("uint256[]", "", nil)
	vals := []*big.Int{}
	for _, id := range ids {
		vals = append(vals, big.NewInt(id))
	}
	out, _ := abi.Arguments{{Type: arr}}.Pack(vals)
	return out
}

// writeConfig points mainnet and the wallet provider at url
func writeConfig(t *testing.T, url string) string {
	file := filepath.Join(t.TempDir(), "config.yaml")
	cfg := fmt.Sprintf(`
app:
  name: nftdash-fetch-test
networks:
  mainnet:
    chainId: 1
    rpcUrl: %s
wallet:
  url: %s
rpc:
  timeout: 5s
`, url, url)
	require.NoError(t, os.WriteFile(file, []byte(cfg), 0o600))
	return file
}

func TestRunUsage(t *testing.T) {
	viper.Reset()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	require.Equal(t, exitUsage, run([]string{}, out, errOut))
	require.Equal(t, exitUsage, run([]string{"--unknown"}, out, errOut))
	require.Equal(t, exitUsage, run([]string{"--contract", bayc, "--config", filepath.Join(t.TempDir(), "missing.yaml")}, out, errOut))
	require.Empty(t, out.String())
}

func TestRun(t *testing.T) {
	tests := []struct {
		desc     string
		accounts []common.Address
		call     chaintest.CallHandler
		args     []string
		wantCode int
		wantOut  string
	}{
		{
			desc:     "connected account",
			accounts: []common.Address{account},
			call: func(common.Address, []byte) ([]byte, error) {
				return encodeIds(3, 1, 2), nil
			},
			wantCode: exitOk,
			wantOut:  "3\n1\n2\n",
		},
		{
			desc:     "explicit owner",
			call:     func(common.Address, []byte) ([]byte, error) { return encodeIds(7), nil },
			args:     []string{"--owner", account.Hex()},
			wantCode: exitOk,
			wantOut:  "7\n",
		},
		{
			desc:     "owns nothing",
			accounts: []common.Address{account},
			call:     func(common.Address, []byte) ([]byte, error) { return encodeIds(), nil },
			wantCode: exitOk,
			wantOut:  "",
		},
		{
			desc:     "no wallet connected",
			wantCode: exitNoOwner,
		},
		{
			desc:     "reverted call",
			accounts: []common.Address{account},
			wantCode: exitQueryFailed,
		},
		{
			desc:     "unsupported chain",
			accounts: []common.Address{account},
			args:     []string{"--chain", "5"},
			wantCode: exitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			viper.Reset()
			node := chaintest.NewNode()
			defer node.Stop()
			srv := httptest.NewServer(node.Handler())
			defer srv.Close()

			node.SetAccounts(tt.accounts...)
			if tt.call != nil {
				node.HandleCall(tt.call)
			}

			out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
			args := append([]string{"--config", writeConfig(t, srv.URL), "--contract", bayc}, tt.args...)
			require.Equal(t, tt.wantCode, run(args, out, errOut), errOut.String())
			require.Equal(t, tt.wantOut, out.String())
		})
	}
}

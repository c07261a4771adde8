// Package chaintest runs in-process json-rpc endpoints standing in for an
// ethereum node and a wallet provider in tests.
package chaintest

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// CallHandler answers an eth_call for the given target and calldata
type CallHandler func(to common.Address, data []byte) ([]byte, error)

// Node serves eth_call, eth_blockNumber, eth_accounts and eth_requestAccounts
type Node struct {
	server *rpc.Server
	eth    *ethService
}

func NewNode() *Node {
	eth := &ethService{block: 1}
	server := rpc.NewServer()
	if err := server.RegisterName("eth", eth); err != nil {
		panic(err)
	}
	return &Node{server: server, eth: eth}
}

func (n *Node) Client() *rpc.Client {
	return rpc.DialInProc(n.server)
}

// Dialer ignores the url and connects to n
func (n *Node) Dialer() func(ctx context.Context, url string) (*rpc.Client, error) {
	return func(ctx context.Context, url string) (*rpc.Client, error) {
		return n.Client(), nil
	}
}

// Handler serves n over json-rpc http, for code that dials a url
func (n *Node) Handler() http.Handler {
	return n.server
}

func (n *Node) Stop() {
	n.server.Stop()
}

func (n *Node) HandleCall(h CallHandler) {
	n.eth.mu.Lock()
	defer n.eth.mu.Unlock()
	n.eth.call = h
}

// SetAccounts sets the accounts eth_accounts reports
func (n *Node) SetAccounts(accounts ...common.Address) {
	n.eth.mu.Lock()
	defer n.eth.mu.Unlock()
	n.eth.accounts = accounts
}

// SetGrantOnRequest sets the accounts eth_requestAccounts authorizes. A nil
// list makes the request fail as if the user rejected the prompt.
func (n *Node) SetGrantOnRequest(accounts []common.Address) {
	n.eth.mu.Lock()
	defer n.eth.mu.Unlock()
	n.eth.grant = accounts
	n.eth.reject = accounts == nil
}

func (n *Node) SetBlockNumber(b uint64) {
	n.eth.mu.Lock()
	defer n.eth.mu.Unlock()
	n.eth.block = b
}

// Calls returns how many eth_call requests were served
func (n *Node) Calls() int {
	n.eth.mu.Lock()
	defer n.eth.mu.Unlock()
	return n.eth.calls
}

// RequestCount returns how many eth_requestAccounts requests were served
func (n *Node) RequestCount() int {
	n.eth.mu.Lock()
	defer n.eth.mu.Unlock()
	return n.eth.requests
}

type providerError struct {
	code int
	msg  string
}

func (e *providerError) Error() string  { return e.msg }
func (e *providerError) ErrorCode() int { return e.code }

// ErrUserRejected is the EIP-1193 4001 error a wallet answers a declined prompt with
var ErrUserRejected error = &providerError{code: 4001, msg: "User rejected the request."}

type ethService struct {
	mu       sync.Mutex
	call     CallHandler
	calls    int
	requests int
	accounts []common.Address
	grant    []common.Address
	reject   bool
	block    uint64
}

func (s *ethService) Call(args map[string]interface{}, block string) (hexutil.Bytes, error) {
	s.mu.Lock()
	s.calls++
	h := s.call
	s.mu.Unlock()

	if h == nil {
		return nil, errors.New("execution reverted")
	}
	to, _ := args["to"].(string)
	raw, _ := args["data"].(string)
	if raw == "" {
		raw, _ = args["input"].(string)
	}
	data, err := hexutil.Decode(raw)
	if err != nil {
		return nil, err
	}
	return h(common.HexToAddress(to), data)
}

func (s *ethService) BlockNumber() hexutil.Uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return hexutil.Uint64(s.block)
}

func (s *ethService) Accounts() []common.Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]common.Address, len(s.accounts))
	copy(res, s.accounts)
	return res
}

func (s *ethService) RequestAccounts() ([]common.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests++
	if s.reject {
		return nil, ErrUserRejected
	}
	s.accounts = append([]common.Address{}, s.grant...)
	res := make([]common.Address, len(s.accounts))
	copy(res, s.accounts)
	return res, nil
}

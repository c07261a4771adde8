package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/viney-shih/goroutines"

	bCtx "github.com/x-xyz/nftdash/base/ctx"
	"github.com/x-xyz/nftdash/base/goroutine"
	"github.com/x-xyz/nftdash/base/log"
	"github.com/x-xyz/nftdash/domain"
	"github.com/x-xyz/nftdash/domain/dashboard"
	"github.com/x-xyz/nftdash/domain/ownership"
	"github.com/x-xyz/nftdash/domain/wallet"
	"github.com/x-xyz/nftdash/service/ens"
	"github.com/x-xyz/nftdash/service/notify"
)

const defaultWorkers = 8

type DashboardUseCaseCfg struct {
	Wallet     wallet.Gateway
	WalletMode wallet.Mode
	Ownership  ownership.Usecase
	// Ens resolves *.eth owners, ENS names are rejected when nil
	Ens         ens.ENS
	Notifier    notify.Notifier
	Collections []dashboard.Collection
	// Chains a fetch may target, any positive chain id when empty
	Chains  []domain.ChainId
	Workers int
}

type impl struct {
	wallet      wallet.Gateway
	walletMode  wallet.Mode
	ownership   ownership.Usecase
	ens         ens.ENS
	notifier    notify.Notifier
	collections []dashboard.Collection
	chains      map[domain.ChainId]bool
	pool        *goroutines.Pool
	now         func() time.Time

	// guards the fields below
	mu       sync.Mutex
	seq      uint64
	cancel   context.CancelFunc
	snapshot *dashboard.Snapshot

	notifying sync.WaitGroup
}

func New(cfg *DashboardUseCaseCfg) dashboard.Usecase {
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = notify.Nop()
	}

	collections := make([]dashboard.Collection, len(cfg.Collections))
	copy(collections, cfg.Collections)

	chains := make(map[domain.ChainId]bool, len(cfg.Chains))
	for _, id := range cfg.Chains {
		chains[id] = true
	}

	return &impl{
		chains:      chains,
		wallet:      cfg.Wallet,
		walletMode:  cfg.WalletMode,
		ownership:   cfg.Ownership,
		ens:         cfg.Ens,
		notifier:    notifier,
		collections: collections,
		pool:        goroutines.NewPool(workers),
		now:         time.Now,
	}
}

func (im *impl) Fetch(c bCtx.Ctx, req dashboard.FetchRequest) (*dashboard.Snapshot, error) {
	c = bCtx.WithFields(c, log.Fields{
		"chainId":  req.ChainId,
		"contract": req.Contract,
	})

	if err := im.checkChain(req.ChainId); err != nil {
		c.WithField("err", err).Info("reject fetch")
		return nil, err
	}

	owner, err := im.owner(c, req.Owner)
	if err != nil {
		im.notify(c, notify.Failure{Stage: "owner", ChainId: req.ChainId, Contract: req.Contract, Reason: err.Error()})
		return nil, err
	}
	c = bCtx.WithFields(c, log.Fields{"owner": owner})

	fetchCtx, seq, requestId := im.issue(c)

	res := im.ownership.Fetch(fetchCtx, ownership.Query{
		ChainId:  req.ChainId,
		Contract: req.Contract,
		Owner:    owner,
	})

	snapshot := &dashboard.Snapshot{
		RequestId: requestId,
		Seq:       seq,
		ChainId:   req.ChainId,
		Contract:  req.Contract,
		Owner:     owner,
		Result:    res,
		FetchedAt: im.now(),
	}
	snapshot.Applied = im.apply(snapshot)

	if !snapshot.Applied {
		c.WithFields(log.Fields{"requestId": requestId, "seq": seq}).Info("discard stale result")
	} else if !res.Ok() {
		im.notify(c, notify.Failure{Stage: "ownership", ChainId: req.ChainId, Contract: req.Contract, Owner: owner, Reason: res.Reason})
	}

	return snapshot, nil
}

func (im *impl) checkChain(id domain.ChainId) error {
	if id <= 0 {
		return fmt.Errorf("chain %d: %w", id, domain.ErrInvalidChainId)
	}
	if len(im.chains) > 0 && !im.chains[id] {
		return fmt.Errorf("chain %d: %w", id, domain.ErrUnsupportedChain)
	}
	return nil
}

// issue hands out the request token of a new fetch and cancels the one in flight
func (im *impl) issue(c bCtx.Ctx) (bCtx.Ctx, uint64, string) {
	fetchCtx, cancel := bCtx.WithCancel(c)

	im.mu.Lock()
	defer im.mu.Unlock()

	if im.cancel != nil {
		im.cancel()
	}
	im.seq++
	im.cancel = cancel

	requestId := uuid.New().String()
	return bCtx.WithValue(fetchCtx, "requestId", requestId), im.seq, requestId
}

// apply stores snapshot as display state if its token is still the latest one
func (im *impl) apply(snapshot *dashboard.Snapshot) bool {
	im.mu.Lock()
	defer im.mu.Unlock()

	if snapshot.Seq != im.seq {
		return false
	}
	if im.cancel != nil {
		im.cancel()
		im.cancel = nil
	}

	s := *snapshot
	s.Applied = true
	s.Result.TokenIds = append(domain.TokenIdList{}, snapshot.Result.TokenIds...)
	im.snapshot = &s
	return true
}

func (im *impl) Snapshot(c bCtx.Ctx) *dashboard.Snapshot {
	im.mu.Lock()
	defer im.mu.Unlock()

	if im.snapshot == nil {
		return nil
	}
	s := *im.snapshot
	s.Result.TokenIds = append(domain.TokenIdList{}, im.snapshot.Result.TokenIds...)
	return &s
}

func (im *impl) Collections(c bCtx.Ctx) []dashboard.Collection {
	res := make([]dashboard.Collection, len(im.collections))
	copy(res, im.collections)
	return res
}

func (im *impl) FetchAll(c bCtx.Ctx, owner domain.Address) ([]dashboard.CollectionResult, error) {
	owner, err := im.owner(c, owner)
	if err != nil {
		return nil, err
	}
	c = bCtx.WithFields(c, log.Fields{"owner": owner})

	res := make([]dashboard.CollectionResult, len(im.collections))
	wg := sync.WaitGroup{}
	for i, col := range im.collections {
		idx, col := i, col
		wg.Add(1)
		task := func() {
			defer wg.Done()
			res[idx] = dashboard.CollectionResult{
				Collection: col,
				Result: im.ownership.Fetch(c, ownership.Query{
					ChainId:  col.ChainId,
					Contract: col.Address,
					Owner:    owner,
				}),
			}
		}
		if err := im.pool.Schedule(task); err != nil {
			wg.Done()
			c.WithFields(log.Fields{"err": err, "collection": col.Address}).Error("pool.Schedule failed")
			res[idx] = dashboard.CollectionResult{Collection: col, Result: ownership.Failed(err)}
		}
	}
	wg.Wait()

	return res, nil
}

// owner returns the account a fetch runs for. An empty input asks the wallet,
// an ENS name is resolved.
func (im *impl) owner(c bCtx.Ctx, input domain.Address) (domain.Address, error) {
	switch {
	case input.IsEmpty():
		owner, err := wallet.GetAccount(c, im.wallet, im.walletMode)
		if err != nil {
			c.WithFields(log.Fields{"err": err, "mode": im.walletMode}).Warn("wallet.GetAccount failed")
			return "", err
		}
		return owner, nil
	case input.IsENSName():
		if im.ens == nil {
			return "", fmt.Errorf("%s: %w", input, domain.ErrInvalidAddress)
		}
		owner, err := im.ens.Resolve(c, string(input))
		if err != nil {
			c.WithFields(log.Fields{"err": err, "name": input}).Error("ens.Resolve failed")
			return "", err
		}
		if owner.IsEmpty() {
			return "", fmt.Errorf("%s: %w", input, domain.ErrNotFound)
		}
		return owner, nil
	default:
		return input, nil
	}
}

func (im *impl) notify(c bCtx.Ctx, f notify.Failure) {
	// the request context may be gone by the time the message is sent
	nc := bCtx.Ctx{Context: context.Background(), Logger: c.Logger}

	im.notifying.Add(1)
	goroutine.RecoverableGo(func() {
		if err := im.notifier.NotifyFailure(nc, f); err != nil {
			nc.WithField("err", err).Warn("notifier.NotifyFailure failed")
		}
	}, goroutine.WithLogger(c.Logger), goroutine.WithAfterEnded(im.notifying.Done))
}

func (im *impl) Close() {
	im.mu.Lock()
	if im.cancel != nil {
		im.cancel()
		im.cancel = nil
	}
	// results of fetches still in flight are stale from here on
	im.seq++
	im.mu.Unlock()

	im.notifying.Wait()
	im.pool.Release()
}

package config

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/viper"

	"github.com/x-xyz/nftdash/base/ctx"
	"github.com/x-xyz/nftdash/base/database/redisclient"
	"github.com/x-xyz/nftdash/base/env"
	"github.com/x-xyz/nftdash/base/log"
	"github.com/x-xyz/nftdash/base/metrics"
	"github.com/x-xyz/nftdash/domain"
	"github.com/x-xyz/nftdash/domain/dashboard"
	"github.com/x-xyz/nftdash/domain/ownership"
	"github.com/x-xyz/nftdash/domain/wallet"
	"github.com/x-xyz/nftdash/service/chain"
	"github.com/x-xyz/nftdash/service/chain/contract"
	"github.com/x-xyz/nftdash/service/ens"
	"github.com/x-xyz/nftdash/service/notify"
	"github.com/x-xyz/nftdash/service/redis"
	walletService "github.com/x-xyz/nftdash/service/wallet"
	dashboardUsecase "github.com/x-xyz/nftdash/stores/dashboard/usecase"
	ownershipUsecase "github.com/x-xyz/nftdash/stores/ownership/usecase"
)

// DefaultFile is read when neither a flag nor CONFIG_FILE names one
const DefaultFile = "infra/configs/config.yaml"

// ensChainId is where the ENS registry lives
const ensChainId = domain.ChainId(1)

// Init reads the yaml config file. An empty file falls back to CONFIG_FILE, then DefaultFile.
func Init(file string) error {
	if file == "" {
		file = viper.GetString("CONFIG_FILE")
	}
	if file == "" {
		file = DefaultFile
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(file)
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("wallet.mode", string(wallet.ModeConnected))
	viper.SetDefault("rpc.timeout", 15*time.Second)
	viper.SetDefault("dashboard.workers", 8)
	if err := viper.ReadInConfig(); err != nil {
		return err
	}

	if viper.GetBool("debug") {
		log.SetDebug(true)
		log.Log().Info("Service RUN on DEBUG mode")
	}
	return nil
}

// AppName is the app.name config key, APP_NAME overrides it
func AppName() string {
	if name := env.AppName(); name != "" {
		return name
	}
	return viper.GetString("app.name")
}

// Networks lists networks.<name>.{chainId,rpcUrl} ordered by chain id
func Networks() []chain.Network {
	sub := viper.Sub("networks")
	if sub == nil {
		return nil
	}

	res := []chain.Network{}
	for name := range sub.AllSettings() {
		res = append(res, chain.Network{
			ChainId: domain.ChainId(sub.GetInt32(fmt.Sprintf("%s.chainId", name))),
			Name:    name,
			RpcUrl:  sub.GetString(fmt.Sprintf("%s.rpcUrl", name)),
		})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ChainId < res[j].ChainId })
	return res
}

func ChainCfg() *chain.ClientCfg {
	return &chain.ClientCfg{
		AppName:     AppName(),
		ProjectId:   viper.GetString("app.projectId"),
		Networks:    Networks(),
		WalletUrl:   viper.GetString("wallet.url"),
		CallTimeout: viper.GetDuration("rpc.timeout"),
	}
}

func Collections() ([]dashboard.Collection, error) {
	res := []dashboard.Collection{}
	if err := viper.UnmarshalKey("dashboard.collections", &res); err != nil {
		return nil, err
	}
	return res, nil
}

// Redis connects redis_cache.uri, nil when it is not configured
func Redis(c ctx.Ctx) redis.Service {
	uri := viper.GetString("redis_cache.uri")
	if uri == "" {
		return nil
	}

	c.Info("init redis cache")
	name := viper.GetString("redis_cache.name")
	pool := redisclient.MustConnectRedis(uri, viper.GetString("redis_cache.password"), redisclient.RedisParam{
		PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
		Retry:          true,
	})
	return redis.New(name, metrics.New(name), pool)
}

// Deps are the services shared by every binary
type Deps struct {
	Chain     chain.Client
	Redis     redis.Service
	Wallet    wallet.Gateway
	Ownership ownership.Usecase
	Ens       ens.ENS
	Dashboard dashboard.Usecase
}

// Build wires Deps from the loaded config. A chain dial failure is logged only.
func Build(c ctx.Ctx) (*Deps, error) {
	chainService, err := chain.NewClient(c, ChainCfg())
	if err != nil {
		c.WithField("err", err).Warn("chainService started with error")
	}

	collections, err := Collections()
	if err != nil {
		chainService.Close()
		return nil, fmt.Errorf("dashboard.collections: %w", err)
	}

	notifier, err := notify.NewDiscord(notify.DiscordCfg{
		AppName:   AppName(),
		BotKey:    viper.GetString("discord.botKey"),
		ChannelId: viper.GetString("discord.channelId"),
	})
	if err != nil {
		chainService.Close()
		return nil, fmt.Errorf("discord: %w", err)
	}

	deps := &Deps{
		Chain:  chainService,
		Redis:  Redis(c),
		Wallet: walletService.New(chainService.Wallet(), chainService.CallTimeout()),
	}

	deps.Ownership = ownershipUsecase.New(contract.NewNFTOwnership(chainService, domain.Address(viper.GetString("ownership.contract"))))

	if backend, err := chainService.Backend(ensChainId); err != nil {
		c.WithField("err", err).Warn("ens disabled")
	} else {
		deps.Ens = ens.New(backend, deps.Redis)
	}

	chains := []domain.ChainId{}
	for _, n := range Networks() {
		chains = append(chains, n.ChainId)
	}

	deps.Dashboard = dashboardUsecase.New(&dashboardUsecase.DashboardUseCaseCfg{
		Wallet:      deps.Wallet,
		WalletMode:  wallet.ToMode(viper.GetString("wallet.mode")),
		Ownership:   deps.Ownership,
		Ens:         deps.Ens,
		Notifier:    notifier,
		Collections: collections,
		Chains:      chains,
		Workers:     viper.GetInt("dashboard.workers"),
	})

	return deps, nil
}

func (d *Deps) Close() {
	d.Dashboard.Close()
	d.Chain.Close()
}

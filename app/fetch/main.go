package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/nftdash/app/config"
	"github.com/x-xyz/nftdash/base/ctx"
	"github.com/x-xyz/nftdash/base/log"
	"github.com/x-xyz/nftdash/domain"
	"github.com/x-xyz/nftdash/domain/dashboard"
	"github.com/x-xyz/nftdash/domain/wallet"
)

const (
	exitOk = iota
	exitUsage
	exitNoOwner
	exitQueryFailed
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run prints the owned token ids to stdout, one per line, and returns the exit code
func run(args []string, stdout, stderr io.Writer) int {
	defer log.Sync()

	flags := pflag.NewFlagSet("fetch", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	configFile := flags.String("config", "", "config file, defaults to $CONFIG_FILE or "+config.DefaultFile)
	chainId := flags.Int32("chain", 1, "chain id")
	contract := flags.String("contract", "", "nft contract address")
	owner := flags.String("owner", "", "owner address or ENS name, the wallet account when empty")
	request := flags.Bool("request", false, "ask the wallet to authorize an account instead of reading the connected one")
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	if *contract == "" {
		fmt.Fprintln(stderr, "--contract is required")
		flags.PrintDefaults()
		return exitUsage
	}

	if err := config.Init(*configFile); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if *request {
		viper.Set("wallet.mode", string(wallet.ModeRequest))
	}

	c := ctx.Background()
	deps, err := config.Build(c)
	if err != nil {
		c.WithField("err", err).Error("config.Build failed")
		return exitUsage
	}
	defer deps.Close()

	snapshot, err := deps.Dashboard.Fetch(c, dashboard.FetchRequest{
		ChainId:  domain.ChainId(*chainId),
		Contract: domain.Address(*contract),
		Owner:    domain.Address(*owner),
	})
	if errors.Is(err, domain.ErrInvalidChainId) || errors.Is(err, domain.ErrUnsupportedChain) {
		fmt.Fprintln(stderr, err)
		return exitUsage
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return exitNoOwner
	}

	if !snapshot.Result.Ok() {
		fmt.Fprintln(stderr, snapshot.Result.Reason)
		return exitQueryFailed
	}
	for _, id := range snapshot.Result.TokenIds {
		fmt.Fprintln(stdout, id)
	}
	return exitOk
}

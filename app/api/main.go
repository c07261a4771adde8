package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/x-xyz/nftdash/app/config"
	"github.com/x-xyz/nftdash/base/ctx"
	"github.com/x-xyz/nftdash/base/log"
	bValidator "github.com/x-xyz/nftdash/base/validator"
	mmiddleware "github.com/x-xyz/nftdash/middleware"
	dashboard_delivery "github.com/x-xyz/nftdash/stores/dashboard/delivery/http"
	ens_delivery "github.com/x-xyz/nftdash/stores/ens/delivery/http"
	hc_delivery "github.com/x-xyz/nftdash/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/nftdash/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/nftdash/stores/healthcheck/usecase"
	ownership_delivery "github.com/x-xyz/nftdash/stores/ownership/delivery/http"
	wallet_delivery "github.com/x-xyz/nftdash/stores/wallet/delivery/http"

	_ "github.com/x-xyz/nftdash/app/api/docs"
)

func init() {
	if err := config.Init(""); err != nil {
		panic(err)
	}
}

// @title			NFT Dashboard API
// @version		1.0
// @description	Wallet account lookup and NFT ownership queries.
func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware(config.AppName())
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	context.Info("init services")
	deps, err := config.Build(context)
	if err != nil {
		context.WithField("err", err).Panic("config.Build failed")
	}
	defer deps.Close()

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(deps.Chain, deps.Redis)
	hc_delivery.New(e, hc_usecase.New(hcRepo))
	wallet_delivery.New(e, deps.Wallet)
	ownership_delivery.New(e, deps.Ownership)
	dashboard_delivery.New(e, deps.Dashboard)
	if deps.Ens != nil {
		ens_delivery.New(e, deps.Ens)
	}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}

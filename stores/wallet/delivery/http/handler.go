package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftdash/base/ctx"
	"github.com/x-xyz/nftdash/base/delivery"
	"github.com/x-xyz/nftdash/domain/wallet"
)

type handler struct {
	wallet wallet.Gateway
}

func New(e *echo.Echo, wallet wallet.Gateway) {
	h := &handler{wallet}

	g := e.Group("/wallet")

	g.GET("/account", h.account)

	g.POST("/connect", h.connect)
}

// account
//
//	@Summary		Get the connected account
//	@Description	Reads the accounts the wallet provider already authorized, never prompts.
//	@Tags			wallet
//	@Produce		json
//	@Success		200	{string}	string	"account address"
//	@Failure		409	"no wallet connected"
//	@Failure		503	"wallet provider unavailable"
//	@Router			/wallet/account [get]
func (h *handler) account(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address, err := h.wallet.GetConnectedAccount(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, address)
}

// connect
//
//	@Summary		Request a wallet connection
//	@Description	Asks the wallet provider to authorize an account, the wallet user may be prompted.
//	@Tags			wallet
//	@Produce		json
//	@Success		200	{string}	string	"account address"
//	@Failure		409	"rejected or no account granted"
//	@Failure		503	"wallet provider unavailable"
//	@Router			/wallet/connect [post]
func (h *handler) connect(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address, err := h.wallet.RequestConnection(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, address)
}

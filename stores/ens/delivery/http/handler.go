package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftdash/base/ctx"
	"github.com/x-xyz/nftdash/base/delivery"
	"github.com/x-xyz/nftdash/domain"
	"github.com/x-xyz/nftdash/middleware"
	"github.com/x-xyz/nftdash/service/ens"
)

type handler struct {
	ens ens.ENS
}

func New(e *echo.Echo, ens ens.ENS) {
	h := &handler{
		ens,
	}

	g := e.Group("/ens")

	g.GET("/resolve/:name", h.Resolve)

	g.GET("/reverse-resolve/:address", h.ReverseResolve, middleware.IsValidAddress("address"))
}

// Resolve
//
//	@Summary	Resolve an ENS name
//	@Tags		ens
//	@Produce	json
//	@Param		name	path		string	true	"ens name"	example(vitalik.eth)
//	@Success	200		{string}	string	"address, empty when unregistered"
//	@Failure	400
//	@Router		/ens/resolve/{name} [get]
func (h *handler) Resolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Name domain.Address `param:"name"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if !p.Name.IsENSName() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	address, err := h.ens.Resolve(ctx, string(p.Name))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, address)
}

// ReverseResolve
//
//	@Summary	Look up the primary ENS name of an address
//	@Tags		ens
//	@Produce	json
//	@Param		address	path		string	true	"address"
//	@Success	200		{string}	string	"name, empty when none"
//	@Failure	400
//	@Router		/ens/reverse-resolve/{address} [get]
func (h *handler) ReverseResolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Address domain.Address `param:"address"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	name, err := h.ens.ReverseResolve(ctx, p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, name)
}

package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftdash/base/ctx"
	"github.com/x-xyz/nftdash/base/delivery"
	"github.com/x-xyz/nftdash/domain"
	"github.com/x-xyz/nftdash/domain/ownership"
	"github.com/x-xyz/nftdash/middleware"
)

type handler struct {
	ownership ownership.Usecase
}

func New(e *echo.Echo, ownership ownership.Usecase) {
	h := &handler{ownership}

	g := e.Group("/ownership")

	g.GET("/:chainId/:contract/:owner", h.get, middleware.IsValidAddress("contract"), middleware.IsValidAddress("owner"))
}

// get
//
//	@Summary		Query token ids owned by an account
//	@Description	Calls checkNFTOwnership on the ownership contract. A failed call is reported as status "failed" inside the result.
//	@Tags			ownership
//	@Produce		json
//	@Param			chainId		path		int		true	"chain id"		example(1)
//	@Param			contract	path		string	true	"nft contract"	example(0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d)
//	@Param			owner		path		string	true	"owner address"
//	@Success		200			{object}	ownership.Result
//	@Failure		400
//	@Router			/ownership/{chainId}/{contract}/{owner} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	q := ownership.Query{}
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &q); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	res := h.ownership.Fetch(ctx, q)
	if err := res.Err(); errors.Is(err, domain.ErrUnsupportedChain) || errors.Is(err, domain.ErrInvalidChainId) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftdash/base/ctx"
	"github.com/x-xyz/nftdash/base/delivery"
	"github.com/x-xyz/nftdash/domain"
	"github.com/x-xyz/nftdash/domain/dashboard"
)

type handler struct {
	dashboard dashboard.Usecase
}

func New(e *echo.Echo, dashboard dashboard.Usecase) {
	h := &handler{dashboard}

	g := e.Group("/dashboard")

	g.GET("", h.snapshot)

	g.POST("/fetch", h.fetch)

	g.GET("/collections", h.collections)

	g.POST("/collections/fetch", h.fetchAll)
}

// fetch
//
//	@Summary		Fetch owned token ids
//	@Description	Resolves the owner (wallet account when omitted, ENS names allowed), queries the ownership contract and updates the displayed state. Only the latest started fetch is displayed.
//	@Tags			dashboard
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dashboard.FetchRequest	true	"fetch request"
//	@Success		200		{object}	dashboard.Snapshot
//	@Failure		400
//	@Failure		409		"no wallet connected"
//	@Router			/dashboard/fetch [post]
func (h *handler) fetch(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	req := dashboard.FetchRequest{}
	if err := c.Bind(&req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&req); err != nil {
		ctx.WithField("err", err).Info("invalid fetch request")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	res, err := h.dashboard.Fetch(ctx, req)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// snapshot
//
//	@Summary	Get the displayed state
//	@Tags		dashboard
//	@Produce	json
//	@Success	200	{object}	dashboard.Snapshot	"null before the first fetch"
//	@Router		/dashboard [get]
func (h *handler) snapshot(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	return delivery.MakeJsonResp(c, http.StatusOK, h.dashboard.Snapshot(ctx))
}

// collections
//
//	@Summary	List curated collections
//	@Tags		dashboard
//	@Produce	json
//	@Success	200	{array}	dashboard.Collection
//	@Router		/dashboard/collections [get]
func (h *handler) collections(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	return delivery.MakeJsonResp(c, http.StatusOK, h.dashboard.Collections(ctx))
}

// fetchAll
//
//	@Summary		Query every curated collection
//	@Description	Does not change the displayed state.
//	@Tags			dashboard
//	@Accept			json
//	@Produce		json
//	@Param			body	body		object{owner=string}	false	"owner, wallet account when omitted"
//	@Success		200		{array}		dashboard.CollectionResult
//	@Failure		400
//	@Failure		409		"no wallet connected"
//	@Router			/dashboard/collections/fetch [post]
func (h *handler) fetchAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Owner domain.Address `json:"owner" validate:"omitempty,owner"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	res, err := h.dashboard.FetchAll(ctx, p.Owner)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

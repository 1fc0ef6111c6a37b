package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/delivery"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/domain/content"
	"github.com/auton-labs/goapi/middleware"
	authMiddleware "github.com/auton-labs/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	content content.Usecase
}

func New(e *echo.Echo, content content.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		content: content,
	}

	// creator managing own catalog
	g := e.Group("/creators/contents", authMiddleware.Auth())
	g.POST("", h.create)
	g.GET("", h.listOwn)
	g.PATCH("/:contentId", h.update)

	// buyer facing
	p := e.Group("/content")
	p.GET("/:creator/:contentId", h.get, middleware.IsValidAddress("creator"), middleware.CacheHttp(30*time.Second))
	p.GET("/:creator/:contentId/preview", h.getPreview, middleware.IsValidAddress("creator"), middleware.CacheHttp(5*time.Minute))
	p.GET("/:creator/:contentId/access", h.getAccess, middleware.IsValidAddress("creator"))
}

// create
//
//	@Summary		Create content
//	@Description	Add a gated item to the caller's catalog. New content starts as a draft and goes live through PATCH with status "active".
//	@Tags			content
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		content.CreateParams	true	"params"
//	@Success		201		{object}	content.Info
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/creators/contents [post]
func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	p := &content.CreateParams{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	info, err := h.content.Create(ctx, address, p)
	if err == nil {
		return delivery.MakeJsonResp(c, http.StatusCreated, info)
	}

	ctx.WithField("err", err).Error("content.Create failed")
	switch err {
	case domain.ErrBadParamInput, domain.ErrInvalidAmount, domain.ErrUnknownAsset:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	case domain.ErrNotFound:
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

// listOwn
//
//	@Summary		List own content, drafts included
//	@Description	Everything in the caller's catalog regardless of status. Narrow with the status filter.
//	@Tags			content
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			offset	query		int		false	"paging offset"
//	@Param			limit	query		int		false	"paging size"
//	@Param			status	query		string	false	"filter by status"	example(draft)
//	@Success		200		{array}		content.Info
//	@Failure		400
//	@Failure		500
//	@Router			/creators/contents [get]
func (h *handler) listOwn(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		Offset int32  `query:"offset"`
		Limit  int32  `query:"limit"`
		Status string `query:"status"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []content.FindAllOptionsFunc{
		content.WithCreator(address),
		content.WithPagination(p.Offset, p.Limit),
		content.WithSort("contentId"),
	}

	if len(p.Status) > 0 {
		opts = append(opts, content.WithStatus(content.Status(p.Status)))
	}

	if res, err := h.content.FindAll(ctx, opts...); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// update
//
//	@Summary		Update own content
//	@Description	Patch fields and optionally move status. Sending status "active" publishes a draft, "archived" takes it down. Price and asset reject once active.
//	@Tags			content
//	@Accept			json
//	@Produce		json
//	@Param			contentId	path		string	true	"content id"
//	@Param			params		body		http.update.payload	true	"params"
//	@Success		200			{object}	content.Info
//	@Failure		400
//	@Failure		404
//	@Failure		409
//	@Failure		500
//	@Security		ApiKeyAuth
//	@Router			/creators/contents/{contentId} [patch]
func (h *handler) update(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type payload struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Price       *int64  `json:"price"`
		Asset       *string `json:"asset"`
		Status      *string `json:"status"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	id := content.Id{Creator: address, ContentId: c.Param("contentId")}

	var info *content.Info
	var err error

	if p.Title != nil || p.Description != nil || p.Price != nil || p.Asset != nil {
		info, err = h.content.Update(ctx, id, &content.Patchable{
			Title:       p.Title,
			Description: p.Description,
			Price:       p.Price,
			Asset:       p.Asset,
		})
		if err != nil {
			return h.manageError(c, ctx, err)
		}
	}

	if p.Status != nil {
		switch content.Status(*p.Status) {
		case content.StatusActive:
			info, err = h.content.Publish(ctx, id)
		case content.StatusArchived:
			info, err = h.content.Archive(ctx, id)
		default:
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
		}
		if err != nil {
			return h.manageError(c, ctx, err)
		}
	}

	if info == nil {
		if info, err = h.content.Get(ctx, id); err != nil {
			return h.manageError(c, ctx, err)
		}
	}

	return delivery.MakeJsonResp(c, http.StatusOK, info)
}

func (h *handler) manageError(c echo.Context, logCtx ctx.Ctx, err error) error {
	logCtx.WithField("err", err).Error("content operation failed")
	switch err {
	case domain.ErrNotFound:
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	case domain.ErrBadParamInput, domain.ErrInvalidAmount, domain.ErrUnknownAsset:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	case domain.ErrPriceLocked, domain.ErrContentNotActive:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

// get
//
//	@Summary		Get public content metadata
//	@Description	Listing view of one active item. The sealed pointer never leaves the usecase, drafts and archived items answer 404.
//	@Tags			content
//	@Accept			json
//	@Produce		json
//	@Param			creator		path		string	true	"creator address"
//	@Param			contentId	path		string	true	"content id"
//	@Success		200			{object}	content.Info
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/content/{creator}/{contentId} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := content.Id{
		Creator:   domain.Address(c.Param("creator")),
		ContentId: c.Param("contentId"),
	}

	info, err := h.content.Get(ctx, id)
	if err == domain.ErrNotFound {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	// unpublished items stay invisible here
	if info.Status != content.StatusActive {
		return delivery.MakeJsonResp(c, http.StatusNotFound, domain.ErrNotFound)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, info)
}

// getPreview
//
//	@Summary		Get the free preview
//	@Description	Teaser fields only. Served from the edge cache for five minutes.
//	@Tags			content
//	@Accept			json
//	@Produce		json
//	@Param			creator		path		string	true	"creator address"
//	@Param			contentId	path		string	true	"content id"
//	@Success		200			{object}	object{preview=string,previewUrl=string,mimeType=string}
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/content/{creator}/{contentId}/preview [get]
func (h *handler) getPreview(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := content.Id{
		Creator:   domain.Address(c.Param("creator")),
		ContentId: c.Param("contentId"),
	}

	info, err := h.content.Get(ctx, id)
	if err == domain.ErrNotFound {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	if info.Status != content.StatusActive {
		return delivery.MakeJsonResp(c, http.StatusNotFound, domain.ErrNotFound)
	}

	res := struct {
		Preview    string `json:"preview"`
		PreviewUrl string `json:"previewUrl,omitempty"`
		MimeType   string `json:"mimeType,omitempty"`
	}{info.Preview, info.PreviewUrl, info.MimeType}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getAccess
//
//	@Summary		Get access to content
//	@Description	Returns the unsealed pointer when the buyer holds a grant or a live unlock token. Otherwise answers 402 with an x402 payment descriptor.
//	@Tags			content
//	@Accept			json
//	@Produce		json
//	@Param			creator			path		string	true	"creator address"
//	@Param			contentId		path		string	true	"content id"
//	@Param			buyer			query		string	true	"buyer address"
//	@Param			Authorization	header		string	false	"unlock token as bearer"
//	@Success		200				{object}	content.AccessResult
//	@Failure		400
//	@Failure		402				{object}	payment.Descriptor
//	@Failure		404
//	@Failure		500
//	@Router			/content/{creator}/{contentId}/access [get]
func (h *handler) getAccess(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := content.Id{
		Creator:   domain.Address(c.Param("creator")),
		ContentId: c.Param("contentId"),
	}
	buyer := domain.Address(c.QueryParam("buyer"))

	bearer := ""
	if auth := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(auth, "Bearer ") {
		bearer = strings.TrimPrefix(auth, "Bearer ")
	}

	res, descriptor, err := h.content.GetAccess(ctx, id, buyer, bearer)
	if err == nil {
		if res != nil {
			return delivery.MakeJsonResp(c, http.StatusOK, res)
		}
		c.Response().Header().Set("X-Payment-Required", descriptor.Protocol)
		return delivery.MakeJsonResp(c, http.StatusPaymentRequired, descriptor)
	}

	ctx.WithField("err", err).Error("content.GetAccess failed")
	switch err {
	case domain.ErrInvalidAddress:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	case domain.ErrNotFound:
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

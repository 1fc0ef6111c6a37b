package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/auton-labs/goapi/base/ctx"
	"github.com/auton-labs/goapi/base/delivery"
	"github.com/auton-labs/goapi/domain"
	"github.com/auton-labs/goapi/domain/content"
	"github.com/auton-labs/goapi/domain/creator"
	"github.com/auton-labs/goapi/middleware"
	authMiddleware "github.com/auton-labs/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	creator creator.Usecase
	content content.Usecase
}

func New(e *echo.Echo, creator creator.Usecase, content content.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		creator: creator,
		content: content,
	}
	g := e.Group("/creators")
	g.POST("", h.register)
	g.GET("", h.listCreators)
	g.GET("/:username", h.getProfile)
	g.POST("/nonce/:address", h.generateNonce, middleware.IsValidAddress("address"))

	// self
	g.PATCH("", h.updateProfile, authMiddleware.Auth())
	g.PATCH("/avatar", h.updateAvatar, authMiddleware.Auth())
	g.PATCH("/banner", h.updateBanner, authMiddleware.Auth())
}

// register
//
//	@Summary		Register creator
//	@Description	Register a wallet as creator. Signature covers the registration message with the username filled in.
//	@Tags			creator
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.register.payload	true	"params"
//	@Success		201		{object}	creator.Info
//	@Failure		400
//	@Failure		405
//	@Failure		409
//	@Failure		500
//	@Router			/creators [post]
func (h *handler) register(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Address     domain.Address `json:"address" example:"DjVE6JNiYqPL2QXyCUUh8rNjHrbz9hXHNYt99MQ59qw1"` // wallet address
		Username    string         `json:"username" example:"alice"`
		DisplayName string         `json:"displayName"`
		Signature   string         `json:"signature"` // base58 signature of the registration message
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	info, err := h.creator.Register(ctx, p.Address, p.Username, p.DisplayName, p.Signature)
	if err == nil {
		return delivery.MakeJsonResp(c, http.StatusCreated, info)
	}

	ctx.WithField("err", err).Error("creator.Register failed")
	switch err {
	case domain.ErrInvalidAddress, domain.ErrInvalidUsername:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	case domain.ErrInvalidSignature:
		return delivery.MakeJsonResp(c, http.StatusMethodNotAllowed, err)
	case domain.ErrUsernameTaken, domain.ErrConflict:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

// listCreators
//
//	@Summary		List creators
//	@Description	Page through registered creators
//	@Tags			creator
//	@Accept			json
//	@Produce		json
//	@Param			offset	query		int		false	"paging offset"
//	@Param			limit	query		int		false	"paging size"
//	@Param			sort	query		string	false	"sort field, minus prefix for descending"	example(-createdAt)
//	@Success		200		{array}		creator.Info
//	@Failure		400
//	@Failure		500
//	@Router			/creators [get]
func (h *handler) listCreators(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Offset int32  `query:"offset"`
		Limit  int32  `query:"limit"`
		Sort   string `query:"sort"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []creator.FindAllOptionsFunc{
		creator.WithPagination(p.Offset, p.Limit),
	}

	if len(p.Sort) > 0 {
		opts = append(opts, creator.WithSort(p.Sort))
	}

	if res, err := h.creator.FindAll(ctx, opts...); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// getProfile
//
//	@Summary		Get creator profile
//	@Description	Public profile plus the creator's active content summaries. Sealed pointers never appear here.
//	@Tags			creator
//	@Accept			json
//	@Produce		json
//	@Param			username	path		string	true	"creator username"	example(alice)
//	@Success		200			{object}	object{creator=creator.Info,contents=[]content.Info}
//	@Failure		404
//	@Failure		500
//	@Router			/creators/{username} [get]
func (h *handler) getProfile(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	username := c.Param("username")

	info, err := h.creator.GetByUsername(ctx, username)
	if err == domain.ErrNotFound {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	contents, err := h.content.FindAll(ctx,
		content.WithCreator(info.Address),
		content.WithStatus(content.StatusActive),
		content.WithSort("contentId"),
	)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Creator  *creator.Info   `json:"creator"`
		Contents []*content.Info `json:"contents"`
	}{info, contents}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// generateNonce
//
//	@Summary		Generate nonce for signing
//	@Description	Generate the one-time nonce carried by the signing message. Consumed on the next /auth/sign attempt.
//	@Tags			creator
//	@Accept			json
//	@Produce		json
//	@Param			address	path		string	true	"wallet address"	example(DjVE6JNiYqPL2QXyCUUh8rNjHrbz9hXHNYt99MQ59qw1)
//	@Success		200		{integer}	integer	"nonce"
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/creators/nonce/{address} [post]
func (h *handler) generateNonce(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := domain.Address(c.Param("address"))

	nonce, err := h.creator.GenerateNonce(ctx, address)
	if err == domain.ErrNotFound {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nonce)
}

// updateProfile
//
//	@Summary		Update own profile
//	@Description	Patch profile fields of the authenticated creator. Absent fields stay untouched.
//	@Tags			creator
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		creator.Updater	true	"fields to update"
//	@Success		200		{object}	creator.Info
//	@Failure		400
//	@Failure		500
//	@Router			/creators [patch]
func (h *handler) updateProfile(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	p := &creator.Updater{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if info, err := h.creator.Update(ctx, address, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, info)
	}
}

func (h *handler) updateAvatar(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type formParams struct {
		ImgData string `form:"imgData"`
	}

	p := formParams{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if cid, err := h.creator.UpdateAvatar(ctx, address, p.ImgData); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, cid)
	}
}

func (h *handler) updateBanner(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type formParams struct {
		ImgData string `form:"imgData"`
	}

	p := formParams{}

	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if cid, err := h.creator.UpdateBanner(ctx, address, p.ImgData); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, cid)
	}
}

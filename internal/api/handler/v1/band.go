package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mhruska/concerts-api/internal/api/handler/v1/request"
	"github.com/mhruska/concerts-api/internal/api/handler/v1/response"
	"github.com/mhruska/concerts-api/internal/domain"
	"github.com/mhruska/concerts-api/internal/service"
)

type BandService interface {
	ListBands(ctx context.Context) ([]domain.Band, error)
	GetBand(ctx context.Context, id uint) (domain.Band, error)
	CreateBand(ctx context.Context, band domain.Band) (domain.Band, error)
}

type BandHandler struct {
	svc  BandService
	uSvc UserService
}

func NewBandHandler(svc BandService, uSvc UserService) *BandHandler {
	return &BandHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleListBands godoc
// @Summary      List all bands
// @Tags         bands
// @Produce      json
// @Success      200  {array}   domain.Band
// @Failure      500  {object}  response.Err
// @Router       /bands [get]
func (h *BandHandler) HandleListBands(ctx *gin.Context) {
	bands, err := h.svc.ListBands(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListBands -> h.svc.ListBands -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, bands)
}

// HandleGetBand godoc
// @Summary      Get a band by id
// @Tags         bands
// @Produce      json
// @Param        bandID  path      int  true  "band id"
// @Success      200     {object}  domain.Band
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /bands/{bandID} [get]
func (h *BandHandler) HandleGetBand(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "bandID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	band, err := h.svc.GetBand(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBandNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("band", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetBand -> h.svc.GetBand -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, band)
}

// HandleCreateBand godoc
// @Summary      Create a band
// @Description  Admin only.
// @Tags         bands
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateBandRequest true "request body"
// @Success      201      {object}  domain.Band
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /bands [post]
// @Security BearerAuth
func (h *BandHandler) HandleCreateBand(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))

		return
	}

	var req request.CreateBandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.CreateBand(ctx.Request.Context(), domain.Band{
		Name:        req.Name,
		Genres:      req.Genres,
		Description: req.Description,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateBand -> h.svc.CreateBand -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

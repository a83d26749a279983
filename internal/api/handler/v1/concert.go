package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mhruska/concerts-api/internal/api/handler/v1/request"
	"github.com/mhruska/concerts-api/internal/api/handler/v1/response"
	"github.com/mhruska/concerts-api/internal/domain"
	"github.com/mhruska/concerts-api/internal/service"
)

var errConcertIDMismatch = errors.New("path id does not match body id")

type ConcertService interface {
	ListConcerts(ctx context.Context) ([]domain.Concert, error)
	GetConcert(ctx context.Context, id uint) (domain.Concert, error)
	CreateConcert(ctx context.Context, concert domain.Concert) (domain.Concert, error)
	UpdateConcert(ctx context.Context, concert domain.Concert) (domain.Concert, error)
}

type ConcertHandler struct {
	svc  ConcertService
	uSvc UserService
}

func NewConcertHandler(svc ConcertService, uSvc UserService) *ConcertHandler {
	return &ConcertHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleListConcerts godoc
// @Summary      List all concerts
// @Tags         concerts
// @Produce      json
// @Success      200  {array}   response.ConcertResponse
// @Failure      500  {object}  response.Err
// @Router       /concerts [get]
func (h *ConcertHandler) HandleListConcerts(ctx *gin.Context) {
	concerts, err := h.svc.ListConcerts(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListConcerts -> h.svc.ListConcerts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewConcertListResponse(concerts))
}

// HandleGetConcert godoc
// @Summary      Get a concert by id
// @Tags         concerts
// @Produce      json
// @Param        concertID  path      int  true  "concert id"
// @Success      200        {object}  response.ConcertResponse
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /concerts/{concertID} [get]
func (h *ConcertHandler) HandleGetConcert(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "concertID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	concert, err := h.svc.GetConcert(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrConcertNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("concert", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleGetConcert -> h.svc.GetConcert -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewConcertResponse(concert))
}

// HandleCreateConcert godoc
// @Summary      Create a concert
// @Description  Admin only.
// @Tags         concerts
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateConcertRequest true "request body"
// @Success      201      {object}  response.ConcertResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /concerts [post]
// @Security BearerAuth
func (h *ConcertHandler) HandleCreateConcert(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))

		return
	}

	var req request.CreateConcertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.CreateConcert(ctx.Request.Context(), domain.Concert{
		Date:        req.Date,
		Venue:       req.Venue,
		Bands:       req.Bands,
		Price:       req.Price,
		Description: req.Description,
		Genres:      req.Genres,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateConcert -> h.svc.CreateConcert -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.NewConcertResponse(created))
}

// HandleUpdateConcert godoc
// @Summary      Update a concert
// @Description  Admin only. The path id must match the body id.
// @Tags         concerts
// @Accept       json
// @Produce      json
// @Param        concertID  path      int  true  "concert id"
// @Param        request    body      request.UpdateConcertRequest true "request body"
// @Success      200        {object}  response.ConcertResponse
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /concerts/{concertID} [put]
// @Security BearerAuth
func (h *ConcertHandler) HandleUpdateConcert(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))

		return
	}

	id, err := parseIDParam(ctx, "concertID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.UpdateConcertRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if req.ID != id {
		response.RenderErr(ctx, response.ErrBadRequest(errConcertIDMismatch))

		return
	}

	updated, err := h.svc.UpdateConcert(ctx.Request.Context(), domain.Concert{
		ID:          req.ID,
		Date:        req.Date,
		Venue:       req.Venue,
		Bands:       req.Bands,
		Price:       req.Price,
		SoldOut:     req.SoldOut,
		Description: req.Description,
		Genres:      req.Genres,
	})
	if err != nil {
		if errors.Is(err, service.ErrConcertNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("concert", "ID", id))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateConcert -> h.svc.UpdateConcert -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewConcertResponse(updated))
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %v (%v)", name, raw)
	}

	return uint(id), nil
}

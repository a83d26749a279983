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

type TicketService interface {
	PurchaseTicket(ctx context.Context, concertID, userID uint, ticketType string) (domain.Ticket, error)
	ClaimTicket(ctx context.Context, ticketID, userID uint) (domain.Ticket, error)
	ListUserTickets(ctx context.Context, userID uint) ([]domain.TicketWithConcert, error)
	ListConcertTickets(ctx context.Context, concertID uint, unsoldOnly bool) ([]domain.Ticket, error)
	ListAllTickets(ctx context.Context) ([]domain.Ticket, error)
	CancelTicket(ctx context.Context, ticketID uint, caller domain.User) error
	AdjustTicket(ctx context.Context, ticketID uint, adjustment service.TicketAdjustment) (domain.Ticket, error)
}

type TicketHandler struct {
	svc  TicketService
	uSvc UserService
}

func NewTicketHandler(svc TicketService, uSvc UserService) *TicketHandler {
	return &TicketHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandlePurchaseTicket godoc
// @Summary      Purchase a ticket for a concert
// @Description  Mints a new ticket priced from the concert's base price and the requested type.
// @Tags         tickets
// @Produce      json
// @Param        concertID  path      int     true   "concert id"
// @Param        type       query     string  false  "ticket type (Standard, VIP, Golden Circle)"
// @Success      201        {object}  response.TicketResponse
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      409        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /tickets/purchase/{concertID} [post]
// @Security BearerAuth
func (h *TicketHandler) HandlePurchaseTicket(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	concertID, err := parseIDParam(ctx, "concertID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	ticketType := ctx.DefaultQuery("type", domain.TicketStandard)

	ticket, err := h.svc.PurchaseTicket(ctx.Request.Context(), concertID, user.ID, ticketType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConcertNotFound):
			response.RenderErr(ctx, response.ErrNotFound("concert", "ID", concertID))
		case errors.Is(err, service.ErrConcertSoldOut):
			response.RenderErr(ctx, response.ErrConflict(service.ErrConcertSoldOut))
		case errors.Is(err, service.ErrUnknownTicketType):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrUnknownTicketType))
		default:
			err = fmt.Errorf("v1.HandlePurchaseTicket -> h.svc.PurchaseTicket -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, response.NewTicketResponse(ticket))
}

// HandleClaimTicket godoc
// @Summary      Claim a pre-seeded unsold ticket
// @Description  Assigns an existing unsold ticket to the caller. Exactly one of two concurrent claims succeeds.
// @Tags         tickets
// @Produce      json
// @Param        ticketID  path      int  true  "ticket id"
// @Success      200       {object}  response.TicketResponse
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      409       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /tickets/{ticketID}/purchase [post]
// @Security BearerAuth
func (h *TicketHandler) HandleClaimTicket(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	ticketID, err := parseIDParam(ctx, "ticketID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	ticket, err := h.svc.ClaimTicket(ctx.Request.Context(), ticketID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTicketNotFound):
			response.RenderErr(ctx, response.ErrNotFound("ticket", "ID", ticketID))
		case errors.Is(err, service.ErrTicketAlreadySold):
			response.RenderErr(ctx, response.ErrConflict(service.ErrTicketAlreadySold))
		default:
			err = fmt.Errorf("v1.HandleClaimTicket -> h.svc.ClaimTicket -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, response.NewTicketResponse(ticket))
}

// HandleListMyTickets godoc
// @Summary      List the caller's tickets with concert details
// @Tags         tickets
// @Produce      json
// @Success      200  {array}   response.UserTicketResponse
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/mine [get]
// @Security BearerAuth
func (h *TicketHandler) HandleListMyTickets(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	tickets, err := h.svc.ListUserTickets(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListMyTickets -> h.svc.ListUserTickets -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewUserTicketListResponse(tickets))
}

// HandleListConcertTickets godoc
// @Summary      List tickets for a concert
// @Tags         tickets
// @Produce      json
// @Param        concertID  path      int   true   "concert id"
// @Param        unsold     query     bool  false  "only unsold tickets"
// @Success      200        {array}   response.TicketResponse
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /tickets/concert/{concertID} [get]
func (h *TicketHandler) HandleListConcertTickets(ctx *gin.Context) {
	concertID, err := parseIDParam(ctx, "concertID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	unsoldOnly := ctx.Query("unsold") == "true"

	tickets, err := h.svc.ListConcertTickets(ctx.Request.Context(), concertID, unsoldOnly)
	if err != nil {
		if errors.Is(err, service.ErrConcertNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("concert", "ID", concertID))

			return
		}

		err = fmt.Errorf("v1.HandleListConcertTickets -> h.svc.ListConcertTickets -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewTicketListResponse(tickets))
}

// HandleCancelTicket godoc
// @Summary      Cancel a ticket
// @Description  A user may cancel their own ticket; an admin may cancel any.
// @Tags         tickets
// @Produce      json
// @Param        ticketID  path      int  true  "ticket id"
// @Success      200       {object}  response.Message
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /tickets/{ticketID} [delete]
// @Security BearerAuth
func (h *TicketHandler) HandleCancelTicket(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	ticketID, err := parseIDParam(ctx, "ticketID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.CancelTicket(ctx.Request.Context(), ticketID, user); err != nil {
		switch {
		case errors.Is(err, service.ErrTicketNotFound):
			response.RenderErr(ctx, response.ErrNotFound("ticket", "ID", ticketID))
		case errors.Is(err, service.ErrTicketNotOwned):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrTicketNotOwned))
		default:
			err = fmt.Errorf("v1.HandleCancelTicket -> h.svc.CancelTicket -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: "Ticket was cancelled."})
}

// HandleListAllTickets godoc
// @Summary      List every ticket
// @Description  Admin only.
// @Tags         tickets
// @Produce      json
// @Success      200  {array}   response.TicketResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/admin/all [get]
// @Security BearerAuth
func (h *TicketHandler) HandleListAllTickets(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))

		return
	}

	tickets, err := h.svc.ListAllTickets(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListAllTickets -> h.svc.ListAllTickets -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewTicketListResponse(tickets))
}

// HandleAdjustTicket godoc
// @Summary      Adjust a ticket's price or type, and optionally the concert's sold-out flag
// @Description  Admin only. Ticket and concert are persisted as one logical update.
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        ticketID  path      int  true  "ticket id"
// @Param        request   body      request.AdjustTicketRequest true "request body"
// @Success      200       {object}  response.TicketResponse
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /tickets/admin/{ticketID} [put]
// @Security BearerAuth
func (h *TicketHandler) HandleAdjustTicket(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))

		return
	}

	ticketID, err := parseIDParam(ctx, "ticketID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.AdjustTicketRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	ticket, err := h.svc.AdjustTicket(ctx.Request.Context(), ticketID, service.TicketAdjustment{
		Price:   req.Price,
		Type:    req.Type,
		SoldOut: req.SoldOut,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTicketNotFound):
			response.RenderErr(ctx, response.ErrNotFound("ticket", "ID", ticketID))
		case errors.Is(err, service.ErrUnknownTicketType):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrUnknownTicketType))
		default:
			err = fmt.Errorf("v1.HandleAdjustTicket -> h.svc.AdjustTicket -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, response.NewTicketResponse(ticket))
}

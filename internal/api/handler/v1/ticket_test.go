package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhruska/concerts-api/internal/api/handler/v1/response"
	"github.com/mhruska/concerts-api/internal/api/middleware"
	"github.com/mhruska/concerts-api/internal/domain"
	"github.com/mhruska/concerts-api/internal/pkg/jwthelper"
	"github.com/mhruska/concerts-api/internal/service"
)

// stubUserService resolves every token to a fixed user, or fails when
// user is nil, which is how a deleted account looks to the handlers.
type stubUserService struct {
	user *domain.User
}

func (s *stubUserService) GetUser(_ context.Context, _ uint) (domain.User, error) {
	if s.user == nil {
		return domain.User{}, service.ErrUserNotFound
	}

	return *s.user, nil
}

func (s *stubUserService) UpdateProfile(_ context.Context, _ uint, _ service.ProfileUpdate) (domain.User, error) {
	return domain.User{}, nil
}

func (s *stubUserService) UpdateProfileWithPassword(_ context.Context, _ uint, _ string, _ service.ProfileUpdate) (domain.User, error) {
	return domain.User{}, nil
}

func (s *stubUserService) DeleteUser(_ context.Context, _ uint) error {
	return nil
}

type stubTicketService struct {
	purchased    domain.Ticket
	purchaseErr  error
	purchaseType string
	claimed      domain.Ticket
	claimErr     error
	allTickets   []domain.Ticket
}

func (s *stubTicketService) PurchaseTicket(_ context.Context, _, _ uint, ticketType string) (domain.Ticket, error) {
	s.purchaseType = ticketType

	return s.purchased, s.purchaseErr
}

func (s *stubTicketService) ClaimTicket(_ context.Context, _, _ uint) (domain.Ticket, error) {
	return s.claimed, s.claimErr
}

func (s *stubTicketService) ListUserTickets(_ context.Context, _ uint) ([]domain.TicketWithConcert, error) {
	return nil, nil
}

func (s *stubTicketService) ListConcertTickets(_ context.Context, _ uint, _ bool) ([]domain.Ticket, error) {
	return nil, nil
}

func (s *stubTicketService) ListAllTickets(_ context.Context) ([]domain.Ticket, error) {
	return s.allTickets, nil
}

func (s *stubTicketService) CancelTicket(_ context.Context, _ uint, _ domain.User) error {
	return nil
}

func (s *stubTicketService) AdjustTicket(_ context.Context, _ uint, _ service.TicketAdjustment) (domain.Ticket, error) {
	return domain.Ticket{}, nil
}

// withClaims injects token claims the way the authenticator middleware does.
func withClaims(user domain.User) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(middleware.ContextKeyClaims, &jwthelper.Claims{
			UserID:   user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		})
	}
}

func newTicketTestRouter(svc TicketService, user *domain.User) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewTicketHandler(svc, &stubUserService{user: user})

	router := gin.New()
	if user != nil {
		router.Use(withClaims(*user))
	} else {
		router.Use(withClaims(domain.User{ID: 999}))
	}
	router.POST("/tickets/purchase/:concertID", handler.HandlePurchaseTicket)
	router.POST("/tickets/:ticketID/purchase", handler.HandleClaimTicket)
	router.GET("/tickets/admin/all", handler.HandleListAllTickets)

	return router
}

func TestHandlePurchaseTicket(t *testing.T) {
	svc := &stubTicketService{
		purchased: domain.Ticket{
			ID:        3,
			ConcertID: 1,
			UserID:    42,
			Price:     decimal.RequireFromString("75"),
			Type:      domain.TicketVIP,
		},
	}
	user := domain.User{ID: 42, Role: domain.RoleUser}
	router := newTicketTestRouter(svc, &user)

	req := httptest.NewRequest(http.MethodPost, "/tickets/purchase/1?type=VIP", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, domain.TicketVIP, svc.purchaseType)

	var ticketResp response.TicketResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &ticketResp))
	assert.Equal(t, uint(3), ticketResp.ID)
	assert.Equal(t, domain.TicketVIP, ticketResp.Type)
}

func TestHandlePurchaseTicket_DefaultsToStandard(t *testing.T) {
	svc := &stubTicketService{purchased: domain.Ticket{ID: 1, Type: domain.TicketStandard}}
	user := domain.User{ID: 42, Role: domain.RoleUser}
	router := newTicketTestRouter(svc, &user)

	req := httptest.NewRequest(http.MethodPost, "/tickets/purchase/1", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, domain.TicketStandard, svc.purchaseType)
}

func TestHandlePurchaseTicket_SoldOut(t *testing.T) {
	svc := &stubTicketService{purchaseErr: service.ErrConcertSoldOut}
	user := domain.User{ID: 42, Role: domain.RoleUser}
	router := newTicketTestRouter(svc, &user)

	req := httptest.NewRequest(http.MethodPost, "/tickets/purchase/1", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHandlePurchaseTicket_StaleToken(t *testing.T) {
	router := newTicketTestRouter(&stubTicketService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/tickets/purchase/1", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHandleClaimTicket_AlreadySold(t *testing.T) {
	svc := &stubTicketService{claimErr: service.ErrTicketAlreadySold}
	user := domain.User{ID: 42, Role: domain.RoleUser}
	router := newTicketTestRouter(svc, &user)

	req := httptest.NewRequest(http.MethodPost, "/tickets/1/purchase", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHandleListAllTickets_AdminOnly(t *testing.T) {
	svc := &stubTicketService{allTickets: []domain.Ticket{{ID: 1}, {ID: 2}}}

	regular := domain.User{ID: 42, Role: domain.RoleUser}
	router := newTicketTestRouter(svc, &regular)

	req := httptest.NewRequest(http.MethodGet, "/tickets/admin/all", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)

	admin := domain.User{ID: 1, Role: domain.RoleAdmin}
	router = newTicketTestRouter(svc, &admin)

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/tickets/admin/all", nil))

	require.Equal(t, http.StatusOK, resp.Code)

	var list []response.TicketResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}

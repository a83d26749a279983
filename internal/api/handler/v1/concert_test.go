package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhruska/concerts-api/internal/api/handler/v1/response"
	"github.com/mhruska/concerts-api/internal/domain"
	"github.com/mhruska/concerts-api/internal/service"
)

type stubConcertService struct {
	concerts []domain.Concert
	created  domain.Concert
}

func (s *stubConcertService) ListConcerts(_ context.Context) ([]domain.Concert, error) {
	return s.concerts, nil
}

func (s *stubConcertService) GetConcert(_ context.Context, id uint) (domain.Concert, error) {
	for _, c := range s.concerts {
		if c.ID == id {
			return c, nil
		}
	}

	return domain.Concert{}, service.ErrConcertNotFound
}

func (s *stubConcertService) CreateConcert(_ context.Context, concert domain.Concert) (domain.Concert, error) {
	concert.ID = 1
	s.created = concert

	return concert, nil
}

func (s *stubConcertService) UpdateConcert(_ context.Context, concert domain.Concert) (domain.Concert, error) {
	return concert, nil
}

func newConcertTestRouter(svc ConcertService, user domain.User) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewConcertHandler(svc, &stubUserService{user: &user})

	router := gin.New()
	router.Use(withClaims(user))
	router.GET("/concerts", handler.HandleListConcerts)
	router.GET("/concerts/:concertID", handler.HandleGetConcert)
	router.POST("/concerts", handler.HandleCreateConcert)
	router.PUT("/concerts/:concertID", handler.HandleUpdateConcert)

	return router
}

func TestHandleListConcerts_DerivesBandSplit(t *testing.T) {
	svc := &stubConcertService{concerts: []domain.Concert{
		{
			ID:    1,
			Date:  time.Date(2026, 9, 12, 20, 0, 0, 0, time.UTC),
			Venue: "Roxy",
			Bands: "The Knights, Dusty Ramblers, Night Owls",
			Price: decimal.NewFromInt(50),
		},
		{
			ID:    2,
			Date:  time.Date(2026, 10, 1, 19, 0, 0, 0, time.UTC),
			Venue: "Lucerna",
		},
	}}
	router := newConcertTestRouter(svc, domain.User{ID: 42, Role: domain.RoleUser})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/concerts", nil))

	require.Equal(t, http.StatusOK, resp.Code)

	var list []response.ConcertResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	require.Len(t, list, 2)

	assert.Equal(t, "The Knights", list[0].Headliner)
	assert.Equal(t, "Dusty Ramblers, Night Owls", list[0].Openers)

	// A concert without bands still renders a headliner.
	assert.Equal(t, domain.DefaultHeadliner, list[1].Headliner)
	assert.Empty(t, list[1].Openers)
}

func TestHandleCreateConcert_RequiresAdmin(t *testing.T) {
	svc := &stubConcertService{}
	router := newConcertTestRouter(svc, domain.User{ID: 42, Role: domain.RoleUser})

	body := `{"date":"2026-09-12T20:00:00Z","venue":"Roxy","price":"50"}`
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/concerts", strings.NewReader(body)))

	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestHandleCreateConcert(t *testing.T) {
	svc := &stubConcertService{}
	router := newConcertTestRouter(svc, domain.User{ID: 1, Role: domain.RoleAdmin})

	body := `{"date":"2026-09-12T20:00:00Z","venue":"Roxy","bands":"The Knights","price":"50","genres":"rock"}`
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/concerts", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, "Roxy", svc.created.Venue)
	assert.True(t, svc.created.Price.Equal(decimal.NewFromInt(50)))
}

func TestHandleCreateConcert_MissingVenue(t *testing.T) {
	svc := &stubConcertService{}
	router := newConcertTestRouter(svc, domain.User{ID: 1, Role: domain.RoleAdmin})

	body := `{"date":"2026-09-12T20:00:00Z","price":"50"}`
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/concerts", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandleUpdateConcert_IDMismatch(t *testing.T) {
	svc := &stubConcertService{}
	router := newConcertTestRouter(svc, domain.User{ID: 1, Role: domain.RoleAdmin})

	body := `{"id":2,"date":"2026-09-12T20:00:00Z","venue":"Roxy"}`
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodPut, "/concerts/1", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "does not match")
}

func TestHandleGetConcert_InvalidID(t *testing.T) {
	svc := &stubConcertService{}
	router := newConcertTestRouter(svc, domain.User{ID: 42, Role: domain.RoleUser})

	for _, raw := range []string{"0", "abc", "-1"} {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/concerts/"+raw, nil))

		assert.Equal(t, http.StatusBadRequest, resp.Code, "id %q", raw)
	}
}

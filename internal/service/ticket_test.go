package service

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhruska/concerts-api/internal/domain"
	"github.com/mhruska/concerts-api/internal/repository"
)

type fakeTicketRepo struct {
	mu      sync.Mutex
	tickets map[uint]domain.Ticket
	nextID  uint
}

func newFakeTicketRepo(tickets ...domain.Ticket) *fakeTicketRepo {
	r := &fakeTicketRepo{
		tickets: make(map[uint]domain.Ticket),
		nextID:  1,
	}
	for _, t := range tickets {
		r.tickets[t.ID] = t
		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
	}

	return r
}

func (r *fakeTicketRepo) Create(_ context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ticket.ID = r.nextID
	r.nextID++
	r.tickets[ticket.ID] = ticket

	return ticket, nil
}

func (r *fakeTicketRepo) FindByID(_ context.Context, id uint) (domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ticket, exists := r.tickets[id]
	if !exists {
		return domain.Ticket{}, repository.ErrTicketNotFound
	}

	return ticket, nil
}

func (r *fakeTicketRepo) FindAll(_ context.Context) ([]domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]domain.Ticket, 0, len(r.tickets))
	for _, t := range r.tickets {
		all = append(all, t)
	}

	return all, nil
}

func (r *fakeTicketRepo) FindByUserID(_ context.Context, userID uint) ([]domain.TicketWithConcert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var mine []domain.TicketWithConcert
	for _, t := range r.tickets {
		if t.UserID == userID {
			mine = append(mine, domain.TicketWithConcert{Ticket: t})
		}
	}

	return mine, nil
}

func (r *fakeTicketRepo) FindByConcertID(_ context.Context, concertID uint, unsoldOnly bool) ([]domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []domain.Ticket
	for _, t := range r.tickets {
		if t.ConcertID != concertID {
			continue
		}
		if unsoldOnly && t.Sold() {
			continue
		}
		result = append(result, t)
	}

	return result, nil
}

// Claim mirrors the conditional UPDATE the real DAO issues: the check
// and the write happen under one lock.
func (r *fakeTicketRepo) Claim(_ context.Context, ticketID, userID uint) (domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ticket, exists := r.tickets[ticketID]
	if !exists {
		return domain.Ticket{}, repository.ErrTicketNotFound
	}
	if ticket.Sold() {
		return domain.Ticket{}, repository.ErrTicketAlreadySold
	}

	ticket.UserID = userID
	r.tickets[ticketID] = ticket

	return ticket, nil
}

func (r *fakeTicketRepo) Update(_ context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tickets[ticket.ID] = ticket

	return ticket, nil
}

func (r *fakeTicketRepo) UpdateWithConcert(_ context.Context, ticket domain.Ticket, _ *bool) (domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tickets[ticket.ID] = ticket

	return ticket, nil
}

func (r *fakeTicketRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tickets[id]; !exists {
		return repository.ErrTicketNotFound
	}

	delete(r.tickets, id)

	return nil
}

type fakeConcertFinder struct {
	concerts map[uint]domain.Concert
}

func (r *fakeConcertFinder) FindByID(_ context.Context, id uint) (domain.Concert, error) {
	concert, exists := r.concerts[id]
	if !exists {
		return domain.Concert{}, repository.ErrConcertNotFound
	}

	return concert, nil
}

func newTicketService(tickets *fakeTicketRepo, concerts ...domain.Concert) *TicketService {
	finder := &fakeConcertFinder{concerts: make(map[uint]domain.Concert)}
	for _, c := range concerts {
		finder.concerts[c.ID] = c
	}

	return NewTicketService(tickets, finder)
}

func TestTicketService_PurchaseTicket(t *testing.T) {
	svc := newTicketService(newFakeTicketRepo(), domain.Concert{
		ID:    1,
		Price: decimal.NewFromInt(50),
	})

	ticket, err := svc.PurchaseTicket(context.Background(), 1, 42, domain.TicketVIP)
	require.NoError(t, err)

	assert.Equal(t, uint(1), ticket.ConcertID)
	assert.Equal(t, uint(42), ticket.UserID)
	assert.Equal(t, domain.TicketVIP, ticket.Type)
	assert.True(t, ticket.Price.Equal(decimal.RequireFromString("75")), "got %v", ticket.Price)
}

func TestTicketService_PurchaseTicket_ConcertNotFound(t *testing.T) {
	svc := newTicketService(newFakeTicketRepo())

	for _, ticketType := range []string{domain.TicketStandard, domain.TicketVIP, domain.TicketGoldenCircle} {
		_, err := svc.PurchaseTicket(context.Background(), 99, 42, ticketType)
		assert.ErrorIs(t, err, ErrConcertNotFound)
	}
}

func TestTicketService_PurchaseTicket_SoldOutConcert(t *testing.T) {
	svc := newTicketService(newFakeTicketRepo(), domain.Concert{
		ID:      1,
		Price:   decimal.NewFromInt(50),
		SoldOut: true,
	})

	_, err := svc.PurchaseTicket(context.Background(), 1, 42, domain.TicketStandard)
	assert.ErrorIs(t, err, ErrConcertSoldOut)
}

func TestTicketService_PurchaseTicket_UnknownType(t *testing.T) {
	svc := newTicketService(newFakeTicketRepo(), domain.Concert{
		ID:    1,
		Price: decimal.NewFromInt(50),
	})

	_, err := svc.PurchaseTicket(context.Background(), 1, 42, "Backstage")
	assert.ErrorIs(t, err, ErrUnknownTicketType)
}

func TestTicketService_ClaimTicket_ConcurrentClaims(t *testing.T) {
	repo := newFakeTicketRepo(domain.Ticket{
		ID:        1,
		ConcertID: 1,
		Price:     decimal.NewFromInt(50),
		Type:      domain.TicketStandard,
	})
	svc := newTicketService(repo, domain.Concert{ID: 1, Price: decimal.NewFromInt(50)})

	const claimers = 16

	var wg sync.WaitGroup
	errs := make([]error, claimers)

	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.ClaimTicket(context.Background(), 1, uint(100+i))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrTicketAlreadySold)
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one concurrent claim must win")
}

func TestTicketService_ClaimTicket_NotFound(t *testing.T) {
	svc := newTicketService(newFakeTicketRepo())

	_, err := svc.ClaimTicket(context.Background(), 404, 42)
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestTicketService_CancelTicket_Ownership(t *testing.T) {
	repo := newFakeTicketRepo(domain.Ticket{ID: 1, ConcertID: 1, UserID: 42})
	svc := newTicketService(repo)

	stranger := domain.User{ID: 7, Role: domain.RoleUser}
	err := svc.CancelTicket(context.Background(), 1, stranger)
	assert.ErrorIs(t, err, ErrTicketNotOwned)

	admin := domain.User{ID: 7, Role: domain.RoleAdmin}
	err = svc.CancelTicket(context.Background(), 1, admin)
	assert.NoError(t, err)

	err = svc.CancelTicket(context.Background(), 1, admin)
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestTicketService_AdjustTicket(t *testing.T) {
	repo := newFakeTicketRepo(domain.Ticket{
		ID:        1,
		ConcertID: 1,
		UserID:    42,
		Price:     decimal.NewFromInt(50),
		Type:      domain.TicketStandard,
	})
	svc := newTicketService(repo)

	newPrice := decimal.NewFromInt(80)
	newType := domain.TicketVIP
	soldOut := true

	updated, err := svc.AdjustTicket(context.Background(), 1, TicketAdjustment{
		Price:   &newPrice,
		Type:    &newType,
		SoldOut: &soldOut,
	})
	require.NoError(t, err)

	assert.True(t, updated.Price.Equal(newPrice))
	assert.Equal(t, domain.TicketVIP, updated.Type)
}

func TestTicketService_AdjustTicket_NotFound(t *testing.T) {
	svc := newTicketService(newFakeTicketRepo())

	_, err := svc.AdjustTicket(context.Background(), 404, TicketAdjustment{})
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

package repository

import (
	"context"
	"fmt"

	"github.com/mhruska/concerts-api/internal/domain"
	"github.com/mhruska/concerts-api/internal/repository/dao"
)

var (
	ErrTicketNotFound    = dao.ErrTicketNotFound
	ErrTicketAlreadySold = dao.ErrTicketAlreadySold
)

type TicketDAO interface {
	Insert(ctx context.Context, ticket dao.Ticket) (dao.Ticket, error)
	FindByID(ctx context.Context, id uint) (dao.Ticket, error)
	FindAll(ctx context.Context) ([]dao.Ticket, error)
	FindByUserID(ctx context.Context, userID uint) ([]dao.Ticket, error)
	FindByConcertID(ctx context.Context, concertID uint, unsoldOnly bool) ([]dao.Ticket, error)
	Claim(ctx context.Context, ticketID, userID uint) (dao.Ticket, error)
	Update(ctx context.Context, ticket dao.Ticket) (dao.Ticket, error)
	UpdateWithConcert(ctx context.Context, ticket dao.Ticket, soldOut *bool) (dao.Ticket, error)
	Delete(ctx context.Context, id uint) error
}

type TicketRepository struct {
	dao TicketDAO
}

func NewTicketRepository(dao TicketDAO) *TicketRepository {
	return &TicketRepository{
		dao: dao,
	}
}

func (r *TicketRepository) Create(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(ticket))
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (domain.Ticket, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TicketRepository) FindAll(ctx context.Context) ([]domain.Ticket, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	tickets := make([]domain.Ticket, 0, len(found))
	for _, t := range found {
		tickets = append(tickets, r.daoToDomain(t))
	}

	return tickets, nil
}

func (r *TicketRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.TicketWithConcert, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	tickets := make([]domain.TicketWithConcert, 0, len(found))
	for _, t := range found {
		tickets = append(tickets, domain.TicketWithConcert{
			Ticket: r.daoToDomain(t),
			Concert: domain.Concert{
				ID:          t.Concert.ID,
				Date:        t.Concert.Date,
				Venue:       t.Concert.Venue,
				Bands:       t.Concert.Bands,
				Price:       t.Concert.Price,
				SoldOut:     t.Concert.SoldOut,
				Description: t.Concert.Description,
				Genres:      t.Concert.Genres,
			},
		})
	}

	return tickets, nil
}

func (r *TicketRepository) FindByConcertID(ctx context.Context, concertID uint, unsoldOnly bool) ([]domain.Ticket, error) {
	found, err := r.dao.FindByConcertID(ctx, concertID, unsoldOnly)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByConcertID -> %w", err)
	}

	tickets := make([]domain.Ticket, 0, len(found))
	for _, t := range found {
		tickets = append(tickets, r.daoToDomain(t))
	}

	return tickets, nil
}

func (r *TicketRepository) Claim(ctx context.Context, ticketID, userID uint) (domain.Ticket, error) {
	claimed, err := r.dao.Claim(ctx, ticketID, userID)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.Claim -> %w", err)
	}

	return r.daoToDomain(claimed), nil
}

func (r *TicketRepository) Update(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(ticket))
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *TicketRepository) UpdateWithConcert(ctx context.Context, ticket domain.Ticket, soldOut *bool) (domain.Ticket, error) {
	updated, err := r.dao.UpdateWithConcert(ctx, r.domainToDAO(ticket), soldOut)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.UpdateWithConcert -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *TicketRepository) daoToDomain(t dao.Ticket) domain.Ticket {
	var userID uint
	if t.UserID != nil {
		userID = *t.UserID
	}

	return domain.Ticket{
		ID:        t.ID,
		ConcertID: t.ConcertID,
		UserID:    userID,
		Price:     t.Price,
		Type:      t.Type,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (r *TicketRepository) domainToDAO(t domain.Ticket) dao.Ticket {
	var userID *uint
	if t.UserID != 0 {
		id := t.UserID
		userID = &id
	}

	return dao.Ticket{
		ID:        t.ID,
		ConcertID: t.ConcertID,
		UserID:    userID,
		Price:     t.Price,
		Type:      t.Type,
		CreatedAt: t.CreatedAt,
	}
}

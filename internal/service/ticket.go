package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mhruska/concerts-api/internal/domain"
	"github.com/mhruska/concerts-api/internal/repository"
)

var (
	ErrTicketNotFound    = repository.ErrTicketNotFound
	ErrTicketAlreadySold = repository.ErrTicketAlreadySold
	ErrConcertSoldOut    = errors.New("concert is sold out")
	ErrUnknownTicketType = domain.ErrUnknownTicketType
	ErrTicketNotOwned    = errors.New("ticket belongs to another user")
)

type TicketRepository interface {
	Create(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error)
	FindByID(ctx context.Context, id uint) (domain.Ticket, error)
	FindAll(ctx context.Context) ([]domain.Ticket, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.TicketWithConcert, error)
	FindByConcertID(ctx context.Context, concertID uint, unsoldOnly bool) ([]domain.Ticket, error)
	Claim(ctx context.Context, ticketID, userID uint) (domain.Ticket, error)
	Update(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error)
	UpdateWithConcert(ctx context.Context, ticket domain.Ticket, soldOut *bool) (domain.Ticket, error)
	Delete(ctx context.Context, id uint) error
}

type TicketConcertRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Concert, error)
}

// TicketAdjustment carries the optional admin overrides; nil fields are
// left untouched.
type TicketAdjustment struct {
	Price   *decimal.Decimal
	Type    *string
	SoldOut *bool
}

type TicketService struct {
	repo        TicketRepository
	concertRepo TicketConcertRepository
}

func NewTicketService(repo TicketRepository, concertRepo TicketConcertRepository) *TicketService {
	return &TicketService{
		repo:        repo,
		concertRepo: concertRepo,
	}
}

// PurchaseTicket mints a new ticket for the caller. The price is the
// concert's base price multiplied by the type's factor. A sold-out
// concert rejects the purchase.
func (s *TicketService) PurchaseTicket(ctx context.Context, concertID, userID uint, ticketType string) (domain.Ticket, error) {
	concert, err := s.concertRepo.FindByID(ctx, concertID)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.concertRepo.FindByID -> %w", err)
	}

	if concert.SoldOut {
		return domain.Ticket{}, ErrConcertSoldOut
	}

	price, err := domain.TicketPrice(concert.Price, ticketType)
	if err != nil {
		return domain.Ticket{}, err
	}

	created, err := s.repo.Create(ctx, domain.Ticket{
		ConcertID: concertID,
		UserID:    userID,
		Price:     price,
		Type:      ticketType,
	})
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// ClaimTicket assigns a pre-seeded unsold ticket to the caller. The
// conditional update in the data layer guarantees a single winner when
// two purchasers race for the same ticket.
func (s *TicketService) ClaimTicket(ctx context.Context, ticketID, userID uint) (domain.Ticket, error) {
	claimed, err := s.repo.Claim(ctx, ticketID, userID)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.repo.Claim -> %w", err)
	}

	return claimed, nil
}

func (s *TicketService) ListUserTickets(ctx context.Context, userID uint) ([]domain.TicketWithConcert, error) {
	tickets, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return tickets, nil
}

func (s *TicketService) ListConcertTickets(ctx context.Context, concertID uint, unsoldOnly bool) ([]domain.Ticket, error) {
	if _, err := s.concertRepo.FindByID(ctx, concertID); err != nil {
		return nil, fmt.Errorf("s.concertRepo.FindByID -> %w", err)
	}

	tickets, err := s.repo.FindByConcertID(ctx, concertID, unsoldOnly)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByConcertID -> %w", err)
	}

	return tickets, nil
}

func (s *TicketService) ListAllTickets(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return tickets, nil
}

// CancelTicket deletes a ticket. A regular user may only cancel their
// own; an admin may cancel any.
func (s *TicketService) CancelTicket(ctx context.Context, ticketID uint, caller domain.User) error {
	ticket, err := s.repo.FindByID(ctx, ticketID)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !caller.IsAdmin() && ticket.UserID != caller.ID {
		return ErrTicketNotOwned
	}

	if err = s.repo.Delete(ctx, ticketID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// AdjustTicket applies admin overrides to a ticket and optionally flips
// the parent concert's sold-out flag, as one logical update.
func (s *TicketService) AdjustTicket(ctx context.Context, ticketID uint, adjustment TicketAdjustment) (domain.Ticket, error) {
	ticket, err := s.repo.FindByID(ctx, ticketID)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if adjustment.Price != nil {
		ticket.Price = *adjustment.Price
	}
	if adjustment.Type != nil {
		if _, err = domain.TicketPrice(decimal.Zero, *adjustment.Type); err != nil {
			return domain.Ticket{}, err
		}
		ticket.Type = *adjustment.Type
	}

	updated, err := s.repo.UpdateWithConcert(ctx, ticket, adjustment.SoldOut)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.repo.UpdateWithConcert -> %w", err)
	}

	return updated, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/mhruska/concerts-api/internal/domain"
	"github.com/mhruska/concerts-api/internal/repository"
)

var ErrConcertNotFound = repository.ErrConcertNotFound

type ConcertRepository interface {
	Create(ctx context.Context, concert domain.Concert) (domain.Concert, error)
	FindAll(ctx context.Context) ([]domain.Concert, error)
	FindByID(ctx context.Context, id uint) (domain.Concert, error)
	Update(ctx context.Context, concert domain.Concert) (domain.Concert, error)
}

type ConcertService struct {
	repo ConcertRepository
}

func NewConcertService(repo ConcertRepository) *ConcertService {
	return &ConcertService{
		repo: repo,
	}
}

func (s *ConcertService) ListConcerts(ctx context.Context) ([]domain.Concert, error) {
	concerts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return concerts, nil
}

func (s *ConcertService) GetConcert(ctx context.Context, id uint) (domain.Concert, error) {
	concert, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Concert{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return concert, nil
}

func (s *ConcertService) CreateConcert(ctx context.Context, concert domain.Concert) (domain.Concert, error) {
	created, err := s.repo.Create(ctx, concert)
	if err != nil {
		return domain.Concert{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// UpdateConcert overwrites the mutable fields of an existing concert.
func (s *ConcertService) UpdateConcert(ctx context.Context, concert domain.Concert) (domain.Concert, error) {
	existing, err := s.repo.FindByID(ctx, concert.ID)
	if err != nil {
		return domain.Concert{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	existing.Bands = concert.Bands
	existing.Venue = concert.Venue
	existing.Date = concert.Date
	existing.Price = concert.Price
	existing.Description = concert.Description
	existing.Genres = concert.Genres
	existing.SoldOut = concert.SoldOut

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return domain.Concert{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/mhruska/concerts-api/internal/domain"
	"github.com/mhruska/concerts-api/internal/repository"
)

var ErrBandNotFound = repository.ErrBandNotFound

type BandRepository interface {
	Create(ctx context.Context, band domain.Band) (domain.Band, error)
	FindAll(ctx context.Context) ([]domain.Band, error)
	FindByID(ctx context.Context, id uint) (domain.Band, error)
}

type BandService struct {
	repo BandRepository
}

func NewBandService(repo BandRepository) *BandService {
	return &BandService{
		repo: repo,
	}
}

func (s *BandService) ListBands(ctx context.Context) ([]domain.Band, error) {
	bands, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return bands, nil
}

func (s *BandService) GetBand(ctx context.Context, id uint) (domain.Band, error) {
	band, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Band{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return band, nil
}

func (s *BandService) CreateBand(ctx context.Context, band domain.Band) (domain.Band, error) {
	created, err := s.repo.Create(ctx, band)
	if err != nil {
		return domain.Band{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/mhruska/concerts-api/internal/domain"
	"github.com/mhruska/concerts-api/internal/repository/dao"
)

var ErrBandNotFound = dao.ErrBandNotFound

type BandDAO interface {
	Insert(ctx context.Context, band dao.Band) (dao.Band, error)
	FindAll(ctx context.Context) ([]dao.Band, error)
	FindByID(ctx context.Context, id uint) (dao.Band, error)
}

type BandRepository struct {
	dao BandDAO
}

func NewBandRepository(dao BandDAO) *BandRepository {
	return &BandRepository{
		dao: dao,
	}
}

func (r *BandRepository) Create(ctx context.Context, band domain.Band) (domain.Band, error) {
	created, err := r.dao.Insert(ctx, dao.Band{
		Name:        band.Name,
		Genres:      band.Genres,
		Description: band.Description,
	})
	if err != nil {
		return domain.Band{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *BandRepository) FindAll(ctx context.Context) ([]domain.Band, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	bands := make([]domain.Band, 0, len(found))
	for _, b := range found {
		bands = append(bands, r.daoToDomain(b))
	}

	return bands, nil
}

func (r *BandRepository) FindByID(ctx context.Context, id uint) (domain.Band, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Band{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *BandRepository) daoToDomain(b dao.Band) domain.Band {
	return domain.Band{
		ID:          b.ID,
		Name:        b.Name,
		Genres:      b.Genres,
		Description: b.Description,
	}
}

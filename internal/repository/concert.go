package repository

import (
	"context"
	"fmt"

	"github.com/mhruska/concerts-api/internal/domain"
	"github.com/mhruska/concerts-api/internal/repository/dao"
)

var ErrConcertNotFound = dao.ErrConcertNotFound

type ConcertDAO interface {
	Insert(ctx context.Context, concert dao.Concert) (dao.Concert, error)
	FindAll(ctx context.Context) ([]dao.Concert, error)
	FindByID(ctx context.Context, id uint) (dao.Concert, error)
	Update(ctx context.Context, concert dao.Concert) (dao.Concert, error)
}

type ConcertRepository struct {
	dao ConcertDAO
}

func NewConcertRepository(dao ConcertDAO) *ConcertRepository {
	return &ConcertRepository{
		dao: dao,
	}
}

func (r *ConcertRepository) Create(ctx context.Context, concert domain.Concert) (domain.Concert, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(concert))
	if err != nil {
		return domain.Concert{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ConcertRepository) FindAll(ctx context.Context) ([]domain.Concert, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	concerts := make([]domain.Concert, 0, len(found))
	for _, c := range found {
		concerts = append(concerts, r.daoToDomain(c))
	}

	return concerts, nil
}

func (r *ConcertRepository) FindByID(ctx context.Context, id uint) (domain.Concert, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Concert{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ConcertRepository) Update(ctx context.Context, concert domain.Concert) (domain.Concert, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(concert))
	if err != nil {
		return domain.Concert{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ConcertRepository) daoToDomain(c dao.Concert) domain.Concert {
	return domain.Concert{
		ID:          c.ID,
		Date:        c.Date,
		Venue:       c.Venue,
		Bands:       c.Bands,
		Price:       c.Price,
		SoldOut:     c.SoldOut,
		Description: c.Description,
		Genres:      c.Genres,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (r *ConcertRepository) domainToDAO(c domain.Concert) dao.Concert {
	return dao.Concert{
		ID:          c.ID,
		Date:        c.Date,
		Venue:       c.Venue,
		Bands:       c.Bands,
		Price:       c.Price,
		SoldOut:     c.SoldOut,
		Description: c.Description,
		Genres:      c.Genres,
		CreatedAt:   c.CreatedAt,
	}
}

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrConcertNotFound = errors.New("concert not found")

type Concert struct {
	ID uint `gorm:"primaryKey"`

	Date        time.Time       `gorm:"not null"`
	Venue       string          `gorm:"not null"`
	Bands       string          `gorm:"type:varchar(255)"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	SoldOut     bool            `gorm:"not null;default:false"`
	Description string          `gorm:"type:text"`
	Genres      string          `gorm:"type:text"`

	Tickets []Ticket `gorm:"foreignKey:ConcertID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ConcertDAO struct {
	db *gorm.DB
}

func NewConcertDAO(db *gorm.DB) *ConcertDAO {
	return &ConcertDAO{
		db: db,
	}
}

func (d *ConcertDAO) Insert(ctx context.Context, concert Concert) (Concert, error) {
	result := d.db.WithContext(ctx).Create(&concert)
	if result.Error != nil {
		return Concert{}, result.Error
	}

	return concert, nil
}

func (d *ConcertDAO) FindAll(ctx context.Context) ([]Concert, error) {
	var concerts []Concert

	result := d.db.WithContext(ctx).Order("date").Find(&concerts)
	if result.Error != nil {
		return nil, result.Error
	}

	return concerts, nil
}

func (d *ConcertDAO) FindByID(ctx context.Context, id uint) (Concert, error) {
	var concert Concert

	result := d.db.WithContext(ctx).First(&concert, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Concert{}, ErrConcertNotFound
		}

		return Concert{}, result.Error
	}

	return concert, nil
}

func (d *ConcertDAO) Update(ctx context.Context, concert Concert) (Concert, error) {
	result := d.db.WithContext(ctx).Save(&concert)
	if result.Error != nil {
		return Concert{}, result.Error
	}

	return concert, nil
}

package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrBandNotFound = errors.New("band not found")

type Band struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"type:varchar(255);not null"`
	Genres      string `gorm:"type:text"`
	Description string `gorm:"type:text"`
}

type BandDAO struct {
	db *gorm.DB
}

func NewBandDAO(db *gorm.DB) *BandDAO {
	return &BandDAO{
		db: db,
	}
}

func (d *BandDAO) Insert(ctx context.Context, band Band) (Band, error) {
	result := d.db.WithContext(ctx).Create(&band)
	if result.Error != nil {
		return Band{}, result.Error
	}

	return band, nil
}

func (d *BandDAO) FindAll(ctx context.Context) ([]Band, error) {
	var bands []Band

	result := d.db.WithContext(ctx).Order("name").Find(&bands)
	if result.Error != nil {
		return nil, result.Error
	}

	return bands, nil
}

func (d *BandDAO) FindByID(ctx context.Context, id uint) (Band, error) {
	var band Band

	result := d.db.WithContext(ctx).First(&band, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Band{}, ErrBandNotFound
		}

		return Band{}, result.Error
	}

	return band, nil
}

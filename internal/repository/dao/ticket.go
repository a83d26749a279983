package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrTicketAlreadySold = errors.New("ticket already sold")
)

type Ticket struct {
	ID uint `gorm:"primaryKey"`

	ConcertID uint    `gorm:"not null;index"`
	Concert   Concert `gorm:"foreignKey:ConcertID"`

	// NULL means the ticket is pre-seeded and unsold.
	UserID *uint `gorm:"index"`

	Price decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Type  string          `gorm:"not null;default:Standard"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type TicketDAO struct {
	db *gorm.DB
}

func NewTicketDAO(db *gorm.DB) *TicketDAO {
	return &TicketDAO{
		db: db,
	}
}

func (d *TicketDAO) Insert(ctx context.Context, ticket Ticket) (Ticket, error) {
	result := d.db.WithContext(ctx).Create(&ticket)
	if result.Error != nil {
		return Ticket{}, result.Error
	}

	return ticket, nil
}

func (d *TicketDAO) FindByID(ctx context.Context, id uint) (Ticket, error) {
	var ticket Ticket

	result := d.db.WithContext(ctx).First(&ticket, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Ticket{}, ErrTicketNotFound
		}

		return Ticket{}, result.Error
	}

	return ticket, nil
}

func (d *TicketDAO) FindAll(ctx context.Context) ([]Ticket, error) {
	var tickets []Ticket

	result := d.db.WithContext(ctx).Find(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}

	return tickets, nil
}

// FindByUserID preloads each ticket's concert so the caller can join
// venue, date and the derived band split into the response.
func (d *TicketDAO) FindByUserID(ctx context.Context, userID uint) ([]Ticket, error) {
	var tickets []Ticket

	result := d.db.WithContext(ctx).
		Preload("Concert").
		Where("user_id = ?", userID).
		Find(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}

	return tickets, nil
}

func (d *TicketDAO) FindByConcertID(ctx context.Context, concertID uint, unsoldOnly bool) ([]Ticket, error) {
	var tickets []Ticket

	query := d.db.WithContext(ctx).Where("concert_id = ?", concertID)
	if unsoldOnly {
		query = query.Where("user_id IS NULL")
	}

	result := query.Find(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}

	return tickets, nil
}

// Claim assigns an unsold ticket to a user with a conditional update, so
// two concurrent claims on the same ticket resolve to one winner.
func (d *TicketDAO) Claim(ctx context.Context, ticketID, userID uint) (Ticket, error) {
	result := d.db.WithContext(ctx).
		Model(&Ticket{}).
		Where("id = ? AND user_id IS NULL", ticketID).
		Update("user_id", userID)
	if result.Error != nil {
		return Ticket{}, result.Error
	}

	if result.RowsAffected == 0 {
		// Either the ticket never existed or someone beat us to it.
		ticket, err := d.FindByID(ctx, ticketID)
		if err != nil {
			return Ticket{}, err
		}
		if ticket.UserID != nil {
			return Ticket{}, ErrTicketAlreadySold
		}

		return Ticket{}, ErrTicketNotFound
	}

	return d.FindByID(ctx, ticketID)
}

func (d *TicketDAO) Update(ctx context.Context, ticket Ticket) (Ticket, error) {
	result := d.db.WithContext(ctx).Save(&ticket)
	if result.Error != nil {
		return Ticket{}, result.Error
	}

	return ticket, nil
}

// UpdateWithConcert persists a ticket adjustment and, when requested,
// flips the parent concert's sold-out flag in the same transaction.
func (d *TicketDAO) UpdateWithConcert(ctx context.Context, ticket Ticket, soldOut *bool) (Ticket, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&ticket).Error; err != nil {
			return err
		}

		if soldOut != nil {
			result := tx.Model(&Concert{}).
				Where("id = ?", ticket.ConcertID).
				Update("sold_out", *soldOut)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrConcertNotFound
			}
		}

		return nil
	})
	if err != nil {
		return Ticket{}, err
	}

	return ticket, nil
}

func (d *TicketDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Ticket{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTicketNotFound
	}

	return nil
}

package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TicketStandard     = "Standard"
	TicketVIP          = "VIP"
	TicketGoldenCircle = "Golden Circle"
)

var ErrUnknownTicketType = errors.New("unknown ticket type")

// ticketMultipliers maps a ticket type to the factor applied to the
// concert's base price when a ticket is minted.
var ticketMultipliers = map[string]decimal.Decimal{
	TicketStandard:     decimal.NewFromInt(1),
	TicketVIP:          decimal.RequireFromString("1.5"),
	TicketGoldenCircle: decimal.RequireFromString("1.2"),
}

// TicketPrice computes the price of a minted ticket from the concert's
// base price and the requested type.
func TicketPrice(basePrice decimal.Decimal, ticketType string) (decimal.Decimal, error) {
	multiplier, ok := ticketMultipliers[ticketType]
	if !ok {
		return decimal.Decimal{}, ErrUnknownTicketType
	}

	return basePrice.Mul(multiplier).Round(2), nil
}

type Ticket struct {
	ID        uint            `json:"id"`
	ConcertID uint            `json:"concert_id"`
	UserID    uint            `json:"user_id"` // zero means unsold
	Price     decimal.Decimal `json:"price"`
	Type      string          `json:"type"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (t Ticket) Sold() bool {
	return t.UserID != 0
}

// TicketWithConcert pairs a ticket with the concert it belongs to, for
// listings that join venue, date and the derived band split.
type TicketWithConcert struct {
	Ticket
	Concert Concert `json:"concert"`
}

package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mhruska/concerts-api/internal/domain"
)

type TicketResponse struct {
	ID        uint            `json:"id"`
	ConcertID uint            `json:"concert_id"`
	UserID    uint            `json:"user_id"`
	Price     decimal.Decimal `json:"price"`
	Type      string          `json:"type"`
}

func NewTicketResponse(ticket domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:        ticket.ID,
		ConcertID: ticket.ConcertID,
		UserID:    ticket.UserID,
		Price:     ticket.Price,
		Type:      ticket.Type,
	}
}

func NewTicketListResponse(tickets []domain.Ticket) []TicketResponse {
	list := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		list = append(list, NewTicketResponse(t))
	}

	return list
}

// UserTicketResponse is the "my tickets" row: the ticket joined with the
// concert it is for, including the derived band split.
type UserTicketResponse struct {
	TicketID    uint            `json:"ticket_id"`
	ConcertID   uint            `json:"concert_id"`
	Venue       string          `json:"venue"`
	Date        time.Time       `json:"date"`
	Price       decimal.Decimal `json:"price"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	SoldOut     bool            `json:"sold_out"`
	Headliner   string          `json:"headliner"`
	Openers     string          `json:"openers"`
}

func NewUserTicketResponse(ticket domain.TicketWithConcert) UserTicketResponse {
	headliner, openers := ticket.Concert.SplitBands()

	return UserTicketResponse{
		TicketID:    ticket.ID,
		ConcertID:   ticket.ConcertID,
		Venue:       ticket.Concert.Venue,
		Date:        ticket.Concert.Date,
		Price:       ticket.Price,
		Type:        ticket.Type,
		Description: ticket.Concert.Description,
		SoldOut:     ticket.Concert.SoldOut,
		Headliner:   headliner,
		Openers:     openers,
	}
}

func NewUserTicketListResponse(tickets []domain.TicketWithConcert) []UserTicketResponse {
	list := make([]UserTicketResponse, 0, len(tickets))
	for _, t := range tickets {
		list = append(list, NewUserTicketResponse(t))
	}

	return list
}

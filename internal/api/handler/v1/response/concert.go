package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mhruska/concerts-api/internal/domain"
)

// ConcertResponse carries the stored fields plus the server-side derived
// headliner/openers split, so clients only render and never re-parse the
// bands string.
type ConcertResponse struct {
	ID          uint            `json:"id"`
	Date        time.Time       `json:"date"`
	Venue       string          `json:"venue"`
	Bands       string          `json:"bands"`
	Headliner   string          `json:"headliner"`
	Openers     string          `json:"openers"`
	Price       decimal.Decimal `json:"price"`
	SoldOut     bool            `json:"sold_out"`
	Description string          `json:"description"`
	Genres      string          `json:"genres"`
}

func NewConcertResponse(concert domain.Concert) ConcertResponse {
	headliner, openers := concert.SplitBands()

	return ConcertResponse{
		ID:          concert.ID,
		Date:        concert.Date,
		Venue:       concert.Venue,
		Bands:       concert.Bands,
		Headliner:   headliner,
		Openers:     openers,
		Price:       concert.Price,
		SoldOut:     concert.SoldOut,
		Description: concert.Description,
		Genres:      concert.Genres,
	}
}

func NewConcertListResponse(concerts []domain.Concert) []ConcertResponse {
	list := make([]ConcertResponse, 0, len(concerts))
	for _, c := range concerts {
		list = append(list, NewConcertResponse(c))
	}

	return list
}

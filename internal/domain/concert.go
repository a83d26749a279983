package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultHeadliner is shown when a concert has no bands announced yet.
const DefaultHeadliner = "TBA"

type Concert struct {
	ID          uint            `json:"id"`
	Date        time.Time       `json:"date"`
	Venue       string          `json:"venue"`
	Bands       string          `json:"bands"`
	Price       decimal.Decimal `json:"price"`
	SoldOut     bool            `json:"sold_out"`
	Description string          `json:"description"`
	Genres      string          `json:"genres"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SplitBands derives the headliner and openers from the comma-joined
// bands string. The first segment is the headliner, the rest are openers.
// The split is never persisted.
func (c Concert) SplitBands() (headliner, openers string) {
	segments := make([]string, 0)
	for _, band := range strings.Split(c.Bands, ",") {
		if trimmed := strings.TrimSpace(band); trimmed != "" {
			segments = append(segments, trimmed)
		}
	}

	if len(segments) == 0 {
		return DefaultHeadliner, ""
	}

	return segments[0], strings.Join(segments[1:], ", ")
}

package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

type CreateConcertRequest struct {
	Date        time.Time       `json:"date"`
	Venue       string          `json:"venue"`
	Bands       string          `json:"bands"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Genres      string          `json:"genres"`
}

func (req *CreateConcertRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Date, validation.Required),
		validation.Field(&req.Venue, validation.Required),
		validation.Field(&req.Bands, validation.Length(0, 255)),
	)
}

type UpdateConcertRequest struct {
	ID          uint            `json:"id"`
	Date        time.Time       `json:"date"`
	Venue       string          `json:"venue"`
	Bands       string          `json:"bands"`
	Price       decimal.Decimal `json:"price"`
	SoldOut     bool            `json:"sold_out"`
	Description string          `json:"description"`
	Genres      string          `json:"genres"`
}

func (req *UpdateConcertRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ID, validation.Required),
		validation.Field(&req.Date, validation.Required),
		validation.Field(&req.Venue, validation.Required),
		validation.Field(&req.Bands, validation.Length(0, 255)),
	)
}

package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

// AdjustTicketRequest carries the optional admin overrides. Nil pointers
// mean "leave as is".
type AdjustTicketRequest struct {
	Price   *decimal.Decimal `json:"price"`
	Type    *string          `json:"type"`
	SoldOut *bool            `json:"sold_out"`
}

func (req *AdjustTicketRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Type, validation.In("Standard", "VIP", "Golden Circle")),
	)
}

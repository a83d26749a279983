package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateBandRequest struct {
	Name        string `json:"name"`
	Genres      string `json:"genres"`
	Description string `json:"description"`
}

func (req *CreateBandRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
	)
}

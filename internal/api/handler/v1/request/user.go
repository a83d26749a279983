package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// UpdateProfileRequest fields are all optional; empty means unchanged.
type UpdateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *UpdateProfileRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Username, validation.Length(2, 255)),
	)
	if err != nil {
		return err
	}

	if req.Password != "" {
		return validatePassword(req.Password)
	}

	return nil
}

// UpdateUserRequest is the legacy update shape that requires the current
// password before any change is applied.
type UpdateUserRequest struct {
	CurrentPassword string `json:"current_password"`
	NewUsername     string `json:"new_username"`
	NewEmail        string `json:"new_email"`
	NewPassword     string `json:"new_password"`
}

func (req *UpdateUserRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.CurrentPassword, validation.Required),
		validation.Field(&req.NewEmail, is.Email),
		validation.Field(&req.NewUsername, validation.Length(2, 255)),
	)
	if err != nil {
		return err
	}

	if req.NewPassword != "" {
		return validatePassword(req.NewPassword)
	}

	return nil
}

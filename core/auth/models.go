package auth

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	RegisteredAt time.Time `json:"registered_at"` // UTC
}

// NewUser contains information needed to register a User. Every field must be present,
// values are kept as sent. The password is neither hashed nor kept.
type NewUser struct {
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
	Name     *string `json:"name" validate:"required"`
	Role     *string `json:"role" validate:"required"`
}

func (nu *NewUser) Validate(validate *validator.Validate) error {
	return validate.Struct(nu)
}

type Credentials struct {
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

func (c *Credentials) Validate(validate *validator.Validate) error {
	return validate.Struct(c)
}

type (
	Session struct {
		Token string      `json:"token"`
		User  SessionUser `json:"user"`
	}

	SessionUser struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
)

package auth

import (
	"fmt"
	"smartshop/errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// ValidateCredentials rejects a login form before it reaches the network.
func ValidateCredentials(email, password string) error {
	credentials := Credentials{Email: strings.TrimSpace(email), Password: password}
	if err := validate.Struct(credentials); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidCredentials, err)
	}
	return nil
}

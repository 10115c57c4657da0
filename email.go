package signup

import (
	"github.com/asaskevich/govalidator"
)

type EmailValidatorAdapter struct{}

func NewEmailValidator() EmailValidator {
	return EmailValidatorAdapter{}
}

func (EmailValidatorAdapter) IsValid(email string) bool {
	return govalidator.IsEmail(email)
}

package signup

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jimiolaniyan/signup/logging"
)

//Response is the transport independent result of a signup. Body is either
// an *Account or an ErrorPayload
type Response struct {
	StatusCode int
	Body       interface{}
}

type SignUpController struct {
	emails   EmailValidator
	accounts AddAccount
	logger   logging.Logger
}

func NewSignUpController(emails EmailValidator, accounts AddAccount, logger logging.Logger) *SignUpController {
	return &SignUpController{emails: emails, accounts: accounts, logger: logger}
}

//Handle validates r and registers the account. Validation stops at the first
// failure. Anything that goes wrong past validation, panics included, turns
// into a 500 without details
func (c *SignUpController) Handle(ctx context.Context, r SignUpRequest) (res Response) {
	defer func() {
		if rec := recover(); rec != nil {
			c.logger.Error(ctx, "signup panicked", "panic", fmt.Sprint(rec))
			res = serverError()
		}
	}()

	if err := requireFields(r); err != nil {
		return badRequest(err)
	}

	if r.Password != r.PasswordConfirmation {
		return badRequest(InvalidParamError{Param: "passwordConfirmation"})
	}

	if !c.emails.IsValid(r.Email) {
		return badRequest(InvalidParamError{Param: "email"})
	}

	acc, err := c.accounts.Add(ctx, AddAccountRequest{Name: r.Name, Email: r.Email, Password: r.Password})
	if err != nil {
		c.logger.Error(ctx, "signup failed", "error", err.Error())
		return serverError()
	}

	return ok(acc)
}

func requireFields(r SignUpRequest) error {
	fields := []struct {
		name, value string
	}{
		{"name", r.Name},
		{"email", r.Email},
		{"password", r.Password},
		{"passwordConfirmation", r.PasswordConfirmation},
	}

	for _, f := range fields {
		if f.value == "" {
			return MissingParamError{Param: f.name}
		}
	}
	return nil
}

func ok(acc *Account) Response {
	return Response{StatusCode: http.StatusOK, Body: acc}
}

func badRequest(err error) Response {
	return Response{StatusCode: http.StatusBadRequest, Body: payloadFromError(err)}
}

func serverError() Response {
	return Response{StatusCode: http.StatusInternalServerError, Body: payloadFromError(ServerError{})}
}
